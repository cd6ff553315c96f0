package address_string_param

const (
	MAC48Len          MACAddressLen = "MAC48" // indicates 48-bit MAC addresses
	EUI64Len          MACAddressLen = "EUI64" // indicates 64-bit MAC addresses
	UnspecifiedMACLen MACAddressLen = ""      // indicates unspecified bit-length MAC addresses
)

// MACAddressLen is an option indicating a MAC address length.
type MACAddressLen string

// MACAddressStringFormatParams provides format parameters specific to MAC address strings.
type MACAddressStringFormatParams interface {
	AddressStringFormatParams
	// AllowsShortSegments indicates whether segments missing digits are allowed, like "1:2:3:4:5:6" instead of "01:02:03:04:05:06".
	AllowsShortSegments() bool
}

// MACAddressStringParams provides parameters for parsing MAC address strings,
// specifying what to allow, what to disallow, and other options.
// Immutable instances can be built using the MACAddressStringParamsBuilder.
type MACAddressStringParams interface {
	AddressStringParams
	// GetPreferredLen indicates the preferred MAC address length when it is not determined by the parsed string itself.
	GetPreferredLen() MACAddressLen
	// AllowsDashed allows dash-delimited segments like "01-23-45-67-89-ab".
	AllowsDashed() bool
	// AllowsSingleDashed allows a single dash to delimit a double-segment address like "aabbcc-ddeeff".
	AllowsSingleDashed() bool
	// AllowsColonDelimited allows colon-delimited segments like "01:23:45:67:89:ab".
	AllowsColonDelimited() bool
	// AllowsDotted allows dotted segments like "0123.4567.89ab".
	AllowsDotted() bool
	// AllowsSpaceDelimited allows space-delimited segments like "01 23 45 67 89 ab".
	AllowsSpaceDelimited() bool
	// GetFormatParams returns the format parameters applicable regardless of the delimiter style used.
	GetFormatParams() MACAddressStringFormatParams
}

type macAddressStringFormatParameters struct {
	addressStringFormatParameters
	noShortSegments bool
}

var _ MACAddressStringFormatParams = &macAddressStringFormatParameters{}

// AllowsShortSegments allows segments missing digits, like "1:2:3:4:5:6".
func (params *macAddressStringFormatParameters) AllowsShortSegments() bool {
	return !params.noShortSegments
}

// macAddressStringParameters is the immutable implementation of MACAddressStringParams.
type macAddressStringParameters struct {
	addressStringParameters
	formatParams macAddressStringFormatParameters

	preferredLen MACAddressLen

	noDashed         bool
	noSingleDashed   bool
	noColonDelimited bool
	noDotted         bool
	noSpaceDelimited bool
}

var _ MACAddressStringParams = &macAddressStringParameters{}

func (params *macAddressStringParameters) GetPreferredLen() MACAddressLen {
	return params.preferredLen
}

func (params *macAddressStringParameters) AllowsDashed() bool {
	return !params.noDashed
}

func (params *macAddressStringParameters) AllowsSingleDashed() bool {
	return !params.noSingleDashed
}

func (params *macAddressStringParameters) AllowsColonDelimited() bool {
	return !params.noColonDelimited
}

func (params *macAddressStringParameters) AllowsDotted() bool {
	return !params.noDotted
}

func (params *macAddressStringParameters) AllowsSpaceDelimited() bool {
	return !params.noSpaceDelimited
}

func (params *macAddressStringParameters) GetFormatParams() MACAddressStringFormatParams {
	return &params.formatParams
}

// MACAddressStringFormatParamsBuilder builds an immutable MACAddressStringFormatParams.
type MACAddressStringFormatParamsBuilder struct {
	AddressStringFormatParamsBuilder
	params macAddressStringFormatParameters
	parent *MACAddressStringParamsBuilder
}

// GetParentBuilder returns the original MACAddressStringParamsBuilder this builder was obtained from.
func (builder *MACAddressStringFormatParamsBuilder) GetParentBuilder() *MACAddressStringParamsBuilder {
	return builder.parent
}

// AllowShortSegments dictates whether to allow segments missing digits, like "1:2:3:4:5:6".
func (builder *MACAddressStringFormatParamsBuilder) AllowShortSegments(allow bool) *MACAddressStringFormatParamsBuilder {
	builder.params.noShortSegments = !allow
	return builder
}

// AllowWildcardedSeparator dictates whether the wildcard '*' can replace the segment separator.
func (builder *MACAddressStringFormatParamsBuilder) AllowWildcardedSeparator(allow bool) *MACAddressStringFormatParamsBuilder {
	builder.allowWildcardedSeparator(allow)
	return builder
}

// AllowLeadingZeros dictates whether to allow addresses with segments that have leading zeros.
func (builder *MACAddressStringFormatParamsBuilder) AllowLeadingZeros(allow bool) *MACAddressStringFormatParamsBuilder {
	builder.allowLeadingZeros(allow)
	return builder
}

// AllowUnlimitedLeadingZeros dictates whether to allow leading zeros that extend segments beyond the usual length.
func (builder *MACAddressStringFormatParamsBuilder) AllowUnlimitedLeadingZeros(allow bool) *MACAddressStringFormatParamsBuilder {
	builder.allowLeadingZeros(allow)
	builder.allowUnlimitedLeadingZeros(allow)
	return builder
}

// SetRangeParams populates the range parameters of this builder to match the given RangeParams.
func (builder *MACAddressStringFormatParamsBuilder) SetRangeParams(rangeParams RangeParams) *MACAddressStringFormatParamsBuilder {
	builder.setRangeParameters(rangeParams)
	return builder
}

// GetRangeParamsBuilder returns a builder that builds the range parameters for these MAC address string format parameters.
func (builder *MACAddressStringFormatParamsBuilder) GetRangeParamsBuilder() *RangeParamsBuilder {
	result := &builder.rangeParamsBuilder
	result.parent = &builder.AddressStringFormatParamsBuilder
	return result
}

func (builder *MACAddressStringFormatParamsBuilder) set(params MACAddressStringFormatParams) {
	builder.params = macAddressStringFormatParameters{noShortSegments: !params.AllowsShortSegments()}
	builder.AddressStringFormatParamsBuilder.set(params)
}

// ToParams returns an immutable MACAddressStringFormatParams instance built by this builder.
func (builder *MACAddressStringFormatParamsBuilder) ToParams() MACAddressStringFormatParams {
	result := builder.params
	result.addressStringFormatParameters = *builder.AddressStringFormatParamsBuilder.ToParams().(*addressStringFormatParameters)
	return &result
}

// MACAddressStringParamsBuilder builds an immutable MACAddressStringParams for controlling parsing of MAC address strings.
type MACAddressStringParamsBuilder struct {
	AddressStringParamsBuilder
	params        macAddressStringParameters
	formatBuilder MACAddressStringFormatParamsBuilder
}

// Set initializes this builder to match the given MACAddressStringParams.
func (builder *MACAddressStringParamsBuilder) Set(params MACAddressStringParams) *MACAddressStringParamsBuilder {
	if p, ok := params.(*macAddressStringParameters); ok {
		builder.params = *p
	} else {
		builder.params = macAddressStringParameters{
			preferredLen:     params.GetPreferredLen(),
			noDashed:         !params.AllowsDashed(),
			noSingleDashed:   !params.AllowsSingleDashed(),
			noColonDelimited: !params.AllowsColonDelimited(),
			noDotted:         !params.AllowsDotted(),
			noSpaceDelimited: !params.AllowsSpaceDelimited(),
		}
	}
	builder.AddressStringParamsBuilder.set(params)
	builder.formatBuilder.set(params.GetFormatParams())
	return builder
}

// ToParams returns an immutable MACAddressStringParams instance built by this builder.
func (builder *MACAddressStringParamsBuilder) ToParams() MACAddressStringParams {
	result := builder.params
	result.addressStringParameters = *builder.AddressStringParamsBuilder.ToParams().(*addressStringParameters)
	result.formatParams = *builder.formatBuilder.ToParams().(*macAddressStringFormatParameters)
	return &result
}

// GetFormatParamsBuilder returns a builder that builds the format parameters for these MAC address string parameters.
func (builder *MACAddressStringParamsBuilder) GetFormatParamsBuilder() (result *MACAddressStringFormatParamsBuilder) {
	result = &builder.formatBuilder
	result.parent = builder
	return
}

// AllowEmpty dictates whether to allow the empty zero-length MAC address string.
func (builder *MACAddressStringParamsBuilder) AllowEmpty(allow bool) *MACAddressStringParamsBuilder {
	builder.allowEmpty(allow)
	return builder
}

// AllowAll dictates whether to allow the string of just the wildcard "*" to denote all MAC addresses.
func (builder *MACAddressStringParamsBuilder) AllowAll(allow bool) *MACAddressStringParamsBuilder {
	builder.allowAll(allow)
	return builder
}

// AllowSingleSegment dictates whether to allow an address to be specified as a single value.
func (builder *MACAddressStringParamsBuilder) AllowSingleSegment(allow bool) *MACAddressStringParamsBuilder {
	builder.allowSingleSegment(allow)
	return builder
}

// SetPreferredLen dictates the preferred MAC address length when it is not determined by the string itself.
func (builder *MACAddressStringParamsBuilder) SetPreferredLen(len MACAddressLen) *MACAddressStringParamsBuilder {
	builder.params.preferredLen = len
	return builder
}

// AllowDashed dictates whether to allow dash-delimited segments like "01-23-45-67-89-ab".
func (builder *MACAddressStringParamsBuilder) AllowDashed(allow bool) *MACAddressStringParamsBuilder {
	builder.params.noDashed = !allow
	return builder
}

// AllowSingleDashed dictates whether to allow a single dash to delimit a double-segment address.
func (builder *MACAddressStringParamsBuilder) AllowSingleDashed(allow bool) *MACAddressStringParamsBuilder {
	builder.params.noSingleDashed = !allow
	return builder
}

// AllowColonDelimited dictates whether to allow colon-delimited segments like "01:23:45:67:89:ab".
func (builder *MACAddressStringParamsBuilder) AllowColonDelimited(allow bool) *MACAddressStringParamsBuilder {
	builder.params.noColonDelimited = !allow
	return builder
}

// AllowDotted dictates whether to allow dotted segments like "0123.4567.89ab".
func (builder *MACAddressStringParamsBuilder) AllowDotted(allow bool) *MACAddressStringParamsBuilder {
	builder.params.noDotted = !allow
	return builder
}

// AllowSpaceDelimited dictates whether to allow space-delimited segments like "01 23 45 67 89 ab".
func (builder *MACAddressStringParamsBuilder) AllowSpaceDelimited(allow bool) *MACAddressStringParamsBuilder {
	builder.params.noSpaceDelimited = !allow
	return builder
}

// AllowShortSegments dictates whether to allow segments missing digits, like "1:2:3:4:5:6".
func (builder *MACAddressStringParamsBuilder) AllowShortSegments(allow bool) *MACAddressStringParamsBuilder {
	builder.GetFormatParamsBuilder().AllowShortSegments(allow)
	return builder
}

// SetRangeParams populates the range parameters of the nested format builder to match the given RangeParams.
func (builder *MACAddressStringParamsBuilder) SetRangeParams(rangeParams RangeParams) *MACAddressStringParamsBuilder {
	builder.GetFormatParamsBuilder().SetRangeParams(rangeParams)
	return builder
}

// CopyMACAddressStringParams produces an immutable copy of the original MACAddressStringParams.
// Copying a MACAddressStringParams created by a MACAddressStringParamsBuilder is unnecessary since it is already immutable.
func CopyMACAddressStringParams(orig MACAddressStringParams) MACAddressStringParams {
	if p, ok := orig.(*macAddressStringParameters); ok {
		return p
	}
	return new(MACAddressStringParamsBuilder).Set(orig).ToParams()
}
