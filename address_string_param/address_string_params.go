package address_string_param

// RangeParams indicates what wildcards and ranges are allowed in the string.
type RangeParams interface {
	// AllowsWildcard indicates whether '*' is allowed to denote segments covering all possible segment values
	AllowsWildcard() bool
	// AllowsRangeSeparator indicates whether '-' (or the expected range separator for the address) is allowed to denote a range from lower to higher, like 1-10
	AllowsRangeSeparator() bool
	// AllowsSingleWildcard indicates whether to allow a segment terminating with '_' characters, which represent any digit
	AllowsSingleWildcard() bool
	// AllowsReverseRange indicates whether '-' (or the expected range separator for the address) is allowed to denote a range from higher to lower, like 10-1
	AllowsReverseRange() bool
	// AllowsInferredBoundary indicates whether a missing range value before or after a '-' is allowed to denote the mininum or maximum potential value
	AllowsInferredBoundary() bool
}

type AddressStringFormatParams interface {
	// AllowsWildcardedSeparator controls whether the wildcard '*' or '%' can replace the segment separators '.' and ':'.
	// If so, then you can write addresses like "*.*" or "*:*".
	AllowsWildcardedSeparator() bool
	// AllowsLeadingZeros indicates whether you allow addresses with segments that have leasing zeros like "001.2.3.004" or "1:000a::".
	// For IPV4, this option overrides inet_aton octal.
	// Single segment addresses that must have the requisite length to be parsed are not affected by this flag.
	AllowsLeadingZeros() bool
	// AllowsUnlimitedLeadingZeros determines if you allow leading zeros that extend segments
	// beyond the usual segment length, which is 3 for IPv4 dotted-decimal and 4 for IPv6.
	// However, this only takes effect if leading zeros are allowed, which is when
	// AllowsLeadingZeros is true or the address is IPv4 and Allows_inet_aton_octal is true.
	// For example, this determines whether you allow "0001.0002.0003.0004".
	AllowsUnlimitedLeadingZeros() bool
	// GetRangeParams returns the RangeParams describing whether ranges of values are allowed and what wildcards are allowed.
	GetRangeParams() RangeParams
}

// AddressStringParams is the portion of parameters shared by IP address and MAC address string parsing.
type AddressStringParams interface {
	// AllowsEmpty indicates whether a zero-length empty string is parseable.
	AllowsEmpty() bool
	// AllowsAll indicates whether the string of just the wildcard "*" denotes all addresses.
	AllowsAll() bool
	// AllowsSingleSegment indicates whether an address can be written as a single value, eg "ffffffff" for an IPv4 address.
	AllowsSingleSegment() bool
}

// rangeParameters is the immutable implementation backing RangeParams, built with RangeParamsBuilder.
type rangeParameters struct {
	noWildcard, noValueRange, noReverseRange, noSingleWildcard, noInferredBoundary bool
}

var _ RangeParams = &rangeParameters{}

func (params *rangeParameters) AllowsWildcard() bool {
	return !params.noWildcard
}

func (params *rangeParameters) AllowsRangeSeparator() bool {
	return !params.noValueRange
}

func (params *rangeParameters) AllowsSingleWildcard() bool {
	return !params.noSingleWildcard
}

func (params *rangeParameters) AllowsReverseRange() bool {
	return !params.noReverseRange
}

func (params *rangeParameters) AllowsInferredBoundary() bool {
	return !params.noInferredBoundary
}

var (
	// NoRange allows no range or wildcard syntax of any kind.
	NoRange RangeParams = &rangeParameters{
		noWildcard:         true,
		noValueRange:       true,
		noReverseRange:     true,
		noSingleWildcard:   true,
		noInferredBoundary: true,
	}

	// WildcardOnly allows the full wildcard '*' but no ranges or single-digit wildcards.
	WildcardOnly RangeParams = &rangeParameters{
		noValueRange:       true,
		noReverseRange:     true,
		noSingleWildcard:   true,
		noInferredBoundary: true,
	}

	// WildcardAndRange allows both the full wildcard '*' and '-' ranges, but no reverse ranges.
	WildcardAndRange RangeParams = &rangeParameters{
		noReverseRange:     true,
		noSingleWildcard:   true,
		noInferredBoundary: true,
	}
)

// RangeParamsBuilder builds an immutable RangeParams.
type RangeParamsBuilder struct {
	rangeParameters

	parent *AddressStringFormatParamsBuilder
}

// GetParentBuilder returns the original AddressStringFormatParamsBuilder this was obtained from, if any.
func (builder *RangeParamsBuilder) GetParentBuilder() *AddressStringFormatParamsBuilder {
	return builder.parent
}

// Set initializes this builder to match the supplied RangeParams.
func (builder *RangeParamsBuilder) Set(rangeParams RangeParams) *RangeParamsBuilder {
	builder.noWildcard = !rangeParams.AllowsWildcard()
	builder.noValueRange = !rangeParams.AllowsRangeSeparator()
	builder.noReverseRange = !rangeParams.AllowsReverseRange()
	builder.noSingleWildcard = !rangeParams.AllowsSingleWildcard()
	builder.noInferredBoundary = !rangeParams.AllowsInferredBoundary()
	return builder
}

// AllowWildcard dictates whether to allow '*' to denote segments covering all possible segment values.
func (builder *RangeParamsBuilder) AllowWildcard(allow bool) *RangeParamsBuilder {
	builder.noWildcard = !allow
	return builder
}

// AllowRangeSeparator dictates whether to allow '-' to denote a range from lower to higher.
func (builder *RangeParamsBuilder) AllowRangeSeparator(allow bool) *RangeParamsBuilder {
	builder.noValueRange = !allow
	return builder
}

// AllowReverseRange dictates whether to allow '-' to denote a range from higher to lower.
func (builder *RangeParamsBuilder) AllowReverseRange(allow bool) *RangeParamsBuilder {
	builder.noReverseRange = !allow
	return builder
}

// AllowSingleWildcard dictates whether to allow a segment terminating with '_' characters.
func (builder *RangeParamsBuilder) AllowSingleWildcard(allow bool) *RangeParamsBuilder {
	builder.noSingleWildcard = !allow
	return builder
}

// AllowInferredBoundary dictates whether a missing range value before or after a '-' denotes an inferred min/max.
func (builder *RangeParamsBuilder) AllowInferredBoundary(allow bool) *RangeParamsBuilder {
	builder.noInferredBoundary = !allow
	return builder
}

// ToParams returns an immutable RangeParams instance built by this builder.
func (builder *RangeParamsBuilder) ToParams() RangeParams {
	result := builder.rangeParameters
	return &result
}

// addressStringFormatParameters is the immutable base implementation of AddressStringFormatParams,
// embedded by the per-version format parameter structs.
type addressStringFormatParameters struct {
	rangeParams RangeParams

	noWildcardedSeparator      bool
	noLeadingZeros             bool
	allowUnlimitedLeadingZeros bool
}

var _ AddressStringFormatParams = &addressStringFormatParameters{}

func (params *addressStringFormatParameters) AllowsWildcardedSeparator() bool {
	return !params.noWildcardedSeparator
}

func (params *addressStringFormatParameters) AllowsLeadingZeros() bool {
	return !params.noLeadingZeros
}

func (params *addressStringFormatParameters) AllowsUnlimitedLeadingZeros() bool {
	return params.allowUnlimitedLeadingZeros
}

func (params *addressStringFormatParameters) GetRangeParams() RangeParams {
	return params.rangeParams
}

// AddressStringFormatParamsBuilder builds the common portion of the per-version format parameter builders.
type AddressStringFormatParamsBuilder struct {
	params addressStringFormatParameters

	rangeParamsBuilder RangeParamsBuilder
}

func (builder *AddressStringFormatParamsBuilder) allowWildcardedSeparator(allow bool) {
	builder.params.noWildcardedSeparator = !allow
}

func (builder *AddressStringFormatParamsBuilder) allowLeadingZeros(allow bool) {
	builder.params.noLeadingZeros = !allow
}

func (builder *AddressStringFormatParamsBuilder) allowUnlimitedLeadingZeros(allow bool) {
	builder.params.allowUnlimitedLeadingZeros = allow
}

func (builder *AddressStringFormatParamsBuilder) setRangeParameters(rangeParams RangeParams) {
	builder.rangeParamsBuilder = RangeParamsBuilder{parent: builder}
	builder.rangeParamsBuilder.Set(rangeParams)
}

func (builder *AddressStringFormatParamsBuilder) set(params AddressStringFormatParams) {
	builder.params.noWildcardedSeparator = !params.AllowsWildcardedSeparator()
	builder.params.noLeadingZeros = !params.AllowsLeadingZeros()
	builder.params.allowUnlimitedLeadingZeros = params.AllowsUnlimitedLeadingZeros()
	builder.setRangeParameters(params.GetRangeParams())
}

// ToParams returns an immutable AddressStringFormatParams instance built by this builder.
func (builder *AddressStringFormatParamsBuilder) ToParams() AddressStringFormatParams {
	result := builder.params
	result.rangeParams = builder.rangeParamsBuilder.ToParams()
	return &result
}

// addressStringParameters is the immutable base of parameters shared by IP and MAC address string parsing.
type addressStringParameters struct {
	noEmpty         bool
	noAll           bool
	noSingleSegment bool
}

var _ AddressStringParams = &addressStringParameters{}

func (params *addressStringParameters) AllowsEmpty() bool {
	return !params.noEmpty
}

func (params *addressStringParameters) AllowsAll() bool {
	return !params.noAll
}

func (params *addressStringParameters) AllowsSingleSegment() bool {
	return !params.noSingleSegment
}

// AddressStringParamsBuilder builds the common portion of the top-level IP/MAC address string parameter builders.
type AddressStringParamsBuilder struct {
	params addressStringParameters
}

func (builder *AddressStringParamsBuilder) allowEmpty(allow bool) {
	builder.params.noEmpty = !allow
}

func (builder *AddressStringParamsBuilder) allowAll(allow bool) {
	builder.params.noAll = !allow
}

func (builder *AddressStringParamsBuilder) allowSingleSegment(allow bool) {
	builder.params.noSingleSegment = !allow
}

func (builder *AddressStringParamsBuilder) set(params AddressStringParams) {
	builder.params.noEmpty = !params.AllowsEmpty()
	builder.params.noAll = !params.AllowsAll()
	builder.params.noSingleSegment = !params.AllowsSingleSegment()
}

// ToParams returns an immutable AddressStringParams instance built by this builder.
func (builder *AddressStringParamsBuilder) ToParams() AddressStringParams {
	result := builder.params
	return &result
}
