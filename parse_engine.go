package goip

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/arlorn/netaddr/address_error"
	"github.com/arlorn/netaddr/address_string_param"
)

// base85Alphabet is the 85-character RFC 1924 digit set, ordered by value.
const base85Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"

var maxUint64Big = new(big.Int).SetUint64(0xffffffffffffffff)

func isHexDigitByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// tryParseBase85 recognizes a 20-character base-85 single-segment IPv6 address. It returns
// isBase85 = false (with a nil error) whenever the string is not exactly 20 base-85 digits or
// contains no non-hex character, so plain 32-hex-digit single-segment addresses are left alone.
func tryParseBase85(str string, params address_string_param.IPv6AddressStringParams) (*big.Int, bool, address_error.AddressStringError) {
	if !params.AllowsBase85() || len(str) != ipv6Base85SingleSegmentDigitCount {
		return nil, false, nil
	}
	hasExtended := false
	for i := 0; i < len(str); i++ {
		if strings.IndexByte(base85Alphabet, str[i]) < 0 {
			return nil, false, nil
		}
		if !isHexDigitByte(str[i]) {
			hasExtended = true
		}
	}
	if !hasExtended {
		return nil, false, nil
	}
	value := new(big.Int)
	mult := big.NewInt(85)
	for i := 0; i < len(str); i++ {
		d := strings.IndexByte(base85Alphabet, str[i])
		value.Mul(value, mult)
		value.Add(value, big.NewInt(int64(d)))
	}
	maxVal := new(big.Int).Lsh(big.NewInt(1), 128)
	if value.Cmp(maxVal) >= 0 {
		return nil, true, newAddressStringError(str, "ipaddress.error.address.too.large")
	}
	return value, true, nil
}

// parseMixedIPv6 parses an IPv6 address whose final two 16-bit groups are written as a
// dotted-decimal IPv4 tail (e.g. "::ffff:1.2.3.4"), recursing into the IPv4 segment parser
// for the tail and recording the nested result as data's mixedParsedAddress.
func parseMixedIPv6(addrPart string, ipv6Params address_string_param.IPv6AddressStringParams, data *ipAddressParseData) address_error.AddressStringError {
	if !ipv6Params.AllowsMixed() {
		return newAddressStringError(addrPart, "ipaddress.error.no.mixed")
	}

	lastColon := strings.LastIndexByte(addrPart, ':')
	if lastColon < 0 {
		return newAddressStringError(addrPart, "ipaddress.error.ipv4.in.ipv6")
	}
	ipv6Part := addrPart[:lastColon+1]
	ipv4Part := addrPart[lastColon+1:]

	mixedParams := ipv6Params.GetMixedParams()
	embeddedIPv4Params := ipv6Params.GetEmbeddedIPv4AddressParams()

	mixedParsed := newParsedIPAddress(ipv4Part, mixedParams)
	if v4Err := parseIPv4Segments(ipv4Part, embeddedIPv4Params, &mixedParsed.ipAddressParseData); v4Err != nil {
		return newAddressStringNestedError(addrPart, "ipaddress.error.ipv4.in.ipv6", v4Err)
	}

	parseData := &data.addressParseData
	rangeParams := ipv6Params.GetRangeParams()

	compressedIndex := strings.Index(ipv6Part, "::")
	var before, after string
	hasCompression := compressedIndex >= 0
	if hasCompression {
		before = ipv6Part[:compressedIndex]
		after = strings.TrimSuffix(ipv6Part[compressedIndex+2:], ":")
	} else {
		before = strings.TrimSuffix(ipv6Part, ":")
	}

	var beforeSegs, afterSegs []string
	if len(before) > 0 {
		beforeSegs = strings.Split(before, ":")
	}
	if len(after) > 0 {
		afterSegs = strings.Split(after, ":")
	}

	// the IPv4 tail stands in for the final two IPv6 segments.
	total := len(beforeSegs) + len(afterSegs) + 2
	if !hasCompression && total != IPv6SegmentCount {
		return newAddressStringError(addrPart, "ipaddress.error.ipv6.invalid.segment.count")
	}
	if hasCompression && total >= IPv6SegmentCount {
		return newAddressStringError(addrPart, "ipaddress.error.ipv6.invalid.segment.count")
	}

	parseData.initSegmentData(IPv6SegmentCount)

	segIndex := 0
	for _, seg := range beforeSegs {
		if parseErr := parseIPv6Segment(seg, segIndex, ipv6Params, rangeParams, parseData); parseErr != nil {
			return parseErr
		}
		parseData.incrementSegmentCount()
		segIndex++
	}

	if hasCompression {
		data.setConsecutiveSeparatorIndex(compressedIndex)
		data.setConsecutiveSeparatorSegmentIndex(segIndex)
		segIndex = IPv6SegmentCount - len(afterSegs) - 2
	}

	for _, seg := range afterSegs {
		if parseErr := parseIPv6Segment(seg, segIndex, ipv6Params, rangeParams, parseData); parseErr != nil {
			return parseErr
		}
		parseData.incrementSegmentCount()
		segIndex++
	}

	// the IPv4 tail's two 16-bit octet pairs become the final two IPv6 segments.
	v4Data := &mixedParsed.ipAddressParseData.addressParseData
	hi := (v4Data.getValue(0, keyLower) << 8) | v4Data.getValue(1, keyLower)
	lo := (v4Data.getValue(2, keyLower) << 8) | v4Data.getValue(3, keyLower)
	parseData.setValue(segIndex, keyLower, hi)
	parseData.setValue(segIndex, keyUpper, hi)
	parseData.setBitLength(segIndex, IPv6BitsPerSegment)
	parseData.incrementSegmentCount()
	segIndex++
	parseData.setValue(segIndex, keyLower, lo)
	parseData.setValue(segIndex, keyUpper, lo)
	parseData.setBitLength(segIndex, IPv6BitsPerSegment)
	parseData.incrementSegmentCount()

	data.setMixedParsedAddress(mixedParsed)
	return nil
}

func toIPVersion(v address_string_param.IPVersion) IPVersion {
	if v.IsIPv4() {
		return IPv4
	} else if v.IsIPv6() {
		return IPv6
	}
	return IndeterminateIPVersion
}

// validatePrefixLenStr parses a bare prefix length string, such as the "24" in "1.2.3.4/24".
func (strValidator) validatePrefixLenStr(fullAddr string, version IPVersion) (PrefixLen, address_error.AddressStringError) {
	str := strings.TrimSpace(fullAddr)
	if len(str) == 0 {
		return nil, newAddressStringError(fullAddr, "ipaddress.error.invalid.prefix.length")
	}
	for _, c := range str {
		if c < '0' || c > '9' {
			return nil, newAddressStringError(fullAddr, "ipaddress.error.invalid.prefix.length")
		}
	}
	val, convErr := strconv.Atoi(str)
	if convErr != nil {
		return nil, newAddressStringError(fullAddr, "ipaddress.error.invalid.prefix.length")
	}
	maxVal := IPv6BitCount
	if version.IsIPv4() {
		maxVal = IPv4BitCount
	}
	if val < 0 || val > maxVal {
		return nil, newAddressStringError(fullAddr, "ipaddress.error.prefixSize")
	}
	return newPrefixLen(val), nil
}

// splitAddrAndQualifier splits addr into its address portion and qualifier portion, handling
// the zone separator '%' and the prefix/mask separator '/'. The IPv6 AllowsZone option
// controls whether '%' is accepted as a zone indicator; when it is off, a '%' makes the
// string invalid rather than being left as part of the address.
func splitAddrAndQualifier(str string, ipParams address_string_param.IPAddressStringParams) (addrPart string, qual parsedHostIdentifierStringQualifier, err address_error.AddressStringError) {
	addrPart = str

	if idx := strings.IndexByte(addrPart, '%'); idx >= 0 {
		ipv6Params := ipParams.GetIPv6Params()
		if !ipv6Params.AllowsZone() {
			return "", qual, newAddressStringError(str, "ipaddress.error.zone")
		}
		zoneStr := addrPart[idx+1:]
		if len(zoneStr) == 0 && !ipv6Params.AllowsEmptyZone() {
			return "", qual, newAddressStringError(str, "ipaddress.error.zone")
		}
		zone := Zone(zoneStr)
		qual.setZone(&zone)
		addrPart = addrPart[:idx]
	}

	if idx := strings.IndexByte(addrPart, '/'); idx >= 0 {
		qualStr := addrPart[idx+1:]
		addrPart = addrPart[:idx]
		if len(qualStr) == 0 {
			return "", qual, newAddressStringError(str, "ipaddress.error.invalid.prefix.length")
		}
		if isAllDigits(qualStr) {
			if !ipParams.AllowsPrefix() {
				return "", qual, newAddressStringError(str, "ipaddress.error.prefix")
			}
			prefLen, plErr := strValidator{}.validatePrefixLenStr(qualStr, IndeterminateIPVersion)
			if plErr != nil {
				return "", qual, plErr
			}
			qual.networkPrefixLength = prefLen
		} else {
			if !ipParams.AllowsMask() {
				return "", qual, newAddressStringError(str, "ipaddress.error.mask")
			}
			maskParsed := newParsedIPAddress(qualStr, ipParams)
			if maskErr := parseIPAddressInto(qualStr, ipParams, maskParsed); maskErr != nil {
				return "", qual, newAddressStringNestedError(str, "ipaddress.error.invalidCIDRPrefixOrMask", maskErr)
			}
			qual.mask = maskParsed
		}
	}

	return addrPart, qual, nil
}

func isAllDigits(str string) bool {
	if len(str) == 0 {
		return false
	}
	for _, c := range str {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// validateIPAddressStr is the entry point for parsing the body of an IPAddressString: it
// strips the qualifier (prefix/mask/zone), recognizes the empty and "all" special forms,
// and otherwise dispatches to the IPv4 or IPv6 segment parser based on the separator found.
func (strValidator) validateIPAddressStr(fromString *IPAddressString, params address_string_param.IPAddressStringParams) (ipAddressProvider, address_error.AddressStringError) {
	str := fromString.str

	if len(str) == 0 {
		if !params.AllowsEmpty() {
			return nil, newAddressStringError(str, "ipaddress.error.empty.address")
		}
		switch params.EmptyStrParsedAs() {
		case address_string_param.LoopbackOption:
			return newLoopbackAddressProvider(toIPVersion(params.GetPreferredVersion()), params), nil
		default:
			return newEmptyAddressProvider(params), nil
		}
	}

	// A base-85 IPv6 string is recognized whole, before the qualifier is split off,
	// since its alphabet includes '%', which would otherwise be read as a zone separator.
	if _, isBase85, _ := tryParseBase85(str, params.GetIPv6Params()); isBase85 && params.AllowsIPv6() {
		parsed := newParsedIPAddress(str, params)
		parsed.ipAddressParseData.setVersion(IPv6)
		if parseErr := parseIPv6Segments(str, params.GetIPv6Params(), &parsed.ipAddressParseData); parseErr != nil {
			return nil, parseErr
		}
		return newParsedAddressProvider(parsed), nil
	}

	addrPart, qualifier, err := splitAddrAndQualifier(str, params)
	if err != nil {
		return nil, err
	}

	if addrPart == "*" {
		if !params.AllowsAll() {
			return nil, newAddressStringError(str, "ipaddress.error.all.not.allowed")
		}
		version := toIPVersion(params.GetPreferredVersion())
		if allStr := params.AllStrParsedAs(); allStr != address_string_param.AllPreferredIPVersion {
			version = IndeterminateIPVersion
		}
		return newAllAddressProvider(version, qualifier, params), nil
	}

	if len(addrPart) == 0 {
		if !params.AllowsPrefix() && !params.AllowsMask() {
			return nil, newAddressStringError(str, "ipaddress.error.invalid")
		}
		return newMaskAddressProvider(qualifier, qualifier.inferVersion(params), params), nil
	}

	parsed := newParsedIPAddress(str, params)
	parsed.ipAddressParseData.qualifier = qualifier
	if parseErr := parseIPAddressInto(addrPart, params, parsed); parseErr != nil {
		return nil, parseErr
	}

	return newParsedAddressProvider(parsed), nil
}

// parseIPAddressInto parses addrPart (the address with any qualifier already stripped) into
// parsed, choosing the IPv4 or IPv6 segment grammar based on the separator characters present.
func parseIPAddressInto(addrPart string, params address_string_param.IPAddressStringParams, parsed *parsedIPAddress) address_error.AddressStringError {
	data := &parsed.ipAddressParseData

	if strings.IndexByte(addrPart, ':') >= 0 {
		if !params.AllowsIPv6() {
			return newAddressStringError(addrPart, "ipaddress.error.ipv6")
		}
		data.setVersion(IPv6)
		return parseIPv6Segments(addrPart, params.GetIPv6Params(), data)
	}

	if strings.IndexByte(addrPart, '.') >= 0 {
		if !params.AllowsIPv4() {
			return newAddressStringError(addrPart, "ipaddress.error.ipv4")
		}
		data.setVersion(IPv4)
		return parseIPv4Segments(addrPart, params.GetIPv4Params(), data)
	}

	// No recognized separator: a single segment address, disambiguated by length alone:
	// 32 or more characters are read as IPv6, anything shorter as IPv4.
	totalDigits := len(addrPart)
	if totalDigits >= ipv6SingleSegmentDigitCount && params.AllowsIPv6() {
		data.setVersion(IPv6)
		return parseIPv6Segments(addrPart, params.GetIPv6Params(), data)
	}
	if params.AllowsIPv4() {
		if !params.AllowsSingleSegment() {
			return newAddressStringError(addrPart, "ipaddress.error.ipv4.too.few.segments")
		}
		data.setVersion(IPv4)
		return parseIPv4Segments(addrPart, params.GetIPv4Params(), data)
	}
	return newAddressStringError(addrPart, "ipaddress.error.invalid")
}

// parseSegmentValue parses a single segment's text (no wildcard/range markers) under the
// given radix, returning its numeric value.
func parseSegmentValue(str string, radix int) (uint64, address_error.AddressStringError) {
	if len(str) == 0 {
		return 0, newAddressStringError(str, "ipaddress.error.ipv4.segment.format.invalid")
	}
	val, err := strconv.ParseUint(str, radix, 64)
	if err != nil {
		return 0, newAddressStringError(str, "ipaddress.error.ipv4.segment.format.invalid")
	}
	return val, nil
}

// segmentRadixAndDigits determines the radix to parse a segment's digits under and strips
// any "0x"/"0b" prefix, honoring inet_aton hex/octal and binary conventions.
func segmentRadixAndDigits(seg string, allowHex, allowOctal, allowBinary bool) (digits string, radix int) {
	if allowBinary && (strings.HasPrefix(seg, "0b") || strings.HasPrefix(seg, "0B")) {
		return seg[2:], 2
	}
	if allowHex && (strings.HasPrefix(seg, "0x") || strings.HasPrefix(seg, "0X")) {
		return seg[2:], 16
	}
	if allowOctal && len(seg) > 1 && seg[0] == '0' {
		return seg, 8
	}
	return seg, 10
}

// parseIPv4Segments parses the dotted-decimal (or inet_aton joined-segment) body of an
// IPv4 address string into parseData, recording each segment's value, radix, and range.
func parseIPv4Segments(addrPart string, ipv4Params address_string_param.IPv4AddressStringParams, data *ipAddressParseData) address_error.AddressStringError {
	parseData := &data.addressParseData
	rangeParams := ipv4Params.GetRangeParams()

	if addrPart == "*" {
		parseData.initSegmentData(1)
		parseData.setSingleSegment()
		parseData.incrementSegmentCount()
		if !rangeParams.AllowsWildcard() {
			return newAddressStringError(addrPart, "ipaddress.error.no.wildcard")
		}
		parseData.setValue(0, keyLower, 0)
		parseData.setValue(0, keyUpper, IPv4MaxValue)
		parseData.setFlag(0, keyWildcard)
		parseData.setHasWildcard()
		return nil
	}

	segs := strings.Split(addrPart, ".")
	if len(segs) > IPv4SegmentCount {
		return newAddressStringError(addrPart, "ipaddress.error.ipv4.too.many.segments")
	}
	single := len(segs) == 1
	if len(segs) < IPv4SegmentCount && !ipv4Params.AllowsInetAtonJoinedSegments() {
		return newAddressStringError(addrPart, "ipaddress.error.ipv4.too.few.segments")
	}

	parseData.initSegmentData(IPv4SegmentCount)
	if single {
		parseData.setSingleSegment()
	}

	for i, seg := range segs {
		lastSeg := i == len(segs)-1
		if parseErr := parseIPv4Segment(seg, i, lastSeg, len(segs), ipv4Params, rangeParams, parseData); parseErr != nil {
			return parseErr
		}
		parseData.incrementSegmentCount()
	}

	return nil
}

func parseIPv4Segment(seg string, segIndex int, lastSeg bool, segCount int, ipv4Params address_string_param.IPv4AddressStringParams, rangeParams address_string_param.RangeParams, parseData *addressParseData) address_error.AddressStringError {
	if seg == "*" {
		if !rangeParams.AllowsWildcard() {
			return newAddressStringError(seg, "ipaddress.error.no.wildcard")
		}
		parseData.setValue(segIndex, keyLower, 0)
		parseData.setValue(segIndex, keyUpper, IPv4MaxValuePerSegment)
		parseData.setFlag(segIndex, keyWildcard)
		parseData.setHasWildcard()
		parseData.setBitLength(segIndex, IPv4BitsPerSegment)
		return nil
	}

	if idx := strings.IndexByte(seg, '-'); idx > 0 {
		if !rangeParams.AllowsRangeSeparator() {
			return newAddressStringError(seg, "ipaddress.error.no.range")
		}
		lowStr, highStr := seg[:idx], seg[idx+1:]
		digits, radix := segmentRadixAndDigits(lowStr, ipv4Params.AllowsInetAtonHex(), ipv4Params.AllowsInetAtonOctal(), ipv4Params.AllowsBinary())
		low, lowErr := parseSegmentValue(digits, radix)
		if lowErr != nil {
			return lowErr
		}
		highDigits, highRadix := segmentRadixAndDigits(highStr, ipv4Params.AllowsInetAtonHex(), ipv4Params.AllowsInetAtonOctal(), ipv4Params.AllowsBinary())
		high, highErr := parseSegmentValue(highDigits, highRadix)
		if highErr != nil {
			return highErr
		}
		if low > high {
			if !rangeParams.AllowsReverseRange() {
				return newAddressStringError(seg, "ipaddress.error.invalidRange")
			}
			low, high = high, low
		}
		parseData.setValue(segIndex, keyLower, low)
		parseData.setValue(segIndex, keyUpper, high)
		parseData.setRadix(segIndex, uint32(radix))
		parseData.setFlag(segIndex, keyRangeWildcard)
		parseData.setHasWildcard()
		parseData.setBitLength(segIndex, segmentBitLenFor(lastSeg, segCount, IPv4BitsPerSegment, IPv4BitCount))
		return nil
	}

	digits, radix := segmentRadixAndDigits(seg, ipv4Params.AllowsInetAtonHex(), ipv4Params.AllowsInetAtonOctal(), ipv4Params.AllowsBinary())
	val, err := parseSegmentValue(digits, radix)
	if err != nil {
		return err
	}
	parseData.setValue(segIndex, keyLower, val)
	parseData.setValue(segIndex, keyUpper, val)
	parseData.setRadix(segIndex, uint32(radix))
	parseData.setBitLength(segIndex, segmentBitLenFor(lastSeg, segCount, IPv4BitsPerSegment, IPv4BitCount))
	return nil
}

// segmentBitLenFor returns the number of address bits the final inet_aton-joined segment of
// a short-form IPv4 string covers (it absorbs the bits of all the segments it stands in for).
func segmentBitLenFor(lastSeg bool, segCount int, perSegment, total int) BitCount {
	if lastSeg {
		return BitCount(total - (segCount-1)*perSegment)
	}
	return BitCount(perSegment)
}

// parseIPv6Segments parses the colon-separated body of an IPv6 address string into parseData,
// tracking the "::" compression point and each segment's value, radix, and range.
func parseIPv6Segments(addrPart string, ipv6Params address_string_param.IPv6AddressStringParams, data *ipAddressParseData) address_error.AddressStringError {
	parseData := &data.addressParseData
	rangeParams := ipv6Params.GetRangeParams()

	if addrPart == "*" {
		parseData.initSegmentData(1)
		parseData.setSingleSegment()
		parseData.incrementSegmentCount()
		if !rangeParams.AllowsWildcard() {
			return newAddressStringError(addrPart, "ipaddress.error.no.wildcard")
		}
		parseData.setValue(0, keyLower, 0)
		parseData.setValue(0, keyUpper, 0xffffffffffffffff)
		parseData.setFlag(0, keyWildcard)
		parseData.setHasWildcard()
		return nil
	}

	if base85Value, isBase85, base85Err := tryParseBase85(addrPart, ipv6Params); base85Err != nil {
		return base85Err
	} else if isBase85 {
		lower64 := new(big.Int).And(base85Value, maxUint64Big).Uint64()
		upper64 := new(big.Int).Rsh(base85Value, 64).Uint64()
		parseData.initSegmentData(1)
		parseData.setSingleSegment()
		parseData.incrementSegmentCount()
		parseData.setValue(0, keyLower, lower64)
		parseData.setValue(0, keyExtendedLower, upper64)
		parseData.setValue(0, keyUpper, lower64)
		parseData.setValue(0, keyExtendedUpper, upper64)
		data.setBase85(true)
		return nil
	}

	if dotIdx := strings.IndexByte(addrPart, '.'); dotIdx >= 0 {
		return parseMixedIPv6(addrPart, ipv6Params, data)
	}

	compressedIndex := strings.Index(addrPart, "::")
	var before, after string
	hasCompression := compressedIndex >= 0
	if hasCompression {
		before = addrPart[:compressedIndex]
		after = addrPart[compressedIndex+2:]
	} else {
		before = addrPart
	}

	var beforeSegs, afterSegs []string
	if len(before) > 0 {
		beforeSegs = strings.Split(before, ":")
	}
	if len(after) > 0 {
		afterSegs = strings.Split(after, ":")
	}

	total := len(beforeSegs) + len(afterSegs)
	if !hasCompression && total != IPv6SegmentCount {
		return newAddressStringError(addrPart, "ipaddress.error.ipv6.invalid.segment.count")
	}
	if hasCompression && total >= IPv6SegmentCount {
		return newAddressStringError(addrPart, "ipaddress.error.ipv6.invalid.segment.count")
	}

	parseData.initSegmentData(IPv6SegmentCount)

	segIndex := 0
	for _, seg := range beforeSegs {
		if parseErr := parseIPv6Segment(seg, segIndex, ipv6Params, rangeParams, parseData); parseErr != nil {
			return parseErr
		}
		parseData.incrementSegmentCount()
		segIndex++
	}

	if hasCompression {
		data.setConsecutiveSeparatorIndex(compressedIndex)
		data.setConsecutiveSeparatorSegmentIndex(segIndex)
		segIndex = IPv6SegmentCount - len(afterSegs)
	}

	for _, seg := range afterSegs {
		if parseErr := parseIPv6Segment(seg, segIndex, ipv6Params, rangeParams, parseData); parseErr != nil {
			return parseErr
		}
		parseData.incrementSegmentCount()
		segIndex++
	}

	return nil
}

// validateMACAddressStr is the entry point for parsing the body of a MACAddressString: it
// recognizes the empty and "*" special forms, otherwise determines the delimiter in use
// (colon, dash, dot, space, or none) and parses the resulting segments.
func (strValidator) validateMACAddressStr(fromString *MACAddressString, params address_string_param.MACAddressStringParams) (macAddressProvider, address_error.AddressStringError) {
	str := fromString.str

	if len(str) == 0 {
		if !params.AllowsEmpty() {
			return nil, newAddressStringError(str, "ipaddress.error.empty.address")
		}
		return newEmptyMACAddressProvider(params), nil
	}

	if str == "*" {
		if !params.AllowsAll() {
			return nil, newAddressStringError(str, "ipaddress.error.all.not.allowed")
		}
		return newAllMACAddressProvider(params), nil
	}

	parsed := newParsedMACAddress(str, params)
	if err := parseMACSegments(str, params, &parsed.macAddressParseData); err != nil {
		return nil, err
	}

	return newParsedMACAddressProvider(parsed), nil
}

func parseMACSegments(str string, params address_string_param.MACAddressStringParams, data *macAddressParseData) address_error.AddressStringError {
	rangeParams := params.GetFormatParams().GetRangeParams()

	var delim byte
	var found bool
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ':':
			if params.AllowsColonDelimited() {
				delim, found = ':', true
			}
		case '-':
			if params.AllowsDashed() || params.AllowsSingleDashed() {
				delim, found = '-', true
			}
		case '.':
			if params.AllowsDotted() {
				delim, found = '.', true
			}
		case ' ':
			if params.AllowsSpaceDelimited() {
				delim, found = ' ', true
			}
		}
		if found {
			break
		}
	}

	if !found {
		if !params.AllowsSingleSegment() {
			return newAddressStringError(str, "ipaddress.error.mac.invalid")
		}
		data.setSingleSegment()
		data.initSegmentData(1)
		totalBits := BitCount(MACBitsPerSegment * MediaAccessControlSegmentCount)
		if len(str) > macSingleSegmentDigitCount {
			totalBits = MACBitsPerSegment * ExtendedUniqueIdentifier64SegmentCount
		}
		data.setFormat(unknownFormat)
		if parseErr := parseMACSegment(str, 0, totalBits, rangeParams, &data.addressParseData); parseErr != nil {
			return parseErr
		}
		data.incrementSegmentCount()
		return nil
	}

	segs := strings.Split(str, string(delim))
	segCount := len(segs)

	switch delim {
	case ':', ' ':
		data.setFormat(colonDelimited)
		if delim == ' ' {
			data.setFormat(spaceDelimited)
		}
	case '.':
		data.setFormat(dotted)
	case '-':
		data.setFormat(dashed)
		if segCount == 2 && !params.AllowsSingleDashed() {
			return newAddressStringError(str, "ipaddress.error.mac.invalid")
		}
		if segCount != 2 && !params.AllowsDashed() {
			return newAddressStringError(str, "ipaddress.error.mac.invalid")
		}
	}

	var totalBits BitCount
	switch segCount {
	case 2:
		data.setDoubleSegment(true)
		totalBits = MACBitsPerSegment * MediaAccessControlSegmentCount
	case 3:
		if delim != '.' {
			return newAddressStringError(str, "ipaddress.error.mac.invalid.segment.count")
		}
		totalBits = MACBitsPerSegment * MediaAccessControlSegmentCount
	case 4:
		totalBits = MACBitsPerSegment * MediaAccessControlSegmentCount
		if delim == '.' {
			data.setExtended(true)
			totalBits = MACBitsPerSegment * ExtendedUniqueIdentifier64SegmentCount
		}
	case 6:
		totalBits = MACBitsPerSegment * MediaAccessControlSegmentCount
	case 8:
		data.setExtended(true)
		totalBits = MACBitsPerSegment * ExtendedUniqueIdentifier64SegmentCount
	default:
		return newAddressStringError(str, "ipaddress.error.mac.invalid.segment.count")
	}

	data.initSegmentData(segCount)
	bitsPerSeg := totalBits / BitCount(segCount)
	for i, seg := range segs {
		segBits := bitsPerSeg
		if i == segCount-1 {
			segBits = totalBits - bitsPerSeg*BitCount(segCount-1)
		}
		if parseErr := parseMACSegment(seg, i, segBits, rangeParams, &data.addressParseData); parseErr != nil {
			return parseErr
		}
		data.incrementSegmentCount()
	}

	return nil
}

func parseMACSegment(seg string, segIndex int, bitLength BitCount, rangeParams address_string_param.RangeParams, parseData *addressParseData) address_error.AddressStringError {
	if seg == "*" {
		if !rangeParams.AllowsWildcard() {
			return newAddressStringError(seg, "ipaddress.error.no.wildcard")
		}
		maxVal := uint64(1)<<uint(bitLength) - 1
		parseData.setValue(segIndex, keyLower, 0)
		parseData.setValue(segIndex, keyUpper, maxVal)
		parseData.setFlag(segIndex, keyWildcard)
		parseData.setHasWildcard()
		parseData.setBitLength(segIndex, bitLength)
		return nil
	}

	if idx := strings.IndexByte(seg, '-'); idx > 0 {
		if !rangeParams.AllowsRangeSeparator() {
			return newAddressStringError(seg, "ipaddress.error.no.range")
		}
		low, lowErr := parseSegmentValue(seg[:idx], 16)
		if lowErr != nil {
			return lowErr
		}
		high, highErr := parseSegmentValue(seg[idx+1:], 16)
		if highErr != nil {
			return highErr
		}
		if low > high {
			if !rangeParams.AllowsReverseRange() {
				return newAddressStringError(seg, "ipaddress.error.invalidRange")
			}
			low, high = high, low
		}
		parseData.setValue(segIndex, keyLower, low)
		parseData.setValue(segIndex, keyUpper, high)
		parseData.setFlag(segIndex, keyRangeWildcard)
		parseData.setHasWildcard()
		parseData.setBitLength(segIndex, bitLength)
		return nil
	}

	val, err := parseSegmentValue(seg, 16)
	if err != nil {
		return err
	}
	parseData.setValue(segIndex, keyLower, val)
	parseData.setValue(segIndex, keyUpper, val)
	parseData.setBitLength(segIndex, bitLength)
	return nil
}

// validateHostName is the entry point for parsing a HostName: it strips a bracketed IPv6
// literal or attempts a direct IP address parse first, then falls back to validating the
// string as a sequence of DNS labels, recording any trailing port, service, prefix, or zone.
func (strValidator) validateHostName(fromHost *HostName, params address_string_param.HostNameParams) (*parsedHost, address_error.HostNameError) {
	str := strings.TrimSpace(fromHost.str)

	if len(str) == 0 {
		if !params.AllowsEmpty() {
			return nil, newHostNameError(str, "ipaddress.host.error.empty")
		}
		return &parsedHost{host: str}, nil
	}

	if strings.HasPrefix(str, "[") {
		return validateBracketedHost(str, params)
	}

	if params.AllowsIPAddress() {
		if provider, matched, addrErr := tryParseUNCIPv6Literal(str, params); matched {
			if addrErr != nil {
				return nil, newHostAddressNestedError(str, "ipaddress.host.error.invalid", 0, addrErr)
			}
			return &parsedHost{
				host: str,
				embeddedAddress: embeddedAddress{
					addressProvider:  provider,
					isUNCIPv6Literal: true,
				},
			}, nil
		}

		if provider, matched, addrErr := tryParseReverseDNS(str, params); matched {
			if addrErr != nil {
				return nil, newHostAddressNestedError(str, "ipaddress.host.error.invalid", 0, addrErr)
			}
			return &parsedHost{
				host: str,
				embeddedAddress: embeddedAddress{
					addressProvider: provider,
					isReverseDNS:    true,
				},
			}, nil
		}

		if provider, addrErr := tryParseHostAsAddress(str, params); addrErr == nil && provider != nil {
			return &parsedHost{
				host: str,
				embeddedAddress: embeddedAddress{
					addressProvider: provider,
				},
			}, nil
		}
	}

	return validateHostNameLabels(str, params)
}

// tryParseUNCIPv6Literal recognizes the Windows UNC IPv6 literal host form, e.g.
// "2001-db8--1.ipv6-literal.net" for "2001:db8::1", or "fe80--1sZoneId.ipv6-literal.net"
// for "fe80::1%ZoneId". Segment separators become '-' and the zone separator becomes
// 's'; both are translated back before the address is parsed normally.
// The matched return reports whether str had the ".ipv6-literal.net" suffix at all, so
// the caller can distinguish "not this form" from "this form, but invalid."
func tryParseUNCIPv6Literal(str string, params address_string_param.HostNameParams) (provider ipAddressProvider, matched bool, err address_error.AddressStringError) {
	if !strings.HasSuffix(strings.ToLower(str), IPv6UncSuffix) {
		return nil, false, nil
	}
	inner := str[:len(str)-len(IPv6UncSuffix)]
	if len(inner) == 0 {
		return nil, true, newAddressStringError(str, "ipaddress.host.error.invalid")
	}

	addrStr := strings.ReplaceAll(inner, IPv6UncSegmentSeparatorStr, IPv6SegmentSeparatorStr)
	if idx := strings.IndexByte(addrStr, IPv6UncZoneSeparator); idx >= 0 {
		addrStr = addrStr[:idx] + IPv6ZoneSeparatorStr + addrStr[idx+1:]
	}

	ipParams := params.GetIPAddressParams()
	ipStr := &IPAddressString{str: addrStr}
	provider, err = validator.validateIPAddressStr(ipStr, ipParams)
	return provider, true, err
}

// tryParseReverseDNS recognizes the reverse-DNS host forms: IPv4's "in-addr.arpa" and
// IPv6's "ip6.arpa" (and the deprecated "ip6.int"). The matched return reports whether
// str had one of these suffixes at all.
func tryParseReverseDNS(str string, params address_string_param.HostNameParams) (provider ipAddressProvider, matched bool, err address_error.AddressStringError) {
	lower := strings.ToLower(str)
	switch {
	case strings.HasSuffix(lower, IPv4ReverseDnsSuffix):
		provider, err = reverseDNSToIPv4(str[:len(str)-len(IPv4ReverseDnsSuffix)], params)
	case strings.HasSuffix(lower, IPv6ReverseDnsSuffix):
		provider, err = reverseDNSToIPv6(str[:len(str)-len(IPv6ReverseDnsSuffix)], params)
	case strings.HasSuffix(lower, IPv6ReverseDnsSuffixDeprecated):
		provider, err = reverseDNSToIPv6(str[:len(str)-len(IPv6ReverseDnsSuffixDeprecated)], params)
	default:
		return nil, false, nil
	}
	return provider, true, err
}

// reverseDNSToIPv4 reconstructs the address named by the label portion of an
// "in-addr.arpa" host, reversing the per-octet label order, e.g. "1.0.168.192" becomes
// "192.168.0.1". A "*" label is carried through as a full-octet wildcard.
func reverseDNSToIPv4(inner string, params address_string_param.HostNameParams) (ipAddressProvider, address_error.AddressStringError) {
	labels := strings.Split(inner, IPv4SegmentSeparatorStr)
	if len(labels) != IPv4SegmentCount {
		return nil, newAddressStringError(inner, "ipaddress.host.error.invalid")
	}
	reversed := make([]string, len(labels))
	for i, label := range labels {
		reversed[len(labels)-1-i] = label
	}
	ipParams := params.GetIPAddressParams()
	ipStr := &IPAddressString{str: strings.Join(reversed, IPv4SegmentSeparatorStr)}
	return validator.validateIPAddressStr(ipStr, ipParams)
}

// reverseDNSToIPv6 reconstructs the address named by the label portion of an
// "ip6.arpa"/"ip6.int" host, reversing the per-nibble label order and regrouping every
// four nibbles with a colon, e.g. 32 single-hex-digit labels become the usual 8
// colon-separated groups. A group whose four nibbles are all "*" is carried through as
// a full-segment wildcard; a "*" elsewhere in a group is left in place, which the
// address parser then naturally rejects as it does not describe a contiguous nibble
// boundary range.
func reverseDNSToIPv6(inner string, params address_string_param.HostNameParams) (ipAddressProvider, address_error.AddressStringError) {
	nibbles := strings.Split(inner, IPv4SegmentSeparatorStr)
	if len(nibbles) != IPv6BitCount/4 {
		return nil, newAddressStringError(inner, "ipaddress.host.error.invalid")
	}

	reversedHex := make([]byte, len(nibbles))
	for i, nibble := range nibbles {
		if len(nibble) != 1 {
			return nil, newAddressStringError(inner, "ipaddress.error.invalid.character")
		}
		reversedHex[len(nibbles)-1-i] = nibble[0]
	}

	groups := make([]string, 0, IPv6SegmentCount)
	for i := 0; i < len(reversedHex); i += 4 {
		chunk := string(reversedHex[i : i+4])
		if chunk == "****" {
			chunk = "*"
		}
		groups = append(groups, chunk)
	}

	ipParams := params.GetIPAddressParams()
	ipStr := &IPAddressString{str: strings.Join(groups, IPv6SegmentSeparatorStr)}
	return validator.validateIPAddressStr(ipStr, ipParams)
}

// validateBracketedHost handles the "[...]" form used for a bracketed IPv6 literal,
// optionally followed by a port, such as "[::1]:80".
func validateBracketedHost(str string, params address_string_param.HostNameParams) (*parsedHost, address_error.HostNameError) {
	if !params.AllowsBracketedIPv6() {
		return nil, newHostNameError(str, "ipaddress.host.error.bracketed.not.allowed")
	}
	closeIdx := strings.IndexByte(str, ']')
	if closeIdx < 0 {
		return nil, newHostNameError(str, "ipaddress.host.error.bracket.not.terminated")
	}
	inner := str[1:closeIdx]
	trailing := str[closeIdx+1:]

	ipParams := params.GetIPAddressParams()
	ipStr := &IPAddressString{str: inner}
	provider, addrErr := validator.validateIPAddressStr(ipStr, ipParams)
	if addrErr != nil {
		return nil, newHostAddressNestedError(str, "ipaddress.host.error.invalid", closeIdx, addrErr)
	}

	host := &parsedHost{
		host: str,
		embeddedAddress: embeddedAddress{
			addressProvider: provider,
		},
	}

	if len(trailing) > 0 {
		if trailing[0] != ':' || !params.AllowsPort() {
			return nil, newHostNameError(str, "ipaddress.host.error.invalid")
		}
		port, portErr := parsePort(trailing[1:])
		if portErr != nil {
			return nil, newHostNameError(str, "ipaddress.host.error.invalidPort")
		}
		host.labelsQualifier.port = port
	}

	return host, nil
}

// tryParseHostAsAddress attempts to parse str directly as an IP address string (with
// its own optional prefix, mask, or zone), used before falling back to DNS label rules.
func tryParseHostAsAddress(str string, params address_string_param.HostNameParams) (ipAddressProvider, address_error.AddressStringError) {
	ipParams := params.GetIPAddressParams()
	ipStr := &IPAddressString{str: str}
	return validator.validateIPAddressStr(ipStr, ipParams)
}

// validateHostNameLabels validates str as a sequence of DNS labels, separated by '.',
// optionally followed by a port or service name, recording the normalized (lowercased,
// if requested) labels that make up the host.
func validateHostNameLabels(str string, params address_string_param.HostNameParams) (*parsedHost, address_error.HostNameError) {
	hostPart := str
	var port Port
	var service string

	if idx := strings.LastIndexByte(str, ':'); idx >= 0 {
		trailing := str[idx+1:]
		if params.AllowsPort() {
			if p, err := parsePort(trailing); err == nil {
				port = p
				hostPart = str[:idx]
			}
		}
		if port == nil && params.AllowsService() && len(trailing) > 0 && isServiceName(trailing) {
			service = trailing
			hostPart = str[:idx]
		}
	}

	// a single trailing '.' denotes the DNS root and is dropped before the length and
	// label checks, allowing a root-terminated FQDN one character longer than usual
	// (e.g. "example.com." for a 253-character name).
	rootTerminated := strings.HasSuffix(hostPart, ".")
	trimmedHostPart := hostPart
	maxLen := maxHostLength
	if rootTerminated {
		trimmedHostPart = hostPart[:len(hostPart)-1]
		maxLen = maxHostLength + 1
	}

	if len(trimmedHostPart) == 0 || len(hostPart) > maxLen {
		return nil, newHostNameError(str, "ipaddress.host.error.invalid.length")
	}

	labels := strings.Split(trimmedHostPart, ".")
	if len(labels) > maxHostSegments {
		return nil, newHostNameError(str, "ipaddress.host.error.too.many.segments")
	}

	var labelErrs []address_error.HostNameError
	normalized := make([]string, len(labels))
	for i, label := range labels {
		if len(label) == 0 || len(label) > maxLabelLength {
			labelErrs = append(labelErrs, newHostNameError(str, "ipaddress.host.error.segment.too.short"))
			continue
		}
		if !isValidLabel(label) {
			labelErrs = append(labelErrs, newHostNameError(str, "ipaddress.host.error.invalid.character.at.index"))
			continue
		}
		if params.NormalizesToLowercase() {
			normalized[i] = strings.ToLower(label)
		} else {
			normalized[i] = label
		}
	}
	if len(labelErrs) > 0 {
		return nil, mergeHostNameErrs(labelErrs...)
	}

	host := &parsedHost{
		host:             trimmedHostPart,
		normalizedLabels: normalized,
	}
	host.labelsQualifier.port = port
	host.labelsQualifier.service = service

	return host, nil
}

func parsePort(str string) (Port, address_error.AddressStringError) {
	if len(str) == 0 {
		return nil, newAddressStringError(str, "ipaddress.error.invalidPort")
	}
	val, err := strconv.Atoi(str)
	if err != nil || val < 0 || val > 0xffff {
		return nil, newAddressStringError(str, "ipaddress.error.invalidPort")
	}
	return cachePort(PortInt(val)), nil
}

func isServiceName(str string) bool {
	for _, c := range str {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-') {
			return false
		}
	}
	return true
}

func isValidLabel(label string) bool {
	for i := 0; i < len(label); i++ {
		c := label[i]
		isAlphaNum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !isAlphaNum && c != '-' && c != '_' {
			return false
		}
	}
	return label[0] != '-' && label[len(label)-1] != '-'
}

func parseIPv6Segment(seg string, segIndex int, ipv6Params address_string_param.IPv6AddressStringParams, rangeParams address_string_param.RangeParams, parseData *addressParseData) address_error.AddressStringError {
	if seg == "*" {
		if !rangeParams.AllowsWildcard() {
			return newAddressStringError(seg, "ipaddress.error.no.wildcard")
		}
		parseData.setValue(segIndex, keyLower, 0)
		parseData.setValue(segIndex, keyUpper, IPv6MaxValuePerSegment)
		parseData.setFlag(segIndex, keyWildcard)
		parseData.setHasWildcard()
		parseData.setBitLength(segIndex, IPv6BitsPerSegment)
		return nil
	}

	if idx := strings.IndexByte(seg, '-'); idx > 0 {
		if !rangeParams.AllowsRangeSeparator() {
			return newAddressStringError(seg, "ipaddress.error.no.range")
		}
		low, lowErr := parseSegmentValue(seg[:idx], 16)
		if lowErr != nil {
			return lowErr
		}
		high, highErr := parseSegmentValue(seg[idx+1:], 16)
		if highErr != nil {
			return highErr
		}
		if low > high {
			if !rangeParams.AllowsReverseRange() {
				return newAddressStringError(seg, "ipaddress.error.invalidRange")
			}
			low, high = high, low
		}
		parseData.setValue(segIndex, keyLower, low)
		parseData.setValue(segIndex, keyUpper, high)
		parseData.setFlag(segIndex, keyRangeWildcard)
		parseData.setHasWildcard()
		parseData.setBitLength(segIndex, IPv6BitsPerSegment)
		return nil
	}

	val, err := parseSegmentValue(seg, 16)
	if err != nil {
		return err
	}
	parseData.setValue(segIndex, keyLower, val)
	parseData.setValue(segIndex, keyUpper, val)
	parseData.setBitLength(segIndex, IPv6BitsPerSegment)
	return nil
}
