package goip

import "github.com/arlorn/netaddr/address_string_param"

type parsedHostIdentifierStringQualifier struct {
	// if there is a port for the host, this will be its numeric value
	port    Port   // non-nil for a host with port
	service string // non-empty for host with a service instead of a port
	// if there is a prefix length for the address, this will be its numeric value
	networkPrefixLength PrefixLen //non-nil for a prefix-only address, sometimes non-nil for IPv4, IPv6
	// If instead of a prefix length a mask was provided, this is the mask.
	// We can also have both a prefix length and mask if one is added when merging qualifiers  */'
	mask *parsedIPAddress
	// overrides the parsed mask if present
	mergedMask *IPAddress
	// this is the IPv6 scope id or network interface name
	zone    Zone
	isZoned bool
}

func (parsedQual *parsedHostIdentifierStringQualifier) clearPortOrService() {
	parsedQual.port = nil
	parsedQual.service = ""
}

func (parsedQual *parsedHostIdentifierStringQualifier) clearPrefixOrMask() {
	parsedQual.networkPrefixLength = nil
	parsedQual.mask = nil
}

func (parsedQual *parsedHostIdentifierStringQualifier) getNetworkPrefixLen() PrefixLen {
	return parsedQual.networkPrefixLength
}

// setZone distinguishes callers with empty zones vs callers in which there was no zone indicator
func (parsedQual *parsedHostIdentifierStringQualifier) setZone(zone *Zone) {
	if zone != nil {
		parsedQual.zone = *zone
		parsedQual.isZoned = true
	}
}

func (parsedQual *parsedHostIdentifierStringQualifier) getZone() Zone {
	return parsedQual.zone
}

func (parsedQual *parsedHostIdentifierStringQualifier) getPort() Port {
	return parsedQual.port
}

func (parsedQual *parsedHostIdentifierStringQualifier) getService() string {
	return parsedQual.service
}

func (parsedQual *parsedHostIdentifierStringQualifier) inferVersion(validationOptions address_string_param.IPAddressStringParams) IPVersion {
	if parsedQual.networkPrefixLength != nil {
		if parsedQual.networkPrefixLength.bitCount() > IPv4BitCount &&
			!validationOptions.GetIPv4Params().AllowsPrefixesBeyondAddressSize() {
			return IPv6
		}
	} else if mask := parsedQual.mask; mask != nil {
		if mask.isProvidingIPv6() {
			return IPv6
		} else if mask.isProvidingIPv4() {
			return IPv4
		}
	}

	if parsedQual.isZoned {
		return IPv6
	}

	return IndeterminateIPVersion
}

func (parsedQual *parsedHostIdentifierStringQualifier) getMaskLower() *IPAddress {
	if mask := parsedQual.mergedMask; mask != nil {
		return mask
	}

	if mask := parsedQual.mask; mask != nil {
		return mask.getValForMask()
	}

	return nil
}

func (parsedQual *parsedHostIdentifierStringQualifier) getEquivalentPrefixLen() PrefixLen {
	pref := parsedQual.getNetworkPrefixLen()
	if pref == nil {
		if mask := parsedQual.mask; mask != nil {
			pref = prefixLenFromMask(mask)
		}
	}
	return pref
}

// prefixLenFromMask derives the CIDR prefix length equivalent to a parsed mask address,
// such as the 16 implied by "255.255.0.0", directly from the segment values the parser
// already recorded. It returns nil when the mask bits are not a contiguous run of leading
// ones (i.e. the string is not usable as a network mask).
func prefixLenFromMask(mask *parsedIPAddress) PrefixLen {
	data := &mask.ipAddressParseData.addressParseData
	segCount := data.getSegmentCount()
	if segCount == 0 {
		return nil
	}

	var totalBits BitCount
	inTrailingZeros := false
	for i := 0; i < segCount; i++ {
		segBits := data.getBitLength(i)
		val := data.getValue(i, keyLower)

		if inTrailingZeros {
			if val != 0 {
				return nil
			}
			continue
		}

		ones, ok := leadingMaskOnes(val, segBits)
		if !ok {
			return nil
		}

		totalBits += ones
		if ones < segBits {
			inTrailingZeros = true
		}
	}

	return newPrefixLen(totalBits)
}

// leadingMaskOnes reports how many of the top bits of val (within a segBits-wide segment)
// are set, and whether the remaining low bits are all zero, i.e. whether val looks like
// "111...1000...0" rather than some other bit pattern a network mask segment can't have.
func leadingMaskOnes(val uint64, segBits BitCount) (BitCount, bool) {
	maxVal := uint64(1)<<uint(segBits) - 1
	for ones := BitCount(0); ones <= segBits; ones++ {
		var expect uint64
		if ones > 0 {
			expect = maxVal &^ (uint64(1)<<uint(segBits-ones) - 1)
		}
		if val == expect {
			return ones, true
		}
	}
	return 0, false
}
