package goip

import (
	"github.com/arlorn/netaddr/address_string_param"
)

// parsedIPAddress is what the mega-parser fills in while it reads an IP address string: the
// per-segment indexes and flags of ipAddressParseData, the qualifier (prefix/mask/zone/port),
// and the options the caller parsed under. It is the parser's output, not a constructed address;
// assembling a concrete *IPAddress from it is left to the external collaborator noted in DESIGN.md.
type parsedIPAddress struct {
	ipAddressParseData

	options address_string_param.IPAddressStringParams
	str     string

	// not set anywhere in this package, so it is always false; embedded parses (the IPv4 tail
	// of a mixed IPv6 address, the address parsed out of a mask qualifier) leave it unset too.
	skipCntains bool
}

func (parsedAddr *parsedIPAddress) getQualifier() *parsedHostIdentifierStringQualifier {
	return parsedAddr.ipAddressParseData.getQualifier()
}

// getValForMask reports the address value this parse resolved to when used as a mask
// (e.g. the "255.255.255.0" parsed out of a "/255.255.255.0" qualifier). Building the
// concrete *IPAddress value is the same external collaborator noted for getAddress()
// on parsedAddressProvider; until that layer exists this reports no resolved value.
func (parsedAddr *parsedIPAddress) getValForMask() *IPAddress {
	return nil
}

func newParsedIPAddress(str string, options address_string_param.IPAddressStringParams) *parsedIPAddress {
	parsedAddr := &parsedIPAddress{options: options, str: str}
	parsedAddr.ipAddressParseData.init(str)
	return parsedAddr
}
