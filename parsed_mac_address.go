package goip

import "github.com/arlorn/netaddr/address_string_param"

// parsedMACAddress is what the mega-parser fills in while it reads a MAC address string:
// the per-segment indexes and flags of macAddressParseData plus the options parsed under.
// Like parsedIPAddress, it is the parser's output, not a constructed address.
type parsedMACAddress struct {
	macAddressParseData

	params address_string_param.MACAddressStringParams
	str    string
}

func newParsedMACAddress(str string, params address_string_param.MACAddressStringParams) *parsedMACAddress {
	parsedAddr := &parsedMACAddress{params: params, str: str}
	parsedAddr.macAddressParseData.init(str)
	return parsedAddr
}
