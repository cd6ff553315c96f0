package goip

import "github.com/arlorn/netaddr/address_error"

// SegmentValueRange is the inclusive lower and upper numeric bounds a single parsed
// address segment can take, e.g. the "1-100" in "1-100.0-255.*.*" yields Lower 1,
// Upper 100, and a plain "192" yields Lower 192, Upper 192.
type SegmentValueRange struct {
	Lower uint64
	Upper uint64
}

// GetSegmentValueRanges returns the per-segment value bounds recorded while parsing
// this address string, one entry per segment in address order. It returns an error if
// the string does not validate, and a nil slice for providers with no underlying parsed
// segments (the empty string, the all-addresses wildcard, or an address supplied
// directly rather than parsed from text).
func (addrStr *IPAddressString) GetSegmentValueRanges() ([]SegmentValueRange, address_error.AddressStringError) {
	provider, err := addrStr.getAddressProvider()
	if err != nil {
		return nil, err
	}
	parsed, ok := provider.(*parsedAddressProvider)
	if !ok {
		return nil, nil
	}
	return segmentValueRanges(&parsed.parsedAddress.ipAddressParseData.addressParseData), nil
}

// GetSegmentValueRanges returns the per-segment value bounds recorded while parsing
// this MAC address string, one entry per segment in address order.
func (addrStr *MACAddressString) GetSegmentValueRanges() ([]SegmentValueRange, address_error.AddressStringError) {
	provider, err := addrStr.getAddressProvider()
	if err != nil {
		return nil, err
	}
	parsed, ok := provider.(*parsedMACAddressProvider)
	if !ok {
		return nil, nil
	}
	return segmentValueRanges(&parsed.parsedAddress.macAddressParseData.addressParseData), nil
}

func segmentValueRanges(data *addressParseData) []SegmentValueRange {
	count := data.getSegmentCount()
	if count == 0 {
		return nil
	}
	ranges := make([]SegmentValueRange, count)
	for i := 0; i < count; i++ {
		ranges[i] = SegmentValueRange{
			Lower: data.getValue(i, keyLower),
			Upper: data.getValue(i, keyUpper),
		}
	}
	return ranges
}
