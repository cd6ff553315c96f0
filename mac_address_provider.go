package goip

import (
	"github.com/arlorn/netaddr/address_error"
	"github.com/arlorn/netaddr/address_string_param"
)

type macAddressProvider interface {
	getAddress() (*MACAddress, address_error.IncompatibleAddressError)
	getParameters() address_string_param.MACAddressStringParams // parameters of the address created by parsing
}

// nullMACAddressProviderBase answers "no address" for the empty and all-addresses providers.
type nullMACAddressProviderBase struct {
	params address_string_param.MACAddressStringParams
}

func (p *nullMACAddressProviderBase) getParameters() address_string_param.MACAddressStringParams {
	return p.params
}

func (p *nullMACAddressProviderBase) getAddress() (*MACAddress, address_error.IncompatibleAddressError) {
	return nil, nil
}

// emptyMACAddressProvider represents a zero-length MAC address string.
type emptyMACAddressProvider struct {
	nullMACAddressProviderBase
}

var _ macAddressProvider = &emptyMACAddressProvider{}

func newEmptyMACAddressProvider(params address_string_param.MACAddressStringParams) *emptyMACAddressProvider {
	return &emptyMACAddressProvider{nullMACAddressProviderBase{params: params}}
}

// allMACAddressProvider represents the "*" wildcard MAC address string, matching every address;
// it has no single corresponding MACAddress.
type allMACAddressProvider struct {
	nullMACAddressProviderBase
}

var _ macAddressProvider = &allMACAddressProvider{}

func newAllMACAddressProvider(params address_string_param.MACAddressStringParams) *allMACAddressProvider {
	return &allMACAddressProvider{nullMACAddressProviderBase{params: params}}
}

// parsedMACAddressProvider is the ordinary case: a concrete address or subnet described by a
// fully parsed macAddressParseData. Constructing the resulting *MACAddress value graph is an
// external collaborator per this module's scope (see DESIGN.md).
type parsedMACAddressProvider struct {
	parsedAddress *parsedMACAddress
}

var _ macAddressProvider = &parsedMACAddressProvider{}

func (p *parsedMACAddressProvider) getParameters() address_string_param.MACAddressStringParams {
	return p.parsedAddress.params
}

func (p *parsedMACAddressProvider) getAddress() (*MACAddress, address_error.IncompatibleAddressError) {
	return nil, &incompatibleAddressError{addressError{
		str: p.parsedAddress.str,
		key: "ipaddress.error.address.not.constructed",
	}}
}

func newParsedMACAddressProvider(parsed *parsedMACAddress) *parsedMACAddressProvider {
	return &parsedMACAddressProvider{parsed}
}

// wrappedMACAddressProvider wraps a *MACAddress constructed by some other means,
// used when a MACAddressString is derived from an address value rather than parsed text.
type wrappedMACAddressProvider struct {
	address *MACAddress
}

var _ macAddressProvider = wrappedMACAddressProvider{}

func (p wrappedMACAddressProvider) getParameters() address_string_param.MACAddressStringParams {
	return nil
}

func (p wrappedMACAddressProvider) getAddress() (*MACAddress, address_error.IncompatibleAddressError) {
	return p.address, nil
}
