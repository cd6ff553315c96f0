package goip

import (
	"github.com/arlorn/netaddr/address_error"
	"github.com/arlorn/netaddr/address_string_param"
)

// All IP address strings corresponds to exactly one of these types.
// In cases where there is no corresponding default IPAddress value
// (invalidType, allType, and possibly emptyType), these types can be used for comparison.
// emptyType means a zero-length string (useful for validation, we can set validation to allow empty strings)
// that has no corresponding IPAddress value (validation options allow you to map empty to the loopback)
// invalidType means it is known that it is not any of the other allowed types (validation options can restrict the allowed types)
// allType means it is wildcard(s) with no separators, like "*",
// which represents all addresses, whether IPv4, IPv6 or other,
// and thus has no corresponding IPAddress value
// These constants are ordered by address space size, from smallest to largest, and the ordering affects comparisons
type ipType int

const (
	invalidType ipType = iota
	emptyType
	ipv4AddrType
	ipv6AddrType
	allType
)

func fromVersion(version IPVersion) ipType {
	if version.IsIPv4() {
		return ipv4AddrType
	} else if version.IsIPv6() {
		return ipv6AddrType
	}
	return invalidType
}

// ipAddressProvider is the variant-selecting counterpart of the Java IPAddressString
// class hierarchy: one implementation per provider kind (empty, loopback, all-addresses,
// mask-only, concrete parsed address, or an address already constructed elsewhere),
// dispatched on the kind rather than through subclassing.
type ipAddressProvider interface {
	getType() ipType

	// getParameters returns the validation options used to produce this provider.
	getParameters() address_string_param.IPAddressStringParams

	// getProviderNetworkPrefixLen returns the prefix length associated with the string, if any.
	getProviderNetworkPrefixLen() PrefixLen

	// getProviderMask returns the mask that followed the address in the string, if any.
	getProviderMask() *IPAddress

	// getProviderIPVersion returns the IP version of the provided address, or IndeterminateIPVersion.
	getProviderIPVersion() IPVersion

	isProvidingEmpty() bool
	isProvidingAllAddresses() bool
	isProvidingIPv4() bool
	isProvidingIPv6() bool
	isProvidingMixedIPv6() bool
	isProvidingBase85IPv6() bool

	// getAddress returns the address this provider holds. Only a wrapped provider holds an assembled
	// address; the empty and "all" providers return nil, the mask provider returns its qualifier's mask,
	// and the loopback and parsed providers return nil with an "ipaddress.error.address.not.constructed" error.
	getAddress() (*IPAddress, address_error.IncompatibleAddressError)
}

// nullAddressProviderBase supplies the common "nothing is provided" answers shared by
// the empty and all-addresses providers, matching how the teacher's other option types
// layer a base struct with the common fall-through answers under the more specific ones.
type nullAddressProviderBase struct {
	params address_string_param.IPAddressStringParams
}

func (p *nullAddressProviderBase) getParameters() address_string_param.IPAddressStringParams {
	return p.params
}

func (p *nullAddressProviderBase) getProviderNetworkPrefixLen() PrefixLen { return nil }
func (p *nullAddressProviderBase) getProviderMask() *IPAddress            { return nil }
func (p *nullAddressProviderBase) getProviderIPVersion() IPVersion        { return IndeterminateIPVersion }
func (p *nullAddressProviderBase) isProvidingEmpty() bool                 { return false }
func (p *nullAddressProviderBase) isProvidingAllAddresses() bool          { return false }
func (p *nullAddressProviderBase) isProvidingIPv4() bool                  { return false }
func (p *nullAddressProviderBase) isProvidingIPv6() bool                  { return false }
func (p *nullAddressProviderBase) isProvidingMixedIPv6() bool             { return false }
func (p *nullAddressProviderBase) isProvidingBase85IPv6() bool            { return false }

// emptyAddressProvider represents a zero-length address string that is not mapped to the loopback.
type emptyAddressProvider struct {
	nullAddressProviderBase
}

var _ ipAddressProvider = &emptyAddressProvider{}

func (p *emptyAddressProvider) getType() ipType        { return emptyType }
func (p *emptyAddressProvider) isProvidingEmpty() bool { return true }
func (p *emptyAddressProvider) getAddress() (*IPAddress, address_error.IncompatibleAddressError) {
	return nil, nil
}

func newEmptyAddressProvider(params address_string_param.IPAddressStringParams) *emptyAddressProvider {
	return &emptyAddressProvider{nullAddressProviderBase{params: params}}
}

// loopbackAddressProvider represents a zero-length address string mapped to the loopback,
// via empty_is_loopback / EmptyStrParsedAs.
type loopbackAddressProvider struct {
	nullAddressProviderBase
	version IPVersion
}

var _ ipAddressProvider = &loopbackAddressProvider{}

func (p *loopbackAddressProvider) getType() ipType                 { return emptyType }
func (p *loopbackAddressProvider) isProvidingEmpty() bool          { return true }
func (p *loopbackAddressProvider) isProvidingIPv4() bool           { return p.version.IsIPv4() }
func (p *loopbackAddressProvider) isProvidingIPv6() bool           { return p.version.IsIPv6() }
func (p *loopbackAddressProvider) getProviderIPVersion() IPVersion { return p.version }

// getAddress does not construct a concrete loopback value: assembling an *IPAddress from a
// resolved provider kind is an external collaborator per this module's scope (see DESIGN.md).
func (p *loopbackAddressProvider) getAddress() (*IPAddress, address_error.IncompatibleAddressError) {
	return nil, &incompatibleAddressError{addressError{key: "ipaddress.error.address.not.constructed"}}
}

func newLoopbackAddressProvider(version IPVersion, params address_string_param.IPAddressStringParams) *loopbackAddressProvider {
	return &loopbackAddressProvider{nullAddressProviderBase{params: params}, version}
}

// allAddressProvider represents the "*" wildcard string, matching every address of every version
// it is allowed to match; it has no single corresponding IPAddress.
type allAddressProvider struct {
	nullAddressProviderBase
	version   IPVersion
	qualifier parsedHostIdentifierStringQualifier
}

var _ ipAddressProvider = &allAddressProvider{}

func (p *allAddressProvider) getType() ipType                 { return allType }
func (p *allAddressProvider) isProvidingAllAddresses() bool    { return true }
func (p *allAddressProvider) getProviderIPVersion() IPVersion  { return p.version }
func (p *allAddressProvider) isProvidingIPv4() bool            { return p.version.IsIPv4() }
func (p *allAddressProvider) isProvidingIPv6() bool            { return p.version.IsIPv6() }

func (p *allAddressProvider) getProviderNetworkPrefixLen() PrefixLen {
	return p.qualifier.getNetworkPrefixLen()
}

func (p *allAddressProvider) getProviderMask() *IPAddress {
	return p.qualifier.getMaskLower()
}

func (p *allAddressProvider) getAddress() (*IPAddress, address_error.IncompatibleAddressError) {
	return nil, nil
}

func newAllAddressProvider(version IPVersion, qualifier parsedHostIdentifierStringQualifier, params address_string_param.IPAddressStringParams) *allAddressProvider {
	return &allAddressProvider{nullAddressProviderBase{params: params}, version, qualifier}
}

// maskAddressProvider represents a bare "/nnn" string with no preceding address: it provides
// only a prefix length/mask, resolved to whichever version the qualifier or caller settles on.
type maskAddressProvider struct {
	nullAddressProviderBase
	qualifier parsedHostIdentifierStringQualifier
	version   IPVersion
}

var _ ipAddressProvider = &maskAddressProvider{}

func (p *maskAddressProvider) getType() ipType                { return fromVersion(p.version) }
func (p *maskAddressProvider) getProviderIPVersion() IPVersion { return p.version }
func (p *maskAddressProvider) isProvidingIPv4() bool           { return p.version.IsIPv4() }
func (p *maskAddressProvider) isProvidingIPv6() bool           { return p.version.IsIPv6() }

func (p *maskAddressProvider) getProviderNetworkPrefixLen() PrefixLen {
	return p.qualifier.getNetworkPrefixLen()
}

func (p *maskAddressProvider) getProviderMask() *IPAddress {
	return p.qualifier.getMaskLower()
}

func (p *maskAddressProvider) getAddress() (*IPAddress, address_error.IncompatibleAddressError) {
	return p.getProviderMask(), nil
}

func newMaskAddressProvider(qualifier parsedHostIdentifierStringQualifier, version IPVersion, params address_string_param.IPAddressStringParams) *maskAddressProvider {
	return &maskAddressProvider{nullAddressProviderBase{params: params}, qualifier, version}
}

// parsedAddressProvider is the ordinary case: a concrete address or subnet described by a
// fully parsed AddressParseData plus its qualifier. Construction of the resulting *IPAddress
// value graph (segment/section assembly and arithmetic) is an external collaborator per this
// module's scope (see DESIGN.md); this provider exposes everything the parse determined about
// the string without performing that assembly itself.
type parsedAddressProvider struct {
	parsedAddress *parsedIPAddress
}

var _ ipAddressProvider = &parsedAddressProvider{}

func (p *parsedAddressProvider) getType() ipType {
	return fromVersion(p.parsedAddress.getProviderIPVersion())
}

func (p *parsedAddressProvider) getParameters() address_string_param.IPAddressStringParams {
	return p.parsedAddress.options
}

func (p *parsedAddressProvider) getProviderNetworkPrefixLen() PrefixLen {
	return p.parsedAddress.getQualifier().getNetworkPrefixLen()
}

func (p *parsedAddressProvider) getProviderMask() *IPAddress {
	return p.parsedAddress.getQualifier().getMaskLower()
}

func (p *parsedAddressProvider) getProviderIPVersion() IPVersion {
	return p.parsedAddress.getProviderIPVersion()
}

func (p *parsedAddressProvider) isProvidingEmpty() bool { return p.parsedAddress.isProvidingEmpty() }
func (p *parsedAddressProvider) isProvidingAllAddresses() bool {
	return p.parsedAddress.isAll()
}
func (p *parsedAddressProvider) isProvidingIPv4() bool { return p.parsedAddress.isProvidingIPv4() }
func (p *parsedAddressProvider) isProvidingIPv6() bool { return p.parsedAddress.isProvidingIPv6() }
func (p *parsedAddressProvider) isProvidingMixedIPv6() bool {
	return p.parsedAddress.isProvidingMixedIPv6()
}
func (p *parsedAddressProvider) isProvidingBase85IPv6() bool {
	return p.parsedAddress.isProvidingBase85IPv6()
}

func (p *parsedAddressProvider) getAddress() (*IPAddress, address_error.IncompatibleAddressError) {
	return nil, &incompatibleAddressError{addressError{
		str: p.parsedAddress.str,
		key: "ipaddress.error.address.not.constructed",
	}}
}

func newParsedAddressProvider(parsed *parsedIPAddress) *parsedAddressProvider {
	return &parsedAddressProvider{parsed}
}

// wrappedIPAddressProvider wraps an *IPAddress constructed by some other means (e.g. a
// caller that already has the address value and only wants a matching IPAddressString),
// mirroring the MAC side's wrappedMACAddressProvider. The version is recorded explicitly
// by the caller rather than re-derived from the address, since inspecting an already-built
// address is the concrete-construction layer this module treats as an external collaborator.
type wrappedIPAddressProvider struct {
	address *IPAddress
	version IPVersion
}

var _ ipAddressProvider = wrappedIPAddressProvider{}

func (p wrappedIPAddressProvider) getType() ipType {
	return fromVersion(p.version)
}

func (p wrappedIPAddressProvider) getParameters() address_string_param.IPAddressStringParams {
	return nil
}
func (p wrappedIPAddressProvider) getProviderNetworkPrefixLen() PrefixLen { return nil }
func (p wrappedIPAddressProvider) getProviderMask() *IPAddress           { return nil }
func (p wrappedIPAddressProvider) getProviderIPVersion() IPVersion       { return p.version }
func (p wrappedIPAddressProvider) isProvidingEmpty() bool                { return false }
func (p wrappedIPAddressProvider) isProvidingAllAddresses() bool         { return false }
func (p wrappedIPAddressProvider) isProvidingIPv4() bool                 { return p.version.IsIPv4() }
func (p wrappedIPAddressProvider) isProvidingIPv6() bool                 { return p.version.IsIPv6() }
func (p wrappedIPAddressProvider) isProvidingMixedIPv6() bool            { return false }
func (p wrappedIPAddressProvider) isProvidingBase85IPv6() bool           { return false }
func (p wrappedIPAddressProvider) getAddress() (*IPAddress, address_error.IncompatibleAddressError) {
	return p.address, nil
}

func newWrappedIPAddressProvider(addr *IPAddress, version IPVersion) wrappedIPAddressProvider {
	return wrappedIPAddressProvider{address: addr, version: version}
}
