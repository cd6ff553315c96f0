package goip

// ipAddressInternal is the private state shared by IPAddress and its version-specific
// views (IPv4Address, IPv6Address). Construction of a concrete address value graph
// (segments, sections, byte/value accessors) is out of scope here; see DESIGN.md.
type ipAddressInternal struct {
	version IPVersion
}

// getProvider wraps this address in an ipAddressProvider, so a HostName or
// IPAddressString built from an already-constructed address can hand it back
// out through the same provider interface used by strings that were parsed.
func (addr *IPAddress) getProvider() ipAddressProvider {
	return newWrappedIPAddressProvider(addr, addr.version)
}
