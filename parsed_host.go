package goip

import "github.com/arlorn/netaddr/address_error"

type parsedHostCache struct {
	normalizedLabels []string
	host             string
}

type embeddedAddress struct {
	isUNCIPv6Literal   bool
	isReverseDNS       bool
	addressStringError address_error.AddressStringError
	addressProvider    ipAddressProvider
}

// parsedHost is what the host validator fills in while it reads a host string: the
// normalized labels making up a domain name, or the embedded address when the host
// string is itself an address (bracketed IPv6, UNC IPv6 literal, or reverse-DNS form),
// plus whatever port, service, prefix, mask, or zone qualifier followed it.
type parsedHost struct {
	labelsQualifier  parsedHostIdentifierStringQualifier
	normalizedLabels []string
	host             string
	embeddedAddress  embeddedAddress
}

func (host *parsedHost) getQualifier() *parsedHostIdentifierStringQualifier {
	return &host.labelsQualifier
}

func (host *parsedHost) isAddressString() bool {
	return host.embeddedAddress.addressProvider != nil
}

func (host *parsedHost) getAddressProvider() ipAddressProvider {
	return host.embeddedAddress.addressProvider
}

func (host *parsedHost) getHost() string {
	return host.host
}

func (host *parsedHost) getNormalizedLabels() []string {
	return host.normalizedLabels
}

func (host *parsedHost) isUNCIPv6Literal() bool {
	return host.embeddedAddress.isUNCIPv6Literal
}

func (host *parsedHost) isReverseDNS() bool {
	return host.embeddedAddress.isReverseDNS
}

func (host *parsedHost) getPort() Port {
	return host.labelsQualifier.getPort()
}

func (host *parsedHost) getService() string {
	return host.labelsQualifier.getService()
}
