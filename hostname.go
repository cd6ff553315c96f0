package goip

import (
	"strings"

	"github.com/arlorn/netaddr/address_error"
	"github.com/arlorn/netaddr/address_string_param"
)

type resolveData struct {
	resolvedAddrs []*IPAddress
	err           error
}

type hostCache struct {
	resolveData      *resolveData
	normalizedString *string
}

// HostName represents an internet host name.  Can be a fully qualified domain name,
// a simple host name, or an ip address string.
// It can also include a port number or service name (which maps to a port).
// It can include a prefix length or mask for either an ipaddress or host name string.
// An IPv6 address can have an IPv6 zone.
//
// # Supported Formats
//
// You can use all host or address formats supported by nmap and all address formats supported by IPAddressString.
// All manners of domain names are supported. When adding a prefix length or mask to a host name string,
// it is to denote the subnet of the resolved address.
//
// Validation is done separately from DNS resolution to avoid unnecessary DNS lookups.
//
// See RFC 3513, RFC 2181, RFC 952, RFC 1035, RFC 1034, RFC 1123, RFC 5890 or the list of rfcs for IPAddress.
// For IPv6 addresses in host, see RFC 2732 specifying "[]" notation
// and RFC 3986 and RFC 4038 (combining IPv6 "[]" notation with prefix or zone)
// and SMTP RFC 2821 for alternative uses of "[]" notation for both IPv4 and IPv6.
type HostName struct {
	str           string
	parsedHost    *parsedHost
	validateError address_error.HostNameError
	*hostCache
}

var zeroHostName = NewHostName("")
var defaultHostParameters = new(address_string_param.HostNameParamsBuilder).ToParams()

func (host *HostName) init() *HostName {
	if host.parsedHost == nil && host.validateError == nil {
		return zeroHostName
	}
	return host
}

func (host *HostName) validate(params address_string_param.HostNameParams) {
	host.parsedHost, host.validateError = validator.validateHostName(host, params)
}

// String implements the [fmt.Stringer] interface, returning the original string used
// to create this HostName, or "<nil>" if the receiver is a nil pointer.
func (host *HostName) String() string {
	if host == nil {
		return nilString()
	}
	return host.str
}

// Validate validates that this string represents a valid host, and if not,
// returns an error with a descriptive message indicating why it is not.
func (host *HostName) Validate() address_error.HostNameError {
	return host.init().validateError
}

// IsValid returns whether this represents a valid host name or address format.
func (host *HostName) IsValid() bool {
	return host.Validate() == nil
}

// GetHost returns the host string normalized, but without the port, service, prefix, or mask.
func (host *HostName) GetHost() string {
	host = host.init()
	if host.IsValid() {
		return host.parsedHost.getHost()
	}
	return host.str
}

// GetNormalizedLabels returns the normalized labels that make up this host name's domain,
// such as []string{"example", "com"} for "example.com", or nil if this host represents an address.
func (host *HostName) GetNormalizedLabels() []string {
	host = host.init()
	if host.IsValid() {
		return host.parsedHost.getNormalizedLabels()
	}
	return nil
}

// IsAddress returns whether this host name represents an IP address rather than a domain name.
func (host *HostName) IsAddress() bool {
	host = host.init()
	return host.IsValid() && host.parsedHost.isAddressString()
}

// IsUNCIPv6Literal returns whether this host name is a Windows UNC IPv6 literal, such as
// "fe80--1.ipv6-literal.net".
func (host *HostName) IsUNCIPv6Literal() bool {
	host = host.init()
	return host.IsValid() && host.parsedHost.isUNCIPv6Literal()
}

// IsReverseDNS returns whether this host name is a reverse-DNS name, such as
// "1.0.168.192.in-addr.arpa" or a "ip6.arpa"/"ip6.int" name.
func (host *HostName) IsReverseDNS() bool {
	host = host.init()
	return host.IsValid() && host.parsedHost.isReverseDNS()
}

// AsAddress returns the result of ToAddress if this host name represents an IP address, or nil otherwise.
// Since ToAddress assembles no *IPAddress for a parsed address literal, the result is nil in that case too.
// This method does not return an error.
func (host *HostName) AsAddress() *IPAddress {
	if host.IsAddress() {
		addr, _ := host.ToAddress()
		return addr
	}
	return nil
}

// ToAddress attempts to convert this host name directly to an IP address.
// If this host name was already determined to represent an address, the result is that of the
// address's provider: no *IPAddress is assembled from a parsed address literal, so this returns nil
// with an IncompatibleAddressError keyed "ipaddress.error.address.not.constructed".
// Resolving domain names to addresses via DNS is outside this module's scope (see DESIGN.md);
// for a host name that is not itself an address literal, this returns an error.
func (host *HostName) ToAddress() (*IPAddress, address_error.AddressError) {
	host = host.init()
	if err := host.Validate(); err != nil {
		return nil, err
	}
	if !host.parsedHost.isAddressString() {
		return nil, newHostNameError(host.str, "ipaddress.host.error.resolve")
	}
	provider := host.parsedHost.getAddressProvider()
	addr, err := provider.getAddress()
	if err != nil {
		return nil, err
	}
	return addr, nil
}

// GetPort returns the port, if one was specified with this host name, or nil otherwise.
func (host *HostName) GetPort() Port {
	host = host.init()
	if host.IsValid() {
		return host.parsedHost.getPort()
	}
	return nil
}

// GetService returns the service name, if one was specified with this host name instead of a port, or "" otherwise.
func (host *HostName) GetService() string {
	host = host.init()
	if host.IsValid() {
		return host.parsedHost.getService()
	}
	return ""
}

func parseHostName(str string, params address_string_param.HostNameParams) *HostName {
	str = strings.TrimSpace(str)
	res := &HostName{str: str}
	res.validate(params)
	return res
}

// NewHostName constructs a HostName that will parse the given string according to the default parameters.
func NewHostName(str string) *HostName {
	return parseHostName(str, defaultHostParameters)
}

// NewHostNameParams constructs a HostName that will parse the given string according to the given parameters.
func NewHostNameParams(str string, params address_string_param.HostNameParams) *HostName {
	if params == nil {
		params = defaultHostParameters
	}
	return parseHostName(str, params)
}