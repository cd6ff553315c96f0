package goip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlorn/netaddr/address_string_param"
)

func TestParseIPv4Dotted(t *testing.T) {
	str := NewIPAddressString("192.168.0.1")
	require.True(t, str.IsValid())
	assert.True(t, str.IsIPv4())
	data := str.addressProvider.(*parsedAddressProvider).parsedAddress.ipAddressParseData
	require.Equal(t, 4, data.getSegmentCount())
	assert.EqualValues(t, 192, data.getValue(0, keyLower))
	assert.EqualValues(t, 168, data.getValue(1, keyLower))
	assert.EqualValues(t, 0, data.getValue(2, keyLower))
	assert.EqualValues(t, 1, data.getValue(3, keyLower))
}

func TestParseIPv4InetAtonMixedRadix(t *testing.T) {
	builder := new(address_string_param.IPAddressStringParamsBuilder)
	builder.GetIPv4AddressParamsBuilder().AllowInetAtonHex(true).AllowInetAtonOctal(true)
	str := NewIPAddressStringParams("0300.0xA8.00.01", builder.ToParams())
	require.NoError(t, str.Validate())
	data := str.addressProvider.(*parsedAddressProvider).parsedAddress.ipAddressParseData
	assert.EqualValues(t, 192, data.getValue(0, keyLower))
	assert.EqualValues(t, 168, data.getValue(1, keyLower))
	assert.EqualValues(t, 0, data.getValue(2, keyLower))
	assert.EqualValues(t, 1, data.getValue(3, keyLower))
}

func TestParseIPv6Compressed(t *testing.T) {
	str := NewIPAddressString("2001:db8::1")
	require.NoError(t, str.Validate())
	assert.True(t, str.IsIPv6())
	data := str.addressProvider.(*parsedAddressProvider).parsedAddress.ipAddressParseData
	assert.Equal(t, 2, data.getConsecutiveSeparatorSegmentIndex())
	assert.EqualValues(t, 0x2001, data.getValue(0, keyLower))
	assert.EqualValues(t, 0xdb8, data.getValue(1, keyLower))
	assert.EqualValues(t, 1, data.getValue(7, keyLower))
}

func TestParseIPv6DoubleCompressionRejected(t *testing.T) {
	str := NewIPAddressString("1::2::3")
	err := str.Validate()
	require.Error(t, err)
}

func TestParseIPv6MixedEmbeddedIPv4(t *testing.T) {
	builder := new(address_string_param.IPAddressStringParamsBuilder)
	builder.GetIPv6AddressParamsBuilder().AllowMixed(true)
	str := NewIPAddressStringParams("::ffff:1.2.3.4", builder.ToParams())
	require.NoError(t, str.Validate())
	assert.True(t, str.IsIPv6())
	assert.True(t, str.IsMixedIPv6())

	data := str.addressProvider.(*parsedAddressProvider).parsedAddress.ipAddressParseData
	require.NotNil(t, data.mixedParsedAddress)
	v4 := &data.mixedParsedAddress.ipAddressParseData.addressParseData
	assert.EqualValues(t, 1, v4.getValue(0, keyLower))
	assert.EqualValues(t, 2, v4.getValue(1, keyLower))
	assert.EqualValues(t, 3, v4.getValue(2, keyLower))
	assert.EqualValues(t, 4, v4.getValue(3, keyLower))

	// the tail folds into the final two IPv6 segments as 0x0102 / 0x0304.
	assert.EqualValues(t, 0x0102, data.getValue(6, keyLower))
	assert.EqualValues(t, 0x0304, data.getValue(7, keyLower))
}

func TestParseIPv6MixedRequiresOption(t *testing.T) {
	builder := new(address_string_param.IPAddressStringParamsBuilder)
	builder.GetIPv6AddressParamsBuilder().AllowMixed(false)
	str := NewIPAddressStringParams("::ffff:1.2.3.4", builder.ToParams())
	require.Error(t, str.Validate())
}

func TestParseBase85IPv6(t *testing.T) {
	builder := new(address_string_param.IPAddressStringParamsBuilder)
	builder.GetIPv6AddressParamsBuilder().AllowBase85(true)
	str := NewIPAddressStringParams("4)+k&C#VzJ4br>0wv%Yp", builder.ToParams())
	require.NoError(t, str.Validate())
	assert.True(t, str.IsIPv6())
	assert.True(t, str.IsBase85IPv6())
}

func TestParseBase85RequiresOption(t *testing.T) {
	builder := new(address_string_param.IPAddressStringParamsBuilder)
	builder.GetIPv6AddressParamsBuilder().AllowBase85(false)
	str := NewIPAddressStringParams("4)+k&C#VzJ4br>0wv%Yp", builder.ToParams())
	require.Error(t, str.Validate())
}

func TestParsePrefixLength(t *testing.T) {
	str := NewIPAddressString("10.0.0.0/8")
	require.NoError(t, str.Validate())
	assert.True(t, str.IsIPv4())
	assert.EqualValues(t, 8, *str.GetNetworkPrefixLen())
}

func TestParseRangeAndWildcard(t *testing.T) {
	str := NewIPAddressString("1-100.0-255.*.*")
	require.NoError(t, str.Validate())
	data := str.addressProvider.(*parsedAddressProvider).parsedAddress.ipAddressParseData
	assert.True(t, data.hasRange(0))
	assert.True(t, data.isWildcard(2))
}

func TestParseMACDashed(t *testing.T) {
	str := NewMACAddressString("01-23-45-67-89-ab")
	require.NoError(t, str.Validate())
	assert.True(t, str.IsValid())
}

func TestParseHostWithPort(t *testing.T) {
	host := NewHostName("example.com:80")
	require.NoError(t, host.Validate())
	port := host.GetPort()
	require.NotNil(t, port)
	assert.EqualValues(t, 80, *port)
}

func TestParseHostReverseDNSIPv4(t *testing.T) {
	host := NewHostName("1.0.168.192.in-addr.arpa")
	require.NoError(t, host.Validate())
	assert.True(t, host.IsAddress())
	assert.True(t, host.IsReverseDNS())

	provider := host.parsedHost.getAddressProvider()
	assert.True(t, provider.isProvidingIPv4())
	data := provider.(*parsedAddressProvider).parsedAddress.ipAddressParseData
	assert.EqualValues(t, 192, data.getValue(0, keyLower))
	assert.EqualValues(t, 168, data.getValue(1, keyLower))
	assert.EqualValues(t, 0, data.getValue(2, keyLower))
	assert.EqualValues(t, 1, data.getValue(3, keyLower))
}

func TestParseHostUNCIPv6Literal(t *testing.T) {
	host := NewHostName("2001-db8--1.ipv6-literal.net")
	require.NoError(t, host.Validate())
	assert.True(t, host.IsAddress())
	assert.True(t, host.IsUNCIPv6Literal())

	provider := host.parsedHost.getAddressProvider()
	assert.True(t, provider.isProvidingIPv6())
	data := provider.(*parsedAddressProvider).parsedAddress.ipAddressParseData
	assert.EqualValues(t, 0x2001, data.getValue(0, keyLower))
	assert.EqualValues(t, 0xdb8, data.getValue(1, keyLower))
	assert.EqualValues(t, 1, data.getValue(7, keyLower))
}

func TestParseHostUNCIPv6LiteralWithZone(t *testing.T) {
	host := NewHostName("fe80--1seth0.ipv6-literal.net")
	require.NoError(t, host.Validate())
	assert.True(t, host.IsUNCIPv6Literal())

	provider := host.parsedHost.getAddressProvider()
	data := provider.(*parsedAddressProvider).parsedAddress.ipAddressParseData
	assert.EqualValues(t, 0xfe80, data.getValue(0, keyLower))
	assert.Equal(t, Zone("eth0"), data.getQualifier().getZone())
}

func TestParseHostReverseDNSIPv6(t *testing.T) {
	host := NewHostName("1.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.8.b.d.0.1.0.0.2.ip6.arpa")
	require.NoError(t, host.Validate())
	assert.True(t, host.IsAddress())
	assert.True(t, host.IsReverseDNS())

	provider := host.parsedHost.getAddressProvider()
	assert.True(t, provider.isProvidingIPv6())
	data := provider.(*parsedAddressProvider).parsedAddress.ipAddressParseData
	assert.EqualValues(t, 0x2001, data.getValue(0, keyLower))
	assert.EqualValues(t, 0xdb8, data.getValue(1, keyLower))
	assert.EqualValues(t, 1, data.getValue(7, keyLower))
}

func TestParseHostRootTerminatedFQDN(t *testing.T) {
	host := NewHostName("example.com.")
	require.NoError(t, host.Validate())
	assert.Equal(t, []string{"example", "com"}, host.GetNormalizedLabels())
}

func TestParseBracketedIPv6WithZoneAndPort(t *testing.T) {
	host := NewHostName("[fe80::1%eth0]:80")
	require.NoError(t, host.Validate())
	port := host.GetPort()
	require.NotNil(t, port)
	assert.EqualValues(t, 80, *port)
}
