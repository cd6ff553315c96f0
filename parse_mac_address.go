package goip

import (
	"sync"

	"github.com/arlorn/netaddr/address_string_param"
)

type parsedMACAddress struct {
	macAddressParseData
	originator   *MACAddressString
	address      *MACAddress
	params       address_string_param.MACAddressStringParams
	creationLock *sync.Mutex
}
