package goip

import "strconv"

// PortInt is the numeric type backing a Port.
type PortInt = uint16

// Port indicates a port number for a host, such as the 80 in "example.com:80".
// A nil Port indicates the host string had no port.
type Port = *PortNum

// PortNum is the underlying integer type of a Port.
type PortNum uint16

// portNum returns the numeric value of a Port, or 0 if nil.
func (port Port) portNum() PortInt {
	if port == nil {
		return 0
	}
	return PortInt(*port)
}

func (port Port) String() string {
	if port == nil {
		return ""
	}
	return strconv.Itoa(int(*port))
}

func cachePort(p PortInt) Port {
	val := PortNum(p)
	return &val
}
