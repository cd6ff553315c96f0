package goip

// BitCount is a bit count of an address, section, grouping, segment or division.
// Using signed integers simplifies arithmetic by avoiding errors.
// However, all methods adjust the number of bits according to the address size,
// so negative numbers of bits or numbers of bits greater than the address size are meaningless.
// Using signed integers allows you to simplify arithmetic.
type BitCount = int

// PrefixBitCount is the number of bits in a non-zero PrefixLen.
// For arithmetic you can use the signed integer type BitCount,
// which you can get from PrefixLen using the Len method.
type PrefixBitCount uint8

// PrefixLen indicates the prefix length for an address, section, division group, segment or division.
// A value of zero, i.e. nil, indicates that there is no prefix length.
type PrefixLen = *PrefixBitCount

// cacheBitCount returns a pointer to a copy of b, for handing out an independent PrefixLen value.
func cacheBitCount(b PrefixBitCount) PrefixLen {
	return &b
}

// bitCount returns the prefix length as a plain BitCount, or 0 when nil.
// Callers that care about the nil case check it before calling this,
// mirroring how the library distinguishes "no prefix" from "prefix of 0".
func (prefixLen PrefixLen) bitCount() BitCount {
	if prefixLen == nil {
		return 0
	}
	return BitCount(*prefixLen)
}

// copy returns an independent copy of a PrefixLen, or nil if the receiver is nil.
func (prefixLen PrefixLen) copy() PrefixLen {
	if prefixLen == nil {
		return nil
	}
	return cacheBitCount(*prefixLen)
}

// newPrefixLen builds a PrefixLen from a plain bit count.
func newPrefixLen(b BitCount) PrefixLen {
	return cacheBitCount(PrefixBitCount(b))
}
