package aes

import "crypto/subtle"

// xtime multiplies b by x in GF(2^8).
func xtime(b byte) byte {
	return b<<1 ^ (poly & -(b >> 7))
}

// mul multiplies a and b in GF(2^8). The loop always runs eight times and
// selects with masks, so timing does not depend on either operand.
func mul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		p ^= a & -(b & 1)
		a = xtime(a)
		b >>= 1
	}
	return p
}

// lookup reads table[idx] by scanning the whole table, keeping the memory
// access pattern independent of idx.
func lookup(table *[256]byte, idx byte) byte {
	var v byte
	for i := 0; i < 256; i++ {
		mask := byte(subtle.ConstantTimeByteEq(byte(i), idx)) * 0xff
		v |= table[i] & mask
	}
	return v
}

func xorBytes(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
