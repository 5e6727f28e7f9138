// Package codec converts payloads to and from the byte sequences the cipher
// consumes, and ciphertext to and from hexadecimal text.
//
// A Value is a tagged union over the supported payload kinds. Numeric kinds have
// a fixed width and are encoded big-endian:
//
//	KindInt32    4 bytes, two's complement
//	KindFloat32  4 bytes, IEEE-754 bit pattern (negative zero and NaN payloads survive)
//	KindInt64    8 bytes, two's complement
//
// KindText is encoded as its raw bytes and has no fixed width.
package codec
