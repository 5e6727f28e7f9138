// Package aes implements AES-128 (FIPS-197) and CBC mode with PKCS#7 padding.
//
// The block transform, key expansion and padding are implemented here rather than
// delegated to crypto/aes so that every step works on caller-owned state and the
// table lookups and GF(2^8) arithmetic run without data-dependent branches or
// data-dependent memory indexing.
//
// Keys and IVs are derived from arbitrary caller strings by NormalizeKey and
// NormalizeIV: short inputs are right-padded with zero bytes, long inputs are
// truncated to their first 16 bytes. Two inputs sharing the same 16-byte prefix
// therefore select the same key.
//
// A fixed IV makes CBC deterministic: the same key, IV and plaintext always give
// the same ciphertext, and equal plaintext prefixes give equal ciphertext prefixes.
// Nothing here authenticates the ciphertext; padding validation is the only
// tamper check.
//
// Example usage:
//
//	key := aes.NewAESSymmetricKey("MySecretKey12345", "InitVector123456")
//	enc, _ := key.NewEncrypter()
//	ciphertext, _ := enc.Encrypt([]byte("hello"))
//	dec, _ := key.NewDecrypter()
//	plaintext, err := dec.Decrypt(ciphertext)
//	if errors.Is(err, types.ErrPadding) {
//		// wrong key/IV or corrupted ciphertext
//	}
package aes
