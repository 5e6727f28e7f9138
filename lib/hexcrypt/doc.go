// Package hexcrypt exposes the boundary operations of go-hexcrypt: encrypt a
// string, int32, float32 or int64 under AES-128-CBC with PKCS#7 padding and
// return lowercase hex, or reverse the process.
//
// Keys and IVs are arbitrary strings normalized to 16 bytes by zero
// right-padding or truncation. Numeric payloads are big-endian.
//
//	e, err := hexcrypt.New(nil)
//	if err != nil {
//		return err
//	}
//	hexText, _ := e.EncryptInt(12345, "MySecretKey12345", "InitVector123456")
//	v, err := e.DecryptInt(hexText, "MySecretKey12345", "InitVector123456")
//
// An Engine is immutable once built and may be shared between goroutines.
// Batch operations spread independent records over a bounded worker pool.
package hexcrypt
