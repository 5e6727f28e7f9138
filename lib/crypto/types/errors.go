package types

import "errors"

// Error taxonomy shared by the cipher, the codecs and the boundary layer.
// Failure sites wrap these with context; match them with errors.Is.
var (
	// ErrLength reports a ciphertext or encoded value whose length does not fit its expected shape.
	ErrLength = errors.New("invalid length")
	// ErrPadding reports PKCS#7 padding that failed validation, usually a wrong key/IV or a
	// corrupted ciphertext.
	ErrPadding = errors.New("invalid padding")
	// ErrDecode reports malformed textual input such as bad hex.
	ErrDecode = errors.New("malformed encoding")
)
