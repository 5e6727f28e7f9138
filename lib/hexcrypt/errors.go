package hexcrypt

import "github.com/go-i2p/go-hexcrypt/lib/crypto/types"

// Failure categories. Every error returned by this package wraps exactly one
// of these; match with errors.Is.
var (
	// ciphertext empty or not a multiple of the block size, or a decoded
	// numeric payload of the wrong width
	ErrLength = types.ErrLength
	// final block padding malformed, usually a wrong key or IV or corruption
	ErrPadding = types.ErrPadding
	// hex text malformed, or a literal that does not parse as its type
	ErrDecode = types.ErrDecode
)
