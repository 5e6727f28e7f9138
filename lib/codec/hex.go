package codec

import (
	"encoding/hex"

	"github.com/go-i2p/go-hexcrypt/lib/crypto/types"
	"github.com/samber/oops"
)

// ToHex renders b as lowercase hex, two characters per byte.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex parses hex text of either case. Odd-length input or characters
// outside [0-9a-fA-F] return an error wrapping types.ErrDecode.
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		log.WithError(err).WithField("text_length", len(s)).Error("Failed to decode hex")
		return nil, oops.Wrapf(types.ErrDecode, "invalid hex text: %v", err)
	}
	return b, nil
}
