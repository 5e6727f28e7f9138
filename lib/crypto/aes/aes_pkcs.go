package aes

import (
	"crypto/subtle"

	"github.com/go-i2p/go-hexcrypt/lib/crypto/types"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// Pad appends PKCS#7 padding: n bytes of value n, where n = BlockSize - len(data)%BlockSize.
// Block-aligned input gains a full block of padding. data is not modified.
func Pad(data []byte) []byte {
	padding := BlockSize - len(data)%BlockSize
	log.WithFields(logger.Fields{
		"data_length": len(data),
		"padding":     padding,
	}).Debug("Applying PKCS#7 padding")

	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padding)
	}
	return padded
}

// Unpad strips PKCS#7 padding from block-aligned data. It returns an error
// wrapping types.ErrLength if data is empty or not block-aligned, and one
// wrapping types.ErrPadding if the final byte is 0 or greater than BlockSize,
// or if the trailing padding bytes disagree with it.
//
// The last block is always examined in full so the time taken does not reveal
// where the padding check failed.
func Unpad(data []byte) ([]byte, error) {
	log.WithField("data_length", len(data)).Debug("Removing PKCS#7 padding")

	length := len(data)
	if length == 0 || length%BlockSize != 0 {
		log.WithField("data_length", length).Error("Padded data is not block aligned")
		return nil, oops.Wrapf(types.ErrLength, "padded data length %d is not a positive multiple of %d", length, BlockSize)
	}

	padding := data[length-1]
	good := subtle.ConstantTimeLessOrEq(1, int(padding)) & subtle.ConstantTimeLessOrEq(int(padding), BlockSize)
	for i := 0; i < BlockSize; i++ {
		inPadding := subtle.ConstantTimeLessOrEq(i+1, int(padding))
		matches := subtle.ConstantTimeByteEq(data[length-1-i], padding)
		good &= subtle.ConstantTimeSelect(inPadding, matches, 1)
	}
	if good != 1 {
		log.Error("Invalid padding")
		return nil, oops.Wrapf(types.ErrPadding, "PKCS#7 padding check failed")
	}

	unpadded := data[:length-int(padding)]
	log.WithField("unpadded_length", len(unpadded)).Debug("PKCS#7 padding removed")
	return unpadded, nil
}
