package aes

import (
	"runtime"

	"github.com/go-i2p/go-hexcrypt/lib/crypto/types"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"
)

// AESSymmetricDecrypter implements the Decrypter interface using AES-128-CBC
type AESSymmetricDecrypter struct {
	schedule *RoundKeySchedule
	iv       IV

	// ParallelThreshold is the ciphertext size, in blocks, from which blocks are
	// decrypted concurrently. Zero or negative keeps decryption sequential.
	ParallelThreshold int
}

// NewAESSymmetricDecrypter expands key and returns a sequential decrypter chaining from iv.
func NewAESSymmetricDecrypter(key Key, iv IV) *AESSymmetricDecrypter {
	return &AESSymmetricDecrypter{
		schedule: ExpandKey(key),
		iv:       iv,
	}
}

// Decrypt decrypts data using AES-CBC with PKCS#7 padding
func (d *AESSymmetricDecrypter) Decrypt(data []byte) ([]byte, error) {
	log.WithField("data_length", len(data)).Debug("Decrypting data")

	if len(data) == 0 || len(data)%BlockSize != 0 {
		log.WithField("data_length", len(data)).Error("Ciphertext is not a positive multiple of the block size")
		return nil, oops.Wrapf(types.ErrLength, "ciphertext length %d is not a positive multiple of %d", len(data), BlockSize)
	}

	plaintext := make([]byte, len(data))
	d.cbcDecrypt(plaintext, data)

	plaintext, err := Unpad(plaintext)
	if err != nil {
		log.WithError(err).Error("Failed to unpad plaintext")
		return nil, err
	}

	log.WithField("plaintext_length", len(plaintext)).Debug("Data decrypted successfully")
	return plaintext, nil
}

// DecryptNoPadding decrypts data using AES-CBC without padding
func (d *AESSymmetricDecrypter) DecryptNoPadding(data []byte) ([]byte, error) {
	if len(data)%BlockSize != 0 {
		return nil, oops.Wrapf(types.ErrLength, "data length must be a multiple of block size")
	}

	plaintext := make([]byte, len(data))
	d.cbcDecrypt(plaintext, data)

	return plaintext, nil
}

// cbcDecrypt decrypts src into dst. Every plaintext block depends only on
// ciphertext blocks i and i-1, so large inputs are split into contiguous
// ranges decrypted concurrently.
func (d *AESSymmetricDecrypter) cbcDecrypt(dst, src []byte) {
	blocks := len(src) / BlockSize
	if d.ParallelThreshold <= 0 || blocks < d.ParallelThreshold {
		d.decryptRange(dst, src, 0, blocks)
		return
	}

	workers := min(runtime.GOMAXPROCS(0), blocks)
	chunk := (blocks + workers - 1) / workers
	log.WithFields(logger.Fields{
		"blocks":  blocks,
		"workers": workers,
		"chunk":   chunk,
	}).Debug("Decrypting blocks in parallel")

	var g errgroup.Group
	for first := 0; first < blocks; first += chunk {
		last := min(first+chunk, blocks)
		g.Go(func() error {
			d.decryptRange(dst, src, first, last)
			return nil
		})
	}
	_ = g.Wait()
}

func (d *AESSymmetricDecrypter) decryptRange(dst, src []byte, first, last int) {
	for i := first; i < last; i++ {
		off := i * BlockSize
		block := dst[off : off+BlockSize]
		DecryptBlock(d.schedule, block, src[off:off+BlockSize])
		if i == 0 {
			xorBytes(block, d.iv[:])
		} else {
			xorBytes(block, src[off-BlockSize:off])
		}
	}
}

var _ types.Decrypter = (*AESSymmetricDecrypter)(nil)
