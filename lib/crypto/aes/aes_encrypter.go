package aes

import (
	"github.com/go-i2p/go-hexcrypt/lib/crypto/types"
	"github.com/samber/oops"
)

// AESSymmetricEncrypter implements the Encrypter interface using AES-128-CBC
type AESSymmetricEncrypter struct {
	schedule *RoundKeySchedule
	iv       IV
}

// NewAESSymmetricEncrypter expands key and returns an encrypter chaining from iv.
func NewAESSymmetricEncrypter(key Key, iv IV) *AESSymmetricEncrypter {
	return &AESSymmetricEncrypter{
		schedule: ExpandKey(key),
		iv:       iv,
	}
}

// Encrypt encrypts data using AES-CBC with PKCS#7 padding
func (e *AESSymmetricEncrypter) Encrypt(data []byte) ([]byte, error) {
	log.WithField("data_length", len(data)).Debug("Encrypting data")

	ciphertext := Pad(data)
	e.cbcEncrypt(ciphertext)

	log.WithField("ciphertext_length", len(ciphertext)).Debug("Data encrypted successfully")
	return ciphertext, nil
}

// EncryptNoPadding encrypts data using AES-CBC without padding
func (e *AESSymmetricEncrypter) EncryptNoPadding(data []byte) ([]byte, error) {
	if len(data)%BlockSize != 0 {
		return nil, oops.Wrapf(types.ErrLength, "data length must be a multiple of block size")
	}

	ciphertext := make([]byte, len(data))
	copy(ciphertext, data)
	e.cbcEncrypt(ciphertext)

	return ciphertext, nil
}

// cbcEncrypt encrypts block-aligned buf in place. Each block is XORed with the
// previous ciphertext block (the IV for the first) before encryption, so the
// chain is strictly sequential.
func (e *AESSymmetricEncrypter) cbcEncrypt(buf []byte) {
	prev := e.iv[:]
	for off := 0; off < len(buf); off += BlockSize {
		block := buf[off : off+BlockSize]
		xorBytes(block, prev)
		EncryptBlock(e.schedule, block, block)
		prev = block
	}
}

var _ types.Encrypter = (*AESSymmetricEncrypter)(nil)
