package aes

import (
	"github.com/go-i2p/go-hexcrypt/lib/crypto/types"
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// Key is an AES-128 key.
type Key [KeySize]byte

// IV is a CBC initialization vector.
type IV [BlockSize]byte

// normalize right-pads raw with zero bytes, or truncates it, to exactly 16 bytes.
func normalize(raw []byte) [16]byte {
	var out [16]byte
	copy(out[:], raw)
	return out
}

// NormalizeKey coerces raw key material of any length to a Key: shorter input
// is right-padded with 0x00, longer input keeps its first KeySize bytes.
func NormalizeKey(raw []byte) Key {
	if len(raw) != KeySize {
		log.WithField("raw_length", len(raw)).Debug("Normalizing key length")
	}
	return Key(normalize(raw))
}

// NormalizeIV applies the NormalizeKey rules to an initialization vector.
func NormalizeIV(raw []byte) IV {
	if len(raw) != BlockSize {
		log.WithField("raw_length", len(raw)).Debug("Normalizing IV length")
	}
	return IV(normalize(raw))
}

// AESSymmetricKey represents a symmetric key for AES encryption/decryption
type AESSymmetricKey struct {
	Key Key // AES-128 key
	IV  IV  // Initialization Vector

	// ParallelThreshold is the ciphertext size, in blocks, from which CBC
	// decryption is spread across goroutines. Zero keeps decryption sequential.
	ParallelThreshold int
}

// NewAESSymmetricKey builds a key from caller-supplied key and IV strings,
// normalizing both to 16 bytes.
func NewAESSymmetricKey(rawKey, rawIV string) *AESSymmetricKey {
	return &AESSymmetricKey{
		Key: NormalizeKey([]byte(rawKey)),
		IV:  NormalizeIV([]byte(rawIV)),
	}
}

// NewEncrypter creates a new AESSymmetricEncrypter
func (k *AESSymmetricKey) NewEncrypter() (types.Encrypter, error) {
	log.Debug("Creating new AESSymmetricEncrypter")
	return NewAESSymmetricEncrypter(k.Key, k.IV), nil
}

// Len returns the length of the key
func (k *AESSymmetricKey) Len() int {
	return len(k.Key)
}

// NewDecrypter creates a new AESSymmetricDecrypter
func (k *AESSymmetricKey) NewDecrypter() (types.Decrypter, error) {
	log.WithField("parallel_threshold", k.ParallelThreshold).Debug("Creating new AESSymmetricDecrypter")
	d := NewAESSymmetricDecrypter(k.Key, k.IV)
	d.ParallelThreshold = k.ParallelThreshold
	return d, nil
}

var _ types.SymmetricKey = (*AESSymmetricKey)(nil)
