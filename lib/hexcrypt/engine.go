package hexcrypt

import (
	"github.com/go-i2p/go-hexcrypt/lib/codec"
	"github.com/go-i2p/go-hexcrypt/lib/config"
	"github.com/go-i2p/go-hexcrypt/lib/crypto/aes"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// Engine performs typed encrypt/decrypt operations. The zero value is not
// usable; build one with New.
type Engine struct {
	parallelThreshold int
	workers           int
}

// New validates cfg and returns a ready Engine. A nil cfg selects
// config.DefaultHexcryptConfig.
func New(cfg *config.HexcryptConfig) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultHexcryptConfig()
	}
	if err := config.Validate(cfg); err != nil {
		return nil, oops.Wrapf(err, "cannot build engine")
	}
	log.WithFields(logger.Fields{
		"parallel_threshold": cfg.Cipher.ParallelThreshold,
		"workers":            cfg.Batch.Workers,
	}).Debug("Engine ready")
	return &Engine{
		parallelThreshold: cfg.Cipher.ParallelThreshold,
		workers:           cfg.Batch.Workers,
	}, nil
}

// Workers reports the batch worker pool size.
func (e *Engine) Workers() int { return e.workers }

func (e *Engine) symmetricKey(key, iv string) *aes.AESSymmetricKey {
	k := aes.NewAESSymmetricKey(key, iv)
	k.ParallelThreshold = e.parallelThreshold
	return k
}

// Encrypt encodes v, encrypts it under key and iv, and returns lowercase hex.
// The result is 32*(floor(n/16)+1) characters for an n-byte encoding.
func (e *Engine) Encrypt(v codec.Value, key, iv string) (string, error) {
	enc, err := e.symmetricKey(key, iv).NewEncrypter()
	if err != nil {
		return "", oops.Wrapf(err, "failed to create encrypter")
	}
	plaintext := codec.Encode(v)
	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		log.WithError(err).WithField("kind", v.Kind().String()).Error("Encryption failed")
		return "", oops.Wrapf(err, "failed to encrypt %s value", v.Kind())
	}
	log.WithFields(logger.Fields{
		"kind":              v.Kind().String(),
		"plaintext_length":  len(plaintext),
		"ciphertext_length": len(ciphertext),
	}).Debug("Encrypted value")
	return codec.ToHex(ciphertext), nil
}

// Decrypt reverses Encrypt, rebuilding a Value of the given kind. Errors wrap
// ErrDecode, ErrLength or ErrPadding.
func (e *Engine) Decrypt(hexText string, kind codec.Kind, key, iv string) (codec.Value, error) {
	ciphertext, err := codec.FromHex(hexText)
	if err != nil {
		return codec.Value{}, err
	}
	dec, err := e.symmetricKey(key, iv).NewDecrypter()
	if err != nil {
		return codec.Value{}, oops.Wrapf(err, "failed to create decrypter")
	}
	plaintext, err := dec.Decrypt(ciphertext)
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"kind":              kind.String(),
			"ciphertext_length": len(ciphertext),
		}).Error("Decryption failed")
		return codec.Value{}, oops.Wrapf(err, "failed to decrypt %s value", kind)
	}
	v, err := codec.Decode(plaintext, kind)
	if err != nil {
		return codec.Value{}, oops.Wrapf(err, "failed to decode %s value", kind)
	}
	log.WithFields(logger.Fields{
		"kind":              kind.String(),
		"ciphertext_length": len(ciphertext),
		"plaintext_length":  len(plaintext),
	}).Debug("Decrypted value")
	return v, nil
}
