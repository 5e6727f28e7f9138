package hexcrypt

import (
	"github.com/go-i2p/go-hexcrypt/lib/codec"
)

// EncryptString encrypts the UTF-8 bytes of text.
func (e *Engine) EncryptString(text, key, iv string) (string, error) {
	return e.Encrypt(codec.Text(text), key, iv)
}

// DecryptString returns the plaintext bytes as a string, without UTF-8
// validation.
func (e *Engine) DecryptString(hexText, key, iv string) (string, error) {
	v, err := e.Decrypt(hexText, codec.KindText, key, iv)
	if err != nil {
		return "", err
	}
	s, _ := v.Text()
	return s, nil
}

// EncryptInt encrypts the 4-byte big-endian encoding of v.
func (e *Engine) EncryptInt(v int32, key, iv string) (string, error) {
	return e.Encrypt(codec.Int32(v), key, iv)
}

// DecryptInt requires a 4-byte plaintext.
func (e *Engine) DecryptInt(hexText, key, iv string) (int32, error) {
	v, err := e.Decrypt(hexText, codec.KindInt32, key, iv)
	if err != nil {
		return 0, err
	}
	i, _ := v.Int32()
	return i, nil
}

// EncryptFloat encrypts the IEEE-754 bit pattern of v, big-endian.
func (e *Engine) EncryptFloat(v float32, key, iv string) (string, error) {
	return e.Encrypt(codec.Float32(v), key, iv)
}

// DecryptFloat requires a 4-byte plaintext. The bit pattern is restored
// exactly, including NaN payloads and negative zero.
func (e *Engine) DecryptFloat(hexText, key, iv string) (float32, error) {
	v, err := e.Decrypt(hexText, codec.KindFloat32, key, iv)
	if err != nil {
		return 0, err
	}
	f, _ := v.Float32()
	return f, nil
}

// EncryptLong encrypts the 8-byte big-endian encoding of v.
func (e *Engine) EncryptLong(v int64, key, iv string) (string, error) {
	return e.Encrypt(codec.Int64(v), key, iv)
}

// DecryptLong requires an 8-byte plaintext.
func (e *Engine) DecryptLong(hexText, key, iv string) (int64, error) {
	v, err := e.Decrypt(hexText, codec.KindInt64, key, iv)
	if err != nil {
		return 0, err
	}
	i, _ := v.Int64()
	return i, nil
}
