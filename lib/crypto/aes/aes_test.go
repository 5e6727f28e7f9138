package aes

import (
	"bytes"
	stdaes "crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"testing"

	"github.com/go-i2p/crypto/rand"
	"github.com/go-i2p/go-hexcrypt/lib/crypto/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomKey(t testing.TB) *AESSymmetricKey {
	t.Helper()
	key := &AESSymmetricKey{}
	_, err := rand.Read(key.Key[:])
	require.NoError(t, err, "Failed to generate random key")
	_, err = rand.Read(key.IV[:])
	require.NoError(t, err, "Failed to generate random IV")
	return key
}

func TestAESEncryptDecrypt(t *testing.T) {
	symmetricKey := randomKey(t)

	encrypter, err := symmetricKey.NewEncrypter()
	require.NoError(t, err, "Error creating encrypter")

	decrypter, err := symmetricKey.NewDecrypter()
	require.NoError(t, err, "Error creating decrypter")

	testCases := []struct {
		name      string
		plaintext []byte
	}{
		{"Empty string", []byte("")},
		{"Short string", []byte("Hello, World!")},
		{"Long string", bytes.Repeat([]byte("A"), 1000)},
		{"Exact block size", bytes.Repeat([]byte("A"), BlockSize)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ciphertext, err := encrypter.Encrypt(tc.plaintext)
			require.NoError(t, err, "Encryption failed")
			assert.Zero(t, len(ciphertext)%BlockSize)
			assert.GreaterOrEqual(t, len(ciphertext), BlockSize)

			decrypted, err := decrypter.Decrypt(ciphertext)
			require.NoError(t, err, "Decryption failed")

			if !bytes.Equal(tc.plaintext, decrypted) {
				t.Errorf("Decrypted text doesn't match original plaintext.\nOriginal: %s\nDecrypted: %s",
					hex.EncodeToString(tc.plaintext), hex.EncodeToString(decrypted))
			}
		})
	}
}

// Concrete scenarios with an all-zero key and IV.
func TestAESZeroKeyScenarios(t *testing.T) {
	key := NewAESSymmetricKey("", "")
	assert.Equal(t, Key{}, key.Key)
	assert.Equal(t, IV{}, key.IV)

	enc, _ := key.NewEncrypter()
	dec, _ := key.NewDecrypter()

	empty, err := enc.Encrypt(nil)
	require.NoError(t, err)
	assert.Len(t, empty, BlockSize)
	plain, err := dec.Decrypt(empty)
	require.NoError(t, err)
	assert.Empty(t, plain)

	a, err := enc.Encrypt([]byte("A"))
	require.NoError(t, err)
	assert.Len(t, hex.EncodeToString(a), 32)
}

// NIST SP 800-38A F.2.1 and F.2.2, CBC-AES128.
func TestCBCVectors(t *testing.T) {
	key := Key(mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c"))
	iv := IV(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	plaintext := mustHex(t, "6bc1bee22e409f96e93d7e117393172a"+
		"ae2d8a571e03ac9c9eb76fac45af8e51"+
		"30c81c46a35ce411e5fbc1191a0a52ef"+
		"f69f2445df4f9b17ad2b417be66c3710")
	ciphertext := mustHex(t, "7649abac8119b246cee98e9b12e9197d"+
		"5086cb9b507219ee95db113a917678b2"+
		"73bed6b8e3c1743b7116e69e22229516"+
		"3ff1caa1681fac09120eca307586e1a7")

	got, err := NewAESSymmetricEncrypter(key, iv).EncryptNoPadding(plaintext)
	require.NoError(t, err)
	assert.Equal(t, ciphertext, got)

	dec := NewAESSymmetricDecrypter(key, iv)
	got, err = dec.DecryptNoPadding(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)

	dec.ParallelThreshold = 1
	got, err = dec.DecryptNoPadding(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestNoPaddingRejectsUnalignedInput(t *testing.T) {
	key := randomKey(t)
	_, err := NewAESSymmetricEncrypter(key.Key, key.IV).EncryptNoPadding(make([]byte, 15))
	assert.ErrorIs(t, err, types.ErrLength)
	_, err = NewAESSymmetricDecrypter(key.Key, key.IV).DecryptNoPadding(make([]byte, 31))
	assert.ErrorIs(t, err, types.ErrLength)
}

func TestCBCMatchesStdlib(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 100, 1024} {
		key := randomKey(t)
		data := make([]byte, n)
		_, err := rand.Read(data)
		require.NoError(t, err)

		block, err := stdaes.NewCipher(key.Key[:])
		require.NoError(t, err)
		padded := Pad(data)
		want := make([]byte, len(padded))
		cipher.NewCBCEncrypter(block, key.IV[:]).CryptBlocks(want, padded)

		enc, _ := key.NewEncrypter()
		got, err := enc.Encrypt(data)
		require.NoError(t, err)
		assert.Equal(t, want, got, "length %d", n)
	}
}

func TestParallelDecryptMatchesSequential(t *testing.T) {
	key := randomKey(t)
	data := make([]byte, 4096+7)
	_, err := rand.Read(data)
	require.NoError(t, err)

	enc, _ := key.NewEncrypter()
	ciphertext, err := enc.Encrypt(data)
	require.NoError(t, err)

	for _, threshold := range []int{0, 1, 2, 64, 1000} {
		key.ParallelThreshold = threshold
		dec, _ := key.NewDecrypter()
		got, err := dec.Decrypt(ciphertext)
		require.NoError(t, err, "threshold %d", threshold)
		assert.Equal(t, data, got, "threshold %d", threshold)
	}
}

func TestAESDecryptInvalidLength(t *testing.T) {
	dec, _ := randomKey(t).NewDecrypter()

	for _, n := range []int{0, 1, 15, 17, 33} {
		_, err := dec.Decrypt(make([]byte, n))
		assert.ErrorIs(t, err, types.ErrLength, "length %d", n)
	}
}

func TestAESDecryptWrongKey(t *testing.T) {
	key := randomKey(t)
	enc, _ := key.NewEncrypter()
	ciphertext, err := enc.Encrypt([]byte("attack at dawn"))
	require.NoError(t, err)

	failures := 0
	for i := 0; i < 32; i++ {
		dec, _ := randomKey(t).NewDecrypter()
		if _, err := dec.Decrypt(ciphertext); err != nil {
			assert.ErrorIs(t, err, types.ErrPadding)
			failures++
		}
	}
	assert.Greater(t, failures, 24)
}

// Flipping bytes of the final block scrambles the padding; a lucky flip can
// still leave valid padding, so assert over many trials.
func TestAESDecryptCorruptedFinalBlock(t *testing.T) {
	key := randomKey(t)
	enc, _ := key.NewEncrypter()
	dec, _ := key.NewDecrypter()

	ciphertext, err := enc.Encrypt([]byte("a message spanning more than one block"))
	require.NoError(t, err)

	const trials = 500
	rejected := 0
	pick := make([]byte, 2)
	for i := 0; i < trials; i++ {
		_, err := rand.Read(pick)
		require.NoError(t, err)
		corrupted := bytes.Clone(ciphertext)
		pos := len(corrupted) - BlockSize + int(pick[0])%BlockSize
		corrupted[pos] ^= pick[1] | 1

		if _, err := dec.Decrypt(corrupted); err != nil {
			assert.ErrorIs(t, err, types.ErrPadding)
			rejected++
		}
	}
	assert.Greater(t, rejected, trials*9/10)
}

func TestAESDeterministic(t *testing.T) {
	key := NewAESSymmetricKey("MySecretKey12345", "InitVector123456")
	enc, _ := key.NewEncrypter()

	first, err := enc.Encrypt([]byte("same input"))
	require.NoError(t, err)
	second, err := enc.Encrypt([]byte("same input"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeKey(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{"Empty", "", "00000000000000000000000000000000"},
		{"Short", "abc", "61626300000000000000000000000000"},
		{"Exact", "MySecretKey12345", hex.EncodeToString([]byte("MySecretKey12345"))},
		{"Long", "MySecretKey12345-and-more", hex.EncodeToString([]byte("MySecretKey12345"))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key := NormalizeKey([]byte(tc.raw))
			assert.Equal(t, tc.want, hex.EncodeToString(key[:]))
			iv := NormalizeIV([]byte(tc.raw))
			assert.Equal(t, tc.want, hex.EncodeToString(iv[:]))
		})
	}
}

func TestKeysSharingPrefixAreEquivalent(t *testing.T) {
	a := NewAESSymmetricKey("0123456789abcdefXXXX", "iv")
	b := NewAESSymmetricKey("0123456789abcdefYYYY", "iv")
	assert.Equal(t, a.Key, b.Key)

	encA, _ := a.NewEncrypter()
	encB, _ := b.NewEncrypter()
	ctA, _ := encA.Encrypt([]byte("payload"))
	ctB, _ := encB.Encrypt([]byte("payload"))
	assert.Equal(t, ctA, ctB)
}

func TestAESSymmetricKeyLen(t *testing.T) {
	assert.Equal(t, KeySize, NewAESSymmetricKey("k", "v").Len())
}

func BenchmarkEncrypt1K(b *testing.B) {
	enc := NewAESSymmetricEncrypter(NormalizeKey([]byte("bench")), IV{})
	data := make([]byte, 1024)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = enc.Encrypt(data)
	}
}

func BenchmarkDecrypt64KParallel(b *testing.B) {
	key := NormalizeKey([]byte("bench"))
	ciphertext, _ := NewAESSymmetricEncrypter(key, IV{}).Encrypt(make([]byte, 64*1024))
	dec := NewAESSymmetricDecrypter(key, IV{})
	dec.ParallelThreshold = 64
	b.SetBytes(int64(len(ciphertext)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dec.Decrypt(ciphertext)
	}
}
