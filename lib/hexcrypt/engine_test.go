package hexcrypt

import (
	"math"
	"strings"
	"testing"

	"github.com/go-i2p/go-hexcrypt/lib/codec"
	"github.com/go-i2p/go-hexcrypt/lib/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	demoKey = "MySecretKey12345"
	demoIV  = "InitVector123456"
)

func newEngine(t testing.TB) *Engine {
	t.Helper()
	e, err := New(nil)
	require.NoError(t, err)
	return e
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultHexcryptConfig()
	cfg.Batch.Workers = 0
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewUsesConfig(t *testing.T) {
	cfg := config.DefaultHexcryptConfig()
	cfg.Batch.Workers = 7
	cfg.Cipher.ParallelThreshold = 0
	e, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 7, e.Workers())
	assert.Equal(t, 0, e.parallelThreshold)
}

func TestStringRoundTrip(t *testing.T) {
	e := newEngine(t)
	texts := []string{
		"",
		"A",
		"Hello, this is a secret message!",
		"exactly16bytes!!",
		"ünïcødé ✓",
		strings.Repeat("x", 1000),
	}
	for _, text := range texts {
		hexText, err := e.EncryptString(text, demoKey, demoIV)
		require.NoError(t, err)
		assert.Equal(t, 32*(len(text)/16+1), len(hexText))
		assert.Equal(t, strings.ToLower(hexText), hexText)

		got, err := e.DecryptString(hexText, demoKey, demoIV)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}
}

func TestIntRoundTrip(t *testing.T) {
	e := newEngine(t)
	for _, v := range []int32{0, 1, -1, 12345, math.MaxInt32, math.MinInt32} {
		hexText, err := e.EncryptInt(v, demoKey, demoIV)
		require.NoError(t, err)
		assert.Len(t, hexText, 32)

		got, err := e.DecryptInt(hexText, demoKey, demoIV)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestLongRoundTrip(t *testing.T) {
	e := newEngine(t)
	for _, v := range []int64{0, -1, 1234567890, math.MaxInt64, math.MinInt64} {
		hexText, err := e.EncryptLong(v, demoKey, demoIV)
		require.NoError(t, err)
		assert.Len(t, hexText, 32)

		got, err := e.DecryptLong(hexText, demoKey, demoIV)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	e := newEngine(t)
	values := []float32{
		0,
		float32(math.Copysign(0, -1)),
		3.14159,
		-2.5e-10,
		math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
	}
	for _, v := range values {
		hexText, err := e.EncryptFloat(v, demoKey, demoIV)
		require.NoError(t, err)

		got, err := e.DecryptFloat(hexText, demoKey, demoIV)
		require.NoError(t, err)
		assert.Equal(t, math.Float32bits(v), math.Float32bits(got))
	}
}

func TestFloatNaNBitsPreserved(t *testing.T) {
	e := newEngine(t)
	nan := math.Float32frombits(0x7fc00123)
	hexText, err := e.EncryptFloat(nan, demoKey, demoIV)
	require.NoError(t, err)
	got, err := e.DecryptFloat(hexText, demoKey, demoIV)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x7fc00123), math.Float32bits(got))
}

func TestZeroKeyScenarios(t *testing.T) {
	e := newEngine(t)

	hexText, err := e.EncryptString("", "", "")
	require.NoError(t, err)
	assert.Len(t, hexText, 32)
	got, err := e.DecryptString(hexText, "", "")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	hexText, err = e.EncryptString("A", "", "")
	require.NoError(t, err)
	assert.Len(t, hexText, 32)
	got, err = e.DecryptString(hexText, "", "")
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	hexText, err = e.EncryptInt(-1, "", "")
	require.NoError(t, err)
	i, err := e.DecryptInt(hexText, "", "")
	require.NoError(t, err)
	assert.Equal(t, int32(-1), i)
}

func TestDeterministic(t *testing.T) {
	e := newEngine(t)
	a, err := e.EncryptLong(1234567890, demoKey, demoIV)
	require.NoError(t, err)
	b, err := e.EncryptLong(1234567890, demoKey, demoIV)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := e.EncryptLong(1234567890, demoKey, "other iv")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestKeyPrefixNormalization(t *testing.T) {
	e := newEngine(t)
	long := demoKey + "-and-then-some"
	a, err := e.EncryptString("payload", demoKey, demoIV)
	require.NoError(t, err)
	b, err := e.EncryptString("payload", long, demoIV)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// short key equals its explicit zero-padded form
	c, err := e.EncryptString("payload", "k", demoIV)
	require.NoError(t, err)
	d, err := e.EncryptString("payload", "k"+strings.Repeat("\x00", 15), demoIV)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestUppercaseHexAccepted(t *testing.T) {
	e := newEngine(t)
	hexText, err := e.EncryptInt(12345, demoKey, demoIV)
	require.NoError(t, err)
	got, err := e.DecryptInt(strings.ToUpper(hexText), demoKey, demoIV)
	require.NoError(t, err)
	assert.Equal(t, int32(12345), got)
}

func TestDecryptErrors(t *testing.T) {
	e := newEngine(t)
	longHex, err := e.EncryptLong(1, demoKey, demoIV)
	require.NoError(t, err)
	strHex, err := e.EncryptString("some text that spans two blocks", demoKey, demoIV)
	require.NoError(t, err)

	tests := []struct {
		name    string
		hexText string
		kind    codec.Kind
		wantErr error
	}{
		{name: "odd length hex", hexText: "abc", kind: codec.KindText, wantErr: ErrDecode},
		{name: "non hex characters", hexText: "zz" + strings.Repeat("00", 15), kind: codec.KindText, wantErr: ErrDecode},
		{name: "empty ciphertext", hexText: "", kind: codec.KindText, wantErr: ErrLength},
		{name: "unaligned ciphertext", hexText: strings.Repeat("00", 15), kind: codec.KindText, wantErr: ErrLength},
		{name: "long decoded as int", hexText: longHex, kind: codec.KindInt32, wantErr: ErrLength},
		{name: "text decoded as long", hexText: strHex, kind: codec.KindInt64, wantErr: ErrLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Decrypt(tt.hexText, tt.kind, demoKey, demoIV)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCorruptedCiphertextRejected(t *testing.T) {
	e := newEngine(t)
	hexText, err := e.EncryptString("Hello, this is a secret message!", demoKey, demoIV)
	require.NoError(t, err)

	raw, err := codec.FromHex(hexText)
	require.NoError(t, err)

	rejected := 0
	for i := 0; i < 256; i++ {
		corrupt := append([]byte(nil), raw...)
		corrupt[len(corrupt)-1] ^= byte(i + 1)
		corrupt[len(corrupt)-5] ^= byte(i * 7)
		if _, err := e.DecryptString(codec.ToHex(corrupt), demoKey, demoIV); err != nil {
			assert.ErrorIs(t, err, ErrPadding)
			rejected++
		}
	}
	assert.Greater(t, rejected, 230)
}

func TestWrongKeyRejectedOrGarbled(t *testing.T) {
	e := newEngine(t)
	hexText, err := e.EncryptString("Hello, this is a secret message!", demoKey, demoIV)
	require.NoError(t, err)

	got, err := e.DecryptString(hexText, "WrongKey", demoIV)
	if err == nil {
		assert.NotEqual(t, "Hello, this is a secret message!", got)
	} else {
		assert.ErrorIs(t, err, ErrPadding)
	}
}

func TestGenericMatchesNamedOperations(t *testing.T) {
	e := newEngine(t)
	named, err := e.EncryptFloat(3.14159, demoKey, demoIV)
	require.NoError(t, err)
	generic, err := e.Encrypt(codec.Float32(3.14159), demoKey, demoIV)
	require.NoError(t, err)
	assert.Equal(t, named, generic)

	v, err := e.Decrypt(generic, codec.KindFloat32, demoKey, demoIV)
	require.NoError(t, err)
	f, ok := v.Float32()
	require.True(t, ok)
	assert.Equal(t, float32(3.14159), f)
}

func TestParallelDecryptThroughEngine(t *testing.T) {
	cfg := config.DefaultHexcryptConfig()
	cfg.Cipher.ParallelThreshold = 2
	parallel, err := New(cfg)
	require.NoError(t, err)

	text := strings.Repeat("0123456789abcdef", 40)
	hexText, err := parallel.EncryptString(text, demoKey, demoIV)
	require.NoError(t, err)
	got, err := parallel.DecryptString(hexText, demoKey, demoIV)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func BenchmarkEncryptString(b *testing.B) {
	e := newEngine(b)
	for i := 0; i < b.N; i++ {
		_, _ = e.EncryptString("Hello, this is a secret message!", demoKey, demoIV)
	}
}
