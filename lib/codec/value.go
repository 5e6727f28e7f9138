package codec

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/go-i2p/go-hexcrypt/lib/crypto/types"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// Value is a tagged union of a text, int32, float32 or int64 payload.
// Numeric payloads are stored as their raw bit pattern, so two Values compare
// equal with == exactly when their encodings are equal.
type Value struct {
	kind Kind
	text string
	bits uint64
}

// Text wraps a string payload.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Int32 wraps a 32-bit signed integer payload.
func Int32(v int32) Value { return Value{kind: KindInt32, bits: uint64(uint32(v))} }

// Float32 wraps a 32-bit float payload.
func Float32(v float32) Value { return Value{kind: KindFloat32, bits: uint64(math.Float32bits(v))} }

// Int64 wraps a 64-bit signed integer payload.
func Int64(v int64) Value { return Value{kind: KindInt64, bits: uint64(v)} }

// Kind reports which payload v holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

func (v Value) Int32() (int32, bool) {
	return int32(uint32(v.bits)), v.kind == KindInt32
}

func (v Value) Float32() (float32, bool) {
	return math.Float32frombits(uint32(v.bits)), v.kind == KindFloat32
}

func (v Value) Int64() (int64, bool) {
	return int64(v.bits), v.kind == KindInt64
}

// String formats the payload the way ParseValue reads it back.
func (v Value) String() string {
	switch v.kind {
	case KindInt32:
		i, _ := v.Int32()
		return strconv.FormatInt(int64(i), 10)
	case KindFloat32:
		f, _ := v.Float32()
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case KindInt64:
		i, _ := v.Int64()
		return strconv.FormatInt(i, 10)
	default:
		return v.text
	}
}

// ParseValue parses a textual literal into a Value of the given kind.
func ParseValue(kind Kind, s string) (Value, error) {
	switch kind {
	case KindText:
		return Text(s), nil
	case KindInt32:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Value{}, oops.Wrapf(types.ErrDecode, "invalid int literal %q: %v", s, err)
		}
		return Int32(int32(i)), nil
	case KindFloat32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, oops.Wrapf(types.ErrDecode, "invalid float literal %q: %v", s, err)
		}
		return Float32(float32(f)), nil
	case KindInt64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, oops.Wrapf(types.ErrDecode, "invalid long literal %q: %v", s, err)
		}
		return Int64(i), nil
	default:
		return Value{}, oops.Errorf("unknown value kind %d", kind)
	}
}

// Encode returns the plaintext bytes for v.
func Encode(v Value) []byte {
	switch v.kind {
	case KindInt32, KindFloat32:
		return binary.BigEndian.AppendUint32(nil, uint32(v.bits))
	case KindInt64:
		return binary.BigEndian.AppendUint64(nil, v.bits)
	default:
		return []byte(v.text)
	}
}

// Decode rebuilds a Value of the given kind from plaintext bytes. Numeric kinds
// require exactly Width bytes; any other length returns an error wrapping
// types.ErrLength.
func Decode(b []byte, kind Kind) (Value, error) {
	if !kind.valid() {
		return Value{}, oops.Errorf("unknown value kind %d", kind)
	}
	if w := kind.Width(); w != 0 && len(b) != w {
		log.WithFields(logger.Fields{
			"kind":   kind.String(),
			"length": len(b),
			"width":  w,
		}).Error("Decoded payload has the wrong width")
		return Value{}, oops.Wrapf(types.ErrLength, "%s payload must be %d bytes, got %d", kind, w, len(b))
	}

	switch kind {
	case KindInt32, KindFloat32:
		return Value{kind: kind, bits: uint64(binary.BigEndian.Uint32(b))}, nil
	case KindInt64:
		return Value{kind: kind, bits: binary.BigEndian.Uint64(b)}, nil
	default:
		return Text(string(b)), nil
	}
}
