package codec

import (
	"strings"

	"github.com/go-i2p/go-hexcrypt/lib/crypto/types"
	"github.com/samber/oops"
)

// Kind tags the payload type held by a Value.
type Kind uint8

const (
	KindText Kind = iota
	KindInt32
	KindFloat32
	KindInt64
)

// Kinds lists every supported kind in declaration order.
var Kinds = []Kind{KindText, KindInt32, KindFloat32, KindInt64}

func (k Kind) String() string {
	switch k {
	case KindText:
		return "string"
	case KindInt32:
		return "int"
	case KindFloat32:
		return "float"
	case KindInt64:
		return "long"
	default:
		return "unknown"
	}
}

// Width returns the encoded size of k in bytes, or 0 for variable-width text.
func (k Kind) Width() int {
	switch k {
	case KindInt32, KindFloat32:
		return 4
	case KindInt64:
		return 8
	default:
		return 0
	}
}

func (k Kind) valid() bool {
	return k <= KindInt64
}

// ParseKind maps a type name to a Kind. Both the boundary names (string, int,
// float, long) and the Go names (text, int32, float32, int64) are accepted.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string", "text", "":
		return KindText, nil
	case "int", "int32":
		return KindInt32, nil
	case "float", "float32":
		return KindFloat32, nil
	case "long", "int64":
		return KindInt64, nil
	default:
		return KindText, oops.Wrapf(types.ErrDecode, "unknown value type %q", name)
	}
}
