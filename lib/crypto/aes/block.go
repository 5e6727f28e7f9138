package aes

import (
	"crypto/cipher"
	"strconv"
)

type state [BlockSize]byte

func (st *state) addRoundKey(rk *[BlockSize]byte) {
	for i := range st {
		st[i] ^= rk[i]
	}
}

func (st *state) subBytes() {
	for i := range st {
		st[i] = lookup(&sbox, st[i])
	}
}

func (st *state) invSubBytes() {
	for i := range st {
		st[i] = lookup(&invSbox, st[i])
	}
}

// The state is column-major: row r of column c lives at st[r+4c].
// Row r rotates left by r positions.
func (st *state) shiftRows() {
	old := *st
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			st[r+4*c] = old[r+4*((c+r)%4)]
		}
	}
}

func (st *state) invShiftRows() {
	old := *st
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			st[r+4*((c+r)%4)] = old[r+4*c]
		}
	}
}

func (st *state) mixColumns() {
	for c := 0; c < 4; c++ {
		col := st[4*c : 4*c+4]
		a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
		col[0] = xtime(a0) ^ xtime(a1) ^ a1 ^ a2 ^ a3
		col[1] = a0 ^ xtime(a1) ^ xtime(a2) ^ a2 ^ a3
		col[2] = a0 ^ a1 ^ xtime(a2) ^ xtime(a3) ^ a3
		col[3] = xtime(a0) ^ a0 ^ a1 ^ a2 ^ xtime(a3)
	}
}

func (st *state) invMixColumns() {
	for c := 0; c < 4; c++ {
		col := st[4*c : 4*c+4]
		a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
		col[0] = mul(a0, 0x0e) ^ mul(a1, 0x0b) ^ mul(a2, 0x0d) ^ mul(a3, 0x09)
		col[1] = mul(a0, 0x09) ^ mul(a1, 0x0e) ^ mul(a2, 0x0b) ^ mul(a3, 0x0d)
		col[2] = mul(a0, 0x0d) ^ mul(a1, 0x09) ^ mul(a2, 0x0e) ^ mul(a3, 0x0b)
		col[3] = mul(a0, 0x0b) ^ mul(a1, 0x0d) ^ mul(a2, 0x09) ^ mul(a3, 0x0e)
	}
}

// EncryptBlock encrypts the first BlockSize bytes of src into dst.
// dst and src may overlap entirely.
func EncryptBlock(s *RoundKeySchedule, dst, src []byte) {
	var st state
	copy(st[:], src[:BlockSize])

	st.addRoundKey(&s[0])
	for round := 1; round < Rounds; round++ {
		st.subBytes()
		st.shiftRows()
		st.mixColumns()
		st.addRoundKey(&s[round])
	}
	st.subBytes()
	st.shiftRows()
	st.addRoundKey(&s[Rounds])

	copy(dst[:BlockSize], st[:])
	clear(st[:])
}

// DecryptBlock decrypts the first BlockSize bytes of src into dst using the
// FIPS-197 inverse cipher. dst and src may overlap entirely.
func DecryptBlock(s *RoundKeySchedule, dst, src []byte) {
	var st state
	copy(st[:], src[:BlockSize])

	st.addRoundKey(&s[Rounds])
	for round := Rounds - 1; round > 0; round-- {
		st.invShiftRows()
		st.invSubBytes()
		st.addRoundKey(&s[round])
		st.invMixColumns()
	}
	st.invShiftRows()
	st.invSubBytes()
	st.addRoundKey(&s[0])

	copy(dst[:BlockSize], st[:])
	clear(st[:])
}

// KeySizeError is returned by NewCipher for keys that are not KeySize bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

type blockCipher struct {
	schedule *RoundKeySchedule
}

// NewCipher creates and returns a new cipher.Block for a 16-byte key.
// Unlike NormalizeKey it does not pad or truncate.
func NewCipher(key []byte) (cipher.Block, error) {
	if k := len(key); k != KeySize {
		return nil, KeySizeError(k)
	}
	return &blockCipher{schedule: ExpandKey(Key(key))}, nil
}

func (c *blockCipher) BlockSize() int { return BlockSize }

func (c *blockCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	EncryptBlock(c.schedule, dst, src)
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	DecryptBlock(c.schedule, dst, src)
}
