package aes

// RoundKeySchedule holds the Rounds+1 round keys of an expanded AES-128 key.
// Round key r occupies words 4r..4r+3 of the FIPS-197 key schedule, each word
// stored as four consecutive bytes.
type RoundKeySchedule [Rounds + 1][BlockSize]byte

type word [4]byte

func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

func subWord(w word) word {
	return word{lookup(&sbox, w[0]), lookup(&sbox, w[1]), lookup(&sbox, w[2]), lookup(&sbox, w[3])}
}

// ExpandKey runs the FIPS-197 key expansion (Nk=4, Nr=10) over key.
// The result depends on the key alone.
func ExpandKey(key Key) *RoundKeySchedule {
	const nk = KeySize / 4
	var w [4 * (Rounds + 1)]word
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}
	for i := nk; i < len(w); i++ {
		t := w[i-1]
		if i%nk == 0 {
			t = subWord(rotWord(t))
			t[0] ^= rcon[i/nk-1]
		}
		for j := range t {
			w[i][j] = w[i-nk][j] ^ t[j]
		}
	}

	s := new(RoundKeySchedule)
	for r := range s {
		for c := 0; c < 4; c++ {
			copy(s[r][4*c:4*c+4], w[4*r+c][:])
		}
	}
	return s
}

// Zero clears the schedule.
func (s *RoundKeySchedule) Zero() {
	for r := range s {
		clear(s[r][:])
	}
}
