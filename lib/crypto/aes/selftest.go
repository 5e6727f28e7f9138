package aes

import (
	"bytes"
	"encoding/hex"

	"github.com/samber/oops"
)

// KnownAnswer is a single-block AES-128 test vector, hex encoded.
type KnownAnswer struct {
	Name       string
	Key        string
	Plaintext  string
	Ciphertext string
}

// KnownAnswers are the FIPS-197 Appendix B and C.1 cipher examples.
var KnownAnswers = []KnownAnswer{
	{
		Name:       "FIPS-197 Appendix B",
		Key:        "2b7e151628aed2a6abf7158809cf4f3c",
		Plaintext:  "3243f6a8885a308d313198a2e0370734",
		Ciphertext: "3925841d02dc09fbdc118597196a0b32",
	},
	{
		Name:       "FIPS-197 Appendix C.1",
		Key:        "000102030405060708090a0b0c0d0e0f",
		Plaintext:  "00112233445566778899aabbccddeeff",
		Ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
	},
}

// Check runs the vector through EncryptBlock and DecryptBlock.
func (ka KnownAnswer) Check() error {
	key, err := hex.DecodeString(ka.Key)
	if err != nil {
		return oops.Wrapf(err, "%s: bad key hex", ka.Name)
	}
	pt, err := hex.DecodeString(ka.Plaintext)
	if err != nil {
		return oops.Wrapf(err, "%s: bad plaintext hex", ka.Name)
	}
	ct, err := hex.DecodeString(ka.Ciphertext)
	if err != nil {
		return oops.Wrapf(err, "%s: bad ciphertext hex", ka.Name)
	}
	if len(key) != KeySize || len(pt) != BlockSize || len(ct) != BlockSize {
		return oops.Errorf("%s: vector is not a single AES-128 block", ka.Name)
	}

	schedule := ExpandKey(Key(key))
	out := make([]byte, BlockSize)
	EncryptBlock(schedule, out, pt)
	if !bytes.Equal(out, ct) {
		return oops.Errorf("%s: encrypt got %x, want %x", ka.Name, out, ct)
	}
	DecryptBlock(schedule, out, ct)
	if !bytes.Equal(out, pt) {
		return oops.Errorf("%s: decrypt got %x, want %x", ka.Name, out, pt)
	}
	return nil
}

// SelfTest checks every entry of KnownAnswers and returns the first failure.
func SelfTest() error {
	for _, ka := range KnownAnswers {
		if err := ka.Check(); err != nil {
			log.WithError(err).Error("AES known-answer test failed")
			return err
		}
		log.WithField("vector", ka.Name).Debug("AES known-answer test passed")
	}
	return nil
}
