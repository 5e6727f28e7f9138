package config

// cipher settings
type CipherConfig struct {
	// default key string used when none is given on the command line
	Key string
	// default IV string used when none is given on the command line
	IV string
	// ciphertext size in blocks from which CBC decryption is parallelized, 0 disables
	ParallelThreshold int
}

// default cipher settings
var DefaultCipherConfig = CipherConfig{
	Key:               "",
	IV:                "",
	ParallelThreshold: 64,
}

// CheckZeroIVWarning logs a warning when the configured IV normalizes to all
// zero bytes.
func CheckZeroIVWarning(iv string) {
	for i := 0; i < len(iv) && i < 16; i++ {
		if iv[i] != 0 {
			return
		}
	}
	log.WithField("reason", "zero_iv_in_use").
		Warn("Cipher IV is all zero bytes - identical plaintexts will produce identical ciphertexts")
}
