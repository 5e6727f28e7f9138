package config

// go-hexcrypt configuration
type HexcryptConfig struct {
	// the directory holding config.yaml
	BaseDir string
	// key, IV and CBC tuning
	Cipher *CipherConfig
	// batch processing settings
	Batch *BatchConfig
}

func defaultBase() string {
	return BuildHexcryptDirPath()
}

// DefaultHexcryptConfig returns a fresh copy of the built-in defaults.
func DefaultHexcryptConfig() *HexcryptConfig {
	cipher := DefaultCipherConfig
	batch := DefaultBatchConfig
	return &HexcryptConfig{
		BaseDir: defaultBase(),
		Cipher:  &cipher,
		Batch:   &batch,
	}
}
