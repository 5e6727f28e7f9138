package config

import (
	"github.com/go-i2p/logger"
)

// maxParallelThreshold bounds cipher.parallel_threshold; beyond it parallel
// decryption would never trigger for any realistic payload.
const maxParallelThreshold = 1 << 24

// maxWorkers bounds batch.workers.
const maxWorkers = 4096

// Validate checks if the provided configuration values are reasonable.
// Returns an error describing the first invalid value found.
func Validate(cfg *HexcryptConfig) error {
	log.WithFields(logger.Fields{
		"at":     "Validate",
		"reason": "verification_requested",
	}).Debug("validating configuration")
	if cfg == nil {
		return newValidationError("configuration is nil")
	}

	validators := []func() error{
		func() error { return validateCipher(cfg.Cipher) },
		func() error { return validateBatch(cfg.Batch) },
	}
	for _, validator := range validators {
		if err := validator(); err != nil {
			log.WithError(err).Error("Configuration validation failed")
			return err
		}
	}
	return nil
}

func validateCipher(cipher *CipherConfig) error {
	if cipher == nil {
		return newValidationError("Cipher section is missing")
	}
	if cipher.ParallelThreshold < 0 || cipher.ParallelThreshold > maxParallelThreshold {
		log.WithField("parallel_threshold", cipher.ParallelThreshold).Error("Invalid cipher configuration")
		return newValidationError("Cipher.ParallelThreshold must be between 0 and 16777216")
	}
	return nil
}

func validateBatch(batch *BatchConfig) error {
	if batch == nil {
		return newValidationError("Batch section is missing")
	}
	if batch.Workers < 1 || batch.Workers > maxWorkers {
		log.WithField("workers", batch.Workers).Error("Invalid batch configuration")
		return newValidationError("Batch.Workers must be between 1 and 4096")
	}
	return nil
}

type validationError struct {
	message string
}

func newValidationError(message string) error {
	return &validationError{message: message}
}

func (e *validationError) Error() string {
	return "configuration validation failed: " + e.message
}
