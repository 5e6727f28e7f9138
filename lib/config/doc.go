// Package config provides configuration management for go-hexcrypt.
//
// Settings are read through viper from, in order of precedence, command-line
// flags bound by the CLI, the YAML config file, and the defaults below. The
// config file lives at $HOME/.go-hexcrypt/config.yaml unless --config points
// elsewhere; a default one is written on first run.
//
// Keys:
//
//	cipher.key                 default key string (normalized to 16 bytes)
//	cipher.iv                  default IV string (normalized to 16 bytes)
//	cipher.parallel_threshold  ciphertext blocks from which CBC decryption runs in parallel; 0 disables
//	batch.workers              concurrent records processed by batch operations
//
// An empty key or IV is legal and selects the all-zero value. The zero IV makes
// encryption deterministic across calls, which leaks equality of plaintexts.
package config
