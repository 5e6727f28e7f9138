package config

import (
	"os"
	"path/filepath"

	"github.com/go-i2p/go-hexcrypt/lib/util"
	"github.com/go-i2p/logger"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const HEXCRYPT_BASE_DIR = ".go-hexcrypt"

func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.go-hexcrypt/
		viper.AddConfigPath(BuildHexcryptDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Load defaults
	setDefaults()

	// handle config file creating it if needed
	handleConfigFile()
}

func setDefaults() {
	setDefaultsOn(viper.GetViper())
}

func setDefaultsOn(v *viper.Viper) {
	v.SetDefault("base_dir", BuildHexcryptDirPath())

	// Cipher defaults
	v.SetDefault("cipher.key", DefaultCipherConfig.Key)
	v.SetDefault("cipher.iv", DefaultCipherConfig.IV)
	v.SetDefault("cipher.parallel_threshold", DefaultCipherConfig.ParallelThreshold)

	// Batch defaults
	v.SetDefault("batch.workers", DefaultBatchConfig.Workers)
}

// NewHexcryptConfigFromViper creates a new HexcryptConfig from current viper settings
func NewHexcryptConfigFromViper() *HexcryptConfig {
	return &HexcryptConfig{
		BaseDir: viper.GetString("base_dir"),
		Cipher: &CipherConfig{
			Key:               viper.GetString("cipher.key"),
			IV:                viper.GetString("cipher.iv"),
			ParallelThreshold: viper.GetInt("cipher.parallel_threshold"),
		},
		Batch: &BatchConfig{
			Workers: viper.GetInt("batch.workers"),
		},
	}
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o700); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	// Write built-in defaults only. The global instance already holds flag
	// values such as --key, which must never reach disk.
	defaults := viper.New()
	defaults.SetConfigPermissions(0o600)
	setDefaultsOn(defaults)
	if err := defaults.SafeWriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildHexcryptDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func BuildHexcryptDirPath() string {
	return filepath.Join(util.UserHome(), HEXCRYPT_BASE_DIR)
}
