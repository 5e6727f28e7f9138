package main

import (
	"os"

	"github.com/go-i2p/go-hexcrypt/lib/config"
	"github.com/go-i2p/go-hexcrypt/lib/hexcrypt"
	"github.com/go-i2p/go-hexcrypt/lib/util/signals"
	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logger.GetGoI2PLogger()

func init() {
	cobra.OnInitialize(config.InitConfig)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hexcrypt",
		Short:         "AES-128-CBC encryption of strings and numbers to hex",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file (default is $HOME/.go-hexcrypt/config.yaml)")
	root.PersistentFlags().String("key", config.DefaultCipherConfig.Key, "cipher key, zero-padded or truncated to 16 bytes")
	root.PersistentFlags().String("iv", config.DefaultCipherConfig.IV, "CBC initialization vector, zero-padded or truncated to 16 bytes")
	root.PersistentFlags().Int("workers", config.DefaultBatchConfig.Workers, "records processed concurrently by batch commands")

	bindings := map[string]string{
		"cipher.key":    "key",
		"cipher.iv":     "iv",
		"batch.workers": "workers",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, root.PersistentFlags().Lookup(flag)); err != nil {
			log.WithError(err).WithField("flag", flag).Error("Failed to bind flag to config")
		}
	}

	root.AddCommand(
		newEncryptCmd(),
		newDecryptCmd(),
		newBatchCmd(),
		newDemoCmd(),
		newSelfTestCmd(),
	)
	return root
}

// loadEngine builds an Engine from the merged flag, file and default settings.
func loadEngine() (*hexcrypt.Engine, *config.HexcryptConfig, error) {
	cfg := config.NewHexcryptConfigFromViper()
	config.CheckZeroIVWarning(cfg.Cipher.IV)
	e, err := hexcrypt.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return e, cfg, nil
}

func main() {
	go signals.Handle()

	err := newRootCmd().Execute()
	signals.StopHandle()
	if err != nil {
		log.WithError(err).Error("hexcrypt failed")
		os.Stderr.WriteString(errorStyle.Render("Error: "+err.Error()) + "\n")
		os.Exit(1)
	}
}
