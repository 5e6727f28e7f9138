package main

import (
	"context"
	"fmt"

	"github.com/go-i2p/go-hexcrypt/lib/hexcrypt"
	"github.com/go-i2p/go-hexcrypt/lib/util/signals"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// fs is swapped for an in-memory filesystem in tests.
var fs = afero.NewOsFs()

type batchFunc func(e *hexcrypt.Engine, ctx context.Context, records []hexcrypt.Record, key, iv string) (hexcrypt.BatchStats, error)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Encrypt or decrypt a YAML file of records",
	}
	cmd.AddCommand(
		newBatchRunCmd("encrypt", "Encrypt every record value into its hex field", (*hexcrypt.Engine).EncryptBatch),
		newBatchRunCmd("decrypt", "Decrypt every record hex field into its value", (*hexcrypt.Engine).DecryptBatch),
	)
	return cmd
}

func newBatchRunCmd(name, short string, run batchFunc) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cfg, err := loadEngine()
			if err != nil {
				return err
			}
			b, err := hexcrypt.LoadBatch(fs, in)
			if err != nil {
				return err
			}

			ctx, stop := signals.WithInterrupt(cmd.Context())
			defer stop()

			stats, runErr := run(e, ctx, b.Records, cfg.Cipher.Key, cfg.Cipher.IV)
			if err := hexcrypt.SaveBatch(fs, out, b); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render("batch "+name))
			fmt.Fprintln(w, field("succeeded", okStyle.Render(fmt.Sprint(stats.Succeeded))))
			fmt.Fprintln(w, field("failed", errorStyle.Render(fmt.Sprint(stats.Failed))))
			fmt.Fprintln(w, field("skipped", fmt.Sprint(stats.Skipped)))
			fmt.Fprintln(w, field("written", out))
			return runErr
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input YAML batch file")
	cmd.Flags().StringVar(&out, "out", "", "output YAML batch file")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	return cmd
}
