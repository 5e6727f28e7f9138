package main

import (
	"fmt"
	"io"

	"github.com/go-i2p/go-hexcrypt/lib/crypto/aes"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newSelfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Check the block cipher against FIPS-197 known answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfTest(cmd.OutOrStdout(), aes.KnownAnswers)
		},
	}
}

func runSelfTest(w io.Writer, vectors []aes.KnownAnswer) error {
	fmt.Fprintln(w, titleStyle.Render("AES-128 known-answer tests"))
	failed := 0
	for _, ka := range vectors {
		err := ka.Check()
		fmt.Fprintln(w, field(status(err == nil), ka.Name))
		if err != nil {
			log.WithError(err).WithField("vector", ka.Name).Error("Known-answer test failed")
			fmt.Fprintln(w, "  "+errorStyle.Render(err.Error()))
			failed++
		}
	}
	if failed > 0 {
		return oops.Errorf("self-test failed: %d of %d vectors", failed, len(vectors))
	}
	return nil
}
