package main

import (
	"fmt"

	"github.com/go-i2p/go-hexcrypt/lib/codec"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// plaintextArg returns the payload given either through --value or as the
// single positional argument. Negative numbers must use --value or follow --.
func plaintextArg(cmd *cobra.Command, args []string, value string) (string, error) {
	fromFlag := cmd.Flags().Changed("value")
	switch {
	case fromFlag && len(args) == 0:
		return value, nil
	case !fromFlag && len(args) == 1:
		return args[0], nil
	default:
		return "", oops.Errorf("give the value either with --value or as one argument")
	}
}

func newEncryptCmd() *cobra.Command {
	var typeName, value string
	cmd := &cobra.Command{
		Use:   "encrypt [--value <value> | [--] <value>]",
		Short: "Encrypt a value and print the ciphertext as hex",
		Example: `  hexcrypt encrypt --key k "Hello"
  hexcrypt encrypt --type int --value -1
  hexcrypt encrypt --type long -- -1234567890`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := plaintextArg(cmd, args, value)
			if err != nil {
				return err
			}
			kind, err := codec.ParseKind(typeName)
			if err != nil {
				return err
			}
			v, err := codec.ParseValue(kind, raw)
			if err != nil {
				return err
			}
			e, cfg, err := loadEngine()
			if err != nil {
				return err
			}
			hexText, err := e.Encrypt(v, cfg.Cipher.Key, cfg.Cipher.IV)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hexText)
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "string", "value type: string, int, float or long")
	cmd.Flags().StringVarP(&value, "value", "v", "", "value to encrypt, required for negative numbers unless given after --")
	return cmd
}

func newDecryptCmd() *cobra.Command {
	var typeName string
	cmd := &cobra.Command{
		Use:   "decrypt <hex>",
		Short: "Decrypt hex ciphertext and print the value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := codec.ParseKind(typeName)
			if err != nil {
				return err
			}
			e, cfg, err := loadEngine()
			if err != nil {
				return err
			}
			v, err := e.Decrypt(args[0], kind, cfg.Cipher.Key, cfg.Cipher.IV)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "string", "value type: string, int, float or long")
	return cmd
}
