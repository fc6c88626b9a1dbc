package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyring/internal/crypto"
)

func (c *cli) exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the public keyring (DER to -o, base64 to stdout)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := c.requirePassphrase()
			if err != nil {
				return err
			}
			pub, err := c.wire.Identity.PublicKeyring(pass)
			if err != nil {
				return err
			}
			der, err := pub.MarshalBinary()
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), crypto.B64(der))
				return nil
			}
			return writeOutput(out, der)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write DER to this file")
	return cmd
}
