package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the keyring fingerprint",
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
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\nIdentity:    %s\n", pub.Fingerprint(), pub.ID())
			return nil
		},
	}
}
