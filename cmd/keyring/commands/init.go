package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a keyring and store it sealed under the passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := c.requirePassphrase()
			if err != nil {
				return err
			}
			pub, fp, err := c.wire.Identity.GenerateIdentity(pass, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Keyring created.\nFingerprint: %s\nIdentity:    %s\n", fp, pub.ID())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing keyring")
	return cmd
}
