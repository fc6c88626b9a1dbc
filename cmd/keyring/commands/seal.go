package commands

import (
	"os"

	"github.com/spf13/cobra"

	"keyring/internal/domain"
)

func (c *cli) sealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seal <peer> <infile> <outfile>",
		Short: "Sign a file and encrypt it to a peer",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := c.requirePassphrase()
			if err != nil {
				return err
			}
			plaintext, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			sealed, err := c.wire.Messages.Seal(pass, domain.PeerName(args[0]), plaintext)
			if err != nil {
				return err
			}
			return writeOutput(args[2], sealed)
		},
	}
}

func (c *cli) openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <peer> <infile> <outfile>",
		Short: "Decrypt a sealed file and check it came from the peer",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := c.requirePassphrase()
			if err != nil {
				return err
			}
			sealed, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			msg, err := c.wire.Messages.Open(pass, domain.PeerName(args[0]), sealed)
			if err != nil {
				return err
			}
			return writeOutput(args[2], msg.Plaintext)
		},
	}
}
