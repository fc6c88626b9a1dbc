package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keyring/internal/crypto"
	"keyring/internal/domain"
	"keyring/internal/services/peer"
)

// ErrBadSignature is returned by verify when the signature does not check out.
var ErrBadSignature = errors.New("signature verification failed")

func (c *cli) signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <file>",
		Short: "Sign a file; prints the base64 signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := c.requirePassphrase()
			if err != nil {
				return err
			}
			msg, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			sig, err := c.wire.Identity.Sign(pass, msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.B64(sig))
			return nil
		},
	}
}

func (c *cli) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <peer|self> <file> <sigfile>",
		Short: "Check a base64 signature over a file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			rawSig, err := os.ReadFile(args[2])
			if err != nil {
				return err
			}
			sig, err := crypto.FromB64(string(rawSig))
			if err != nil {
				return fmt.Errorf("signature file: %w", err)
			}

			var ok bool
			if domain.PeerName(args[0]) == peer.SelfName {
				pass, err := c.requirePassphrase()
				if err != nil {
					return err
				}
				pub, err := c.wire.Identity.PublicKeyring(pass)
				if err != nil {
					return err
				}
				ok = pub.Verify(msg, sig)
			} else {
				ok, err = c.wire.Peers.VerifyFrom(domain.PeerName(args[0]), msg, sig)
				if err != nil {
					return err
				}
			}
			if !ok {
				return ErrBadSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signature OK")
			return nil
		},
	}
}
