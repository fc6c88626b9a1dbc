package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"keyring/internal/domain"
)

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <name> <file>",
		Short: "File a peer's public keyring (DER or base64) under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			der, err := readKeyringFile(args[1])
			if err != nil {
				return err
			}
			rec, err := c.wire.Peers.ImportPeer(domain.PeerName(args[0]), der)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\nFingerprint: %s\n", rec.Name, rec.Print)
			return nil
		},
	}
}

func (c *cli) peersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peers",
		Short: "List imported peers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := c.wire.Peers.ListPeers()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tFINGERPRINT\tADDED")
			for _, r := range recs {
				added := time.Unix(r.AddedUTC, 0).UTC().Format(time.DateOnly)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Print, added)
			}
			return tw.Flush()
		},
	}
}
