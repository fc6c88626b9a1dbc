package commands

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keyring/internal/app"
)

// passphraseEnv is consulted when -p is not given.
const passphraseEnv = "KEYRING_PASSPHRASE"

type cli struct {
	home       string
	passphrase string
	logLevel   string
	wire       *app.Wire
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "keyring",
		Short:        "Identity keyring: sign, verify, seal and open files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.home, "home", "", "keyring dir (default ~/.keyring)")
	root.PersistentFlags().StringVarP(&c.passphrase, "passphrase", "p", "", "passphrase protecting the keyring")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error (overrides config.yaml)")

	root.AddCommand(
		c.initCmd(),
		c.fingerprintCmd(),
		c.exportCmd(),
		c.importCmd(),
		c.peersCmd(),
		c.signCmd(),
		c.verifyCmd(),
		c.sealCmd(),
		c.openCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	if c.home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.home = filepath.Join(dir, ".keyring")
	}
	if err := os.MkdirAll(c.home, 0o700); err != nil {
		return err
	}

	cfg, err := app.LoadConfig(c.home)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		lvl, err := app.ParseLogLevel(c.logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = lvl
	}
	if c.passphrase == "" {
		c.passphrase = os.Getenv(passphraseEnv)
	}

	log := app.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	c.wire = app.NewWire(cfg, log)
	return nil
}

func (c *cli) requirePassphrase() (string, error) {
	if c.passphrase == "" {
		return "", errors.New("passphrase required (-p or $" + passphraseEnv + ")")
	}
	return c.passphrase, nil
}
