// SPDX-License-Identifier: MIT

// main.go sets up the playfair command-line interface with cobra. The encrypt,
// decrypt and matrix subcommands load configuration through viper and build
// the logger and the cipher before running.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/playfair/cipher"
	"github.com/katalvlaran/playfair/internal/config"
	"github.com/katalvlaran/playfair/internal/logging"
	"github.com/katalvlaran/playfair/keymatrix"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}

// app carries state shared by the subcommands of one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	log     *zap.Logger
	cipher  cipher.Transformer
	square  keymatrix.KeyMatrix
}

// newRootCmd builds a fresh command tree with its own viper instance,
// so tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "playfair",
		Short: "Encrypt and decrypt text with the Playfair cipher.",
		Long: `playfair enciphers and deciphers text with the classical Playfair
digraph cipher. The keyword comes from --keyword, PLAYFAIR_KEYWORD or the
"keyword" entry of .playfair.yaml.

Only Latin letters are kept; J is read as I and output is lower case.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPostRun: a.flush,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.playfair.yaml or ./.playfair.yaml)")
	flags.StringP("keyword", "k", "", "cipher keyword")
	flags.String("log-level", config.DefaultLogLevel, `log level ("debug", "info", "warn", "error")`)
	flags.String("log-format", config.DefaultLogFormat, `log format ("console", "json")`)

	_ = a.v.BindPFlag(config.KeyKeyword, flags.Lookup("keyword"))
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	cmd.AddCommand(a.newEncryptCmd(), a.newDecryptCmd(), a.newMatrixCmd())

	return cmd
}

// setup resolves configuration and builds the logger and cipher.
// Only the cipher subcommands run it; help and completion need no keyword.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	home, _ := os.UserHomeDir()
	if err := config.Configure(a.v, a.cfgFile, home, "."); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log.With(zap.String("command", cmd.Name()))

	c, err := cipher.New(cfg.Keyword)
	if err != nil {
		a.log.Error("invalid keyword", zap.Error(err))
		return err
	}
	a.cipher = c
	a.square = c.Matrix()

	a.log.Debug("cipher ready",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("key", c.Keyword()),
	)

	return nil
}

// flush syncs the logger once a command has run.
func (a *app) flush(*cobra.Command, []string) {
	_ = a.log.Sync()
}

func (a *app) newEncryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [text...]",
		Short:   "Encrypt text (arguments, or stdin when none are given)",
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := a.cipher.Encrypt(text)
			a.log.Debug("encrypted", zap.Int("input_bytes", len(text)), zap.Int("output_letters", len(out)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
}

func (a *app) newDecryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [text...]",
		Short: "Decrypt text (arguments, or stdin when none are given)",
		Long: `Decrypt text. Filler letters inserted during encryption (usually x)
are left in place.`,
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := a.cipher.Decrypt(text)
			if err != nil {
				a.log.Warn("decrypt failed", zap.Error(err))
				return fmt.Errorf("decrypt: %w", err)
			}
			a.log.Debug("decrypted", zap.Int("input_bytes", len(text)), zap.Int("output_letters", len(out)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
}

func (a *app) newMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "matrix",
		Short:   "Print the 5x5 key square",
		Args:    cobra.NoArgs,
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.ToLower(a.square.String()))
			return err
		},
	}
}

// readInput joins args with spaces, or reads all of stdin when args is empty.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
