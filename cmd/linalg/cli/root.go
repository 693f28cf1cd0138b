// SPDX-License-Identifier: MIT

// Package cli wires the linalg command tree: cobra commands, viper-backed
// configuration (flags, LINALG_* environment variables, optional config
// file) and slog logging through a tint handler.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys shared by flags, environment variables and config files.
const (
	keyConfig        = "config"
	keyLogLevel      = "log-level"
	keyKinds         = "kinds"
	keySize          = "size"
	keyRuns          = "runs"
	keySeed          = "seed"
	keyTolerance     = "tolerance"
	keyMaxIterations = "max-iterations"
)

const envPrefix = "LINALG"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v   *viper.Viper
	log *slog.Logger
}

// Main returns the root command. Every call builds an independent tree.
func Main() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "linalg",
		Short:        "Benchmarks and demos for dense float64 and 100-digit decimal linear algebra",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.PersistentFlags().String(keyConfig, "", "optional config file (any format viper reads: yaml, json, toml, ...)")
	root.PersistentFlags().String(keyLogLevel, "info", "log level: debug, info, warn or error")
	_ = root.MarkPersistentFlagFilename(keyConfig)
	root.SetGlobalNormalizationFunc(normalizeFlag)

	root.AddCommand(a.benchCommand())
	root.AddCommand(a.jacobiCommand())

	return root
}

// setup binds the flags of the executing command, reads the optional config
// file and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.bindFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level, err := parseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	a.log = newLogger(cmd.ErrOrStderr(), level)
	a.log.Debug("configuration loaded", "command", cmd.Name(), "config", a.v.ConfigFileUsed())

	return nil
}

func (a *app) bindFlags(fs *pflag.FlagSet) error {
	if err := a.v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	return nil
}

// normalizeFlag lets --max_iterations stand for --max-iterations.
func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
