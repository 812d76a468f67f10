// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gilramir/genericstack"
	"github.com/gilramir/genericstack/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var allSections = []string{"fundamentals", "specifics", "iterators"}

// State shared by the root command and its subcommands.
type appT struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	app := &appT{v: viper.New()}
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "stackdemo",
		Short: "Exercise the genericstack container",
		Long: "stackdemo runs the genericstack demonstration sections, showing every " +
			"operation of the container along with its expected failures.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initialize(cmd, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runSections(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/stackdemo/stackdemo.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringSlice("section", allSections, "Sections to run (repeat or pass comma-separated names)")

	cmd.AddCommand(newBuildCommand(app))
	return cmd
}

// Binds the flags of cmd into viper, reads the config file, and sets up
// the loggers.
func (s *appT) initialize(cmd *cobra.Command, cfgFile string) error {
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	s.v.SetEnvPrefix("STACKDEMO")
	s.v.AutomaticEnv()

	if err := s.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := s.readConfig(cfgFile); err != nil {
		return err
	}

	logger, err := logging.New(s.v.GetString("log-level"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	s.logger = logger
	if s.v.GetString("log-level") == "debug" {
		genericstack.SetDebugLogger(logging.StdLogger(logger))
	}
	return nil
}

func (s *appT) readConfig(cfgFile string) error {
	if cfgFile != "" {
		s.v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			// No home, no default config file
			return nil
		}
		s.v.AddConfigPath(filepath.Join(home, ".config/stackdemo"))
		s.v.SetConfigType("yaml")
		s.v.SetConfigName("stackdemo")
	}

	if err := s.v.ReadInConfig(); err != nil {
		// it's ok if we don't have a config file, we can fall back to defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func (s *appT) runSections(cmd *cobra.Command) error {
	d := newDemo(cmd.OutOrStdout(), s.logger)
	sections := map[string]func() error{
		"fundamentals": d.fundamentals,
		"specifics":    d.specifics,
		"iterators":    d.iterators,
	}

	names := s.v.GetStringSlice("section")
	for _, name := range names {
		if _, has := sections[name]; !has {
			return fmt.Errorf("unknown section %q (expected one of %s)",
				name, strings.Join(allSections, ", "))
		}
	}
	for _, name := range names {
		s.logger.Debug("running section", zap.String("section", name))
		if err := sections[name](); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
	}
	return nil
}
