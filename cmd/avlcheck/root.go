package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "AVLCHECK"

	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

type baseConfiguration struct {
	CfgFile   string
	LogLevel  string
	LogFormat string

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	config := &baseConfiguration{log: zerolog.Nop()}
	cmd := &cobra.Command{
		Use:           "avlcheck",
		Short:         "Exercise and verify the AVL ordered map",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.initializeConfig(cmd); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			return config.initLogger(cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&config.CfgFile, keyConfig, "", "config file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&config.LogLevel, keyLogLevel, "info", "logging level, one of: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&config.LogFormat, keyLogFormat, "text", "log format, one of: text, json")

	cmd.AddCommand(newDemoCmd(config))
	cmd.AddCommand(newStressCmd(config))
	return cmd
}

// initializeConfig reads in the config file and ENV variables if set and
// applies them to every flag not given on the command line.
func (c *baseConfiguration) initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	if c.CfgFile != "" {
		v.SetConfigFile(c.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading %s", c.CfgFile)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return bindFlags(cmd, v)
}

// bindFlags applies the viper value to each flag which is not set and for
// which viper has a value.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Name == keyConfig || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
			bindErr = errors.Wrapf(err, "setting flag %q", f.Name)
		}
	})
	return bindErr
}

func (c *baseConfiguration) initLogger(out io.Writer) error {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return errors.Wrapf(err, "invalid %s", keyLogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json":
	case "text":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return errors.Newf("unknown %s %q", keyLogFormat, c.LogFormat)
	}
	c.log = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return nil
}
