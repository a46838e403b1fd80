package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/just-bake/jtok/internal/logfields"
)

var rootCmd = &cobra.Command{
	Use:          "jtok",
	Short:        "Generic keyword-driven tokenizer",
	Long:         "jtok splits source text into identifiers, numbers, strings, symbols and user-registered keywords.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().StringP("keywords", "k", "", "Keyword table file (yaml, json or toml)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("keywords", rootCmd.PersistentFlags().Lookup("keywords"))
}

func initConfig() {
	viper.SetEnvPrefix("JTOK")
	viper.AutomaticEnv()
}

// newLogger builds the command logger from the bound verbosity settings.
func newLogger(w io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)

	switch {
	case viper.GetBool("debug"):
		log.SetLevel(logrus.DebugLevel)
	case viper.GetBool("verbose"):
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}

	switch format := viper.GetString("log_format"); format {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log, nil
}

func commandLogger(cmd *cobra.Command, name string) (logrus.FieldLogger, error) {
	log, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return log.WithField(logfields.LogSubsys, name), nil
}
