package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/just-bake/jtok/internal/logfields"
	"github.com/just-bake/jtok/tokenizer"
)

// sampleSource is scanned when neither a file nor --text is given.
const sampleSource = "if (x == 42) {\n    return x;\n}"

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Tokenize a file or inline text",
	Long: "Register the keyword table and print every token of the input until end of input.\n" +
		"Without a file or --text, a built-in sample is scanned.",
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringP("text", "e", "", "Scan this text instead of a file")
	scanCmd.Flags().StringP("format", "f", "text", "Output format: text or json")

	_ = viper.BindPFlag("format", scanCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	if len(args) == 1 && cmd.Flags().Changed("text") {
		return fmt.Errorf("give either a file or --text, not both")
	}

	log, err := commandLogger(cmd, "scan")
	if err != nil {
		return err
	}

	kt, err := loadKeywords(viper.GetString("keywords"))
	if err != nil {
		return err
	}

	format := viper.GetString("format")
	out, err := newTokenWriter(format, cmd.OutOrStdout(), kt)
	if err != nil {
		return err
	}

	opts := []tokenizer.Option{
		tokenizer.WithLogger(log),
		tokenizer.WithDefinitions(kt.defs...),
	}

	var s *tokenizer.Scanner
	switch {
	case len(args) == 1:
		s, err = tokenizer.NewFromFile(args[0], opts...)
		if err != nil {
			return fmt.Errorf("opening source: %w", err)
		}
	case cmd.Flags().Changed("text"):
		s, err = tokenizer.NewFromBytes([]byte(text), opts...)
	default:
		s, err = tokenizer.NewFromBytes([]byte(sampleSource), opts...)
	}
	if err != nil {
		return fmt.Errorf("creating scanner: %w", err)
	}
	defer s.Close()

	count := 0
	for tok := range s.Tokens() {
		if err := out.WriteToken(tok); err != nil {
			return fmt.Errorf("writing token: %w", err)
		}
		count++
	}

	log.WithFields(logrus.Fields{
		logfields.Tokens: count,
		logfields.Bytes:  s.Len(),
		logfields.Format: format,
	}).Info("Scan complete")
	return nil
}
