package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/just-bake/jtok/tokenizer"
)

// keywordEntry is one entry of the "tokens" list in a keyword file.
type keywordEntry struct {
	Literal string `mapstructure:"literal"`
	Name    string `mapstructure:"name"`
}

// keywordTable is the set of literals registered before scanning, with a
// display name for each user type.
type keywordTable struct {
	defs  []tokenizer.Definition
	names map[tokenizer.TokenType]string
}

// defaultKeywords is the table used when no keyword file is given.
var defaultKeywords = []keywordEntry{
	{Literal: "if", Name: "IF"},
	{Literal: "return", Name: "RETURN"},
	{Literal: "==", Name: "=="},
	{Literal: "{", Name: "{"},
	{Literal: "}", Name: "}"},
}

// newKeywordTable assigns types from TokenUser+1 in list order. An empty
// name falls back to the literal itself.
func newKeywordTable(entries []keywordEntry) (*keywordTable, error) {
	kt := &keywordTable{names: make(map[tokenizer.TokenType]string, len(entries))}
	for i, entry := range entries {
		if entry.Literal == "" {
			return nil, fmt.Errorf("keyword %d: empty literal", i+1)
		}
		typ := tokenizer.TokenUser + 1 + tokenizer.TokenType(i)
		name := entry.Name
		if name == "" {
			name = entry.Literal
		}
		kt.defs = append(kt.defs, tokenizer.Definition{Literal: entry.Literal, Type: typ})
		kt.names[typ] = name
	}
	return kt, nil
}

// loadKeywords reads the "tokens" list from path, or returns the default
// table when path is empty.
func loadKeywords(path string) (*keywordTable, error) {
	if path == "" {
		return newKeywordTable(defaultKeywords)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading keyword file: %w", err)
	}
	var entries []keywordEntry
	if err := v.UnmarshalKey("tokens", &entries); err != nil {
		return nil, fmt.Errorf("decoding keyword file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("keyword file %s defines no tokens", path)
	}
	return newKeywordTable(entries)
}

// name returns the display name for typ.
func (kt *keywordTable) name(typ tokenizer.TokenType) string {
	if name, ok := kt.names[typ]; ok {
		return name
	}
	if typ.IsUser() {
		return "CUSTOM"
	}
	return typ.String()
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the active keyword table",
	Long:  "Print each registered literal with its assigned token type, in match order.",
	Args:  cobra.NoArgs,
	RunE:  listKeywords,
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}

func listKeywords(cmd *cobra.Command, _ []string) error {
	kt, err := loadKeywords(viper.GetString("keywords"))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, def := range kt.defs {
		fmt.Fprintf(out, "%-6d %-10s %q\n", int(def.Type), kt.name(def.Type), def.Literal)
	}
	return nil
}
