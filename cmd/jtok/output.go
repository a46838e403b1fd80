package main

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/just-bake/jtok/tokenizer"
)

// tokenWriter renders tokens in one output format.
type tokenWriter interface {
	WriteToken(tok tokenizer.Token) error
}

func newTokenWriter(format string, w io.Writer, kt *keywordTable) (tokenWriter, error) {
	switch format {
	case "", "text":
		return &textWriter{w: w, kt: kt}, nil
	case "json":
		return &jsonWriter{enc: jsontext.NewEncoder(w), kt: kt}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type textWriter struct {
	w  io.Writer
	kt *keywordTable
}

func (tw *textWriter) WriteToken(tok tokenizer.Token) error {
	_, err := fmt.Fprintf(tw.w, "Token %-10s: '%s'\n", tw.kt.name(tok.Type), tok.Text)
	return err
}

// tokenRecord is the JSON form of a token, one object per line.
type tokenRecord struct {
	Type   string `json:"type"`
	Code   int    `json:"code"`
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

type jsonWriter struct {
	enc *jsontext.Encoder
	kt  *keywordTable
}

func (jw *jsonWriter) WriteToken(tok tokenizer.Token) error {
	rec := tokenRecord{
		Type:   jw.kt.name(tok.Type),
		Code:   int(tok.Type),
		Text:   string(tok.Text),
		Offset: tok.Offset,
		Length: tok.Length(),
	}
	return json.MarshalEncode(jw.enc, rec)
}
