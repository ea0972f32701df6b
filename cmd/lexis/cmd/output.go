package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/corey/lexis/internal/domain/symbols"
	"github.com/corey/lexis/internal/domain/token"
)

// successEnvelope is the single JSON object printed on stdout for a
// successful run.
type successEnvelope struct {
	OK         bool   `json:"ok"`
	Extract    string `json:"extract"`
	SourceFile string `json:"sourceFile"`
	Language   string `json:"language"`
	Count      int    `json:"count"`
	Result     any    `json:"result"`
}

// errorEnvelope is the single JSON object printed on stderr for a failure.
type errorEnvelope struct {
	OK    bool        `json:"ok"`
	Error *CodedError `json:"error"`
}

func writeSuccess(w io.Writer, extract, sourceFile, language string, count int, result any) {
	enc := json.NewEncoder(w)
	_ = enc.Encode(successEnvelope{
		OK:         true,
		Extract:    extract,
		SourceFile: sourceFile,
		Language:   language,
		Count:      count,
		Result:     result,
	})
}

func writeError(w io.Writer, err *CodedError) {
	enc := json.NewEncoder(w)
	_ = enc.Encode(errorEnvelope{OK: false, Error: err})
}

// categoryColors maps highlighting categories to terminal colors for the
// --color dump. Unknown categories render unstyled.
var categoryColors = map[string]*color.Color{
	"keyword":     color.New(color.FgMagenta, color.Bold),
	"string":      color.New(color.FgGreen),
	"number":      color.New(color.FgCyan),
	"comment":     color.New(color.FgHiBlack),
	"identifier":  color.New(color.FgWhite),
	"operator":    color.New(color.FgYellow),
	"punctuation": color.New(color.FgHiBlack),
	"heading":     color.New(color.FgBlue, color.Bold),
	"error":       color.New(color.FgRed, color.Underline),
}

// writeColorTokens renders the source with each token painted by its
// category. Whitespace passes through untouched, so the dump reproduces
// the input layout.
func writeColorTokens(w io.Writer, tokens []token.Token) {
	for _, t := range tokens {
		if c, ok := categoryColors[t.Category]; ok {
			fmt.Fprint(w, c.Sprint(t.Value))
		} else {
			fmt.Fprint(w, t.Value)
		}
	}
	fmt.Fprintln(w)
}

// writeColorSymbols renders one line per symbol: kind, name, and range.
func writeColorSymbols(w io.Writer, syms []symbols.Symbol) {
	kindColor := color.New(color.FgMagenta)
	nameColor := color.New(color.FgCyan, color.Bold)
	for _, s := range syms {
		fmt.Fprintf(w, "%s %s [%d:%d-%d:%d]\n",
			kindColor.Sprint(s.Kind),
			nameColor.Sprint(s.Name),
			s.ContentRange.Start.Line, s.ContentRange.Start.Column,
			s.ContentRange.End.Line, s.ContentRange.End.Column)
	}
}
