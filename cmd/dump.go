package cmd

import (
	"bytes"
	"encoding/json"
	"fentc/ast"
	"fentc/syntax"
	"fmt"

	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"
)

// DumpProgram renders a syntax tree in the given format: `json`, `yaml` or
// `pretty`.
func DumpProgram(prog *ast.Program, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(ast.Dump(prog), "", "  ")
		if err != nil {
			return nil, err
		}

		return append(out, '\n'), nil
	case "yaml":
		return yaml.Marshal(ast.Dump(prog))
	case "pretty":
		return []byte(fmt.Sprintf("%# v\n", pretty.Formatter(prog))), nil
	default:
		return nil, fmt.Errorf("unknown output format `%s`", format)
	}
}

// DumpTokens renders the token stream of a source text with one token per
// line.
func DumpTokens(src string) []byte {
	buff := &bytes.Buffer{}

	for _, tok := range syntax.Lex(src) {
		fmt.Fprintf(buff, "%-10s %-12s %q\n", tok.Span, syntax.KindName(tok.Kind), tok.Value)
	}

	return buff.Bytes()
}
