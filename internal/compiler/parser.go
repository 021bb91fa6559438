package compiler

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/turing/internal/dto"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

const invalidLineMessage = "line is neither a transition nor a parameter line"

// Parser converts description text into a Machine.
// A Parser holds no per-parse state and may be shared.
type Parser struct {
	logger   *slog.Logger
	defaults domain.MachineParams
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithParserLogger sets the logger used to report skipped lines.
func WithParserLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDefaultParams sets the parameters a description starts from.
// Empty fields keep the built-in defaults.
func WithDefaultParams(params domain.MachineParams) ParserOption {
	return func(p *Parser) {
		if params.Start != "" {
			p.defaults.Start = params.Start
		}
		if params.EmptySymbol != "" {
			p.defaults.EmptySymbol = params.EmptySymbol
		}
	}
}

// NewParser creates a new parser instance.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		logger:   logging.NewNop(),
		defaults: domain.DefaultParams(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseText splits text into lines and parses them.
// Carriage returns are dropped so CRLF input behaves like LF input.
func (p *Parser) ParseText(text string) *domain.Machine {
	text = strings.ReplaceAll(text, "\r", "")
	return p.Parse(strings.Split(text, "\n"))
}

// Parse compiles description lines. Blank lines are ignored. Lines that are
// neither transitions nor parameter lines are reported as diagnostics and
// skipped; parsing never fails.
func (p *Parser) Parse(lines []string) *domain.Machine {
	m := &domain.Machine{
		Transitions: []domain.Transition{},
		Params:      p.defaults,
	}

	n := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n++

		tokens := strings.Split(line, " ")
		rec, err := decodeLine(tokens)
		if err != nil {
			p.reject(m, n, tokens, err.Error())
			continue
		}

		switch {
		case rec.IsTransition():
			m.Transitions = append(m.Transitions, domain.Transition{
				From:  rec.From,
				Read:  rec.Read,
				Write: rec.Write,
				Goto:  rec.Goto,
				Move:  rec.Move,
			})
		case rec.IsParams():
			mergeParams(&m.Params, rec)
		default:
			p.reject(m, n, tokens, invalidLineMessage)
		}
	}

	return m
}

func (p *Parser) reject(m *domain.Machine, line int, tokens []string, msg string) {
	d := domain.Diagnostic{Line: line, Tokens: tokens, Message: msg}
	p.logger.Warn("invalid description line", "line", line, "text", strings.Join(tokens, " "))
	m.Diagnostics = append(m.Diagnostics, d)
}

// pairs maps tokens (0,1), (2,3)... to a key/value map with lower-cased keys.
// A trailing key without value and an empty value both leave the key absent,
// even when an earlier pair set it.
func pairs(tokens []string) map[string]any {
	out := make(map[string]any, (len(tokens)+1)/2)
	for i := 0; i < len(tokens); i += 2 {
		key := strings.ToLower(tokens[i])
		if i+1 == len(tokens) || tokens[i+1] == "" {
			delete(out, key)
			continue
		}
		out[key] = tokens[i+1]
	}
	return out
}

func decodeLine(tokens []string) (dto.LineRecord, error) {
	var rec dto.LineRecord
	if err := mapstructure.Decode(pairs(tokens), &rec); err != nil {
		return rec, fmt.Errorf("failed to decode line: %w", err)
	}
	return rec, nil
}

// mergeParams applies a parameter line on top of the running parameters.
// Every key other than start and empty_symbol lands in Extra, including
// transition keys of an incomplete rule.
func mergeParams(params *domain.MachineParams, rec dto.LineRecord) {
	if rec.Start != "" {
		params.Start = rec.Start
	}
	if rec.EmptySymbol != "" {
		params.EmptySymbol = rec.EmptySymbol
	}

	extra := map[string]string{
		"from":  rec.From,
		"read":  rec.Read,
		"write": rec.Write,
		"goto":  rec.Goto,
		"move":  rec.Move,
	}
	for k, v := range rec.Remain {
		if s, ok := v.(string); ok {
			extra[k] = s
		}
	}
	for k, s := range extra {
		if s == "" || k == "" {
			continue
		}
		if params.Extra == nil {
			params.Extra = make(map[string]string)
		}
		params.Extra[k] = s
	}
}
