package parser

import (
	"errors"
	"strings"

	"github.com/balkashynov/wcagpairs/internal/models"
)

// ParsedColors is the outcome of parsing a pasted blob of colors
type ParsedColors struct {
	Colors   []models.Color
	Names    map[string]string // canonical hex -> name, only filled from studio codes
	Failures []*ParseFailure
}

// SplitColorTokens splits a blob on runs of commas and newlines, trims each
// token and drops the empty ones. Commas inside parentheses belong to the
// token, so "rgb(1, 2, 3)" survives a bulk paste.
func SplitColorTokens(blob string) []string {
	tokens := []string{}
	var current strings.Builder
	depth := 0

	flush := func() {
		token := strings.TrimSpace(current.String())
		if token != "" {
			tokens = append(tokens, token)
		}
		current.Reset()
		depth = 0
	}

	for _, r := range blob {
		switch {
		case r == '\n' || r == '\r':
			flush()
		case r == ',' && depth == 0:
			flush()
		default:
			if r == '(' {
				depth++
			} else if r == ')' && depth > 0 {
				depth--
			}
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// ParseBulk tokenizes a blob and parses every token in encounter order.
// A studio code is unpacked first; anything else is split on delimiters.
// Bad tokens are collected in Failures and never stop the batch.
func ParseBulk(blob string) ParsedColors {
	result := ParsedColors{
		Colors:   []models.Color{},
		Names:    map[string]string{},
		Failures: []*ParseFailure{},
	}

	var tokens []string
	if code, ok := DecodeStudioCode(blob); ok {
		for _, entry := range code {
			tokens = append(tokens, entry.Hex)
			if entry.Name == "" {
				continue
			}
			if c, err := ParseColor(entry.Hex); err == nil {
				result.Names[c.Hex()] = entry.Name
			}
		}
	} else {
		tokens = SplitColorTokens(blob)
	}

	for _, token := range tokens {
		c, err := ParseColor(token)
		if err != nil {
			var failure *ParseFailure
			if errors.As(err, &failure) {
				result.Failures = append(result.Failures, failure)
			} else {
				result.Failures = append(result.Failures, &ParseFailure{Token: token, Reason: err.Error()})
			}
			continue
		}
		result.Colors = append(result.Colors, c)
	}

	return result
}

// FailedTokens returns the offending tokens, for one-line user feedback
func (p ParsedColors) FailedTokens() []string {
	tokens := make([]string, 0, len(p.Failures))
	for _, f := range p.Failures {
		tokens = append(tokens, f.Token)
	}
	return tokens
}
