// Package validation implements the schema-driven request validation engine:
// declarative rule sets per request shape, eager evaluation, and aggregation
// of every violation in rule-declaration order. Persistence never runs until
// a schema has passed.
package validation

import (
	"encoding/json"

	"github.com/policia-dp/delegacia-api/internal/apperror"
)

// Policy controls how body fields not covered by the rule set are treated.
type Policy int

const (
	// Loose tolerates unknown fields (they pass through unvalidated).
	Loose Policy = iota
	// Strict rejects unknown fields, naming every offender.
	Strict
)

// Check validates a present field value and returns every violated message.
type Check func(raw json.RawMessage) []string

// Rule binds one body field to its checks. Required rules report
// MissingMessage when the field is absent; optional rules only run their
// Check when the field is present.
type Rule struct {
	Field          string
	Required       bool
	MissingMessage string
	Check          Check
}

// Refinement is a cross-field rule evaluated after all field rules. Its
// Field is treated as known under the Strict policy so the refinement
// message wins over the unknown-field message.
type Refinement struct {
	Field    string
	Message  string
	Violated func(b *Body) bool
}

// ForbidField builds a refinement that fires whenever the named field is
// present, regardless of its value.
func ForbidField(field, message string) Refinement {
	return Refinement{
		Field:   field,
		Message: message,
		Violated: func(b *Body) bool {
			return b.Has(field)
		},
	}
}

// Schema is a declarative description of one request shape.
type Schema struct {
	Policy         Policy
	Rules          []Rule
	UnknownMessage func(fields []string) string
	Refinements    []Refinement
}

// Validate evaluates every rule, the unknown-field policy, and every
// refinement, returning all violation messages in declaration order. It
// never stops at the first failure.
func (s *Schema) Validate(b *Body) []string {
	var msgs []string

	for _, r := range s.Rules {
		raw, present := b.Get(r.Field)
		if !present {
			if r.Required {
				msgs = append(msgs, r.MissingMessage)
			}
			continue
		}
		if r.Check != nil {
			msgs = append(msgs, r.Check(raw)...)
		}
	}

	if s.Policy == Strict {
		known := make(map[string]struct{}, len(s.Rules)+len(s.Refinements))
		for _, r := range s.Rules {
			known[r.Field] = struct{}{}
		}
		for _, ref := range s.Refinements {
			known[ref.Field] = struct{}{}
		}
		var unknown []string
		for _, f := range b.Fields() {
			if _, ok := known[f]; !ok {
				unknown = append(unknown, f)
			}
		}
		if len(unknown) > 0 && s.UnknownMessage != nil {
			msgs = append(msgs, s.UnknownMessage(unknown))
		}
	}

	for _, ref := range s.Refinements {
		if ref.Violated(b) {
			msgs = append(msgs, ref.Message)
		}
	}

	return msgs
}

// Apply runs the schema and converts any violations into the aggregated 400.
func (s *Schema) Apply(b *Body) error {
	if msgs := s.Validate(b); len(msgs) > 0 {
		return apperror.Validation(msgs)
	}
	return nil
}
