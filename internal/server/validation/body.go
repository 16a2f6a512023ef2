package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/policia-dp/delegacia-api/internal/apperror"
)

// MsgMalformedBody is reported when the request body is not a JSON object.
const MsgMalformedBody = "Corpo da requisição inválido"

// Body is a decoded JSON object that remembers member order, so unknown
// fields can be reported in the order they appear in the document.
type Body struct {
	values map[string]json.RawMessage
	order  []string
}

// ParseBody decodes data as a single JSON object. An empty body is treated as
// an empty object (a PATCH may legitimately carry no body). Any other
// top-level value fails with the 400 the terminal handler writes out as-is.
func ParseBody(data []byte) (*Body, error) {
	b := &Body{values: map[string]json.RawMessage{}}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return b, nil
	}
	if err != nil {
		return nil, apperror.Validation([]string{MsgMalformedBody})
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, apperror.Validation([]string{MsgMalformedBody})
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, apperror.Validation([]string{MsgMalformedBody})
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, apperror.Validation([]string{MsgMalformedBody})
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, apperror.Validation([]string{MsgMalformedBody})
		}
		if _, dup := b.values[key]; !dup {
			b.order = append(b.order, key)
		}
		b.values[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, apperror.Validation([]string{MsgMalformedBody})
	}

	return b, nil
}

// Get returns the raw value of a field and whether it was present.
func (b *Body) Get(field string) (json.RawMessage, bool) {
	raw, ok := b.values[field]
	return raw, ok
}

// Has reports whether the field appeared in the body.
func (b *Body) Has(field string) bool {
	_, ok := b.values[field]
	return ok
}

// Fields lists the member names in document order.
func (b *Body) Fields() []string {
	return b.order
}

// Len returns the number of distinct members.
func (b *Body) Len() int {
	return len(b.values)
}

func (b *Body) String() string {
	return fmt.Sprintf("Body%v", b.order)
}
