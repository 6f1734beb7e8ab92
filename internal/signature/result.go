package signature

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind records which response shape produced a Result.
type Kind int

const (
	KindText      Kind = iota // body was a bare JSON string
	KindCode                  // taken from the "code" field
	KindSignature             // taken from the "signature" field
	KindObject                // whole body, pretty-printed
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCode:
		return "code"
	case KindSignature:
		return "signature"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is a normalized backend reply.
type Result struct {
	Kind Kind
	Text string
	Raw  []byte
}

// Normalize turns a response body into the string shown to the user:
//
//   - a JSON string is used verbatim
//   - an object's "code" field, then its "signature" field, is used when present;
//     string values verbatim, other non-null values pretty-printed
//   - anything else is pretty-printed whole with two-space indentation
//
// Empty strings and nulls in "code" or "signature" count as absent.
func Normalize(body []byte) (Result, error) {
	raw := bytes.TrimSpace(body)

	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Result{}, fmt.Errorf("invalid response body: %w", err)
	}

	switch v := probe.(type) {
	case string:
		return Result{Kind: KindText, Text: v, Raw: raw}, nil
	case map[string]any:
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return Result{}, fmt.Errorf("invalid response body: %w", err)
		}
		if text, ok := fieldText(fields["code"]); ok {
			return Result{Kind: KindCode, Text: text, Raw: raw}, nil
		}
		if text, ok := fieldText(fields["signature"]); ok {
			return Result{Kind: KindSignature, Text: text, Raw: raw}, nil
		}
	}

	text, err := indent(raw)
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: KindObject, Text: text, Raw: raw}, nil
}

func fieldText(field json.RawMessage) (string, bool) {
	if len(field) == 0 || bytes.Equal(field, []byte("null")) {
		return "", false
	}

	if field[0] == '"' {
		var s string
		if err := json.Unmarshal(field, &s); err != nil || s == "" {
			return "", false
		}
		return s, true
	}

	text, err := indent(field)
	if err != nil {
		return "", false
	}
	return text, true
}

// indent keeps the backend's key order, which a map round-trip would lose.
func indent(raw []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("format response body: %w", err)
	}
	return buf.String(), nil
}
