package codec

import (
	"errors"
	"fmt"

	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/arbor/api"
	"github.com/agentic-research/arbor/internal/tree"
)

// Form identifies the interchange form of an import payload.
type Form int

const (
	FormUnknown Form = iota
	FormFlat
	FormNested
)

// ErrUnknownForm is returned when a payload matches neither interchange form.
var ErrUnknownForm = errors.New("unrecognized import payload")

// DetectForm inspects a parsed payload. Flat form announces itself with
// root_id/nodes keys; anything else is nested if it either has no kind or
// declares itself a folder.
func DetectForm(v any) Form {
	m, ok := v.(map[string]any)
	if !ok {
		return FormUnknown
	}
	if _, ok := m["root_id"]; ok {
		return FormFlat
	}
	if _, ok := m["nodes"]; ok {
		return FormFlat
	}
	kind, present := m["kind"]
	if !present {
		return FormNested
	}
	if s, ok := kind.(string); ok && s == api.KindFolder {
		return FormNested
	}
	return FormUnknown
}

// Import parses payload, auto-detects its form and rebuilds a snapshot.
// Unparseable payloads and flat documents with a dangling root_id are
// format errors; nested payloads degrade gracefully to defaults instead.
func Import(payload []byte) (*tree.Snapshot, error) {
	v, err := oj.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("parse import payload: %w", err)
	}
	switch DetectForm(v) {
	case FormFlat:
		return DecodeFlat(payload)
	case FormNested:
		return FromNested(NestedFromAny(v)), nil
	default:
		return nil, ErrUnknownForm
	}
}
