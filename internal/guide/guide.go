// Package guide serves the static buying guide bundled into the binary.
package guide

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
)

//go:embed guide.json
var raw []byte

// Guide holds the decoded sections keyed by name.
type Guide struct {
	sections map[string]json.RawMessage
}

// Load decodes the embedded guide.
func Load() (*Guide, error) {
	return Parse(raw)
}

// Parse decodes a guide document. The top level must be a JSON object.
func Parse(data []byte) (*Guide, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("decode guide: %w", err)
	}
	return &Guide{sections: sections}, nil
}

// All returns every section.
func (g *Guide) All() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(g.sections))
	for name, body := range g.sections {
		out[name] = body
	}
	return out
}

// Sections lists the section names alphabetically.
func (g *Guide) Sections() []string {
	names := make([]string, 0, len(g.sections))
	for name := range g.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Section returns one section by name, or NOT_FOUND.
func (g *Guide) Section(name string) (json.RawMessage, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	body, ok := g.sections[key]
	if !ok {
		return nil, pkgerrors.NotFound("guide section", name)
	}
	return body, nil
}
