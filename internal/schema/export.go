package schema

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Export is the JSON projection of a Store, in emission order, for
// downstream tooling that wants the discovery result without parsing
// the schema text.
type Export struct {
	Records  []RecordExport  `json:"records"`
	Wrappers []WrapperExport `json:"wrappers"`
}

// RecordExport is one record entry of an Export. Fields is empty for stubs.
type RecordExport struct {
	Name   string        `json:"name"`
	Fields []FieldExport `json:"fields,omitempty"`
}

// FieldExport is one field entry of a RecordExport.
type FieldExport struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
	Type  string `json:"type"`
}

// WrapperExport is one wrapper entry of an Export.
type WrapperExport struct {
	Name    string `json:"name"`
	Wrapped string `json:"wrapped"`
}

// Export returns the store content sorted the way the emitter sorts it:
// records by name ascending, fields in declaration order, then wrappers
// by name ascending.
func (s *Store) Export() Export {
	out := Export{
		Records:  make([]RecordExport, 0, len(s.records)),
		Wrappers: make([]WrapperExport, 0, len(s.wrappers)),
	}

	for _, name := range s.RecordNames() {
		rec := RecordExport{Name: name}
		for i, f := range s.records[name] {
			rec.Fields = append(rec.Fields, FieldExport{Name: f.Name, Index: i, Type: f.Type})
		}

		out.Records = append(out.Records, rec)
	}

	for _, name := range s.WrapperNames() {
		out.Wrappers = append(out.Wrappers, WrapperExport{Name: name, Wrapped: s.wrappers[name]})
	}

	return out
}

// WriteJSON writes the store's Export as indented JSON to path.
func (s *Store) WriteJSON(path string) error {
	data, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling store export: %w", err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing store export %s: %w", path, err)
	}

	return nil
}
