// Package emit serializes a discovery store into Cap'n Proto schema text.
//
// Output ordering is two-tier and deliberate: record blocks sorted by
// name so the file is reproducible and diffable regardless of
// filesystem traversal order, fields in declaration order so the index
// numbering tracks the native layout.
package emit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"capnp-generator/internal/schema"
)

// SchemaID is the fixed unique identifier line of every emitted schema.
const SchemaID = "0x1234_5678_ABCD_EF01"

// DefaultFilename is the schema file written when no override is given.
const DefaultFilename = "generated.capnp"

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Emitter renders a store as schema text.
type Emitter struct {
	// ID overrides the schema identifier; SchemaID when empty.
	ID string
}

// Render serializes the whole store: the identifier line, one struct
// block per record sorted by name ascending (stubs render as empty
// blocks), then one struct block per optional wrapper sorted by name
// ascending. Field names are lowercased; indexes follow declaration order.
func (e *Emitter) Render(store *schema.Store) []byte {
	id := e.ID
	if id == "" {
		id = SchemaID
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "@%s;\n\n", id)

	for _, name := range store.RecordNames() {
		fields, _ := store.Record(name)

		fmt.Fprintf(&b, "struct %s {\n", name)
		for i, f := range fields {
			fmt.Fprintf(&b, "  %s @%d :%s;\n", strings.ToLower(f.Name), i, f.Type)
		}
		b.WriteString("}\n\n")
	}

	for _, name := range store.WrapperNames() {
		wrapped, _ := store.Wrapper(name)

		fmt.Fprintf(&b, "struct %s {\n", name)
		fmt.Fprintf(&b, "  %s @0 :%s;\n", schema.WrapperField, wrapped)
		b.WriteString("}\n\n")
	}

	return b.Bytes()
}

// WriteFile renders the store and writes it to outputPath, creating
// parent directories as needed. The file is rebuilt wholesale on every
// run; there is no incremental update.
func (e *Emitter) WriteFile(store *schema.Store, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, e.Render(store), filePerm); err != nil {
		return fmt.Errorf("writing schema %s: %w", outputPath, err)
	}

	return nil
}
