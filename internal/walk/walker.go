// Package walk drives declarations from the structural parser through
// the classifier and into the discovery store.
package walk

import (
	"capnp-generator/internal/classify"
	"capnp-generator/internal/cxx"
	"capnp-generator/internal/diagnostic"
	"capnp-generator/internal/schema"
)

// Walker consumes the parser's declaration stream in order, resolves
// every field type, and records the results. It is single-pass: each
// declaration is visited exactly once, in the order the parser yields it.
type Walker struct {
	classifier *classify.Classifier
	store      *schema.Store
	diags      *diagnostic.Diagnostics
}

// New creates a Walker writing into store. diags may be nil.
func New(classifier *classify.Classifier, store *schema.Store, diags *diagnostic.Diagnostics) *Walker {
	return &Walker{
		classifier: classifier,
		store:      store,
		diags:      diags,
	}
}

// Walk processes all declarations and returns the number of records
// stored. Anonymous declarations and declarations without fields are
// skipped. A record name seen twice is overwritten: last write wins,
// including over stubs the classifier registered earlier.
func (w *Walker) Walk(decls []cxx.Declaration) int {
	stored := 0

	for _, decl := range decls {
		if decl.Name == "" {
			if w.diags != nil {
				w.diags.AddInfo(diagnostic.CodeAnonymousSkipped, "skipped anonymous declaration", "", "")
			}

			continue
		}

		if len(decl.Fields) == 0 {
			continue
		}

		fields := make([]schema.Field, 0, len(decl.Fields))
		for _, f := range decl.Fields {
			w.classifier.At(decl.Name, f.Name)
			fields = append(fields, schema.Field{
				Name: f.Name,
				Type: w.classifier.Resolve(f.Type, w.store),
			})
		}

		w.store.PutRecord(decl.Name, fields)
		stored++
	}

	return stored
}
