package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capnp-generator/internal/cxx"
	"capnp-generator/internal/diagnostic"
	"capnp-generator/internal/schema"
)

func TestResolvePrimitives(t *testing.T) {
	tests := []struct {
		name     string
		desc     cxx.TypeDescriptor
		expected string
	}{
		{"int", cxx.TypeDescriptor{Spelling: "int", Kind: cxx.KindInt}, "Int32"},
		{"short", cxx.TypeDescriptor{Spelling: "short", Kind: cxx.KindInt}, "Int32"},
		{"unsigned", cxx.TypeDescriptor{Spelling: "unsigned int", Kind: cxx.KindUInt}, "UInt32"},
		{"long long", cxx.TypeDescriptor{Spelling: "long long", Kind: cxx.KindLongLong}, "Int64"},
		{"unsigned long long", cxx.TypeDescriptor{Spelling: "unsigned long long", Kind: cxx.KindULongLong}, "UInt64"},
		{"float", cxx.TypeDescriptor{Spelling: "float", Kind: cxx.KindFloat}, "Float32"},
		{"double", cxx.TypeDescriptor{Spelling: "double", Kind: cxx.KindDouble}, "Float64"},
		{"bool", cxx.TypeDescriptor{Spelling: "bool", Kind: cxx.KindBool}, "Bool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Classifier{}
			store := schema.NewStore()

			assert.Equal(t, tt.expected, c.Resolve(tt.desc, store))
			assert.True(t, store.Empty(), "primitive resolution must not touch the store")
		})
	}
}

func TestResolveOptionalPrimitives(t *testing.T) {
	tests := []struct {
		spelling string
		expected string
	}{
		{"boost::optional<int>", "OptionalInt32"},
		{"boost::optional<short>", "OptionalShort"},
		{"boost::optional<float>", "OptionalFloat32"},
		{"boost::optional<double>", "OptionalFloat64"},
		{"boost::optional<long long>", "OptionalInt64"},
		{"std::optional<double>", "OptionalFloat64"},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			c := &Classifier{}
			store := schema.NewStore()

			desc := cxx.TypeDescriptor{Spelling: tt.spelling, Kind: cxx.KindRecord}
			assert.Equal(t, tt.expected, c.Resolve(desc, store))

			// Fixed primitive wrappers are externally defined: never
			// registered in the store.
			assert.True(t, store.Empty())
		})
	}
}

func TestResolveOptionalRecord(t *testing.T) {
	c := &Classifier{}
	store := schema.NewStore()

	desc := cxx.TypeDescriptor{Spelling: "boost::optional<Foo>", Kind: cxx.KindRecord}

	// Two fields of the same optional type register exactly one stub
	// and one wrapper.
	assert.Equal(t, "OptionalFoo", c.Resolve(desc, store))
	assert.Equal(t, "OptionalFoo", c.Resolve(desc, store))

	assert.Equal(t, []string{"Foo"}, store.RecordNames())

	fields, ok := store.Record("Foo")
	require.True(t, ok)
	assert.Empty(t, fields, "referenced-only records are stubs")

	assert.Equal(t, []string{"OptionalFoo"}, store.WrapperNames())
	wrapped, _ := store.Wrapper("OptionalFoo")
	assert.Equal(t, "Foo", wrapped)
}

func TestResolveOptionalMalformed(t *testing.T) {
	tests := []struct {
		name     string
		spelling string
	}{
		{"unclosed", "boost::optional<"},
		{"empty", "boost::optional<>"},
		{"nested generic", "boost::optional<std::vector<int>>"},
		{"qualified inner", "std::optional<std::string>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diags diagnostic.Diagnostics
			c := &Classifier{Diags: &diags}
			store := schema.NewStore()

			desc := cxx.TypeDescriptor{Spelling: tt.spelling, Kind: cxx.KindRecord}
			assert.Equal(t, "Text", c.Resolve(desc, store))
			assert.True(t, store.Empty())

			require.Len(t, diags.Warnings, 1)
			assert.Equal(t, diagnostic.CodeOptionalMalformed, diags.Warnings[0].Code)
		})
	}
}

func TestResolveString(t *testing.T) {
	c := &Classifier{}
	store := schema.NewStore()

	for _, spelling := range []string{"std::string", "std::basic_string<char>"} {
		desc := cxx.TypeDescriptor{Spelling: spelling, Kind: cxx.KindRecord}
		assert.Equal(t, "Text", c.Resolve(desc, store))
	}

	assert.True(t, store.Empty())
}

func TestResolveVector(t *testing.T) {
	tests := []struct {
		spelling string
		expected string
	}{
		{"std::vector<int>", "List(Int32)"},
		// Coarse containment: "unsigned int" matches "int" first.
		{"std::vector<unsigned int>", "List(Int32)"},
		{"std::vector<float>", "List(Float32)"},
		{"std::vector<double>", "List(Float64)"},
		{"std::vector<bool>", "List(Bool)"},
		{"std::vector<std::string>", "List(Text)"},
		{"std::vector<Widget>", "List(Text)"},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			c := &Classifier{}
			store := schema.NewStore()

			desc := cxx.TypeDescriptor{Spelling: tt.spelling, Kind: cxx.KindRecord}
			assert.Equal(t, tt.expected, c.Resolve(desc, store))
			assert.True(t, store.Empty(), "list elements are never registered")
		})
	}
}

func TestResolveRecordReference(t *testing.T) {
	c := &Classifier{}
	store := schema.NewStore()

	desc := cxx.TypeDescriptor{Spelling: "Point", Kind: cxx.KindRecord}
	assert.Equal(t, "Point", c.Resolve(desc, store))

	fields, ok := store.Record("Point")
	require.True(t, ok)
	assert.Empty(t, fields)
	assert.Empty(t, store.WrapperNames(), "direct references are not wrapped")
}

func TestResolveFallback(t *testing.T) {
	var diags diagnostic.Diagnostics
	c := &Classifier{Diags: &diags}
	c.At("Node", "next")

	store := schema.NewStore()

	desc := cxx.TypeDescriptor{Spelling: "Node*", Kind: cxx.KindOther}
	assert.Equal(t, "Text", c.Resolve(desc, store))

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeTypeFallback, diags.Warnings[0].Code)
	assert.Equal(t, "Node", diags.Warnings[0].Record)
	assert.Equal(t, "next", diags.Warnings[0].Field)
}

func TestResolveWithoutDiagsDoesNotPanic(t *testing.T) {
	c := &Classifier{}
	store := schema.NewStore()

	desc := cxx.TypeDescriptor{Spelling: "void*", Kind: cxx.KindOther}
	assert.Equal(t, "Text", c.Resolve(desc, store))
}
