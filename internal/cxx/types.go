package cxx

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the coarse classification of a field type, mirroring the
// buckets a C++ frontend reports for builtin and compound types.
type Kind int

const (
	KindInt      Kind = iota + 1 // signed int, long, short
	KindUInt                     // unsigned int, long, short
	KindLongLong                 // long long
	KindULongLong                // unsigned long long
	KindFloat                    // single-precision float
	KindDouble                   // double-precision float
	KindBool                     // bool
	KindRecord                   // class/struct types, std:: templates, user names
	KindOther                    // pointers, references, arrays, anything else
)

// TypeDescriptor describes a field's native type.
type TypeDescriptor struct {
	// Spelling is the syntactic form as written in the source,
	// e.g. "int", "std::vector<double>", "boost::optional<Point>".
	Spelling string
	// Kind is the coarse classification of the type.
	Kind Kind
}

// FieldDecl is one data member of a structured declaration.
type FieldDecl struct {
	Name string
	Type TypeDescriptor
}

// Declaration is one top-level class/struct declaration.
// Name is empty for anonymous declarations.
type Declaration struct {
	Name   string
	Fields []FieldDecl
}

// Parser yields top-level structured declarations in traversal order:
// file order first, declaration order within a file second.
type Parser interface {
	Declarations() ([]Declaration, error)
}
