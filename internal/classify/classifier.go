package classify

import (
	"fmt"
	"regexp"
	"strings"

	"capnp-generator/internal/cxx"
	"capnp-generator/internal/diagnostic"
	"capnp-generator/internal/schema"
)

// optionalPrimitives maps recognized optional base spellings to their
// fixed wrapper names. These wrappers are externally defined; they are
// referenced by name but never registered in the store.
var optionalPrimitives = map[string]string{
	"int":       "OptionalInt32",
	"short":     "OptionalShort",
	"float":     "OptionalFloat32",
	"double":    "OptionalFloat64",
	"long long": "OptionalInt64",
}

// optionalMarkers are the container spellings recognized as optionals.
var optionalMarkers = []string{"boost::optional<", "std::optional<"}

// vectorElemPriority is the coarse substring order for sequence element
// sniffing. The order is load-bearing: "int" is deliberately checked
// before "float", and containment (not equality) is intentional, so
// e.g. "unsigned int" lands on Int32.
var vectorElemPriority = []struct {
	substr string
	elem   string
}{
	{"int", schema.TypeInt32},
	{"float", schema.TypeFloat32},
	{"double", schema.TypeFloat64},
	{"bool", schema.TypeBool},
}

var recordNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Classifier resolves field type descriptors to target type names,
// registering stubs and wrappers in the store as it goes. Diags is
// optional; when set, Text fallbacks are recorded there.
type Classifier struct {
	Diags *diagnostic.Diagnostics

	record string
	field  string
}

// At sets the declaration context used for diagnostics.
func (c *Classifier) At(record, field string) {
	c.record = record
	c.field = field
}

// Resolve maps one type descriptor to a target type name. The store is
// shared and mutable: unknown record types referenced here are
// registered as stubs, and optional-of-record types additionally
// register their wrapper struct.
func (c *Classifier) Resolve(desc cxx.TypeDescriptor, store *schema.Store) string {
	if inner, ok := optionalInner(desc.Spelling); ok {
		return c.resolveOptional(inner, desc.Spelling, store)
	}

	switch desc.Kind {
	case cxx.KindInt:
		return schema.TypeInt32
	case cxx.KindUInt:
		return schema.TypeUInt32
	case cxx.KindLongLong:
		return schema.TypeInt64
	case cxx.KindULongLong:
		return schema.TypeUInt64
	case cxx.KindFloat:
		return schema.TypeFloat32
	case cxx.KindDouble:
		return schema.TypeFloat64
	case cxx.KindBool:
		return schema.TypeBool
	case cxx.KindRecord:
		return c.resolveCompound(desc.Spelling, store)
	}

	c.warn(diagnostic.CodeTypeFallback, fmt.Sprintf("unrecognized type %q, using Text", desc.Spelling))

	return schema.TypeText
}

// resolveOptional handles a detected optional container with inner
// spelling inner. Empty or non-identifier inners (nested generics,
// qualified names) cannot be wrapped and fall back to Text.
func (c *Classifier) resolveOptional(inner, spelling string, store *schema.Store) string {
	if name, ok := optionalPrimitives[inner]; ok {
		return name
	}

	if !recordNameRe.MatchString(inner) {
		c.warn(diagnostic.CodeOptionalMalformed,
			fmt.Sprintf("cannot extract optional base type from %q, using Text", spelling))

		return schema.TypeText
	}

	store.RegisterStub(inner)

	wrapper := schema.WrapperPrefix + inner
	store.RegisterWrapper(wrapper, inner)

	return wrapper
}

// resolveCompound handles record-kind descriptors: strings, vectors,
// and references to user-defined record types.
func (c *Classifier) resolveCompound(spelling string, store *schema.Store) string {
	// Sequence containers first: a vector-of-string spelling contains
	// the string marker too and must still resolve to a list.
	if strings.Contains(spelling, "std::vector<") {
		return c.resolveVector(spelling)
	}

	if strings.Contains(spelling, "std::basic_string") || strings.Contains(spelling, "std::string") {
		return schema.TypeText
	}

	// Anything else record-shaped is a reference to a user-defined
	// record; make sure the referenced name exists in the store.
	store.RegisterStub(spelling)

	return spelling
}

// resolveVector sniffs the element type of a sequence spelling.
func (c *Classifier) resolveVector(spelling string) string {
	inner, ok := genericInner(spelling)
	if !ok {
		c.warn(diagnostic.CodeTypeFallback,
			fmt.Sprintf("cannot extract element type from %q, using Text", spelling))

		return schema.TypeText
	}

	for _, p := range vectorElemPriority {
		if strings.Contains(inner, p.substr) {
			return schema.ListOf(p.elem)
		}
	}

	return schema.ListOf(schema.TypeText)
}

// optionalInner reports whether spelling uses a recognized optional
// container, and if so returns the inner spelling. ok is true even when
// the inner spelling is empty or malformed; the caller decides the
// fallback.
func optionalInner(spelling string) (string, bool) {
	detected := false
	for _, marker := range optionalMarkers {
		if strings.Contains(spelling, marker) {
			detected = true
			break
		}
	}

	if !detected {
		return "", false
	}

	inner, ok := genericInner(spelling)
	if !ok {
		return "", true
	}

	return inner, true
}

// genericInner extracts the text between the first '<' and the last '>'.
func genericInner(spelling string) (string, bool) {
	start := strings.IndexByte(spelling, '<')
	end := strings.LastIndexByte(spelling, '>')

	if start == -1 || end == -1 || end <= start {
		return "", false
	}

	return strings.TrimSpace(spelling[start+1 : end]), true
}

func (c *Classifier) warn(code, message string) {
	if c.Diags == nil {
		return
	}

	c.Diags.AddWarning(code, message, c.record, c.field)
}
