package schema

// Fixed primitive names of the target vocabulary.
const (
	TypeInt32   = "Int32"
	TypeUInt32  = "UInt32"
	TypeInt64   = "Int64"
	TypeUInt64  = "UInt64"
	TypeFloat32 = "Float32"
	TypeFloat64 = "Float64"
	TypeBool    = "Bool"
	TypeText    = "Text"
)

// WrapperPrefix prefixes synthesized optional-wrapper names,
// e.g. "OptionalPoint" wrapping "Point".
const WrapperPrefix = "Optional"

// WrapperField is the single field name every wrapper struct carries.
const WrapperField = "value"

// ListOf returns the homogeneous list type for an element type.
func ListOf(elem string) string {
	return "List(" + elem + ")"
}

// Field is one (name, resolved target type) pair of a record.
// Declaration order of a record's fields is significant and preserved.
type Field struct {
	Name string
	Type string
}
