package option

// Type is the value kind of a configuration option.
type Type string

const (
	TypeStr       Type = "str"
	TypeUUID      Type = "uuid"
	TypeAddr      Type = "addr"
	TypeAddrVec   Type = "addrvec"
	TypeBool      Type = "bool"
	TypeInt       Type = "int"
	TypeUint      Type = "uint"
	TypeFloat     Type = "float"
	TypeSize      Type = "size"
	TypeSecs      Type = "secs"
	TypeMillisecs Type = "millisecs"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeStr, TypeUUID, TypeAddr, TypeAddrVec, TypeBool, TypeInt,
		TypeUint, TypeFloat, TypeSize, TypeSecs, TypeMillisecs:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether values of this type can carry min/max bounds.
func (t Type) IsNumeric() bool {
	switch t {
	case TypeInt, TypeUint, TypeFloat, TypeSize, TypeSecs, TypeMillisecs:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
