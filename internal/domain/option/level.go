package option

// Level is the visibility tier of a configuration option.
type Level string

const (
	LevelBasic    Level = "basic"
	LevelAdvanced Level = "advanced"
	LevelDev      Level = "dev"
)

// IsValid returns true if the level is one of the defined constants.
func (l Level) IsValid() bool {
	switch l {
	case LevelBasic, LevelAdvanced, LevelDev:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}
