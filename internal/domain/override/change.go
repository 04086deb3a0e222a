package override

import "fmt"

// Op is the kind of a staged configuration change.
type Op string

const (
	OpSet    Op = "set"
	OpRemove Op = "rm"
)

// IsValid returns true if the op is one of the defined constants.
func (o Op) IsValid() bool {
	return o == OpSet || o == OpRemove
}

// Change is one entry of a configuration change batch.
type Change struct {
	Op      Op
	Section string
	Name    string
	Value   string
}

// String renders the change the way an operator would type it.
func (c Change) String() string {
	if c.Op == OpRemove {
		return fmt.Sprintf("rm %s/%s", c.Section, c.Name)
	}
	return fmt.Sprintf("set %s/%s=%s", c.Section, c.Name, c.Value)
}
