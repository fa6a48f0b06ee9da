package registry

import "fmt"

// UnknownUnitError reports a unit atom name that is not in the registry and
// cannot be resolved as a prefixed atom.
type UnknownUnitError struct {
	Name string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Name)
}
