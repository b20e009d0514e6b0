// Package naming gives simulation objects stable names that registries and
// recorders can key on.
package naming

// Named describes an object that has a name.
type Named interface {
	// Name returns the name of the object.
	Name() string
}

// NamedBase is a base implementation of Named.
type NamedBase struct {
	name string
}

// Name returns the name given at construction.
func (b NamedBase) Name() string {
	return b.name
}

// MakeNamedBase creates a new NamedBase. Empty names are rejected because a
// registry could not tell two unnamed objects apart.
func MakeNamedBase(name string) NamedBase {
	MustBeValid(name)
	return NamedBase{name: name}
}

// MustBeValid panics if the name cannot be used to register an object.
func MustBeValid(name string) {
	if name == "" {
		panic("naming: name must not be empty")
	}
}
