package common

// Identifier is a name used for variables, parameters, functions, and types.
// Identifiers are compared by content: they can be used with `==` and as map
// keys.
type Identifier struct {
	name string
}

// NewIdentifier creates a new identifier with the given name.
func NewIdentifier(name string) Identifier {
	return Identifier{name: name}
}

// Name returns the textual name of the identifier.
func (id Identifier) Name() string {
	return id.name
}

// IsEmpty returns whether the identifier has no name.  Anonymous functions are
// named by an empty identifier.
func (id Identifier) IsEmpty() bool {
	return id.name == ""
}

func (id Identifier) String() string {
	return id.name
}
