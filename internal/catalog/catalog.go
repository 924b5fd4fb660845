// Package catalog holds the registry of functions usable inside jpx
// expressions. The server only reads it: completion iterates over every
// descriptor, hover looks a single one up by name.
package catalog

// Category groups functions the way the jpx engine does.
type Category string

const (
	Standard   Category = "standard"
	String     Category = "string"
	Array      Category = "array"
	Object     Category = "object"
	Math       Category = "math"
	Type       Category = "type"
	Utility    Category = "utility"
	Validation Category = "validation"
	Expression Category = "expression"
	Hash       Category = "hash"
	Encoding   Category = "encoding"
	Regex      Category = "regex"
	URL        Category = "url"
	UUID       Category = "uuid"
	Rand       Category = "rand"
	Datetime   Category = "datetime"
	Geo        Category = "geo"
	Computing  Category = "computing"
)

// Descriptor describes one callable function.
type Descriptor struct {
	// Name as written in expressions. Unique within the registry.
	Name string
	// Aliases under which the function is also registered, if any.
	Aliases []string
	// Signature in the engine's notation, e.g. "string, string -> boolean".
	Signature string
	// Description is a single human-readable sentence.
	Description string
	Category    Category
	// JEP is the JMESPath Enhancement Proposal the function aligns with
	// ("JEP-014" etc.), or empty.
	JEP string
	// Example usage, or empty.
	Example string
}

// Registry is an ordered collection of descriptors. Iteration order is
// registration order; the zero value is not usable, call New.
type Registry struct {
	ordered []Descriptor
	byName  map[string]int
}

func New() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds a descriptor. A descriptor with a duplicate name replaces
// the earlier one in place, keeping its original position.
func (r *Registry) Register(d Descriptor) {
	if i, ok := r.byName[d.Name]; ok {
		r.ordered[i] = d
		return
	}
	r.byName[d.Name] = len(r.ordered)
	r.ordered = append(r.ordered, d)
}

// Functions returns all descriptors in registration order.
func (r *Registry) Functions() []Descriptor {
	return r.ordered
}

// Lookup finds a descriptor by exact, case-sensitive name. Aliases are not
// lookup keys; they only appear in the descriptor itself.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.ordered[i], true
}

// Len returns the number of registered functions.
func (r *Registry) Len() int {
	return len(r.ordered)
}
