package resolve

// Ref is an optional link to a dense internal index.
// The zero value means "no reference".
type Ref struct {
	index int
	valid bool
}

// NoRef is the absent reference.
var NoRef = Ref{}

// RefTo links to internal index i.
func RefTo(i int) Ref {
	return Ref{index: i, valid: true}
}

// Index returns the linked index and whether the reference is present.
func (r Ref) Index() (int, bool) {
	return r.index, r.valid
}

// Valid reports whether the reference links to something.
func (r Ref) Valid() bool {
	return r.valid
}
