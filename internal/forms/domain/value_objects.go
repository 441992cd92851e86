package domain

// ID is an opaque resource identifier. Generated IDs are UUID strings.
type ID string

func (i ID) String() string {
	return string(i)
}

// Principal is the authenticated caller. The tenant boundary is derived
// from its client ID; everything else is informational.
type Principal struct {
	ClientID ID
	Name     string
	Email    string
}
