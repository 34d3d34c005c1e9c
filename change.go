package maxima

// ChangeKind classifies a committed mutation.
type ChangeKind int

const (
	// Inserted is a SetValue for an argument not in the domain before.
	Inserted ChangeKind = iota
	// Updated is a SetValue replacing the value at an existing argument.
	Updated
	// Erased is a successful Erase.
	Erased
)

func (k ChangeKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	case Erased:
		return "erased"
	}
	return "unknown"
}

// Change describes a committed mutation of a Function, including its effect
// on the set of maxima.
type Change[A, V any] struct {
	Kind ChangeKind
	// Point is the point written by SetValue, or the point removed by Erase.
	Point Point[A, V]
	// Prior is the replaced point; valid for Kind == Updated only.
	Prior Point[A, V]
	// Gained lists the points which became maxima.
	Gained []Point[A, V]
	// Lost lists the points which ceased to be maxima, including a replaced
	// or erased point if it had been a maximum.
	Lost []Point[A, V]
}
