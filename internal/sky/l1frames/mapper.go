package l1frames

// ValueMapper transforms a cell value before equality comparison, e.g. to
// treat every nonzero intensity as the same "occupied" value.
type ValueMapper func(v float64) float64

// Binarize maps background to 0 and anything else to 1.
func Binarize(v float64) float64 {
	if v != 0 {
		return 1
	}
	return 0
}

// Identity leaves values untouched.
func Identity(v float64) float64 { return v }
