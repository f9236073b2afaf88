package l2shapes

import (
	"math"

	"github.com/banshee-data/asteroid.report/internal/sky/l1frames"
)

// MatchFunc decides whether two cropped images show the same object.
type MatchFunc func(a, b *l1frames.Grid) bool

// EqualMatcher matches images of identical dimensions whose cells agree
// after mapping.
func EqualMatcher(mapper l1frames.ValueMapper) MatchFunc {
	return func(a, b *l1frames.Grid) bool {
		return a.Equals(b, mapper, true)
	}
}

// ToleranceMatcher matches images of identical dimensions whose mapped
// cells differ by at most tol. Unlike EqualMatcher it is not transitive.
func ToleranceMatcher(mapper l1frames.ValueMapper, tol float64) MatchFunc {
	if mapper == nil {
		mapper = l1frames.Identity
	}
	return func(a, b *l1frames.Grid) bool {
		ar, ac := a.Dims()
		br, bc := b.Dims()
		if ar != br || ac != bc {
			return false
		}
		for r := 0; r < ar; r++ {
			for c := 0; c < ac; c++ {
				if math.Abs(mapper(a.AtRC(r, c))-mapper(b.AtRC(r, c))) > tol {
					return false
				}
			}
		}
		return true
	}
}
