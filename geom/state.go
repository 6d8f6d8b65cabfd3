/*geom contains immutable 3D primitives and the pairwise intersection tests
between them.

Every primitive classifies itself once, at construction, as some combination
of invalid (a defining scalar is NaN or infinite), degenerate (finite but
geometrically ill formed for its type), and subnormal (finite and correct but
computed at reduced precision). The intersection routines consult that state
before doing any arithmetic, so NaNs from known-bad geometry never propagate.

Primitives are never mutated after construction, so they may be shared freely
between goroutines.
*/
package geom

// State is the validity classification every primitive carries. It is
// computed exactly once, by the primitive's constructor, and embedded by
// value so copies share it without recomputation.
type State struct {
	invalid    bool
	degenerate bool
	subnormal  bool
}

// IsValid reports whether every defining scalar of the entity is finite.
func (s State) IsValid() bool { return !s.invalid }

// IsDegenerate reports whether the entity is geometrically ill formed.
// Invalid entities are always degenerate; the converse does not hold.
func (s State) IsDegenerate() bool { return s.degenerate || s.invalid }

// IsSubnormal reports whether any defining or derived scalar of the entity
// is a nonzero subnormal. It is only meaningful for valid entities.
func (s State) IsSubnormal() bool { return s.subnormal }

func (s *State) markInvalid()    { s.invalid = true }
func (s *State) markDegenerate() { s.degenerate = true }
func (s *State) markSubnormal()  { s.subnormal = true }
