package geom

// Result is the outcome of an intersection test. Intersection functions
// never panic and never return NaN geometry silently; every failure mode
// has its own code.
type Result int

const (
	// Ok means an intersection exists and the output point, if the test
	// produces one, is finite.
	Ok Result = iota
	// Degenerate means at least one input was degenerate. It is detected
	// before any arithmetic runs.
	Degenerate
	// Coplanar means the inputs lie in a common plane, so no single
	// intersection point exists.
	Coplanar
	// Parallel means the inputs never meet: zero directional component but
	// nonzero separation.
	Parallel
	// NoIntersection means the computation succeeded and there is no hit.
	NoIntersection
	// Overflow means the intersection arithmetic left the representable
	// range. It is detected after the fact, by re-validating the output,
	// and is distinct from NoIntersection.
	Overflow
)

// String returns the name of the result code.
func (r Result) String() string {
	switch r {
	case Ok:
		return "Ok"
	case Degenerate:
		return "Degenerate"
	case Coplanar:
		return "Coplanar"
	case Parallel:
		return "Parallel"
	case NoIntersection:
		return "NoIntersection"
	case Overflow:
		return "Overflow"
	}
	return "Unknown"
}
