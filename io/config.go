/*io contains the configuration and file reading layer of the harness. The
geometry kernel itself never touches files; everything here converts
external descriptions of scenes into geom values.
*/
package io

import (
	"fmt"

	"robustgeom/geom"
)

// PlaneConfig describes a plane by base point and up direction. The
// direction does not need to be unit length; it is normalized on
// construction.
type PlaneConfig struct {
	X, Y, Z       float64
	UpX, UpY, UpZ float64

	Name string
}

func (pl *PlaneConfig) CheckInit(name string) error {
	if pl.UpX == 0 && pl.UpY == 0 && pl.UpZ == 0 {
		return fmt.Errorf(
			"Need a nonzero Up direction for Plane '%s'.", name,
		)
	}
	pl.Name = name
	return nil
}

func (pl *PlaneConfig) Plane() geom.Plane[float64] {
	return geom.NewPlane(
		geom.NewPoint3(pl.X, pl.Y, pl.Z),
		geom.NewUnitVector3(pl.UpX, pl.UpY, pl.UpZ),
	)
}

// LineConfig describes an infinite line through two points.
type LineConfig struct {
	X1, Y1, Z1 float64
	X2, Y2, Z2 float64

	Name string
}

func (l *LineConfig) CheckInit(name string) error {
	if l.X1 == l.X2 && l.Y1 == l.Y2 && l.Z1 == l.Z2 {
		return fmt.Errorf(
			"Line '%s' needs two distinct points.", name,
		)
	}
	l.Name = name
	return nil
}

func (l *LineConfig) Line() geom.Line3[float64] {
	return geom.NewLine3(
		geom.NewPoint3(l.X1, l.Y1, l.Z1),
		geom.NewPoint3(l.X2, l.Y2, l.Z2),
	)
}

// RayConfig describes a ray by base point and direction. The direction
// does not need to be unit length.
type RayConfig struct {
	X, Y, Z          float64
	DirX, DirY, DirZ float64

	Name string
}

func (r *RayConfig) CheckInit(name string) error {
	if r.DirX == 0 && r.DirY == 0 && r.DirZ == 0 {
		return fmt.Errorf(
			"Need a nonzero direction for Ray '%s'.", name,
		)
	}
	r.Name = name
	return nil
}

func (r *RayConfig) Ray() geom.Ray3[float64] {
	return geom.NewRay3(
		geom.NewPoint3(r.X, r.Y, r.Z),
		geom.NewUnitVector3(r.DirX, r.DirY, r.DirZ),
	)
}

// SegmentConfig describes a segment by its two endpoints.
type SegmentConfig struct {
	X1, Y1, Z1 float64
	X2, Y2, Z2 float64

	Name string
}

func (s *SegmentConfig) CheckInit(name string) error {
	s.Name = name
	return nil
}

func (s *SegmentConfig) Segment() geom.Segment3[float64] {
	return geom.NewSegment3(
		geom.NewPoint3(s.X1, s.Y1, s.Z1),
		geom.NewPoint3(s.X2, s.Y2, s.Z2),
	)
}

// TriangleConfig describes a triangle by its three vertices.
type TriangleConfig struct {
	X1, Y1, Z1 float64
	X2, Y2, Z2 float64
	X3, Y3, Z3 float64

	Name string
}

func (t *TriangleConfig) CheckInit(name string) error {
	t.Name = name
	return nil
}

func (t *TriangleConfig) Triangle() geom.Triangle3[float64] {
	return geom.NewTriangle3(
		geom.NewPoint3(t.X1, t.Y1, t.Z1),
		geom.NewPoint3(t.X2, t.Y2, t.Z2),
		geom.NewPoint3(t.X3, t.Y3, t.Z3),
	)
}

// PairKinds lists the accepted values of PairConfig.Kind.
var PairKinds = []string{
	"plane-line",
	"plane-ray",
	"plane-segment",
	"triangle-line",
	"triangle-ray",
	"triangle-segment",
	"triangle-plane",
	"triangle-triangle",
}

// PairConfig names one intersection query: the kind of test and the names
// of the two configured entities to run it on. A must name an entity of the
// kind's first type and B of its second.
type PairConfig struct {
	Kind string
	A, B string

	Name string
}

func (p *PairConfig) CheckInit(name string) error {
	ok := false
	for _, kind := range PairKinds {
		if p.Kind == kind {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf(
			"Pair '%s' given unknown Kind '%s'.", name, p.Kind,
		)
	}
	if p.A == "" || p.B == "" {
		return fmt.Errorf(
			"Pair '%s' needs both an A and a B entity name.", name,
		)
	}
	p.Name = name
	return nil
}

// ScenarioConfig holds the scenario-wide settings.
type ScenarioConfig struct {
	// Comment is free text carried along into log output.
	Comment string
}

// ScenarioWrapper is the top level structure a scenario config file is
// read into.
type ScenarioWrapper struct {
	Scenario ScenarioConfig
	Plane    map[string]*PlaneConfig
	Line     map[string]*LineConfig
	Ray      map[string]*RayConfig
	Segment  map[string]*SegmentConfig
	Triangle map[string]*TriangleConfig
	Pair     map[string]*PairConfig
}

// DefaultScenarioWrapper creates an empty scenario wrapper.
func DefaultScenarioWrapper() *ScenarioWrapper {
	return &ScenarioWrapper{}
}

// CheckInit validates every section of the scenario after parsing and
// resolves the entity references of every pair.
func (w *ScenarioWrapper) CheckInit() error {
	for name, pl := range w.Plane {
		if err := pl.CheckInit(name); err != nil {
			return err
		}
	}
	for name, l := range w.Line {
		if err := l.CheckInit(name); err != nil {
			return err
		}
	}
	for name, r := range w.Ray {
		if err := r.CheckInit(name); err != nil {
			return err
		}
	}
	for name, s := range w.Segment {
		if err := s.CheckInit(name); err != nil {
			return err
		}
	}
	for name, t := range w.Triangle {
		if err := t.CheckInit(name); err != nil {
			return err
		}
	}
	for name, p := range w.Pair {
		if err := p.CheckInit(name); err != nil {
			return err
		}
		if err := w.checkPairRefs(p); err != nil {
			return err
		}
	}
	return nil
}

func (w *ScenarioWrapper) checkPairRefs(p *PairConfig) error {
	var aOK, bOK bool
	switch p.Kind {
	case "plane-line":
		_, aOK = w.Plane[p.A]
		_, bOK = w.Line[p.B]
	case "plane-ray":
		_, aOK = w.Plane[p.A]
		_, bOK = w.Ray[p.B]
	case "plane-segment":
		_, aOK = w.Plane[p.A]
		_, bOK = w.Segment[p.B]
	case "triangle-line":
		_, aOK = w.Triangle[p.A]
		_, bOK = w.Line[p.B]
	case "triangle-ray":
		_, aOK = w.Triangle[p.A]
		_, bOK = w.Ray[p.B]
	case "triangle-segment":
		_, aOK = w.Triangle[p.A]
		_, bOK = w.Segment[p.B]
	case "triangle-plane":
		_, aOK = w.Triangle[p.A]
		_, bOK = w.Plane[p.B]
	case "triangle-triangle":
		_, aOK = w.Triangle[p.A]
		_, bOK = w.Triangle[p.B]
	}
	if !aOK {
		return fmt.Errorf(
			"Pair '%s' references unknown A entity '%s'.", p.Name, p.A,
		)
	}
	if !bOK {
		return fmt.Errorf(
			"Pair '%s' references unknown B entity '%s'.", p.Name, p.B,
		)
	}
	return nil
}
