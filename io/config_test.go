package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gcfg.v1"
)

const exampleScenario = `
[scenario]
Comment = plane and ray smoke checks

[plane "floor"]
Z = 0
UpZ = 1

[ray "drop"]
X = 0.2
Y = 0.2
Z = 1
DirZ = -1

[triangle "wedge"]
X2 = 1
Y3 = 1

[pair "drop-on-floor"]
Kind = plane-ray
A = floor
B = drop

[pair "drop-on-wedge"]
Kind = triangle-ray
A = wedge
B = drop
`

func TestScenarioRead(t *testing.T) {
	w := DefaultScenarioWrapper()
	err := gcfg.ReadStringInto(w, exampleScenario)
	assert.NoError(t, err)
	assert.NoError(t, w.CheckInit())

	assert.Equal(t, "plane and ray smoke checks", w.Scenario.Comment)
	assert.Len(t, w.Plane, 1)
	assert.Len(t, w.Pair, 2)

	pl := w.Plane["floor"]
	assert.Equal(t, "floor", pl.Name)
	assert.Equal(t, 1.0, pl.UpZ)
	assert.False(t, pl.Plane().IsDegenerate())

	r := w.Ray["drop"]
	assert.Equal(t, -1.0, r.DirZ)
	assert.False(t, r.Ray().IsDegenerate())

	tri := w.Triangle["wedge"]
	assert.False(t, tri.Triangle().IsDegenerate())

	p := w.Pair["drop-on-wedge"]
	assert.Equal(t, "triangle-ray", p.Kind)
	assert.Equal(t, "wedge", p.A)
}

func TestScenarioCheckInitErrors(t *testing.T) {
	table := []struct {
		text string
	}{
		// zero Up direction
		{`
[plane "bad"]
Z = 1
`},
		// zero ray direction
		{`
[ray "bad"]
X = 1
`},
		// identical line points
		{`
[line "bad"]
X1 = 1
X2 = 1
`},
		// unknown pair kind
		{`
[triangle "a"]
X2 = 1
Y3 = 1
[pair "bad"]
Kind = triangle-cube
A = a
B = a
`},
		// missing B entity name
		{`
[triangle "a"]
X2 = 1
Y3 = 1
[pair "bad"]
Kind = triangle-triangle
A = a
`},
		// reference to an undefined entity
		{`
[triangle "a"]
X2 = 1
Y3 = 1
[pair "bad"]
Kind = triangle-triangle
A = a
B = ghost
`},
		// pair whose A entity has the wrong type for its kind
		{`
[triangle "a"]
X2 = 1
Y3 = 1
[ray "r"]
DirZ = 1
[pair "bad"]
Kind = plane-ray
A = a
B = r
`},
	}

	for i, c := range table {
		w := DefaultScenarioWrapper()
		err := gcfg.ReadStringInto(w, c.text)
		if err == nil {
			err = w.CheckInit()
		}
		if err == nil {
			t.Errorf("%d) expected a config error", i+1)
		}
	}
}

func TestSegmentConfigAllowsDegenerate(t *testing.T) {
	// degenerate segments are representable on purpose: classification is
	// the kernel's job, not the parser's
	text := `
[segment "dot"]
X1 = 1
Y1 = 1
Z1 = 1
X2 = 1
Y2 = 1
Z2 = 1
`
	w := DefaultScenarioWrapper()
	assert.NoError(t, gcfg.ReadStringInto(w, text))
	assert.NoError(t, w.CheckInit())
	assert.True(t, w.Segment["dot"].Segment().IsDegenerate())
}
