package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	plt "github.com/phil-mansfield/pyplot"
	"gopkg.in/gcfg.v1"

	"robustgeom/geom"
	gio "robustgeom/io"
)

func main() {
	var (
		scenario, soup, plot, logPath string
	)

	flag.StringVar(
		&scenario, "Scenario", "",
		"Scenario configuration file. Runs every configured intersection "+
			"pair and prints one line per pair.",
	)
	flag.StringVar(
		&soup, "Soup", "",
		"Triangle soup table with nine columns per row. Counts the "+
			"overlapping triangle pairs.",
	)
	flag.StringVar(
		&plot, "Plot", "",
		"Scenario configuration file. Plots the footprints of the first "+
			"coplanar triangle-triangle pair.",
	)
	flag.StringVar(
		&logPath, "Log", "",
		"Location to write log statements to. Default is stderr.",
	)

	flag.Parse()

	if logPath != "" {
		if lf, err := os.Create(logPath); err != nil {
			log.Fatalln(err.Error())
		} else {
			log.SetOutput(lf)
			defer lf.Close()
		}
	}

	modeName, err := getModeName(map[string]string{
		"Scenario": scenario,
		"Soup":     soup,
		"Plot":     plot,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Scenario":
		scenarioMain(scenario)
	case "Soup":
		soupMain(soup)
	case "Plot":
		plotMain(plot)
	}
}

func getModeName(vars map[string]string) (string, error) {
	setVars := []string{}
	for name, val := range vars {
		if val != "" {
			setVars = append(setVars, name)
		}
	}

	if len(setVars) == 0 {
		return "", fmt.Errorf("No mode flag given. Select one of " +
			"-Scenario, -Soup, or -Plot.")
	} else if len(setVars) > 1 {
		sort.Strings(setVars)
		return "", fmt.Errorf(
			"The mode flags %v cannot be given together.", setVars,
		)
	}
	return setVars[0], nil
}

func readScenario(file string) *gio.ScenarioWrapper {
	wrap := gio.DefaultScenarioWrapper()
	if err := gcfg.ReadFileInto(wrap, file); err != nil {
		log.Fatal(err.Error())
	}
	if err := wrap.CheckInit(); err != nil {
		log.Fatal(err.Error())
	}
	return wrap
}

func scenarioMain(file string) {
	wrap := readScenario(file)
	if wrap.Scenario.Comment != "" {
		log.Printf("Scenario: %s", wrap.Scenario.Comment)
	}

	names := make([]string, 0, len(wrap.Pair))
	for name := range wrap.Pair {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pair := wrap.Pair[name]
		p, res, hasPoint := runPair(wrap, pair)

		if hasPoint && (res == geom.Ok || res == geom.Overflow) {
			fmt.Printf("%s: %s(%s, %s) -> %s at (%g, %g, %g)\n",
				name, pair.Kind, pair.A, pair.B, res, p.X(), p.Y(), p.Z())
		} else {
			fmt.Printf("%s: %s(%s, %s) -> %s\n",
				name, pair.Kind, pair.A, pair.B, res)
		}
	}
}

// runPair dispatches one configured pair to the kernel. hasPoint is false
// for the kinds whose tests do not produce an intersection point.
func runPair(
	w *gio.ScenarioWrapper, pair *gio.PairConfig,
) (p geom.Point3[float64], res geom.Result, hasPoint bool) {
	switch pair.Kind {
	case "plane-line":
		p, res = geom.IntersectPlaneLine(
			w.Plane[pair.A].Plane(), w.Line[pair.B].Line())
		return p, res, true
	case "plane-ray":
		p, res = geom.IntersectPlaneRay(
			w.Plane[pair.A].Plane(), w.Ray[pair.B].Ray())
		return p, res, true
	case "plane-segment":
		p, res = geom.IntersectPlaneSegment(
			w.Plane[pair.A].Plane(), w.Segment[pair.B].Segment())
		return p, res, true
	case "triangle-line":
		p, res = geom.IntersectTriangleLine(
			w.Triangle[pair.A].Triangle(), w.Line[pair.B].Line())
		return p, res, true
	case "triangle-ray":
		p, res = geom.IntersectTriangleRay(
			w.Triangle[pair.A].Triangle(), w.Ray[pair.B].Ray())
		return p, res, true
	case "triangle-segment":
		p, res = geom.IntersectTriangleSegment(
			w.Triangle[pair.A].Triangle(), w.Segment[pair.B].Segment())
		return p, res, true
	case "triangle-plane":
		res = geom.IntersectTrianglePlane(
			w.Triangle[pair.A].Triangle(), w.Plane[pair.B].Plane())
		return p, res, false
	case "triangle-triangle":
		res = geom.IntersectTriangles(
			w.Triangle[pair.A].Triangle(), w.Triangle[pair.B].Triangle())
		return p, res, false
	}
	// unreachable: CheckInit rejects unknown kinds
	log.Fatalf("Unknown pair kind '%s'.", pair.Kind)
	return p, res, false
}

func soupMain(file string) {
	tris, err := gio.ReadTriangleSoup(file)
	if err != nil {
		log.Fatal(err.Error())
	}

	degenerate := 0
	for _, tri := range tris {
		if tri.IsDegenerate() {
			degenerate++
		}
	}

	overlaps := 0
	for i := 0; i < len(tris); i++ {
		for j := i + 1; j < len(tris); j++ {
			if geom.IntersectTriangles(tris[i], tris[j]) == geom.Ok {
				overlaps++
			}
		}
	}

	fmt.Printf("%s: %d triangles (%d degenerate), %d overlapping pairs\n",
		file, len(tris), degenerate, overlaps)
}

func plotMain(file string) {
	wrap := readScenario(file)

	names := make([]string, 0, len(wrap.Pair))
	for name := range wrap.Pair {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pair := wrap.Pair[name]
		if pair.Kind != "triangle-triangle" {
			continue
		}

		t1 := wrap.Triangle[pair.A].Triangle()
		t2 := wrap.Triangle[pair.B].Triangle()
		pl := geom.MakePlane(t1.P1(), t1.P2(), t1.P3())
		if geom.IntersectTrianglePlane(t2, pl) != geom.Coplanar {
			continue
		}

		log.Printf("Plotting coplanar pair '%s' (%s vs %s).",
			name, pair.A, pair.B)
		plotCoplanarPair(t1, t2)
		return
	}

	log.Fatal("No coplanar triangle-triangle pair in the scenario.")
}

// plotCoplanarPair draws the closed footprints of two coplanar triangles,
// projected onto the axis pair that maximizes their area.
func plotCoplanarPair(t1, t2 geom.Triangle3[float64]) {
	n := t1.UnitNormal()
	i0, i1 := footprintAxes(n.X(), n.Y(), n.Z())

	plt.Reset()
	xs, ys := footprint(t1, i0, i1)
	plt.Plot(xs, ys, "b", plt.LW(2))
	xs, ys = footprint(t2, i0, i1)
	plt.Plot(xs, ys, "r", plt.LW(2))
	plt.Show()
}

// footprintAxes drops the coordinate with the largest normal component.
func footprintAxes(nx, ny, nz float64) (i0, i1 int) {
	ax, ay, az := abs(nx), abs(ny), abs(nz)
	if ax > ay {
		if ax > az {
			return 1, 2
		}
		return 0, 1
	}
	if az > ay {
		return 0, 1
	}
	return 0, 2
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func footprint(t geom.Triangle3[float64], i0, i1 int) (xs, ys []float64) {
	ps := []geom.Point3[float64]{t.P1(), t.P2(), t.P3(), t.P1()}
	xs = make([]float64, len(ps))
	ys = make([]float64, len(ps))
	for i, p := range ps {
		c := []float64{p.X(), p.Y(), p.Z()}
		xs[i] = c[i0]
		ys[i] = c[i1]
	}
	return xs, ys
}
