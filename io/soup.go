package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"robustgeom/geom"
)

// ReadTriangleSoup reads a triangle soup from a whitespace table with nine
// columns per row: x1 y1 z1 x2 y2 z2 x3 y3 z3. Rows describing invalid or
// degenerate triangles are kept; the kernel classifies them and the
// intersection routines report them as Degenerate.
func ReadTriangleSoup(file string) ([]geom.Triangle3[float64], error) {
	colIdxs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	n := len(cols[0])
	for i := range cols {
		if len(cols[i]) != n {
			return nil, fmt.Errorf(
				"Column %d of table %s has %d rows, but column 0 has %d.",
				i, file, len(cols[i]), n,
			)
		}
	}

	tris := make([]geom.Triangle3[float64], n)
	for i := 0; i < n; i++ {
		tris[i] = geom.NewTriangle3(
			geom.NewPoint3(cols[0][i], cols[1][i], cols[2][i]),
			geom.NewPoint3(cols[3][i], cols[4][i], cols[5][i]),
			geom.NewPoint3(cols[6][i], cols[7][i], cols[8][i]),
		)
	}
	return tris, nil
}
