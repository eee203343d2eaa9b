// Package report implements audit grids, region ordering, and
// content-addressed report identifiers.
package report

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"github.com/Kyle-Wang0211/Aether3D-sub019/canon"
	"github.com/Kyle-Wang0211/Aether3D-sub019/digest"
	"github.com/Kyle-Wang0211/Aether3D-sub019/numkernel"
)

// GridSize is the fixed audit grid dimension.
const GridSize = 32

// Sentinel errors for report construction.
var (
	// ErrGridShape indicates input that is not exactly 32×32.
	ErrGridShape = errors.New("report: grid must be exactly 32x32")

	// ErrBadIntensity indicates a cell that is NaN, infinite, subnormal,
	// or outside [0,1].
	ErrBadIntensity = errors.New("report: intensity out of canonical range")
)

// Grid is a validated 32×32 intensity field.
type Grid struct {
	cells [GridSize][GridSize]float64
}

// NewGrid validates rows strictly and returns the grid. Every cell must
// be finite, normal or zero, and inside [0,1].
func NewGrid(rows [][]float64) (*Grid, error) {
	if len(rows) != GridSize {
		return nil, ErrGridShape
	}

	g := &Grid{}
	for y, row := range rows {
		if len(row) != GridSize {
			return nil, ErrGridShape
		}
		for x, v := range row {
			if err := validIntensity(v); err != nil {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%v", ErrBadIntensity, y, x, v)
			}
			g.cells[y][x] = v
		}
	}

	return g, nil
}

// At returns the intensity at (row, col).
func (g *Grid) At(row, col int) float64 { return g.cells[row][col] }

// validIntensity applies the strict ingest rule.
func validIntensity(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrBadIntensity
	}
	if v != 0 && math.Abs(v) < 2.2250738585072014e-308 {
		return ErrBadIntensity // subnormal
	}
	if v < 0 || v > 1 {
		return ErrBadIntensity
	}

	return nil
}

// Region is one detected zone of the grid.
type Region struct {
	ID            string
	SeverityScore float64
	AreaRatio     float64
	CentroidRow   float64
	CentroidCol   float64
}

// regionLess is the deterministic region order:
// severity descending, area ratio descending, centroid row, centroid
// col, then region id; floats compare under the total order.
func regionLess(a, b Region) bool {
	if c := numkernel.TotalOrder(a.SeverityScore, b.SeverityScore); c != 0 {
		return c > 0 // descending
	}
	if c := numkernel.TotalOrder(a.AreaRatio, b.AreaRatio); c != 0 {
		return c > 0 // descending
	}
	if c := numkernel.TotalOrder(a.CentroidRow, b.CentroidRow); c != 0 {
		return c < 0
	}
	if c := numkernel.TotalOrder(a.CentroidCol, b.CentroidCol); c != 0 {
		return c < 0
	}

	return a.ID < b.ID
}

// SortRegions orders regions in place with a fixed insertion sort.
func SortRegions(rs []Region) {
	var i, j int
	var v Region
	for i = 1; i < len(rs); i++ {
		v = rs[i]
		for j = i - 1; j >= 0 && regionLess(v, rs[j]); j-- {
			rs[j+1] = rs[j]
		}
		rs[j+1] = v
	}
}

// Report is a validated grid with its ordered regions.
type Report struct {
	Grid    *Grid
	Regions []Region
}

// NewReport validates the grid, orders the regions deterministically,
// and returns the report.
func NewReport(rows [][]float64, regions []Region) (*Report, error) {
	g, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}

	ordered := make([]Region, len(regions))
	copy(ordered, regions)
	SortRegions(ordered)

	return &Report{Grid: g, Regions: ordered}, nil
}

// Canonical returns the report's canonical bytes: every cell in row
// order as IEEE-754 bits, then each region in their deterministic order.
func (r *Report) Canonical() ([]byte, error) {
	w := canon.NewWriter(GridSize*GridSize*8 + 64*len(r.Regions))

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			w.U64(math.Float64bits(r.Grid.cells[y][x]))
		}
	}

	w.Count(len(r.Regions))
	for _, reg := range r.Regions {
		id := []byte(reg.ID)
		w.Count(len(id))
		w.WriteBytes(id)
		w.U64(math.Float64bits(reg.SeverityScore))
		w.U64(math.Float64bits(reg.AreaRatio))
		w.U64(math.Float64bits(reg.CentroidRow))
		w.U64(math.Float64bits(reg.CentroidCol))
	}

	return w.Bytes()
}

// ID returns the content address: the hex decision digest of the
// canonical bytes. Identical reports always share an id.
func (r *Report) ID() (string, error) {
	raw, err := r.Canonical()
	if err != nil {
		return "", err
	}
	d := digest.Compute(raw)

	return hex.EncodeToString(d[:]), nil
}
