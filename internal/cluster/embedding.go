// Package cluster turns time-series grids into 2-D similarity embeddings:
// it flattens and normalizes the grid tensor, measures pairwise elastic
// (DTW) distance between vessels, and projects the distance matrix to two
// dimensions with classical multidimensional scaling.
package cluster

import (
	"errors"
	"fmt"
	"math"

	"github.com/lvlath/go/dtw"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/mds"

	"github.com/oceanus/vessel-records-backend/internal/models"
)

// ErrDegenerate is returned when the grid cannot support an embedding, e.g.
// fewer than two vessels or an all-zero tensor.
var ErrDegenerate = errors.New("cluster: degenerate grid, embedding undefined")

// Embedder computes vessel similarity embeddings. Safe for concurrent use;
// it carries no per-request state.
type Embedder struct {
	opts *dtw.Options
}

// NewEmbedder returns an embedder with unconstrained DTW in rolling-array
// mode (distances only, no warping paths).
func NewEmbedder() *Embedder {
	return &Embedder{opts: &dtw.Options{Window: dtw.DefaultWindow, MemoryMode: dtw.TwoRows}}
}

// Features flattens each vessel's per-day (count, dwell) vectors into one
// feature row per day and z-normalizes every feature channel independently
// across the time axis. A channel with zero variance stays at zero after
// centering. Vessels follow grid.Vessels order.
func Features(grid *models.TimeSeriesGrid) [][][]float64 {
	features := 2 * len(grid.Locations)
	out := make([][][]float64, 0, len(grid.Vessels))
	for _, vessel := range grid.Vessels {
		days := grid.Series[vessel]
		series := make([][]float64, len(days))
		for t, day := range days {
			row := make([]float64, features)
			for i, c := range day.Cells {
				row[2*i] = float64(c.Count)
				row[2*i+1] = c.Dwell
			}
			series[t] = row
		}
		normalize(series)
		out = append(out, series)
	}
	return out
}

// normalize z-scores each column of a time x feature matrix in place.
func normalize(series [][]float64) {
	if len(series) == 0 {
		return
	}
	n := float64(len(series))
	for f := range series[0] {
		var sum float64
		for t := range series {
			sum += series[t][f]
		}
		mean := sum / n
		var sq float64
		for t := range series {
			d := series[t][f] - mean
			sq += d * d
		}
		std := math.Sqrt(sq / n)
		for t := range series {
			if std == 0 {
				series[t][f] = 0
				continue
			}
			series[t][f] = (series[t][f] - mean) / std
		}
	}
}

// Embed computes the 2-D embedding for the grid's vessels and re-attaches
// vessel ids in grid order.
func (e *Embedder) Embed(grid *models.TimeSeriesGrid) ([]models.VesselCoordinate, error) {
	n := len(grid.Vessels)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least two vessels, got %d", ErrDegenerate, n)
	}
	if len(grid.Dates) == 0 {
		return nil, fmt.Errorf("%w: empty date axis", ErrDegenerate)
	}

	data := Features(grid)

	dist := mat.NewSymDense(n, nil)
	var spread float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := e.distance(data[i], data[j])
			if err != nil {
				return nil, fmt.Errorf("cluster: distance %s/%s: %w", grid.Vessels[i], grid.Vessels[j], err)
			}
			dist.SetSym(i, j, d)
			spread += d
		}
	}
	// An all-zero tensor normalizes to indistinguishable vessels; the
	// embedding is undefined rather than a pile of coincident points.
	if spread == 0 {
		return nil, fmt.Errorf("%w: all pairwise distances are zero", ErrDegenerate)
	}

	var coords mat.Dense
	k, _ := mds.TorgersonScaling(&coords, make([]float64, n), dist)
	if k == 0 {
		return nil, fmt.Errorf("%w: no positive eigenvalues in the distance matrix", ErrDegenerate)
	}

	out := make([]models.VesselCoordinate, n)
	for i, vessel := range grid.Vessels {
		point := models.VesselCoordinate{VesselID: vessel, X: coords.At(i, 0)}
		if k > 1 {
			point.Y = coords.At(i, 1)
		}
		out[i] = point
	}
	return out, nil
}

// distance sums the per-channel DTW distances between two equally shaped
// time x feature matrices.
func (e *Embedder) distance(a, b [][]float64) (float64, error) {
	features := len(a[0])
	seqA := make([]float64, len(a))
	seqB := make([]float64, len(b))
	var total float64
	for f := 0; f < features; f++ {
		for t := range a {
			seqA[t] = a[t][f]
		}
		for t := range b {
			seqB[t] = b[t][f]
		}
		d, _, err := dtw.DTW(seqA, seqB, e.opts)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}
