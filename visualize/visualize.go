// Package visualize renders kernel-PCA projections and Gram matrices as
// image files. It is tooling on top of the numeric core, not part of its
// contract.
package visualize

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/molkern/molkern/pkg/errors"
)

// KPCAScatter writes a scatter plot of the first two kernel-PCA components
// to path as PNG. The components matrix is laid out one component per row,
// one sample per column, as returned by kernels.KPCA.
func KPCAScatter(components *mat.Dense, path string) error {
	r, c := components.Dims()
	if r < 2 {
		return errors.NewValueError("visualize.kpca", "at least two components are required for a scatter plot")
	}

	pts := make(plotter.XYs, c)
	for j := 0; j < c; j++ {
		pts[j].X = components.At(0, j)
		pts[j].Y = components.At(1, j)
	}

	p := plot.New()
	p.Title.Text = "Kernel PCA"
	p.X.Label.Text = "component 1"
	p.Y.Label.Text = "component 2"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "visualize.kpca: building scatter")
	}
	p.Add(scatter)
	p.Add(plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "visualize.kpca: saving %s", path)
	}
	return nil
}

// gramGrid adapts a Gram matrix to the plotter.GridXYZ interface with unit
// spacing on both axes.
type gramGrid struct {
	k mat.Matrix
}

func (g gramGrid) Dims() (int, int) {
	r, c := g.k.Dims()
	return c, r
}

func (g gramGrid) Z(col, row int) float64 { return g.k.At(row, col) }
func (g gramGrid) X(col int) float64      { return float64(col) }
func (g gramGrid) Y(row int) float64      { return float64(row) }

// Heatmap writes a heat map of a Gram matrix to path as PNG.
func Heatmap(k mat.Matrix, path string) error {
	r, c := k.Dims()
	if r == 0 || c == 0 {
		return errors.Wrap(errors.ErrEmptyData, "visualize.heatmap: empty matrix")
	}

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(gramGrid{k: k}, pal)

	p := plot.New()
	p.Title.Text = "Gram matrix"
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "sample"
	p.Add(hm)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "visualize.heatmap: saving %s", path)
	}
	return nil
}
