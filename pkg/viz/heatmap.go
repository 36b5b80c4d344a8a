package viz

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/data"
	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/dataprep"
	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/stats"
)

const (
	// HeatMapPath is the default output of DrawHeatMap.
	HeatMapPath  = "heatmap.png"
	heatMapTitle = "Correlation Heatmap of Medical Data"

	// Colour scale bounds; values outside saturate to the end colours.
	heatMin = -0.1
	heatMax = 0.25
)

// ErrTooFewColumns is returned when fewer than two numeric columns are available.
var ErrTooFewColumns = errors.New("heatmap needs at least two numeric columns")

// HeatMap is the lower-triangle correlation heatmap.
type HeatMap struct {
	*Figure

	Columns []string
	Corr    *mat.SymDense
	// Mask[i][j] is true for cells that are not drawn.
	Mask [][]bool
	// Rows is the number of records that passed the quality filters.
	Rows int
}

// DrawHeatMap drops implausible records, correlates every numeric column of
// what remains and saves the masked heatmap as PNG to path.
func DrawHeatMap(df dataframe.DataFrame, path string) (*HeatMap, error) {
	clean, err := dataprep.FilterQuality(df)
	if err != nil {
		return nil, err
	}

	names := NumericColumns(clean)
	cols := make([][]float64, len(names))
	for j, name := range names {
		if cols[j], err = data.Floats(clean, name); err != nil {
			return nil, err
		}
	}
	corr, err := stats.CorrelationMatrix(cols)
	if err != nil {
		return nil, fmt.Errorf("correlate: %w", err)
	}

	hm, err := NewHeatMap(names, corr)
	if err != nil {
		return nil, err
	}
	hm.Rows = clean.Nrow()
	if err := hm.Save(path); err != nil {
		return nil, err
	}
	return hm, nil
}

// NumericColumns lists the int and float columns of df in table order.
func NumericColumns(df dataframe.DataFrame) []string {
	var out []string
	for _, name := range df.Names() {
		switch df.Col(name).Type() {
		case series.Int, series.Float:
			out = append(out, name)
		}
	}
	return out
}

// corrGrid exposes the rounded correlation matrix to plotter.HeatMap with the
// first column at the top. Masked cells are NaN and are left blank.
type corrGrid struct {
	vals [][]float64
}

func (g corrGrid) Dims() (c, r int) { return len(g.vals), len(g.vals) }
func (g corrGrid) Z(c, r int) float64 { return g.vals[len(g.vals)-1-r][c] }
func (g corrGrid) X(c int) float64 { return float64(c) }
func (g corrGrid) Y(r int) float64 { return float64(r) }

// NewHeatMap renders corr with the upper triangle hidden.
func NewHeatMap(names []string, corr *mat.SymDense) (*HeatMap, error) {
	n := len(names)
	if n < 2 || corr.SymmetricDim() != n {
		return nil, ErrTooFewColumns
	}
	mask := stats.UpperTriangleMask(n)

	vals := make([][]float64, n)
	var labels plotter.XYLabels
	for i := range vals {
		vals[i] = make([]float64, n)
		for j := range vals[i] {
			if mask[i][j] {
				vals[i][j] = math.NaN()
				continue
			}
			v := scalar.Round(corr.At(i, j), 1)
			vals[i][j] = v
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(j), Y: float64(n - 1 - i)})
			labels.Labels = append(labels.Labels, fmt.Sprintf("%.1f", v))
		}
	}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(heatMin)
	cmap.SetMax(heatMax)
	pal := cmap.Palette(255)
	colors := pal.Colors()

	hm := plotter.NewHeatMap(corrGrid{vals: vals}, pal)
	hm.Min, hm.Max = heatMin, heatMax
	hm.Underflow = colors[0]
	hm.Overflow = colors[len(colors)-1]

	p := plot.New()
	p.Add(hm)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	yticks := make([]plot.Tick, n)
	for r := range yticks {
		yticks[r] = plot.Tick{Value: float64(r), Label: names[n-1-r]}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)
	p.Y.Width = 0
	p.Y.Tick.Length = 0
	p.X.Tick.Label.Font.Size = vg.Points(10)
	p.Y.Tick.Label.Font.Size = vg.Points(10)

	if len(labels.Labels) > 0 {
		annot, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, fmt.Errorf("annotate: %w", err)
		}
		for i := range annot.TextStyle {
			annot.TextStyle[i].XAlign = text.XCenter
			annot.TextStyle[i].YAlign = text.YCenter
			annot.TextStyle[i].Font.Size = vg.Points(8)
		}
		p.Add(annot)
	}

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true})
	bar.HideX()
	bar.Y.Padding = 0

	fig := newFigure(heatMapTitle, 10*vg.Inch, 8*vg.Inch)
	dc := fig.drawTitle(vg.Points(16))

	barWidth := vg.Inch
	area := dc
	area.Max.X -= barWidth
	area = squareData(p, area)
	p.Draw(area)

	// Colour bar at half the height of the heatmap, vertically centred.
	bc := dc
	bc.Min.X = area.Max.X + vg.Millimeter*2
	bc.Max.X = bc.Min.X + barWidth*0.6
	h := area.Max.Y - area.Min.Y
	bc.Min.Y = area.Min.Y + h/4
	bc.Max.Y = area.Max.Y - h/4
	bar.Draw(bc)

	return &HeatMap{Figure: fig, Columns: names, Corr: corr, Mask: mask}, nil
}

// squareData shrinks c so the plot's data area is square.
func squareData(p *plot.Plot, c draw.Canvas) draw.Canvas {
	da := p.DataCanvas(c)
	dw := da.Max.X - da.Min.X
	dh := da.Max.Y - da.Min.Y
	if dw > dh {
		c.Max.X -= dw - dh
	} else {
		c.Min.Y += dh - dw
	}
	return c
}
