package viz

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/data"
	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/dataprep"
)

const (
	// CatPlotPath is the default output of DrawCatPlot.
	CatPlotPath  = "catplot.png"
	catPlotTitle = "Categorical Plot of Cardiovascular Risk Factors"
)

// Panel size follows a 5in tall facet with a 1.5 aspect ratio.
var (
	panelWidth  = 7.5 * vg.Inch
	panelHeight = 5 * vg.Inch
)

// hueColors are used for the Healthy / Not Healthy bars.
var hueColors = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
}

// CatPlot is the faceted bar chart of indicator counts.
type CatPlot struct {
	*Figure

	// Groups holds one entry per drawn bar.
	Groups []dataprep.GroupCount
	// Panels are the facet titles, left to right.
	Panels []string
	// Variables are the x-axis categories shared by every panel.
	Variables []string
}

// DrawCatPlot counts every health indicator per cardio outcome, renders one
// bar panel per outcome and saves the figure as PNG to path.
func DrawCatPlot(df dataframe.DataFrame, path string) (*CatPlot, error) {
	long, err := dataprep.Melt(df, data.ColCardio, dataprep.Indicators)
	if err != nil {
		return nil, fmt.Errorf("melt indicators: %w", err)
	}
	cp, err := NewCatPlot(dataprep.CountGroups(long))
	if err != nil {
		return nil, err
	}
	if err := cp.Save(path); err != nil {
		return nil, err
	}
	return cp, nil
}

// NewCatPlot renders pre-aggregated counts without touching the filesystem.
func NewCatPlot(groups []dataprep.GroupCount) (*CatPlot, error) {
	cardios, values := distinctCodes(groups)
	vars := dataprep.Variables(groups)
	varIdx := make(map[string]int, len(vars))
	for i, v := range vars {
		varIdx[v] = i
	}
	hueIdx := make(map[int]int, len(values))
	for i, v := range values {
		hueIdx[v] = i
	}

	maxCount := 0
	for _, g := range groups {
		if g.Count > maxCount {
			maxCount = g.Count
		}
	}

	barWidth := vg.Points(60) / vg.Length(max(len(values), 1))
	cp := &CatPlot{Groups: groups, Variables: vars}
	row := make([]*plot.Plot, 0, len(cardios))
	for pi, cardio := range cardios {
		title := dataprep.CardioLabel(cardio)
		cp.Panels = append(cp.Panels, title)

		p := plot.New()
		p.Title.Text = title
		p.X.Label.Text = "variable"
		p.Y.Label.Text = "total"
		p.NominalX(vars...)
		p.X.Min, p.X.Max = -0.5, float64(len(vars))-0.5
		p.Y.Min, p.Y.Max = 0, float64(maxCount)*1.05
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter

		thumbs := make(map[int]*plotter.BarChart)
		for _, g := range groups {
			if g.Cardio != cardio {
				continue
			}
			hue := hueIdx[g.Value]
			bar, err := plotter.NewBarChart(plotter.Values{float64(g.Count)}, barWidth)
			if err != nil {
				return nil, fmt.Errorf("bar %s/%d: %w", g.Variable, g.Value, err)
			}
			bar.XMin = float64(varIdx[g.Variable])
			bar.Offset = barWidth * (vg.Length(hue) - vg.Length(len(values)-1)/2)
			bar.Color = hueColor(hue)
			bar.LineStyle.Width = 0
			p.Add(bar)

			if _, ok := thumbs[g.Value]; !ok {
				thumbs[g.Value] = bar
			}
		}
		// One legend for the figure, on the rightmost panel.
		if pi == len(cardios)-1 {
			for _, v := range values {
				if bar, ok := thumbs[v]; ok {
					p.Legend.Add(dataprep.ValueLabel(v), bar)
				}
			}
		}
		p.Legend.Top = true
		row = append(row, p)
	}

	cp.Figure = newFigure(catPlotTitle, panelWidth*vg.Length(max(len(row), 1)), panelHeight+vg.Inch/2)
	dc := cp.Figure.drawTitle(vg.Points(16))
	if len(row) == 0 {
		return cp, nil
	}
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(row),
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for j, p := range row {
		p.Draw(canvases[0][j])
	}
	return cp, nil
}

func hueColor(i int) color.Color {
	if i < len(hueColors) {
		return hueColors[i]
	}
	return plotutil.Color(i)
}

func distinctCodes(groups []dataprep.GroupCount) (cardios, values []int) {
	seenC := make(map[int]bool)
	seenV := make(map[int]bool)
	for _, g := range groups {
		if !seenC[g.Cardio] {
			seenC[g.Cardio] = true
			cardios = append(cardios, g.Cardio)
		}
		if !seenV[g.Value] {
			seenV[g.Value] = true
			values = append(values, g.Value)
		}
	}
	sort.Ints(cardios)
	sort.Ints(values)
	return cardios, values
}
