// Package viz renders the medical examination summaries as PNG figures.
package viz

import (
	"fmt"
	"image"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is a rendered raster canvas.
type Figure struct {
	Title  string
	Width  vg.Length
	Height vg.Length

	canvas *vgimg.Canvas
}

func newFigure(title string, w, h vg.Length) *Figure {
	return &Figure{Title: title, Width: w, Height: h, canvas: vgimg.New(w, h)}
}

// Image returns the rendered figure.
func (f *Figure) Image() image.Image {
	return f.canvas.Image()
}

// Save writes the figure as PNG to path, overwriting any existing file.
func (f *Figure) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: f.canvas}).WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}

// drawTitle writes the figure title centred at the top and returns the
// canvas area left below it.
func (f *Figure) drawTitle(size vg.Length) draw.Canvas {
	dc := draw.New(f.canvas)
	sty := plot.New().Title.TextStyle
	sty.Font.Size = size
	sty.XAlign = text.XCenter
	sty.YAlign = text.YTop

	pad := vg.Points(8)
	top := dc.Max.Y - pad
	dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: top}, f.Title)
	return draw.Crop(dc, 0, 0, 0, -(sty.Height(f.Title) + 2*pad))
}
