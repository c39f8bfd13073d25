// Package preview plots assembled curves against frame number.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ivlev/maya2harmony/internal/keyframe"
)

var ErrEmptyPlan = errors.New("plan has no curves to plot")

var palette = []color.Color{
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// Series is one plotted line.
type Series struct {
	Label  string
	Points plotter.XYs
}

// Lines flattens a plan into plottable lines: one per axis for 3D curves,
// one per Bezier curve. Frames start at 1.
func Lines(plan *keyframe.Plan) []Series {
	var lines []Series
	for _, c := range plan.Curves {
		if len(c.Points) > 0 {
			axes := [3]Series{{Label: c.Name + " x"}, {Label: c.Name + " y"}, {Label: c.Name + " z"}}
			for i, p := range c.Points {
				f := float64(i + 1)
				axes[0].Points = append(axes[0].Points, plotter.XY{X: f, Y: p.X})
				axes[1].Points = append(axes[1].Points, plotter.XY{X: f, Y: p.Y})
				axes[2].Points = append(axes[2].Points, plotter.XY{X: f, Y: p.Z})
			}
			lines = append(lines, axes[:]...)
			continue
		}
		s := Series{Label: c.Name}
		for i, v := range c.Values {
			s.Points = append(s.Points, plotter.XY{X: float64(i + 1), Y: v})
		}
		if len(s.Points) > 0 {
			lines = append(lines, s)
		}
	}
	return lines
}

// Plot builds the chart for a plan.
func Plot(plan *keyframe.Plan) (*plot.Plot, error) {
	lines := Lines(plan)
	if len(lines) == 0 {
		return nil, ErrEmptyPlan
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s keyframes", plan.Object)
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Value"

	for i, s := range lines {
		line, err := plotter.NewLine(s.Points)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to plot %s", s.Label)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// Render writes the chart of a plan to path. The format follows the
// extension (.png, .svg, .pdf ...).
func Render(plan *keyframe.Plan, path string) error {
	p, err := Plot(plan)
	if err != nil {
		return err
	}
	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}

// Thumbnail scales the PNG at src down to width pixels, keeping the aspect
// ratio, and writes it to dst as PNG.
func Thumbnail(src, dst string, width int) error {
	if width <= 0 {
		return errors.Errorf("invalid thumbnail width %d", width)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := png.Decode(in)
	if err != nil {
		return errors.Wrapf(err, "failed to decode %s", src)
	}

	b := img.Bounds()
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	thumb := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(thumb, thumb.Bounds(), img, b, draw.Src, nil)

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := png.Encode(out, thumb); err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to encode %s", dst)
	}
	return out.Close()
}
