package keyframe

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/ivlev/maya2harmony/internal/maya"
)

// Kind is the column type a curve is created as.
type Kind string

const (
	Path3D         Kind = "3DPATH"
	QuaternionPath Kind = "QUATERNIONPATH"
	Bezier         Kind = "BEZIER"
)

// Straight is the linear interpolation used for every Bezier keyframe.
const Straight = "STRAIGHT"

const inchToMM = 25.4

// ErrAxisMismatch is returned when the X, Y and Z series of a transform
// group do not have the same number of keyframes.
var ErrAxisMismatch = errors.New("x, y and z must have the same number of keyframes")

// Vec3 is one point of a 3D or quaternion path.
type Vec3 struct {
	X, Y, Z float64
}

// Curve is one animation column. Path curves use Points, Bezier curves use
// Values. Keyframe i is placed on frame i+1.
type Curve struct {
	Name   string
	Kind   Kind
	Points []Vec3
	Values []float64
}

// Len returns the number of keyframes.
func (c Curve) Len() int {
	if c.Kind == Bezier {
		return len(c.Values)
	}
	return len(c.Points)
}

// Plan is everything a commit creates, in creation order.
type Plan struct {
	Object   string
	Curves   []Curve
	Warnings []string
}

// Curve looks a curve up by name.
func (p *Plan) Curve(name string) (Curve, bool) {
	for _, c := range p.Curves {
		if c.Name == name {
			return c, true
		}
	}
	return Curve{}, false
}

// Options carries the target scene settings the assembler depends on.
type Options struct {
	ResolutionX int
	ResolutionY int
	// FOVSuffix is inserted between the object name and "FOV".
	FOVSuffix string
}

func DefaultOptions() Options {
	return Options{ResolutionX: 1920, ResolutionY: 1080}
}

// Aspect returns the horizontal/vertical ratio of the target resolution.
func (o Options) Aspect() float64 {
	return float64(o.ResolutionX) / float64(o.ResolutionY)
}

// Column names, matching what the peg linking step looks for.
func PathName(object string) string     { return object + "Path" }
func RotationName(object string) string { return object + "Rot" }
func FOVName(object, suffix string) string {
	return object + suffix + "FOV"
}
func SizeName(object, axis string) string {
	return object + "Size " + axis
}

type axisGroup struct {
	name    string
	x, y, z maya.Channel
}

var axisGroups = []axisGroup{
	{"translate", maya.TranslateX, maya.TranslateY, maya.TranslateZ},
	{"rotate", maya.RotateX, maya.RotateY, maya.RotateZ},
	{"scale", maya.ScaleX, maya.ScaleY, maya.ScaleZ},
}

// Assemble turns a sheet into a plan. A group whose axes disagree in length
// fails the whole assembly; missing lens data only adds a warning.
func Assemble(sheet *Sheet, opts Options) (*Plan, error) {
	series := make(map[maya.Channel]Series, len(maya.Channels))
	for _, c := range maya.Channels {
		s, err := ParseSeries(sheet.Raw(c))
		if err != nil {
			return nil, errors.Wrapf(err, "channel %s", c)
		}
		series[c] = s
	}

	var mismatched []string
	for _, g := range axisGroups {
		x, y, z := series[g.x], series[g.y], series[g.z]
		if !sameLength(x, y, z) {
			mismatched = append(mismatched, fmt.Sprintf("%s (%d, %d, %d)", g.name, len(x), len(y), len(z)))
		}
	}
	if len(mismatched) > 0 {
		return nil, errors.Wrap(ErrAxisMismatch, strings.Join(mismatched, ", "))
	}

	plan := &Plan{Object: sheet.Object}

	if tx := series[maya.TranslateX]; len(tx) > 0 {
		plan.Curves = append(plan.Curves, Curve{
			Name:   PathName(sheet.Object),
			Kind:   Path3D,
			Points: zip(tx, series[maya.TranslateY], series[maya.TranslateZ]),
		})
	}
	if rx := series[maya.RotateX]; len(rx) > 0 {
		plan.Curves = append(plan.Curves, Curve{
			Name:   RotationName(sheet.Object),
			Kind:   QuaternionPath,
			Points: zip(rx, series[maya.RotateY], series[maya.RotateZ]),
		})
	}

	// Scale stays three separate Bezier columns, unlike translate and rotate.
	for _, axis := range []struct {
		label   string
		channel maya.Channel
	}{{"x", maya.ScaleX}, {"y", maya.ScaleY}, {"z", maya.ScaleZ}} {
		if s := series[axis.channel]; len(s) > 0 {
			plan.Curves = append(plan.Curves, Curve{
				Name:   SizeName(sheet.Object, axis.label),
				Kind:   Bezier,
				Values: s,
			})
		}
	}

	focal, aperture := series[maya.FocalLength], series[maya.HorizontalFilmAperture]
	if len(focal) == 0 || len(focal) != len(aperture) {
		plan.Warnings = append(plan.Warnings, fmt.Sprintf(
			"focal length (%d keys) and horizontal film aperture (%d keys) are both needed to derive the camera FOV",
			len(focal), len(aperture)))
		return plan, nil
	}
	if opts.ResolutionX <= 0 || opts.ResolutionY <= 0 {
		return nil, errors.Errorf("invalid target resolution %dx%d", opts.ResolutionX, opts.ResolutionY)
	}
	fov := make([]float64, len(focal))
	for i := range focal {
		fov[i] = FieldOfView(focal[i], aperture[i], opts.Aspect())
	}
	plan.Curves = append(plan.Curves, Curve{
		Name:   FOVName(sheet.Object, opts.FOVSuffix),
		Kind:   Bezier,
		Values: fov,
	})

	return plan, nil
}

// FieldOfView converts a focal length in millimetres and a horizontal film
// aperture in inches into an angle of view in degrees for the given aspect.
func FieldOfView(focalLength, aperture, aspect float64) float64 {
	apertureMM := aperture * inchToMM
	halfAngle := math.Atan((apertureMM / aspect / 2) / focalLength)
	return 2 * halfAngle * 180 / math.Pi
}

func zip(x, y, z Series) []Vec3 {
	points := make([]Vec3, len(x))
	for i := range x {
		points[i] = Vec3{X: x[i], Y: y[i], Z: z[i]}
	}
	return points
}
