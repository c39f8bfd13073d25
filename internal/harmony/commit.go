package harmony

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ivlev/maya2harmony/internal/keyframe"
)

// Commit creates one column per planned curve and fills its keyframes.
// A column the graph refuses is skipped; the others are still written.
func Commit(g SceneGraph, plan *keyframe.Plan) error {
	var result *multierror.Error
	for _, c := range plan.Curves {
		if !g.CreateCurve(c.Name, string(c.Kind)) {
			result = multierror.Append(result, errors.Wrapf(ErrCollaborator, "failed to create column %q", c.Name))
			continue
		}

		switch c.Kind {
		case keyframe.Path3D, keyframe.QuaternionPath:
			for i, p := range c.Points {
				g.AppendPathKeyframe(c.Name, i+1, p.X, p.Y, p.Z, 0, 0, 0)
			}
		case keyframe.Bezier:
			for i, v := range c.Values {
				g.AppendCurveKeyframe(c.Name, i+1, v, 0, 0, 0, 0, true, keyframe.Straight)
			}
		}
		logrus.Debugf("column %s (%s) filled with %d keyframes", c.Name, c.Kind, c.Len())
	}
	return result.ErrorOrNil()
}
