package harmony

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ivlev/maya2harmony/internal/keyframe"
)

// ErrMissingName is returned when a peg is requested for an unnamed locator.
var ErrMissingName = errors.New("missing locator name")

// PegOptions places the peg and its lock in the node view.
type PegOptions struct {
	Parent string
	// SetPeg feeds the new peg; empty skips the link.
	SetPeg    string
	PegX      int
	PegY      int
	LockX     int
	LockY     int
	FOVSuffix string
}

func DefaultPegOptions() PegOptions {
	return PegOptions{
		Parent: "Top",
		SetPeg: "Top/3D_Set_peg",
		PegX:   1250,
		PegY:   -650,
		LockX:  1250,
		LockY:  -625,
	}
}

// Rig is what CreateAndLink built.
type Rig struct {
	Peg    string
	Lock   string
	Linked []string
}

type attrValue struct {
	attr  string
	value string
}

var pegDefaults = []attrValue{
	{"ENABLE_3D", "true"},
	{"position.separate", "Off"},
	{"POSITION.X", "0"},
	{"POSITION.Y", "0"},
	{"POSITION.Z", "0"},
	{"ROTATION.ANGLEX", "0"},
	{"ROTATION.ANGLEY", "0"},
	{"ROTATION.ANGLEZ", "0"},
	{"SCALE.X", "1"},
	{"SCALE.Y", "1"},
	{"SCALE.Z", "1"},
}

type columnLink struct {
	attr   string
	column string
	kind   keyframe.Kind
}

func columnLinks(object string) []columnLink {
	return []columnLink{
		{"POSITION.3DPATH", keyframe.PathName(object), keyframe.Path3D},
		{"ROTATION.QUATERNIONPATH", keyframe.RotationName(object), keyframe.QuaternionPath},
		{"SCALE.X", keyframe.SizeName(object, "x"), keyframe.Bezier},
		{"SCALE.Y", keyframe.SizeName(object, "y"), keyframe.Bezier},
		{"SCALE.Z", keyframe.SizeName(object, "z"), keyframe.Bezier},
	}
}

// CreateAndLink adds a 3D peg named after the object, links it to the
// columns a commit created for that object and locks it with an OrthoLock.
// Failing to create the peg fails the call. A failed OrthoLock is returned
// together with the partial rig; nothing is rolled back.
func CreateAndLink(g SceneGraph, object string, opts PegOptions) (*Rig, error) {
	if object == "" {
		return nil, ErrMissingName
	}

	peg, ok := g.CreateGroupNode(opts.Parent, object, PegNode, 0, 0, 0)
	if !ok {
		return nil, errors.Wrapf(ErrCollaborator, "failed to create peg %q", object)
	}
	g.SetPosition(peg, opts.PegX, opts.PegY)
	if opts.SetPeg != "" {
		g.LinkNodes(opts.SetPeg, 0, peg, 0)
	}
	for _, a := range pegDefaults {
		g.SetAttribute(peg, a.attr, 1, a.value)
	}

	rig := &Rig{Peg: peg}
	for _, l := range columnLinks(object) {
		kind, ok := g.CurveKind(l.column)
		if !ok || kind != string(l.kind) {
			logrus.Debugf("no %s column %q, leaving %s unlinked", l.kind, l.column, l.attr)
			continue
		}
		g.LinkAttributeToCurve(peg, l.attr, l.column)
		rig.Linked = append(rig.Linked, l.attr)
	}

	fov := keyframe.FOVName(object, opts.FOVSuffix)
	if kind, ok := g.CurveKind(fov); ok && kind == string(keyframe.Bezier) {
		logrus.Infof("FOV column exists: %s", fov)
	}

	lock, ok := g.CreateGroupNode(opts.Parent, object+"_OrthoLock", OrthoLockNode, 0, 0, 0)
	if !ok {
		return rig, errors.Wrapf(ErrCollaborator, "failed to create OrthoLock for %q", peg)
	}
	g.SetPosition(lock, opts.LockX, opts.LockY)
	g.LinkNodes(peg, 0, lock, 0)
	rig.Lock = lock

	return rig, nil
}
