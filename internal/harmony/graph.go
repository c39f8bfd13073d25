package harmony

import "github.com/pkg/errors"

// ErrCollaborator marks an operation the scene graph refused.
var ErrCollaborator = errors.New("scene graph refused the operation")

// Node kinds created by the tool.
const (
	PegNode       = "PEG"
	OrthoLockNode = "ORTHOLOCK"
)

// SceneGraph is the part of the Harmony scripting API the tool drives.
// Like the host API, operations fail quietly: creators report success with
// their second result and the rest return nothing.
type SceneGraph interface {
	CreateGroupNode(parent, name, kind string, x, y, z int) (string, bool)
	SetPosition(node string, x, y int)
	LinkNodes(src string, srcPort int, dst string, dstPort int)
	SetAttribute(node, attr string, frame int, value string)

	CreateCurve(name, kind string) bool
	AppendPathKeyframe(curve string, frame int, x, y, z, tx, ty, tz float64)
	AppendCurveKeyframe(curve string, frame int, value, inX, inY, outX, outY float64, constSeg bool, interp string)
	CurveKind(name string) (string, bool)
	LinkAttributeToCurve(node, attr, curve string)
}
