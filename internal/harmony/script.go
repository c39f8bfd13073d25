package harmony

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const scriptFunc = "importMayaLocator"

// jsExpr is script text emitted as is, such as a variable holding a node path.
type jsExpr string

// ScriptGraph turns scene graph calls into a Harmony script. Nodes and
// columns it emitted are remembered so later calls see the same outcome the
// host would give: empty or duplicate names are refused.
//
// The script checks the host's results too. Each node.add result is kept in
// a variable that later calls use, and a failed node aborts the import with
// a message box. Keyframes are only added when column.add succeeded.
type ScriptGraph struct {
	w       io.Writer
	err     error
	closed  bool
	nodes   map[string]string
	columns map[string]string
	// open is the column whose keyframe block is still open.
	open string
}

// NewScriptGraph writes the script header to w. Close must be called to
// finish the script.
func NewScriptGraph(w io.Writer, source string) *ScriptGraph {
	g := &ScriptGraph{
		w:       w,
		nodes:   map[string]string{},
		columns: map[string]string{},
	}
	if source != "" {
		g.printf("// Generated by maya2harmony from %s\n", strings.ReplaceAll(source, "\n", " "))
	}
	g.printf("function %s()\n{\n", scriptFunc)
	g.line(1, "%s;", call("scene.beginUndoRedoAccum", "Import Maya locator"))
	g.line(1, "try {")
	return g
}

// Close ends the undo block and calls the generated function.
func (g *ScriptGraph) Close() error {
	if g.closed {
		return g.err
	}
	g.closed = true
	g.endColumn()
	g.line(1, "} finally {")
	g.line(2, "%s;", call("scene.endUndoRedoAccum"))
	g.line(1, "}")
	g.printf("}\n\n%s();\n", scriptFunc)
	return g.err
}

// Err returns the first write error.
func (g *ScriptGraph) Err() error {
	return g.err
}

func (g *ScriptGraph) CreateGroupNode(parent, name, kind string, x, y, z int) (string, bool) {
	path := parent + "/" + name
	if _, ok := g.nodes[path]; name == "" || ok {
		return "", false
	}
	g.endColumn()

	id := "node" + strconv.Itoa(len(g.nodes)+1)
	g.nodes[path] = id
	g.line(2, "var %s = %s;", id, call("node.add", parent, name, kind, x, y, z))
	g.line(2, "if (!%s) {", id)
	g.line(3, "%s;", call("MessageBox.critical", fmt.Sprintf("Failed to create %s %s.", kind, path)))
	g.line(3, "return;")
	g.line(2, "}")
	return path, true
}

func (g *ScriptGraph) SetPosition(node string, x, y int) {
	g.statement("node.setCoord", g.node(node), x, y)
}

func (g *ScriptGraph) LinkNodes(src string, srcPort int, dst string, dstPort int) {
	g.statement("node.link", g.node(src), srcPort, g.node(dst), dstPort)
}

func (g *ScriptGraph) SetAttribute(node, attr string, frame int, value string) {
	g.statement("node.setTextAttr", g.node(node), attr, frame, value)
}

func (g *ScriptGraph) CreateCurve(name, kind string) bool {
	if _, ok := g.columns[name]; name == "" || ok {
		return false
	}
	g.endColumn()

	g.columns[name] = kind
	g.line(2, "if (%s) {", call("column.add", name, kind))
	g.open = name
	return true
}

func (g *ScriptGraph) AppendPathKeyframe(curve string, frame int, x, y, z, tx, ty, tz float64) {
	g.keyframe(curve, call("func.addKeyFramePath3d", curve, frame, x, y, z, tx, ty, tz))
}

func (g *ScriptGraph) AppendCurveKeyframe(curve string, frame int, value, inX, inY, outX, outY float64, constSeg bool, interp string) {
	g.keyframe(curve, call("func.setBezierPoint", curve, frame, value, inX, inY, outX, outY, constSeg, interp))
}

func (g *ScriptGraph) CurveKind(name string) (string, bool) {
	kind, ok := g.columns[name]
	return kind, ok
}

// LinkAttributeToCurve links only when the host column has the type the
// column was created with.
func (g *ScriptGraph) LinkAttributeToCurve(node, attr, curve string) {
	g.endColumn()
	link := call("node.linkAttr", g.node(node), attr, curve)
	kind, ok := g.columns[curve]
	if !ok {
		g.line(2, "%s;", link)
		return
	}
	g.line(2, "if (%s == %s) {", call("column.type", curve), jsValue(kind))
	g.line(3, "%s;", link)
	g.line(2, "}")
}

// node returns the variable holding a node created by this script, or the
// path itself for nodes already in the scene.
func (g *ScriptGraph) node(path string) interface{} {
	if id, ok := g.nodes[path]; ok {
		return jsExpr(id)
	}
	return path
}

func (g *ScriptGraph) keyframe(curve, stmt string) {
	if curve == g.open {
		g.line(3, "%s;", stmt)
		return
	}
	g.endColumn()
	g.line(2, "%s;", stmt)
}

// endColumn closes the open keyframe block.
func (g *ScriptGraph) endColumn() {
	if g.open == "" {
		return
	}
	g.line(2, "} else {")
	g.line(3, "%s;", call("MessageLog.trace", fmt.Sprintf("Could not create column %s, keyframes skipped.", g.open)))
	g.line(2, "}")
	g.open = ""
}

func (g *ScriptGraph) statement(fn string, args ...interface{}) {
	g.endColumn()
	g.line(2, "%s;", call(fn, args...))
}

func (g *ScriptGraph) line(depth int, format string, args ...interface{}) {
	g.printf(strings.Repeat("    ", depth)+format+"\n", args...)
}

func (g *ScriptGraph) printf(format string, args ...interface{}) {
	if g.err != nil {
		return
	}
	if _, err := fmt.Fprintf(g.w, format, args...); err != nil {
		g.err = errors.Wrap(err, "failed to write harmony script")
	}
}

func call(fn string, args ...interface{}) string {
	values := make([]string, len(args))
	for i, a := range args {
		values[i] = jsValue(a)
	}
	return fn + "(" + strings.Join(values, ", ") + ")"
}

func jsValue(v interface{}) string {
	switch v := v.(type) {
	case jsExpr:
		return string(v)
	case string:
		// A JSON string is a valid JavaScript string literal.
		b, _ := json.Marshal(v)
		return string(b)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
