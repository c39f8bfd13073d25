package harmony

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/maya2harmony/internal/keyframe"
	"github.com/ivlev/maya2harmony/internal/maya"
)

func assemble(t *testing.T, object string, channels map[maya.Channel]string) *keyframe.Plan {
	t.Helper()
	plan, err := keyframe.Assemble(&keyframe.Sheet{Object: object, Channels: channels}, keyframe.DefaultOptions())
	require.NoError(t, err)
	return plan
}

var fullLocator = map[maya.Channel]string{
	maya.TranslateX: "1 0 2 1 3 2",
	maya.TranslateY: "1 0 2 0 3 0",
	maya.TranslateZ: "1 5 2 5 3 5",
	maya.RotateX:    "1 0 2 0 3 0",
	maya.RotateY:    "1 0 2 45 3 90",
	maya.RotateZ:    "1 0 2 0 3 0",
	maya.ScaleX:     "1 1 2 1.5 3 2",
	maya.ScaleY:     "1 1 2 1.5 3 2",
	maya.ScaleZ:     "1 1 2 1 3 1",
}

func TestCommitFillsColumns(t *testing.T) {
	g := NewMemoryGraph()
	require.NoError(t, Commit(g, assemble(t, "loc", fullLocator)))

	path := g.Columns["locPath"]
	require.NotNil(t, path)
	assert.Equal(t, "3DPATH", path.Kind)
	assert.Equal(t, []Keyframe{
		{Frame: 1, X: 0, Y: 0, Z: 5},
		{Frame: 2, X: 1, Y: 0, Z: 5},
		{Frame: 3, X: 2, Y: 0, Z: 5},
	}, path.Keys)

	rot := g.Columns["locRot"]
	require.NotNil(t, rot)
	assert.Equal(t, "QUATERNIONPATH", rot.Kind)
	assert.Equal(t, 90.0, rot.Keys[2].Y)

	for _, axis := range []string{"x", "y", "z"} {
		c := g.Columns["locSize "+axis]
		require.NotNil(t, c, axis)
		assert.Equal(t, "BEZIER", c.Kind)
		require.Len(t, c.Keys, 3)
		for i, k := range c.Keys {
			assert.Equal(t, i+1, k.Frame)
			assert.Equal(t, keyframe.Straight, k.Interp)
		}
	}
	assert.Len(t, g.Columns, 5)
}

func TestCommitSkipsRefusedColumn(t *testing.T) {
	g := NewMemoryGraph()
	g.Refuse["locRot"] = true

	err := Commit(g, assemble(t, "loc", fullLocator))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCollaborator))
	assert.Contains(t, err.Error(), "locRot")

	assert.Nil(t, g.Columns["locRot"])
	assert.NotNil(t, g.Columns["locPath"])
	assert.NotNil(t, g.Columns["locSize z"])
}

func TestMismatchCreatesNothing(t *testing.T) {
	channels := map[maya.Channel]string{
		maya.TranslateX: "1 0 2 1 3 2",
		maya.TranslateY: "1 0 2 1 3 2",
		maya.TranslateZ: "1 0 2 1",
	}
	_, err := keyframe.Assemble(&keyframe.Sheet{Object: "loc", Channels: channels}, keyframe.DefaultOptions())
	require.ErrorIs(t, err, keyframe.ErrAxisMismatch)

	// No plan means nothing reaches the graph.
	g := NewMemoryGraph()
	assert.Empty(t, g.Columns)
	assert.Empty(t, g.Nodes)
}

func TestCreateAndLink(t *testing.T) {
	g := NewMemoryGraph()
	require.NoError(t, Commit(g, assemble(t, "loc", fullLocator)))

	rig, err := CreateAndLink(g, "loc", DefaultPegOptions())
	require.NoError(t, err)

	assert.Equal(t, "Top/loc", rig.Peg)
	assert.Equal(t, "Top/loc_OrthoLock", rig.Lock)
	assert.Equal(t, []string{"POSITION.3DPATH", "ROTATION.QUATERNIONPATH", "SCALE.X", "SCALE.Y", "SCALE.Z"}, rig.Linked)

	peg := g.Nodes["Top/loc"]
	require.NotNil(t, peg)
	assert.Equal(t, PegNode, peg.Kind)
	assert.Equal(t, 1250, peg.X)
	assert.Equal(t, -650, peg.Y)
	assert.Equal(t, "true", peg.Attrs["ENABLE_3D"])
	assert.Equal(t, "Off", peg.Attrs["position.separate"])
	assert.Equal(t, "1", peg.Attrs["SCALE.Z"])
	assert.Equal(t, "locPath", peg.Columns["POSITION.3DPATH"])
	assert.Equal(t, "locSize y", peg.Columns["SCALE.Y"])

	lock := g.Nodes["Top/loc_OrthoLock"]
	require.NotNil(t, lock)
	assert.Equal(t, OrthoLockNode, lock.Kind)
	assert.Equal(t, -625, lock.Y)

	assert.Equal(t, []Link{
		{Src: "Top/3D_Set_peg", SrcPort: 0, Dst: "Top/loc", DstPort: 0},
		{Src: "Top/loc", SrcPort: 0, Dst: "Top/loc_OrthoLock", DstPort: 0},
	}, g.Links)
}

func TestCreateAndLinkOnlyMatchingKinds(t *testing.T) {
	g := NewMemoryGraph()
	// A column with the right name but the wrong type is not linked.
	require.True(t, g.CreateCurve("locPath", "BEZIER"))

	rig, err := CreateAndLink(g, "loc", DefaultPegOptions())
	require.NoError(t, err)
	assert.Empty(t, rig.Linked)
}

func TestCreateAndLinkFailures(t *testing.T) {
	_, err := CreateAndLink(NewMemoryGraph(), "", DefaultPegOptions())
	assert.ErrorIs(t, err, ErrMissingName)

	g := NewMemoryGraph()
	g.Refuse["loc"] = true
	rig, err := CreateAndLink(g, "loc", DefaultPegOptions())
	assert.ErrorIs(t, err, ErrCollaborator)
	assert.Nil(t, rig)
	assert.Empty(t, g.Nodes)

	g = NewMemoryGraph()
	g.Refuse["loc_OrthoLock"] = true
	rig, err = CreateAndLink(g, "loc", DefaultPegOptions())
	assert.ErrorIs(t, err, ErrCollaborator)
	require.NotNil(t, rig)
	assert.Equal(t, "Top/loc", rig.Peg)
	assert.Empty(t, rig.Lock)
	assert.NotNil(t, g.Nodes["Top/loc"], "the peg is kept")
}

func TestScriptGraph(t *testing.T) {
	var buf bytes.Buffer
	g := NewScriptGraph(&buf, "scenes/loc.ma")

	plan := assemble(t, "loc", map[maya.Channel]string{
		maya.TranslateX: "1 0 2 1.5",
		maya.TranslateY: "1 0 2 0",
		maya.TranslateZ: "1 0 2 -2",
		maya.ScaleX:     "1 1",
		maya.ScaleY:     "1 1",
		maya.ScaleZ:     "1 1",
	})
	require.NoError(t, Commit(g, plan))
	_, err := CreateAndLink(g, "loc", DefaultPegOptions())
	require.NoError(t, err)
	require.NoError(t, g.Close())

	script := buf.String()
	for _, line := range []string{
		`// Generated by maya2harmony from scenes/loc.ma`,
		`scene.beginUndoRedoAccum("Import Maya locator");`,
		`if (column.add("locPath", "3DPATH")) {`,
		`func.addKeyFramePath3d("locPath", 2, 1.5, 0, -2, 0, 0, 0);`,
		`MessageLog.trace("Could not create column locPath, keyframes skipped.");`,
		`if (column.add("locSize x", "BEZIER")) {`,
		`func.setBezierPoint("locSize x", 1, 1, 0, 0, 0, 0, true, "STRAIGHT");`,
		`var node1 = node.add("Top", "loc", "PEG", 0, 0, 0);`,
		`if (!node1) {`,
		`MessageBox.critical("Failed to create PEG Top/loc.");`,
		`node.setCoord(node1, 1250, -650);`,
		`node.link("Top/3D_Set_peg", 0, node1, 0);`,
		`node.setTextAttr(node1, "ENABLE_3D", 1, "true");`,
		`if (column.type("locPath") == "3DPATH") {`,
		`node.linkAttr(node1, "POSITION.3DPATH", "locPath");`,
		`node.linkAttr(node1, "SCALE.X", "locSize x");`,
		`var node2 = node.add("Top", "loc_OrthoLock", "ORTHOLOCK", 0, 0, 0);`,
		`node.setCoord(node2, 1250, -625);`,
		`node.link(node1, 0, node2, 0);`,
		`} finally {`,
		`scene.endUndoRedoAccum();`,
	} {
		assert.Contains(t, script, line)
	}
	assert.NotContains(t, script, "ROTATION.QUATERNIONPATH")
	assert.NotContains(t, script, `node.setCoord("Top/loc"`, "created nodes are used through the path the host returned")
	assert.True(t, strings.HasSuffix(script, "importMayaLocator();\n"))

	// Keyframes sit inside the column.add guard.
	guard := strings.Index(script, `if (column.add("locPath", "3DPATH")) {`)
	key := strings.Index(script, `func.addKeyFramePath3d("locPath", 1,`)
	orElse := strings.Index(script[guard:], "} else {") + guard
	assert.Less(t, guard, key)
	assert.Less(t, key, orElse)
	assert.Contains(t, script, "\n            func.addKeyFramePath3d(\"locPath\", 1, 0, 0, 0, 0, 0, 0);\n")

	// A failed peg stops the import before anything uses it.
	check := strings.Index(script, `if (!node1) {`)
	assert.Less(t, check, strings.Index(script, `node.setCoord(node1`))
	assert.Contains(t, script[check:], "return;")

	// Closing twice does not duplicate the footer.
	require.NoError(t, g.Close())
	assert.Equal(t, 1, strings.Count(buf.String(), "endUndoRedoAccum"))
}

func TestScriptGraphRefusesDuplicates(t *testing.T) {
	g := NewScriptGraph(&bytes.Buffer{}, "")

	assert.True(t, g.CreateCurve("a", "BEZIER"))
	assert.False(t, g.CreateCurve("a", "BEZIER"))
	assert.False(t, g.CreateCurve("", "BEZIER"))

	_, ok := g.CreateGroupNode("Top", "p", PegNode, 0, 0, 0)
	assert.True(t, ok)
	_, ok = g.CreateGroupNode("Top", "p", PegNode, 0, 0, 0)
	assert.False(t, ok)

	kind, ok := g.CurveKind("a")
	assert.True(t, ok)
	assert.Equal(t, "BEZIER", kind)
}

func TestScriptGraphQuotesNames(t *testing.T) {
	var buf bytes.Buffer
	g := NewScriptGraph(&buf, "")
	g.CreateCurve(`say "hi"`, "BEZIER")

	assert.Contains(t, buf.String(), `if (column.add("say \"hi\"", "BEZIER")) {`)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestScriptGraphWriteError(t *testing.T) {
	g := NewScriptGraph(failingWriter{}, "x.ma")
	g.SetPosition("Top/a", 1, 2)

	assert.Error(t, g.Err())
	assert.Error(t, g.Close())
}

func TestMemoryGraphSummary(t *testing.T) {
	g := NewMemoryGraph()
	require.NoError(t, Commit(g, assemble(t, "loc", fullLocator)))
	_, err := CreateAndLink(g, "loc", DefaultPegOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	g.Summary(&buf)
	out := buf.String()

	assert.Contains(t, out, "locPath")
	assert.Contains(t, out, "QUATERNIONPATH")
	assert.Contains(t, out, "Top/loc_OrthoLock")
}
