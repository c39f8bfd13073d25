package preview

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/maya2harmony/internal/keyframe"
)

func testPlan() *keyframe.Plan {
	return &keyframe.Plan{
		Object: "loc",
		Curves: []keyframe.Curve{
			{Name: "locPath", Kind: keyframe.Path3D, Points: []keyframe.Vec3{{X: 0, Y: 1, Z: 2}, {X: 1, Y: 1, Z: 2}}},
			{Name: "locSize x", Kind: keyframe.Bezier, Values: []float64{1, 1.5, 2}},
		},
	}
}

func TestLines(t *testing.T) {
	lines := Lines(testPlan())
	require.Len(t, lines, 4)

	assert.Equal(t, "locPath x", lines[0].Label)
	assert.Equal(t, 1.0, lines[0].Points[1].Y)
	assert.Equal(t, 2.0, lines[0].Points[1].X)
	assert.Equal(t, "locPath z", lines[2].Label)
	assert.Equal(t, 2.0, lines[2].Points[0].Y)

	assert.Equal(t, "locSize x", lines[3].Label)
	assert.Len(t, lines[3].Points, 3)
	assert.Equal(t, 3.0, lines[3].Points[2].X)
}

func TestRenderAndThumbnail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loc.png")
	require.NoError(t, Render(testPlan(), path))

	thumbPath := filepath.Join(dir, "loc_thumb.png")
	require.NoError(t, Thumbnail(path, thumbPath, 200))

	f, err := os.Open(thumbPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Less(t, cfg.Height, cfg.Width)
}

func TestRenderEmptyPlan(t *testing.T) {
	err := Render(&keyframe.Plan{Object: "loc"}, filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, ErrEmptyPlan)
}

func TestThumbnailErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, Thumbnail(filepath.Join(dir, "missing.png"), filepath.Join(dir, "t.png"), 100))

	notPNG := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(notPNG, []byte("nope"), 0o644))
	assert.Error(t, Thumbnail(notPNG, filepath.Join(dir, "t.png"), 100))
	assert.Error(t, Thumbnail(notPNG, filepath.Join(dir, "t.png"), 0))
}
