package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/maya2harmony/internal/keyframe"
	"github.com/ivlev/maya2harmony/internal/maya"
)

func TestHanoiCmd(t *testing.T) {
	var out bytes.Buffer
	c := NewHanoiCmd()
	c.SetOut(&out)
	c.SetArgs([]string{"-n", "2", "--from", "L", "--to", "R", "--via", "M"})
	require.NoError(t, c.Execute())

	assert.Equal(t, strings.Join([]string{
		"1: move disk 0 from L to M",
		"2: move disk 1 from L to R",
		"3: move disk 0 from M to R",
		"3 moves",
		"",
	}, "\n"), out.String())
}

func TestPrintInspect(t *testing.T) {
	sheet := &keyframe.Sheet{Object: "loc", Channels: map[maya.Channel]string{
		maya.ScaleX: "1 1 2 2.5",
		maya.ScaleY: "1 1 2 2.5",
		maya.ScaleZ: "1 1 2 2.5",
	}}
	plan, err := keyframe.Assemble(sheet, keyframe.DefaultOptions())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printInspect(&out, sheet, plan))
	s := out.String()
	assert.Contains(t, s, "object: loc")
	assert.Contains(t, s, "scaleY")
	assert.Contains(t, s, "2.5")
	assert.Contains(t, s, "locSize z")
	assert.NotContains(t, s, "translateX")
}

func TestIsSheet(t *testing.T) {
	assert.True(t, isSheet("a/loc.yaml"))
	assert.True(t, isSheet("LOC.YML"))
	assert.False(t, isSheet("loc.ma"))
}

const locatorScene = `createNode transform -n "loc";
createNode animCurveTU -n "loc_scaleX";
	setAttr -s 2 ".ktv[0:1]"  1 1 2 2;
createNode animCurveTU -n "loc_scaleY";
	setAttr -s 2 ".ktv[0:1]"  1 1 2 2;
createNode animCurveTU -n "loc_scaleZ";
	setAttr -s 2 ".ktv[0:1]"  1 1 2 1;
`

func TestPreviewCreatesOutputDir(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "loc.ma")
	require.NoError(t, os.WriteFile(scene, []byte(locatorScene), 0o644))

	out := filepath.Join(dir, "fresh", "output")
	viper.Set("output_dir", out)
	defer viper.Set("output_dir", "output")

	c := NewPreviewCmd()
	c.SetArgs([]string{scene, "--thumb", "64"})
	require.NoError(t, c.Execute())

	assert.FileExists(t, filepath.Join(out, "loc.png"))
	assert.FileExists(t, filepath.Join(out, "loc_thumb.png"))
}

func TestThumbnailPath(t *testing.T) {
	tests := []struct {
		name  string
		out   string
		width int
		want  string
		fails bool
	}{
		{"no thumbnail", "loc.svg", 0, "", false},
		{"png", "out/loc.png", 320, "out/loc_thumb.png", false},
		{"upper case png", "LOC.PNG", 320, "LOC_thumb.png", false},
		{"svg", "loc.svg", 320, "", true},
		{"pdf", "loc.pdf", 320, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := thumbnailPath(tt.out, tt.width)
			if tt.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
