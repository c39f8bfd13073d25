package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ivlev/maya2harmony/internal/preview"
)

type previewOpts struct {
	output string
	thumb  int
}

func NewPreviewCmd() *cobra.Command {
	opts := &previewOpts{}
	previewCmd := &cobra.Command{
		Use:     "preview [SHEET|FILE]",
		Short:   "Plot the assembled curves of an object against frame number",
		Args:    cobra.MaximumNArgs(1),
		Example: `maya2harmony preview scenes/locator1.ma -o locator1.png --thumb 320`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, plan, err := loadPlan(args)
			if err != nil {
				return err
			}
			out := opts.output
			if out == "" {
				out = filepath.Join(p.Config.OutputDir, plan.Object+".png")
			}
			thumb, err := thumbnailPath(out, opts.thumb)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
				return err
			}
			if err := preview.Render(plan, out); err != nil {
				return err
			}
			logrus.Infof("wrote %s", out)

			if thumb != "" {
				if err := preview.Thumbnail(out, thumb, opts.thumb); err != nil {
					return err
				}
				logrus.Infof("wrote %s", thumb)
			}
			return nil
		},
	}
	previewCmd.Flags().StringVarP(&opts.output, "output", "o", "", "image path (default <output-dir>/<object>.png)")
	previewCmd.Flags().IntVar(&opts.thumb, "thumb", 0, "also write a PNG thumbnail this many pixels wide")
	return previewCmd
}

// thumbnailPath names the thumbnail of out, or returns "" when none is
// asked for. Thumbnails are scaled from the PNG chart, so out must be a PNG.
func thumbnailPath(out string, width int) (string, error) {
	if width <= 0 {
		return "", nil
	}
	ext := filepath.Ext(out)
	if !strings.EqualFold(ext, ".png") {
		return "", errors.Errorf("--thumb needs a .png output, got %q", out)
	}
	return strings.TrimSuffix(out, ext) + "_thumb.png", nil
}
