package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ivlev/maya2harmony/internal/engine"
	"github.com/ivlev/maya2harmony/internal/harmony"
)

type commitOpts struct {
	output string
	dryRun bool
}

func NewCommitCmd() *cobra.Command {
	opts := &commitOpts{}
	commitCmd := &cobra.Command{
		Use:   "commit [SHEET|FILE]",
		Short: "Write a script that creates the function columns of an object",
		Args:  cobra.MaximumNArgs(1),
		Example: `maya2harmony commit locator1.yaml
maya2harmony commit scenes/locator1.ma --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(opts, args, false)
		},
	}
	commitCmd.Flags().StringVarP(&opts.output, "output", "o", "", "script path (default <output-dir>/<object>.js)")
	commitCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print what would be created instead of writing a script")
	return commitCmd
}

func NewCreateCmd() *cobra.Command {
	opts := &commitOpts{}
	createCmd := &cobra.Command{
		Use:     "create [SHEET|FILE]",
		Short:   "Write a script that creates the columns, a 3D peg and its ortho lock, and links them",
		Args:    cobra.MaximumNArgs(1),
		Example: `maya2harmony create locator1.yaml -o locator1.js`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(opts, args, true)
		},
	}
	createCmd.Flags().StringVarP(&opts.output, "output", "o", "", "script path (default <output-dir>/<object>.js)")
	createCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print what would be created instead of writing a script")
	return createCmd
}

func runApply(opts *commitOpts, args []string, link bool) error {
	p, sheet, plan, err := loadPlan(args)
	if err != nil {
		return err
	}

	if opts.dryRun {
		g := harmony.NewMemoryGraph()
		_, err := p.Apply(g, plan, link)
		g.Summary(os.Stdout)
		return err
	}

	out := opts.output
	if out == "" {
		if plan.Object == "" {
			return errors.Wrapf(engine.ErrNoTransform, "%s needs -o to name the script", sheet.Source)
		}
		if err := os.MkdirAll(p.Config.OutputDir, 0755); err != nil {
			return err
		}
		out = filepath.Join(p.Config.OutputDir, plan.Object+".js")
	}
	if _, err := p.WriteScript(plan, out, sheet.Source, link); err != nil {
		return err
	}
	logrus.Infof("wrote %s", out)
	return nil
}
