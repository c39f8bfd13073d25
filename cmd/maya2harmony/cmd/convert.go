package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ivlev/maya2harmony/internal/engine"
)

func NewConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [FILE...]",
		Short: "Read, commit and link several scenes in parallel",
		Long: `convert writes <object>.yaml and <object>.js into the output directory for
every scene given. Without arguments it converts the newest scene of the input directory.`,
		Example: `maya2harmony convert scenes/*.ma -O build -w 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				path, err := scenePath(cfg, nil)
				if err != nil {
					return err
				}
				args = []string{path}
			}
			_, err = engine.NewProject(cfg).Run(cmd.Context(), args)
			return err
		},
	}
}
