package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ivlev/maya2harmony/internal/engine"
	"github.com/ivlev/maya2harmony/internal/keyframe"
)

var readOutput string

func NewReadCmd() *cobra.Command {
	readCmd := &cobra.Command{
		Use:   "read [FILE]",
		Short: "Extract the object name and raw keyframe strings from a Maya ASCII scene",
		Args:  cobra.MaximumNArgs(1),
		Example: `maya2harmony read scenes/locator1.ma
maya2harmony read scenes/locator1.ma -o locator1.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path, err := scenePath(cfg, args)
			if err != nil {
				return err
			}
			sheet, err := engine.NewProject(cfg).Read(path)
			if err != nil {
				return err
			}
			if readOutput == "" {
				return keyframe.EncodeSheet(os.Stdout, sheet)
			}
			if err := keyframe.WriteSheet(sheet, readOutput); err != nil {
				return err
			}
			logrus.Infof("wrote %s", readOutput)
			return nil
		},
	}
	readCmd.Flags().StringVarP(&readOutput, "output", "o", "", "write the sheet to this YAML file instead of stdout")
	return readCmd
}
