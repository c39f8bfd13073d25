package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ivlev/maya2harmony/internal/config"
	"github.com/ivlev/maya2harmony/internal/logger"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	hideLogTime bool
	hideLogPath bool
	logDir      string
	colorMode   string
}

var rootOpt rootOpts

const (
	colorModeNever  = "never"
	colorModeAlways = "always"
)

var supportedColorModes = []string{
	colorModeNever,
	colorModeAlways,
}

var longRootCmdDescription = `maya2harmony reads the keyframes of a locator or camera from a Maya ASCII
scene and rebuilds them in Toon Boom Harmony as function columns driving a 3D peg.
Its output is a Harmony script to run from the Script Editor.
`

var rootCmd = &cobra.Command{
	Use:           "maya2harmony",
	Short:         "Move Maya locator animation into Harmony",
	Long:          longRootCmdDescription,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("maya2harmony-%s: %v", Version, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(
		NewReadCmd(),
		NewCommitCmd(),
		NewCreateCmd(),
		NewConvertCmd(),
		NewInspectCmd(),
		NewPreviewCmd(),
		NewHanoiCmd(),
		NewVersionCmd(),
	)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOpt.cfgFile, "config", "", "config file (default is $HOME/.maya2harmony.yaml)")
	flags.BoolVarP(&rootOpt.debugModeOn, "debug", "d", false, "turn on debug mode")
	flags.BoolVar(&rootOpt.hideLogTime, "hide-time", false, "hide the log time")
	flags.BoolVar(&rootOpt.hideLogPath, "hide-path", false, "hide the log path")
	flags.StringVar(&rootOpt.logDir, "log-dir", "", "also write logs to a daily rotated file in this directory")
	flags.StringVar(&rootOpt.colorMode, "color", colorModeAlways, fmt.Sprintf("set the log color mode, the possible values can be %v", supportedColorModes))

	flags.String("input-dir", "input", "directory searched for the latest .ma scene when no file is given")
	flags.StringP("output-dir", "O", "output", "directory for generated scripts and sheets")
	flags.String("fov-suffix", "", "text inserted between the object name and FOV in the FOV column name")
	flags.Int("resolution-x", 1920, "scene width used for the FOV aspect ratio")
	flags.Int("resolution-y", 1080, "scene height used for the FOV aspect ratio")
	flags.String("preset", "", "frame format overriding the resolution: 16:9, 9:16 or 4:5")
	flags.IntP("workers", "w", 0, "scenes converted at once (0 uses one per CPU core)")

	for key, flag := range map[string]string{
		"input_dir":    "input-dir",
		"output_dir":   "output-dir",
		"fov_suffix":   "fov-suffix",
		"resolution_x": "resolution-x",
		"resolution_y": "resolution-y",
		"preset":       "preset",
		"workers":      "workers",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// initConfig sets up logging before any command runs.
func initConfig() {
	if rootOpt.cfgFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			rootOpt.cfgFile = filepath.Join(home, ".maya2harmony.yaml")
		}
	}

	if err := logger.Init(logger.Options{
		Verbose:      rootOpt.debugModeOn,
		DisableColor: rootOpt.colorMode == colorModeNever,
		HideLogTime:  rootOpt.hideLogTime,
		HideLogPath:  rootOpt.hideLogPath,
		LogDir:       rootOpt.logDir,
	}); err != nil {
		panic(fmt.Sprintf("failed to init logger: %v\n", err))
	}
}

// loadConfig resolves defaults, config file, environment and flags.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper(), rootOpt.cfgFile)
}
