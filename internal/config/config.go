package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/ivlev/maya2harmony/internal/harmony"
	"github.com/ivlev/maya2harmony/internal/keyframe"
)

// EnvPrefix namespaces environment overrides, e.g. M2H_OUTPUT_DIR.
const EnvPrefix = "M2H"

type Config struct {
	InputDir    string `mapstructure:"input_dir"`
	OutputDir   string `mapstructure:"output_dir"`
	ResolutionX int    `mapstructure:"resolution_x"`
	ResolutionY int    `mapstructure:"resolution_y"`
	FOVSuffix   string `mapstructure:"fov_suffix"`
	Workers     int    `mapstructure:"workers"`
	PegX        int    `mapstructure:"peg_x"`
	PegY        int    `mapstructure:"peg_y"`
	LockX       int    `mapstructure:"lock_x"`
	LockY       int    `mapstructure:"lock_y"`
	ParentGroup string `mapstructure:"parent_group"`
	SetPeg      string `mapstructure:"set_peg"`
	Preset      string `mapstructure:"preset"`
}

func Default() *Config {
	peg := harmony.DefaultPegOptions()
	kf := keyframe.DefaultOptions()
	return &Config{
		InputDir:    "input",
		OutputDir:   "output",
		ResolutionX: kf.ResolutionX,
		ResolutionY: kf.ResolutionY,
		PegX:        peg.PegX,
		PegY:        peg.PegY,
		LockX:       peg.LockX,
		LockY:       peg.LockY,
		ParentGroup: peg.Parent,
		SetPeg:      peg.SetPeg,
	}
}

// SetDefaults registers every field of Default under its mapstructure key.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("input_dir", d.InputDir)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("resolution_x", d.ResolutionX)
	v.SetDefault("resolution_y", d.ResolutionY)
	v.SetDefault("fov_suffix", d.FOVSuffix)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("peg_x", d.PegX)
	v.SetDefault("peg_y", d.PegY)
	v.SetDefault("lock_x", d.LockX)
	v.SetDefault("lock_y", d.LockY)
	v.SetDefault("parent_group", d.ParentGroup)
	v.SetDefault("set_peg", d.SetPeg)
	v.SetDefault("preset", d.Preset)
}

// Load layers defaults, the YAML file at path (skipped when it does not
// exist), M2H_* environment variables and whatever flags are already bound
// to v, then applies the preset.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "failed to read config %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to stat config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.ApplyPreset(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyPreset overrides the resolution with a named frame format.
func (c *Config) ApplyPreset() error {
	switch c.Preset {
	case "":
	case "16:9":
		c.ResolutionX, c.ResolutionY = 1920, 1080
	case "9:16":
		c.ResolutionX, c.ResolutionY = 1080, 1920
	case "4:5":
		c.ResolutionX, c.ResolutionY = 1080, 1350
	default:
		return errors.Errorf("unknown preset %q, use 16:9, 9:16 or 4:5", c.Preset)
	}
	return nil
}

func (c *Config) KeyframeOptions() keyframe.Options {
	return keyframe.Options{
		ResolutionX: c.ResolutionX,
		ResolutionY: c.ResolutionY,
		FOVSuffix:   c.FOVSuffix,
	}
}

func (c *Config) PegOptions() harmony.PegOptions {
	return harmony.PegOptions{
		Parent:    c.ParentGroup,
		SetPeg:    c.SetPeg,
		PegX:      c.PegX,
		PegY:      c.PegY,
		LockX:     c.LockX,
		LockY:     c.LockY,
		FOVSuffix: c.FOVSuffix,
	}
}
