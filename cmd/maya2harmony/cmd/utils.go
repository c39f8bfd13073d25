package cmd

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ivlev/maya2harmony/internal/config"
	"github.com/ivlev/maya2harmony/internal/engine"
	"github.com/ivlev/maya2harmony/internal/keyframe"
	"github.com/ivlev/maya2harmony/internal/system"
)

// scenePath returns the first argument, or the newest scene in the input
// directory when there is none.
func scenePath(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	path, err := system.FindLatestScene(cfg.InputDir)
	if err != nil {
		return "", err
	}
	logrus.Infof("using latest scene %s", path)
	return path, nil
}

func isSheet(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// loadSheet accepts either a saved sheet or a Maya scene.
func loadSheet(p *engine.Project, path string) (*keyframe.Sheet, error) {
	if isSheet(path) {
		return keyframe.ReadSheet(path)
	}
	return p.Read(path)
}

// loadPlan reads and assembles the first argument, a scene or a sheet.
func loadPlan(args []string) (*engine.Project, *keyframe.Sheet, *keyframe.Plan, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	p := engine.NewProject(cfg)

	path, err := scenePath(cfg, args)
	if err != nil {
		return nil, nil, nil, err
	}
	sheet, err := loadSheet(p, path)
	if err != nil {
		return nil, nil, nil, err
	}
	plan, err := p.Plan(sheet)
	if err != nil {
		return nil, nil, nil, err
	}
	return p, sheet, plan, nil
}
