package engine

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/maya2harmony/internal/config"
	"github.com/ivlev/maya2harmony/internal/harmony"
	"github.com/ivlev/maya2harmony/internal/keyframe"
	"github.com/ivlev/maya2harmony/internal/maya"
	"github.com/ivlev/maya2harmony/internal/system"
)

var (
	ErrNoTransform     = errors.New("no transform node found")
	ErrDuplicateObject = errors.New("object already converted")
)

// Project converts Maya scenes with one configuration. Outputs are named
// after the object, so a Project converts each object once.
type Project struct {
	Config *config.Config

	mu      sync.Mutex
	claimed map[string]string
}

// Result lists what converting one scene produced.
type Result struct {
	Source     string
	Object     string
	SheetPath  string
	ScriptPath string
	Plan       *keyframe.Plan
	Rig        *harmony.Rig
}

func NewProject(cfg *config.Config) *Project {
	return &Project{Config: cfg}
}

// Read scans a scene file into a sheet. A scene without a transform gives
// a sheet with no object and no channels.
func (p *Project) Read(path string) (*keyframe.Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	loc, err := maya.Scan(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan %s", path)
	}
	if loc.Object == "" {
		logrus.Debugf("no transform in %s", path)
	}
	logrus.Debugf("scanned %s: object %s, %d channels", path, loc.Object, len(loc.Channels))
	return keyframe.NewSheet(loc, path), nil
}

// Plan assembles a sheet and logs its warnings.
func (p *Project) Plan(sheet *keyframe.Sheet) (*keyframe.Plan, error) {
	plan, err := keyframe.Assemble(sheet, p.Config.KeyframeOptions())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to assemble %s", sheet.Object)
	}
	for _, w := range plan.Warnings {
		logrus.Warn(w)
	}
	return plan, nil
}

// Apply commits a plan into g and, when link is set, creates the peg and
// links the columns. Collaborator failures do not stop later steps; they are
// returned together.
func (p *Project) Apply(g harmony.SceneGraph, plan *keyframe.Plan, link bool) (*harmony.Rig, error) {
	var result *multierror.Error
	if err := harmony.Commit(g, plan); err != nil {
		result = multierror.Append(result, err)
	}
	if !link {
		return nil, result.ErrorOrNil()
	}

	rig, err := harmony.CreateAndLink(g, plan.Object, p.Config.PegOptions())
	if err != nil {
		result = multierror.Append(result, err)
	}
	return rig, result.ErrorOrNil()
}

// WriteScript applies a plan through a ScriptGraph writing to path.
func (p *Project) WriteScript(plan *keyframe.Plan, path, source string, link bool) (*harmony.Rig, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g := harmony.NewScriptGraph(f, source)
	rig, applyErr := p.Apply(g, plan, link)
	if err := g.Close(); err != nil {
		return rig, errors.Wrapf(err, "failed to write %s", path)
	}
	return rig, applyErr
}

// Convert reads a scene and writes <object>.yaml and <object>.js into the
// output directory.
func (p *Project) Convert(path string) (*Result, error) {
	sheet, err := p.Read(path)
	if err != nil {
		return nil, err
	}
	if sheet.Object == "" {
		return nil, errors.Wrapf(ErrNoTransform, "convert %s", path)
	}
	if err := p.claim(sheet.Object, path); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(p.Config.OutputDir, 0755); err != nil {
		return nil, err
	}

	res := &Result{
		Source:     path,
		Object:     sheet.Object,
		SheetPath:  filepath.Join(p.Config.OutputDir, sheet.Object+".yaml"),
		ScriptPath: filepath.Join(p.Config.OutputDir, sheet.Object+".js"),
	}
	if err := keyframe.WriteSheet(sheet, res.SheetPath); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", res.SheetPath)
	}

	res.Plan, err = p.Plan(sheet)
	if err != nil {
		return res, err
	}

	res.Rig, err = p.WriteScript(res.Plan, res.ScriptPath, path, true)
	if err != nil {
		return res, err
	}

	logrus.Infof("%s -> %s (%d curves)", path, res.ScriptPath, len(res.Plan.Curves))
	return res, nil
}

// claim reserves the output names of object for the scene at path.
func (p *Project) claim(object, path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.claimed == nil {
		p.claimed = map[string]string{}
	}
	if prev, ok := p.claimed[object]; ok {
		return errors.Wrapf(ErrDuplicateObject, "%s in %s and %s", object, prev, path)
	}
	p.claimed[object] = path
	return nil
}

// Run converts every input, several at a time. Each scene is handled by a
// single goroutine. The first failure cancels scenes not yet started.
func (p *Project) Run(ctx context.Context, inputs []string) ([]*Result, error) {
	workers := system.Workers(p.Config.Workers)
	logrus.Debugf("converting %d scenes with %d workers", len(inputs), workers)

	results := make([]*Result, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.Convert(in)
			results[i] = res
			if err != nil {
				return errors.Wrapf(err, "failed to convert %s", in)
			}
			return nil
		})
	}

	err := g.Wait()
	return results, err
}
