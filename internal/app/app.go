// Package app implements the application layer for strata.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/strata/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/strata/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/core/scene"
	"go.trai.ch/strata/internal/engine/flatten"
	"go.trai.ch/strata/internal/engine/traverse"
	"go.trai.ch/strata/internal/ui/output"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.SceneLoader
	stages    ports.StageFactory
	journals  ports.JournalFactory
	flattener *flatten.Factory
	renderer  ports.SceneRenderer
	logger    ports.Logger
	tracer    ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.SceneLoader,
	stages ports.StageFactory,
	journals ports.JournalFactory,
	flattener *flatten.Factory,
	renderer ports.SceneRenderer,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:    loader,
		stages:    stages,
		journals:  journals,
		flattener: flattener,
		renderer:  renderer,
		logger:    log,
		tracer:    tracer,
	}
}

// Options are shared by every use case.
type Options struct {
	// ConfigPath is the scene file, or a directory holding strata.yaml.
	ConfigPath string
	// Root is the path the traversal starts at. Empty means the absolute root.
	Root string
	// Parallelism bounds concurrent prim visits. Values below 1 use NumCPU.
	Parallelism int
	// Disable lists flattening domains to turn off on top of the scene file.
	Disable []string
	// Trace reports a span for every stage of the run through the logger.
	Trace bool
	// Out receives the rendered result. Nil means stdout.
	Out io.Writer
	// Output selects the rendering mode: "auto", "styled" or "plain".
	Output string
}

// FlattenOptions configuration for the Flatten method.
type FlattenOptions struct {
	Options
	// Digest prints an xxhash of the rendered scene instead of the scene.
	Digest bool
}

// ReplayOptions configuration for the Replay method.
type ReplayOptions struct {
	Options
	// Verify compares the incrementally updated scene against a fresh flatten.
	Verify bool
}

// session is one loaded scene: its input stage and the flattening index over it.
type session struct {
	doc   *scene.Document
	stage ports.Stage
	index *flatten.SceneIndex
	root  domain.Path
}

func (s *session) close() {
	s.index.Close()
}

// Flatten loads the scene, flattens it and renders every defined prim.
func (a *App) Flatten(ctx context.Context, opts FlattenOptions) (err error) {
	stop := a.startTracing(opts.Trace)
	defer stop()

	ctx, span := a.tracer.Start(ctx, "flatten", ports.WithAttribute("parallelism", opts.Parallelism))
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	s, err := a.open(ctx, opts.Options)
	if err != nil {
		return err
	}
	defer s.close()

	prims, err := a.walk(ctx, s.index, s.root, opts.Parallelism)
	if err != nil {
		return err
	}
	span.SetAttribute("prims", len(prims))

	if opts.Digest {
		out := resultWriter(opts.Out)
		sum, err := a.renderer.Digest(prims)
		if err != nil {
			return err
		}
		span.SetAttribute("digest", sum)
		_, err = fmt.Fprintf(out, "%016x\n", sum)
		return err
	}

	a.logger.Info(fmt.Sprintf("flattened %d prims from %s", len(prims), s.doc.Source))

	out, flush := styledWriter(opts.Options)
	if err := a.renderer.RenderPrims(out, prims); err != nil {
		return err
	}
	return flush()
}

// Replay flattens the scene, applies its edits to the input and renders the
// notifications the flattened index emitted followed by the updated scene.
func (a *App) Replay(ctx context.Context, opts ReplayOptions) (err error) {
	stop := a.startTracing(opts.Trace)
	defer stop()

	ctx, span := a.tracer.Start(ctx, "replay")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	s, err := a.open(ctx, opts.Options)
	if err != nil {
		return err
	}
	defer s.close()

	// Populate the caches so the edits exercise invalidation.
	if _, err := a.walk(ctx, s.index, s.root, opts.Parallelism); err != nil {
		return err
	}

	journal := a.journals.NewJournal()
	s.index.AddObserver(journal)
	defer s.index.RemoveObserver(journal)

	for i, edit := range s.doc.Edits {
		if err := applyEdit(s.stage, edit); err != nil {
			return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrReplayFailed.Error()), "edit", i), "op", edit.Kind.String())
		}
	}
	span.SetAttribute("edits", len(s.doc.Edits))

	prims, err := a.walk(ctx, s.index, s.root, opts.Parallelism)
	if err != nil {
		return err
	}

	if opts.Verify {
		if err := a.verify(ctx, s, prims, opts.Parallelism); err != nil {
			return err
		}
	}

	notices := journal.Notices()
	a.logger.Info(fmt.Sprintf("replayed %d edits from %s, %d notices", len(s.doc.Edits), s.doc.Source, len(notices)))

	out, flush := styledWriter(opts.Options)
	if _, err := fmt.Fprintln(out, "# notices"); err != nil {
		return err
	}
	if err := a.renderer.RenderNotices(out, notices); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, "# scene"); err != nil {
		return err
	}
	if err := a.renderer.RenderPrims(out, prims); err != nil {
		return err
	}
	return flush()
}

// open loads the scene file into a new stage and flattens it.
func (a *App) open(ctx context.Context, opts Options) (*session, error) {
	_, span := a.tracer.Start(ctx, "load")
	defer span.End()

	root := domain.AbsoluteRootPath
	if opts.Root != "" {
		var err error
		if root, err = domain.ParsePath(opts.Root); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	path := opts.ConfigPath
	if path == "" {
		path = "."
	}
	doc, err := a.loader.Load(path)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load scene")
	}

	cfg := doc.Flatten
	for _, name := range opts.Disable {
		if err := cfg.Disable(name); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	stage := a.stages.NewStage()
	if err := stage.AddPrims(doc.Prims); err != nil {
		span.RecordError(err)
		return nil, zerr.With(err, "file", doc.Source)
	}
	span.SetAttribute("prims", len(doc.Prims))

	return &session{
		doc:   doc,
		stage: stage,
		index: a.flattener.New(stage, flatten.BuildArgs(cfg)),
		root:  root,
	}, nil
}

func (a *App) walk(ctx context.Context, idx scene.Index, root domain.Path, parallelism int) ([]scene.PrimSpec, error) {
	ctx, span := a.tracer.Start(ctx, "walk", ports.WithAttribute("root", root.String()))
	defer span.End()

	prims, err := traverse.Walk(ctx, idx, root, parallelism)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("prims", len(prims))
	return prims, nil
}

// verify flattens the edited stage from scratch and compares digests.
func (a *App) verify(ctx context.Context, s *session, prims []scene.PrimSpec, parallelism int) error {
	fresh := a.flattener.New(s.stage, flatten.BuildArgs(s.index.Config()))
	defer fresh.Close()

	want, err := a.walk(ctx, fresh, s.root, parallelism)
	if err != nil {
		return err
	}

	got, err := a.renderer.Digest(prims)
	if err != nil {
		return err
	}
	expected, err := a.renderer.Digest(want)
	if err != nil {
		return err
	}
	if got != expected {
		return zerr.With(zerr.With(domain.ErrReplayDiverged, "incremental", fmt.Sprintf("%016x", got)),
			"fresh", fmt.Sprintf("%016x", expected))
	}
	return nil
}

// applyEdit mutates the input stage. Dirty edits overlay the new fields on the
// existing data before the change is announced.
func applyEdit(stage ports.Stage, edit scene.Edit) error {
	switch edit.Kind {
	case scene.EditAdd:
		return stage.AddPrims([]scene.PrimSpec{{Path: edit.Path, Prim: edit.Prim}})
	case scene.EditRemove:
		stage.RemovePrims([]domain.Path{edit.Path})
		return nil
	case scene.EditDirty:
		existing := stage.GetPrim(edit.Path)
		if !existing.IsDefined() {
			return zerr.With(domain.ErrPrimNotFound, "path", edit.Path.String())
		}
		if err := stage.SetSource(edit.Path, datasource.Overlay(edit.Fields(), existing.Source)); err != nil {
			return err
		}
		stage.DirtyPrims([]scene.DirtiedPrimEntry{{Path: edit.Path, Locators: edit.DirtyLocators()}})
		return nil
	default:
		return zerr.With(domain.ErrUnknownEdit, "kind", int(edit.Kind))
	}
}

// startTracing installs the logging span processor when enabled and returns a
// function that flushes it.
func (a *App) startTracing(enabled bool) func() {
	if !enabled {
		return func() {}
	}
	shutdown := telemetry.Install(a.logger)
	return func() { _ = shutdown(context.Background()) }
}

func resultWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// styledWriter returns the result writer for opts, highlighting the dump when
// the output mode resolves to styled. flush must be called once rendering is done.
func styledWriter(opts Options) (w io.Writer, flush func() error) {
	w = resultWriter(opts.Out)
	if detector.ResolveMode(detector.DetectEnvironment(w), opts.Output) != detector.ModeStyled {
		return w, func() error { return nil }
	}
	h := output.NewHighlighter(output.New(w))
	return h, h.Flush
}
