package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/strata/internal/adapters/dump"      //nolint:depguard // Wired in app layer
	"go.trai.ch/strata/internal/adapters/journal"   //nolint:depguard // Wired in app layer
	"go.trai.ch/strata/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/strata/internal/adapters/retained"  //nolint:depguard // Wired in app layer
	"go.trai.ch/strata/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/engine/flatten"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			retained.NodeID,
			journal.NodeID,
			flatten.NodeID,
			dump.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SceneLoader](ctx)
	if err != nil {
		return nil, err
	}

	stages, err := graft.Dep[ports.StageFactory](ctx)
	if err != nil {
		return nil, err
	}

	journals, err := graft.Dep[ports.JournalFactory](ctx)
	if err != nil {
		return nil, err
	}

	flattener, err := graft.Dep[*flatten.Factory](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.SceneRenderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, stages, journals, flattener, renderer, log, tracer), nil
}
