package ports

import "go.trai.ch/strata/internal/core/scene"

// SceneLoader defines the interface for loading a scene description.
//
//go:generate mockgen -source=scene_loader.go -destination=mocks/mock_scene_loader.go -package=mocks
type SceneLoader interface {
	// Load reads the scene file at path. A directory is searched for the default file name.
	Load(path string) (*scene.Document, error)
}
