package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/config"
	"go.trai.ch/strata/internal/adapters/dump"
	"go.trai.ch/strata/internal/adapters/journal"
	"go.trai.ch/strata/internal/adapters/logger"
	"go.trai.ch/strata/internal/adapters/resolve"
	"go.trai.ch/strata/internal/adapters/retained"
	"go.trai.ch/strata/internal/adapters/telemetry"
	"go.trai.ch/strata/internal/app"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports/mocks"
	"go.trai.ch/strata/internal/engine/flatten"
	"go.uber.org/mock/gomock"
)

func realProvider() ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		log := logger.New()
		a := app.New(
			config.NewLoader(log),
			retained.Factory{},
			journal.Factory{},
			flatten.NewFactory(resolve.NewProvider()),
			dump.NewRenderer(),
			log,
			telemetry.NewNoOpTracer(),
		)
		return app.NewComponents(a, log), func() {}, nil
	}
}

func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: &app.App{}, Logger: mockLogger}, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "strata version")
}

func TestRun_ProviderError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("graft failure")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"flatten"}, new(bytes.Buffer), stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: graft failure\n", stderr.String())
}

func TestRun_Flatten(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	scene := "prims:\n  - path: /A\n    type: Xform\n    xform:\n      translate: [1, 0, 0]\n  - path: /A/B\n    type: Cube\n    cube:\n      size: 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.SceneFileName), []byte(scene), domain.PrivateFilePerm))

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-c", dir, "flatten"}, stdout, stderr, realProvider())
	require.Equal(t, 0, exitCode, stderr.String())
	assert.Contains(t, stdout.String(), "/A/B [Cube]")
	assert.Contains(t, stderr.String(), "flattened 2 prims")
}

func TestRun_MissingScene(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-c", t.TempDir(), "flatten"}, new(bytes.Buffer), stderr, realProvider())
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: failed to load scene")
	assert.Contains(t, stderr.String(), domain.ErrConfigReadFailed.Error())
}
