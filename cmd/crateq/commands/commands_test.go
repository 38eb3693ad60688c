package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crateq/cmd/crateq/commands"
	"go.trai.ch/crateq/internal/adapters/config"
	"go.trai.ch/crateq/internal/adapters/output"
	"go.trai.ch/crateq/internal/adapters/telemetry"
	"go.trai.ch/crateq/internal/app"
	"go.trai.ch/crateq/internal/core/domain"
	"go.trai.ch/crateq/internal/core/ports/mocks"
	"go.trai.ch/crateq/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func leftPad() *domain.Package {
	name := domain.NewInternedString("left-pad")
	return &domain.Package{
		Name: name,
		Versions: []domain.VersionRecord{
			{Name: name, Version: "1.0.0"},
			{Name: name, Version: "1.3.0", RustVersion: "1.56"},
			{Name: name, Version: "2.0.0-beta.1"},
			{
				Name:    name,
				Version: "2.0.0",
				Dependencies: []domain.Dependency{
					{Name: domain.NewInternedString("unicode-width"), Requirement: "^0.1", Kind: domain.DependencyNormal},
				},
				Features: []domain.Feature{{Name: "std"}, {Name: "default", Enables: []string{"std"}}},
			},
		},
	}
}

type harness struct {
	cli       *commands.CLI
	cache     *mocks.MockIndexCache
	refresher *mocks.MockIndexRefresher
	logger    *mocks.MockLogger
	settings  *config.Settings
	out       *bytes.Buffer
}

func newHarness(t *testing.T) harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := harness{
		cache:     mocks.NewMockIndexCache(ctrl),
		refresher: mocks.NewMockIndexRefresher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		settings:  config.NewSettings(),
		out:       &bytes.Buffer{},
	}
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	tel := telemetry.NewNoOp()
	res := resolver.NewResolver(h.cache, h.refresher, tel, h.logger)
	a := app.New(res, output.NewWithWriter(h.out), h.logger, tel, h.settings)

	h.cli = commands.New(a)
	h.cli.SetOut(h.out)
	return h
}

func TestDependencies_DefaultVersion(t *testing.T) {
	h := newHarness(t)

	gomock.InOrder(
		h.refresher.EXPECT().ForceRefresh(gomock.Any(), "left-pad").Return(nil).Times(1),
		h.cache.EXPECT().LookupPackage(gomock.Any(), "left-pad").Return(leftPad(), nil).Times(1),
	)

	h.cli.SetArgs([]string{"dependencies", "left-pad"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Equal(t, "left-pad 2.0.0 dependencies:\n\nunicode-width ^0.1\n", h.out.String())
}

func TestAliases(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "deps with exact version",
			args: []string{"deps", "left-pad", "-v", "1.0.0"},
			want: "left-pad 1.0.0 dependencies:\n\n",
		},
		{
			name: "Features",
			args: []string{"Features", "left-pad", "--ver", "2.0.0"},
			want: "left-pad 2.0.0 features:\n\nstd\ndefault\n",
		},
		{
			name: "RustVersion",
			args: []string{"RustVersion", "left-pad", "--ver=1.3.0"},
			want: "left-pad 1.3.0 rust version:\n\nMinimum Rust Version: 1.56\n",
		},
		{
			name: "rust-version none",
			args: []string{"rust-version", "pkg:cargo/left-pad@2.0.0"},
			want: "left-pad 2.0.0 rust version:\n\nNone\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			// Exact versions present in the cache never refresh.
			h.refresher.EXPECT().ForceRefresh(gomock.Any(), gomock.Any()).Times(0)
			h.cache.EXPECT().LookupPackage(gomock.Any(), "left-pad").Return(leftPad(), nil).Times(1)

			h.cli.SetArgs(tt.args)
			require.NoError(t, h.cli.Execute(context.Background()))
			assert.Equal(t, tt.want, h.out.String())
		})
	}
}

func TestVersions(t *testing.T) {
	h := newHarness(t)

	h.refresher.EXPECT().ForceRefresh(gomock.Any(), "left-pad").Return(nil).Times(1)
	h.cache.EXPECT().LookupPackage(gomock.Any(), "left-pad").Return(leftPad(), nil).Times(1)

	h.cli.SetArgs([]string{"Versions", "left-pad"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Equal(t, "left-pad versions:\n\n1.0.0\n1.3.0\n2.0.0-beta.1\n2.0.0\n", h.out.String())
}

func TestMissingVersion(t *testing.T) {
	h := newHarness(t)

	h.cache.EXPECT().LookupPackage(gomock.Any(), "left-pad").Return(leftPad(), nil).Times(2)
	h.refresher.EXPECT().ForceRefresh(gomock.Any(), "left-pad").Return(nil).Times(1)

	h.cli.SetArgs([]string{"dependencies", "left-pad", "--ver", "9.9.9"})
	err := h.cli.Execute(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
	assert.Empty(t, h.out.String())
}

func TestGlobalFlags(t *testing.T) {
	h := newHarness(t)

	h.logger.EXPECT().SetLevel(domain.LogLevelDebug)
	h.cache.EXPECT().LookupPackage(gomock.Any(), "left-pad").Return(leftPad(), nil)

	h.cli.SetArgs([]string{
		"--cargo", "/opt/rust/bin/cargo",
		"--cargo-home", "/srv/cargo",
		"--debug",
		"features", "left-pad", "-v", "2.0.0",
	})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Equal(t, "/opt/rust/bin/cargo", h.settings.Binary())
	assert.Equal(t, "/srv/cargo", h.settings.CargoHome)
	assert.True(t, h.settings.Debug)
}

func TestQuery_RequiresName(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"features"})
	require.Error(t, h.cli.Execute(context.Background()))
}

func TestQuery_ConflictingPurlVersion(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"features", "pkg:cargo/left-pad@1.0.0", "--ver", "2.0.0"})
	err := h.cli.Execute(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflictingVersion)
}

func TestVersionCommand(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"version"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Equal(t, "crateq version dev\n", h.out.String())
}

func TestRoot_Help(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"--help"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Contains(t, h.out.String(), "dependencies")
	assert.Contains(t, h.out.String(), "rust-version")
}
