package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crateq/internal/core/domain"
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
					{Name: domain.NewInternedString("criterion"), Requirement: "^0.5", Kind: domain.DependencyDev},
				},
				Features: []domain.Feature{
					{Name: "std"},
					{Name: "default", Enables: []string{"std"}},
				},
			},
		},
	}
}

func TestPackage_HighestNormal_SkipsPrerelease(t *testing.T) {
	rec, err := leftPad().HighestNormal()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", rec.Version)
}

func TestPackage_HighestNormal_PrereleaseWithHigherNumbers(t *testing.T) {
	name := domain.NewInternedString("pre")
	pkg := &domain.Package{Name: name, Versions: []domain.VersionRecord{
		{Name: name, Version: "0.9.0"},
		{Name: name, Version: "3.0.0-rc.1"},
		{Name: name, Version: "0.10.0"},
	}}

	rec, err := pkg.HighestNormal()
	require.NoError(t, err)
	assert.Equal(t, "0.10.0", rec.Version)
}

func TestPackage_HighestNormal_OnlyPrereleases(t *testing.T) {
	name := domain.NewInternedString("alpha-only")
	pkg := &domain.Package{Name: name, Versions: []domain.VersionRecord{
		{Name: name, Version: "0.1.0-alpha"},
		{Name: name, Version: "not-a-version"},
	}}

	_, err := pkg.HighestNormal()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoNormalVersion))
}

func TestPackage_Find_IsLiteral(t *testing.T) {
	pkg := leftPad()

	rec, err := pkg.Find("1.3.0")
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", rec.Version)
	assert.Same(t, &pkg.Versions[1], rec)

	_, err = pkg.Find("1.3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrVersionNotFound))
}

func TestPackage_Select(t *testing.T) {
	pkg := leftPad()

	rec, err := pkg.Select(domain.HighestNormalVersion())
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", rec.Version)

	rec, err = pkg.Select(domain.ExactVersion("2.0.0-beta.1"))
	require.NoError(t, err)
	assert.Equal(t, "2.0.0-beta.1", rec.Version)

	_, err = pkg.Select(domain.ExactVersion("9.9.9"))
	assert.True(t, errors.Is(err, domain.ErrVersionNotFound))
}

func TestSelectorFor(t *testing.T) {
	assert.False(t, domain.SelectorFor("").IsExact())
	assert.Equal(t, "highest normal version", domain.SelectorFor("").String())

	sel := domain.SelectorFor("1.2.3")
	assert.True(t, sel.IsExact())
	assert.Equal(t, "1.2.3", sel.Version())
	assert.Equal(t, "1.2.3", sel.String())
}

func TestDecideRefresh(t *testing.T) {
	tests := []struct {
		name     string
		view     domain.View
		selector domain.Selector
		expected domain.RefreshPolicy
	}{
		{"versions with default", domain.ViewVersions, domain.HighestNormalVersion(), domain.RefreshFirst},
		{"versions with exact", domain.ViewVersions, domain.ExactVersion("1.0.0"), domain.RefreshFirst},
		{"dependencies with default", domain.ViewDependencies, domain.HighestNormalVersion(), domain.RefreshFirst},
		{"features with default", domain.ViewFeatures, domain.HighestNormalVersion(), domain.RefreshFirst},
		{"dependencies with exact", domain.ViewDependencies, domain.ExactVersion("1.0.0"), domain.LookupFirst},
		{"features with exact", domain.ViewFeatures, domain.ExactVersion("1.0.0"), domain.LookupFirst},
		{"rust-version with exact", domain.ViewRustVersion, domain.ExactVersion("1.0.0"), domain.LookupFirst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.DecideRefresh(tt.view, tt.selector))
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"1.0.0", false},
		{"2.0.0-beta.1", false},
		{"1.0.0+build.5", false},
		{"1.0", true},
		{"1", true},
		{"v1.0.0", true},
		{"01.0.0", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := domain.ParseVersion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidVersion))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSortVersions(t *testing.T) {
	sorted, err := domain.SortVersions([]string{"2.0.0", "1.3.0", "2.0.0-beta.1", "1.0.0", "1.10.0", "2.0.0-alpha"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0.0", "1.3.0", "1.10.0", "2.0.0-alpha", "2.0.0-beta.1", "2.0.0"}, sorted)
}

func TestSortVersions_Idempotent(t *testing.T) {
	input := leftPad().VersionStrings()

	first, err := domain.SortVersions(input)
	require.NoError(t, err)
	second, err := domain.SortVersions(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"1.0.0", "1.3.0", "2.0.0-beta.1", "2.0.0"}, first)
}

func TestSortVersions_InvalidVersion(t *testing.T) {
	_, err := domain.SortVersions([]string{"1.0.0", "garbage"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidVersion))
	assert.Contains(t, err.Error(), "failed to parse version")
}

func TestExtract(t *testing.T) {
	pkg := leftPad()
	latest := &pkg.Versions[3]
	res := &domain.Resolution{Package: pkg, Version: latest, Policy: domain.RefreshFirst, Refreshed: true}

	t.Run("dependencies keep declaration order", func(t *testing.T) {
		report, err := domain.Extract(domain.ViewDependencies, res)
		require.NoError(t, err)
		assert.Equal(t, "left-pad", report.Package)
		assert.Equal(t, "2.0.0", report.Version)
		require.Len(t, report.Dependencies, 2)
		assert.Equal(t, "unicode-width", report.Dependencies[0].Name.String())
		assert.Equal(t, "criterion", report.Dependencies[1].Name.String())
	})

	t.Run("features keep stored order", func(t *testing.T) {
		report, err := domain.Extract(domain.ViewFeatures, res)
		require.NoError(t, err)
		assert.Equal(t, []string{"std", "default"}, report.Features)
	})

	t.Run("rust version absent", func(t *testing.T) {
		report, err := domain.Extract(domain.ViewRustVersion, res)
		require.NoError(t, err)
		assert.False(t, report.HasRustVersion)
	})

	t.Run("rust version present", func(t *testing.T) {
		report, err := domain.Extract(domain.ViewRustVersion, &domain.Resolution{Package: pkg, Version: &pkg.Versions[1]})
		require.NoError(t, err)
		assert.True(t, report.HasRustVersion)
		assert.Equal(t, "1.56", report.RustVersion)
	})

	t.Run("versions sorted", func(t *testing.T) {
		report, err := domain.Extract(domain.ViewVersions, res)
		require.NoError(t, err)
		assert.Empty(t, report.Version)
		assert.Equal(t, []string{"1.0.0", "1.3.0", "2.0.0-beta.1", "2.0.0"}, report.Versions)
	})

	t.Run("unknown view", func(t *testing.T) {
		_, err := domain.Extract(domain.View(42), res)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownView)
	})
}
