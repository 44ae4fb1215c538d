package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gerr "github.com/pictolab/glyphgrid/pkg/errors"
	"github.com/pictolab/glyphgrid/pkg/geometry"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement/assets"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_FullTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default/diamond/pro_placements.json",
		`{"pro_to_layer1_alpha_A": [10, 5], "pro": [1, -1]}`)
	writeFile(t, dir, "default/box/static_placements.json",
		`{"static": [0, 2]}`)
	writeFile(t, dir, "special/diamond/from_layer1/A_placements.json",
		`{"A": {"(1, 1)": {"blue": [3, 4], "red": true}}}`)
	writeFile(t, dir, "special/diamond/from_layer2/G_placements.json",
		`{"G": {"(0.5, fl)": {"pro": [7, 8]}, "G_pro_anti": {}}}`)

	store, err := assets.Load(dir)
	require.NoError(t, err)

	adj, ok := store.DefaultAdjustment(pictograph.Diamond, pictograph.Pro, "pro_to_layer1_alpha_A")
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 10, Y: 5}, adj)

	adj, ok = store.DefaultAdjustment(pictograph.Box, pictograph.Static, "static")
	require.True(t, ok)
	require.Equal(t, geometry.Point{X: 0, Y: 2}, adj)

	entry, ok := store.SpecialEntry(pictograph.Diamond, assets.FromLayer1, "A", "(1, 1)")
	require.True(t, ok)
	blue, hasAdj := entry["blue"].Adjustment()
	require.True(t, hasAdj)
	require.Equal(t, geometry.Point{X: 3, Y: 4}, blue)
	require.True(t, entry["red"].SwapSet())

	_, ok = store.SpecialEntry(pictograph.Diamond, assets.FromLayer2, "G", "(0.5, fl)")
	require.True(t, ok)
	require.True(t, store.HasSeparationOverride(pictograph.Diamond, "G", "G_pro_anti"))
}

func TestLoad_EmptyDirectory(t *testing.T) {
	store, err := assets.Load(t.TempDir())
	require.NoError(t, err)
	_, ok := store.DefaultAdjustment(pictograph.Diamond, pictograph.Pro, "pro")
	require.False(t, ok)
	require.Empty(t, store.Letters(pictograph.Diamond))
}

func TestLoad_DefaultBadPairLength(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default/diamond/pro_placements.json", `{"pro": [1, 2, 3]}`)

	_, err := assets.Load(dir)
	require.Error(t, err)
	require.Equal(t, gerr.ErrCodeConfigSchema, gerr.GetCode(err))
}

func TestLoad_DefaultParseError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default/diamond/pro_placements.json", `{not json`)

	_, err := assets.Load(dir)
	require.Error(t, err)
	require.Equal(t, gerr.ErrCodeConfigParse, gerr.GetCode(err))
}

func TestLoad_SpecialRejectsUnknownKeyShape(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "special/diamond/from_layer1/A_placements.json",
		`{"A": {"sometimes": {"blue": [1, 2]}}}`)

	_, err := assets.Load(dir)
	require.Error(t, err)
	require.Equal(t, gerr.ErrCodeConfigSchema, gerr.GetCode(err))
}

func TestLoad_SpecialAllowsOverrideKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "special/diamond/from_layer1/G_placements.json",
		`{"G": {"G_static_static": {}}}`)

	store, err := assets.Load(dir)
	require.NoError(t, err)
	require.True(t, store.HasSeparationOverride(pictograph.Diamond, "G", "G_static_static"))
}

func TestLoad_SpecialMergesFilesPerLetter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "special/diamond/from_layer1/A_placements.json",
		`{"A": {"(1, 1)": {"blue": [1, 1]}}}`)
	writeFile(t, dir, "special/diamond/from_layer1/A_extra_placements.json",
		`{"A": {"(2, 2)": {"red": [2, 2]}}}`)

	store, err := assets.Load(dir)
	require.NoError(t, err)
	_, ok := store.SpecialEntry(pictograph.Diamond, assets.FromLayer1, "A", "(1, 1)")
	require.True(t, ok)
	_, ok = store.SpecialEntry(pictograph.Diamond, assets.FromLayer1, "A", "(2, 2)")
	require.True(t, ok)
}

func TestLoad_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "special/diamond/from_layer1/README.md", "notes")
	writeFile(t, dir, "special/diamond/from_layer1/A_placements.json",
		`{"A": {"(1, 1)": {"blue": [1, 1]}}}`)

	store, err := assets.Load(dir)
	require.NoError(t, err)
	require.Equal(t, []pictograph.Letter{"A"}, store.Letters(pictograph.Diamond))
}
