package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoot_PrefersPackageSubfolder(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "package")
	require.NoError(t, os.Mkdir(nested, 0755))

	root, err := ResolveRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, nested, root)
}

func TestResolveRoot_FlatLayout(t *testing.T) {
	dir := t.TempDir()

	root, err := ResolveRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestResolveRoot_PackageEntryIsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package"), "not a folder")

	root, err := ResolveRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestResolveRoot_MissingPath(t *testing.T) {
	_, err := ResolveRoot(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestResolveRoot_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "export.zip")
	writeFile(t, file, "zip")

	_, err := ResolveRoot(file)
	assert.Error(t, err)
}
