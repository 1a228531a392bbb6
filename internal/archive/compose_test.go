package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinexus/shellutils/internal/fsops"
)

// fixture creates 2 .md, 1 .pdf and 1 .png file under a fresh directory.
func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"intro.md":          "# intro",
		"guide/chapter.md":  "# chapter",
		"guide/manual.pdf":  "%PDF-1.4",
		"assets/banner.png": "\x89PNG",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func newComposer(outDir string) *Composer {
	return NewComposer(fsops.NewWalker(nil), NewZipWriter(outDir))
}

func TestComposeSeparate(t *testing.T) {
	dir := fixture(t)
	outDir := t.TempDir()

	result, err := newComposer(outDir).Compose(dir, "out", true)
	require.NoError(t, err)

	require.Equal(t, []string{"out_editable", "out_non_editable"}, result.Labels())

	editable := result["out_editable"]
	assert.Equal(t, 2, editable.Count)
	assert.Equal(t, []string{"chapter.md", "intro.md"}, editable.Entries)
	assert.Equal(t, filepath.Join(outDir, "out_editable.zip"), editable.Path)

	nonEditable := result["out_non_editable"]
	assert.Equal(t, 1, nonEditable.Count)
	assert.Equal(t, []string{"manual.pdf"}, nonEditable.Entries)

	for _, b := range result {
		assert.NotContains(t, b.Entries, "banner.png")
		assert.FileExists(t, b.Path)
		assert.Len(t, b.SHA256, 64)
		assert.Positive(t, b.Size)
	}
}

func TestComposeCombined(t *testing.T) {
	dir := fixture(t)
	outDir := t.TempDir()

	result, err := newComposer(outDir).Compose(dir, "out", false)
	require.NoError(t, err)

	require.Equal(t, []string{"out"}, result.Labels())
	assert.Equal(t, 3, result["out"].Count)
	assert.ElementsMatch(t, []string{"intro.md", "chapter.md", "manual.pdf"}, result["out"].Entries)
	assert.NoFileExists(t, filepath.Join(outDir, "out_editable.zip"))
}

func TestComposeSkipsEmptyClass(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "only.md"), []byte("x"), 0644))
	outDir := t.TempDir()

	result, err := newComposer(outDir).Compose(dir, "docs", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"docs_editable"}, result.Labels())
	assert.NoFileExists(t, filepath.Join(outDir, "docs_non_editable.zip"))
}

func TestComposeEmptyOrExcludedDirectory(t *testing.T) {
	empty := t.TempDir()
	excludedOnly := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(excludedOnly, "a.png"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(excludedOnly, "b.go"), []byte("x"), 0644))

	for _, dir := range []string{empty, excludedOnly} {
		for _, separate := range []bool{true, false} {
			outDir := t.TempDir()
			result, err := newComposer(outDir).Compose(dir, "out", separate)
			require.NoError(t, err)
			assert.Empty(t, result)

			entries, err := os.ReadDir(outDir)
			require.NoError(t, err)
			assert.Empty(t, entries, "no archive should be written")
		}
	}
}

func TestComposeDirectoryScanError(t *testing.T) {
	outDir := t.TempDir()
	missing := filepath.Join(t.TempDir(), "missing")

	result, err := newComposer(outDir).Compose(missing, "out", true)

	var scanErr *DirectoryScanError
	require.True(t, errors.As(err, &scanErr), "expected DirectoryScanError, got %v", err)
	assert.Equal(t, missing, scanErr.Dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, result)

	entries, _ := os.ReadDir(outDir)
	assert.Empty(t, entries)
}

// failingWriter delegates to a real writer but fails for one label.
type failingWriter struct {
	Writer
	failLabel string
	calls     []string
}

func (f *failingWriter) Write(label string, files []string) (*Bundle, error) {
	f.calls = append(f.calls, label)
	if label == f.failLabel {
		return nil, errors.New("disk full")
	}
	return f.Writer.Write(label, files)
}

func TestComposeKeepsCompletedBundleOnLaterFailure(t *testing.T) {
	dir := fixture(t)
	outDir := t.TempDir()
	w := &failingWriter{Writer: NewZipWriter(outDir), failLabel: "out_non_editable"}

	result, err := NewComposer(fsops.NewWalker(nil), w).Compose(dir, "out", true)

	var bundleErr *BundleError
	require.True(t, errors.As(err, &bundleErr), "expected BundleError, got %v", err)
	assert.Equal(t, "out_non_editable", bundleErr.Label)

	assert.Equal(t, []string{"out_editable", "out_non_editable"}, w.calls, "bundles are written in order")
	require.Contains(t, result, "out_editable")
	assert.FileExists(t, result["out_editable"].Path)
	assert.NotContains(t, result, "out_non_editable")
}

func TestComposeContinuesAfterEarlierFailure(t *testing.T) {
	dir := fixture(t)
	outDir := t.TempDir()
	w := &failingWriter{Writer: NewZipWriter(outDir), failLabel: "out_editable"}

	result, err := NewComposer(fsops.NewWalker(nil), w).Compose(dir, "out", true)

	require.Error(t, err)
	assert.Equal(t, []string{"out_non_editable"}, result.Labels())
}

func TestComposeOutputNameWithDirectory(t *testing.T) {
	dir := fixture(t)
	outDir := t.TempDir()

	result, err := newComposer(outDir).Compose(dir, filepath.Join("sub", "out"), true)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.FileExists(t, filepath.Join(outDir, "sub", "out_editable.zip"))
	assert.FileExists(t, filepath.Join(outDir, "sub", "out_non_editable.zip"))
}
