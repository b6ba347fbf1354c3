package duscan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charlievieth/fastwalk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

// lstatSum computes the apparent-size total of a tree with an independent
// traversal, including the directories' own entry sizes.
func lstatSum(t *testing.T, root string) uint64 {
	t.Helper()

	var (
		mu  sync.Mutex
		sum uint64
	)

	conf := &fastwalk.Config{Follow: false}
	err := fastwalk.Walk(conf, root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		mu.Lock()
		sum += uint64(info.Size())
		mu.Unlock()

		return nil
	})
	require.NoError(t, err)

	return sum
}

func TestSingleFileApparentSize(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file-100-byte")
	writeFile(t, file, 100)

	result, err := New([]string{file}, 1, ApparentSize).Run()
	require.NoError(t, err)

	assert.Empty(t, result.Errors)
	require.Len(t, result.Sizes, 1)
	assert.Equal(t, file, result.Sizes[0].Path)
	assert.Equal(t, uint64(100), result.Sizes[0].Size)
}

func TestApparentSizeMatchesIndependentWalk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b", "c"), 0o755))
	writeFile(t, filepath.Join(dir, "top"), 1234)
	writeFile(t, filepath.Join(dir, "a", "one"), 17)
	writeFile(t, filepath.Join(dir, "a", "b", "two"), 4096)
	writeFile(t, filepath.Join(dir, "a", "b", "c", "three"), 0)

	want := lstatSum(t, dir)

	result, err := New([]string{dir}, 4, ApparentSize).Run()
	require.NoError(t, err)

	assert.Empty(t, result.Errors)
	assert.Equal(t, want, result.Total())
}

func TestMissingRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone")

	result, err := New([]string{path}, 1, ApparentSize).Run()
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, ErrNoMetadata, result.Errors[0].Kind)
	assert.Equal(t, path, result.Errors[0].Path)

	// The root still finishes, with nothing counted under it.
	require.Len(t, result.Sizes, 1)
	assert.Equal(t, uint64(0), result.Sizes[0].Size)
}

func TestRootIndependence(t *testing.T) {
	base := t.TempDir()
	rootA := filepath.Join(base, "a")
	rootB := filepath.Join(base, "b")
	require.NoError(t, os.Mkdir(rootA, 0o755))
	require.NoError(t, os.Mkdir(rootB, 0o755))
	writeFile(t, filepath.Join(rootA, "small"), 10)
	writeFile(t, filepath.Join(rootB, "large"), 100000)

	separateA, err := New([]string{rootA}, 2, ApparentSize).Run()
	require.NoError(t, err)
	separateB, err := New([]string{rootB}, 2, ApparentSize).Run()
	require.NoError(t, err)

	combined, err := New([]string{rootA, rootB}, 2, ApparentSize).Run()
	require.NoError(t, err)
	require.Len(t, combined.Sizes, 2)

	totals := make(map[string]uint64, 2)
	for _, entry := range combined.Sizes {
		totals[entry.Path] = entry.Size
	}

	assert.Equal(t, separateA.Total(), totals[rootA])
	assert.Equal(t, separateB.Total(), totals[rootB])
}

func TestIdempotence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested", "deep"), 0o755))
	writeFile(t, filepath.Join(dir, "x"), 512)
	writeFile(t, filepath.Join(dir, "nested", "y"), 2048)
	writeFile(t, filepath.Join(dir, "nested", "deep", "z"), 31)

	first, err := New([]string{dir}, 8, ApparentSize).Run()
	require.NoError(t, err)
	second, err := New([]string{dir}, 8, ApparentSize).Run()
	require.NoError(t, err)

	assert.Equal(t, first.Total(), second.Total())
	assert.Empty(t, first.Errors)
	assert.Empty(t, second.Errors)
}

func TestStreamingCallbacks(t *testing.T) {
	base := t.TempDir()
	rootA := filepath.Join(base, "a")
	rootB := filepath.Join(base, "b")
	require.NoError(t, os.Mkdir(rootA, 0o755))
	require.NoError(t, os.Mkdir(rootB, 0o755))
	writeFile(t, filepath.Join(rootA, "f"), 64)
	missing := filepath.Join(base, "missing")

	// Callbacks run on this goroutine, so plain maps are fine.
	streamed := make(map[string]uint64)
	var streamedErrs []Error

	result, err := New([]string{rootA, rootB, missing}, 4, ApparentSize).RunWithCallbacks(Callbacks{
		OnRoot: func(root string, size uint64) {
			_, dup := streamed[root]
			assert.False(t, dup, "root %q finished twice", root)
			streamed[root] = size
		},
		OnError: func(err Error) {
			streamedErrs = append(streamedErrs, err)
		},
	})
	require.NoError(t, err)

	// Streamed values must match the batch result exactly.
	require.Len(t, streamed, 3)
	for _, entry := range result.Sizes {
		assert.Equal(t, entry.Size, streamed[entry.Path])
	}

	require.Len(t, streamedErrs, 1)
	assert.Equal(t, ErrNoMetadata, streamedErrs[0].Kind)
	assert.Equal(t, missing, streamedErrs[0].Path)
}

func TestSortBySize(t *testing.T) {
	result := Result{Sizes: []RootSize{
		{Path: "big", Size: 300},
		{Path: "small", Size: 1},
		{Path: "mid", Size: 20},
	}}

	result.SortBySize()

	assert.Equal(t, []RootSize{
		{Path: "small", Size: 1},
		{Path: "mid", Size: 20},
		{Path: "big", Size: 300},
	}, result.Sizes)

	assert.Equal(t, uint64(321), result.Total())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t,
		"could not retrieve metadata for path '/x'",
		Error{Kind: ErrNoMetadata, Path: "/x"}.Error(),
	)
	assert.Equal(t,
		"could not read contents of directory '/y'",
		Error{Kind: ErrReadDir, Path: "/y"}.Error(),
	)
}
