package fs

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	t.Parallel()

	mem := fstest.MapFS{
		"load-test-latest.json": {Data: []byte(`{}`)},
		"reports":               {Mode: os.ModeDir},
	}

	testCases := []struct {
		name     string
		file     string
		expected bool
	}{
		{name: "test_regular_file", file: "load-test-latest.json", expected: true},
		{name: "test_missing_file", file: "spike-test-latest.json", expected: false},
		{name: "test_directory", file: "reports", expected: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()

				ok, err := Exists(mem, tc.file)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, ok)
			},
		)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "summary.json"), []byte(`{}`), 0o644))

	fsys := New(dir)
	assert.Equal(t, dir, fsys.RootDir())
	assert.Equal(t, filepath.Join(dir, "summary.json"), fsys.Path("summary.json"))

	info, err := fsys.Stat("summary.json")
	require.NoError(t, err)
	assert.EqualValues(t, 2, info.Size())

	ok, err := Exists(fsys, "summary.json")
	require.NoError(t, err)
	assert.True(t, ok)
}
