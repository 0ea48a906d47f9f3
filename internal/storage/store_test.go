package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", "data"))

	want := []doc{{ID: "a", Count: 1}, {ID: "b", Count: 2}}
	require.NoError(t, s.Save("stretch.routines", want))

	var got []doc
	found, err := s.Load("stretch.routines", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(filepath.Join(s.Dir, "stretch.routines.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {", "documents are indented")
}

func TestLoad_MissingDocument(t *testing.T) {
	s := New(t.TempDir())

	var got []doc
	found, err := s.Load("stretch.activities", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestLoad_CorruptDocumentFallsBack(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "{not json"},
		{"wrong top-level type", `{"id":"a"}`},
		{"bad element after good ones", `[{"id":"a","count":1},{"id":5}]`},
		{"truncated array", `[{"id":"a","count":1},`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "k.json"), []byte(tt.data), 0644))

			var got []doc
			found, err := New(dir).Load("k", &got)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Empty(t, got, "nothing from a bad document is kept")
		})
	}
}

func TestLoad_FailedDecodeKeepsPriorValue(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k.json"), []byte(`[{"id":"x"},{"count":"many"}]`), 0644))

	got := []doc{{ID: "kept", Count: 9}}
	found, err := New(dir).Load("k", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []doc{{ID: "kept", Count: 9}}, got)
}

func TestLoad_RejectsNonPointerTarget(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Save("k", []doc{{ID: "a"}}))

	var got []doc
	_, err := s.Load("k", got)
	assert.Error(t, err)

	var nilTarget *[]doc
	_, err = s.Load("k", nilTarget)
	assert.Error(t, err)
}

func TestLoad_EmptyDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k.json"), []byte("  \n"), 0644))

	var got []doc
	found, err := New(dir).Load("k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Save("k", doc{ID: "x"}))
	require.NoError(t, s.Save("k", doc{ID: "y"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
}

func TestPath_RejectsBadKeys(t *testing.T) {
	s := New(t.TempDir())
	for _, key := range []string{"", ".", "..", "a/b", `a\b`} {
		_, err := s.Path(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	dir, err := DefaultDir("stretch")
	require.NoError(t, err)
	assert.Equal(t, "stretch", filepath.Base(dir))
}
