package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".docsift", "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Getters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("str", "hello"))
	require.NoError(t, store.Set("num", 42))
	require.NoError(t, store.Set("ratio", 0.25))
	require.NoError(t, store.Set("flag", true))
	require.NoError(t, store.Set("list", []string{"a", "b"}))

	assert.Equal(t, "hello", store.GetString("str"))
	assert.Equal(t, 42, store.GetInt("num"))
	assert.Equal(t, 0.25, store.GetFloat("ratio"))
	assert.Equal(t, 42.0, store.GetFloat("num"))
	assert.True(t, store.GetBool("flag"))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("list"))

	// Wrong types fall back to zero values
	assert.Equal(t, "", store.GetString("num"))
	assert.Equal(t, 0, store.GetInt("str"))
	assert.Equal(t, 0.0, store.GetFloat("str"))
	assert.False(t, store.GetBool("str"))
	assert.Nil(t, store.GetStringSlice("num"))

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("budget.text", 8000))
	require.NoError(t, store1.Set("filter.readability_threshold", 0.4))
	require.NoError(t, store1.Set("intake.allowed_types", []string{"application/pdf", "text/plain"}))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 8000, store2.GetInt("budget.text"))
	assert.InDelta(t, 0.4, store2.GetFloat("filter.readability_threshold"), 1e-9)
	assert.Equal(t, []string{"application/pdf", "text/plain"}, store2.GetStringSlice("intake.allowed_types"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("budget.text", 8000))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[budget]")
}

func TestConfigStore_ReadsHandWrittenTOML(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[recovery]\nbyte_run_head = 1000\n\n[filter]\nreadability_threshold = 0.6\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 1000, store.GetInt("recovery.byte_run_head"))
	assert.InDelta(t, 0.6, store.GetFloat("filter.readability_threshold"), 1e-9)
}

func TestConfigStore_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsift.yaml")
	content := "budget:\n  text: 5000\n  excerpt: 1000\nintake:\n  allowed_types:\n    - application/pdf\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store, err := NewConfigStoreFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, store.GetInt("budget.text"))
	assert.Equal(t, 1000, store.GetInt("budget.excerpt"))
	assert.Equal(t, []string{"application/pdf"}, store.GetStringSlice("intake.allowed_types"))

	require.NoError(t, store.Set("budget.text", 6000))

	reloaded, err := NewConfigStoreFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6000, reloaded.GetInt("budget.text"))
	assert.Equal(t, 1000, reloaded.GetInt("budget.excerpt"))
}

func TestConfigStore_YAMLCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsift.yml")
	require.NoError(t, os.WriteFile(path, []byte("budget: [unclosed"), 0600))

	_, err := NewConfigStoreFromFile(path)
	assert.Error(t, err)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("# Just a comment\n\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory so the write fails
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("another", "value"))
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetFloat(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestFlattenNestRoundTrip(t *testing.T) {
	flat := map[string]any{
		"a":     1,
		"a.b":   2,
		"c.d.e": "x",
		"c.f":   true,
	}

	nested := nestMap(flat)

	assert.Equal(t, 1, nested["a"])
	assert.Equal(t, 2, nested["a.b"])
	assert.Equal(t, flat, flattenMap(nested, ""))
}
