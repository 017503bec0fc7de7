package shellhist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	homedir.DisableCache = true
	os.Exit(m.Run())
}

func writeHistory(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSourceLoad(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		content string
		want    []string
	}{
		{
			name:    "bash",
			dialect: Bash,
			content: "ls\ncd /tmp\r\ngit status\n",
			want:    []string{"ls", "cd /tmp", "git status"},
		},
		{
			name:    "zsh extended",
			dialect: Zsh,
			content: ": 1700000000:0;echo hi\n: 1700000005:0;vim file",
			want:    []string{"echo hi", "vim file"},
		},
		{
			name:    "fish",
			dialect: Fish,
			content: "- cmd: ls\n  when: 1\n- cmd: pwd\n  when: 2\n",
			want:    []string{"ls", "pwd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &Source{Dialect: tt.dialect, Path: writeHistory(t, "history", tt.content)}
			got, err := src.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourceLoadLongLine(t *testing.T) {
	long := strings.Repeat("x", 256*1024)
	src := &Source{Dialect: Bash, Path: writeHistory(t, "history", "short\n"+long+"\n")}
	got, err := src.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, long, got[1])
}

func TestSourceLoadInvalidUTF8(t *testing.T) {
	src := &Source{Dialect: Bash, Path: writeHistory(t, "history", "echo \xff\n")}
	got, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"echo �"}, got)
}

func TestSourceLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		src := &Source{Dialect: Bash, Path: filepath.Join(t.TempDir(), "nope")}
		_, err := src.Load()
		assert.ErrorIs(t, err, ErrSourceUnavailable)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown dialect", func(t *testing.T) {
		src := &Source{Dialect: Unknown, Path: writeHistory(t, "history", "ls\n")}
		_, err := src.Load()
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("empty history", func(t *testing.T) {
		src := &Source{Dialect: Fish, Path: writeHistory(t, "history", "  when: 1\n")}
		_, err := src.Load()
		assert.ErrorIs(t, err, ErrNoHistory)
	})
}

func TestOpen(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv(EnvHistFile, "")

	src, err := Open(Zsh, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".zsh_history"), src.Path)

	src, err = Open(Fish, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "fish", "fish_history"), src.Path)

	withParentName(t, "tmux", nil)
	t.Setenv("SHELL", "")
	_, err = Open(Unknown, "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	withParentName(t, "bash", nil)
	src, err = Open(Unknown, "")
	require.NoError(t, err)
	assert.Equal(t, Bash, src.Dialect)
	assert.Equal(t, filepath.Join(home, ".bash_history"), src.Path)
}

func TestResolvePathPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	t.Setenv(EnvHistFile, "")
	got, err := ResolvePath(Bash, "~/custom_history")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "custom_history"), got)

	t.Setenv(EnvHistFile, filepath.Join(home, "from_env"))
	got, err = ResolvePath(Bash, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "from_env"), got)

	got, err = ResolvePath(Bash, "/explicit/path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/explicit/path"), got)
}

func TestDefaultPathHonoursXDGDataHome(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)
	got, err := DefaultPath(Fish)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(data, "fish", "fish_history"), got)

	_, err = DefaultPath(Unknown)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
