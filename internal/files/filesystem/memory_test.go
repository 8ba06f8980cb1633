package filesystem

import (
	"errors"
	"io/fs"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_Basic(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	mfs.AddFile("root.txt", "hello")
	mfs.AddFile("docs/guide.md", "# Guide")
	mfs.AddDir("empty")

	names, err := mfs.ReadDirNames("/test/project")
	require.NoError(t, err)
	sort.Strings(names)
	require.Equal(t, []string{"docs", "empty", "root.txt"}, names)

	names, err = mfs.ReadDirNames("/test/project/docs")
	require.NoError(t, err)
	require.Equal(t, []string{"guide.md"}, names)
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	expectedContent := "SELECT 1;"
	mfs.AddFile("root.sql", expectedContent)

	content, err := mfs.ReadFile("/test/project/root.sql")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	_, err = mfs.ReadFile("/test/project")
	require.Error(t, err, "reading a directory must fail")

	_, err = mfs.ReadFile("/test/project/missing")
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("root.sql", "SELECT 1;")

	info, err := mfs.Stat("/test/project/root.sql")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.True(t, info.Mode().IsRegular())
	require.Equal(t, "root.sql", info.Name())
	require.Equal(t, int64(9), info.Size())

	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	require.True(t, info.IsDir())

	_, err = mfs.Stat("/test/project/nope")
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_Abs(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	got, err := mfs.Abs("a/../b.txt")
	require.NoError(t, err)
	assert.Equal(t, "/test/project/b.txt", got)

	got, err = mfs.Abs(".")
	require.NoError(t, err)
	assert.Equal(t, "/test/project", got)

	got, err = mfs.Abs("/elsewhere/")
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", got)
}

func TestMemoryFileSystem_WriteFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/root")

	require.NoError(t, mfs.WriteFile("/root/new.txt", []byte("one"), FileMode))
	require.NoError(t, mfs.WriteFile("/root/new.txt", []byte("two"), FileMode))

	content, err := mfs.ReadFile("/root/new.txt")
	require.NoError(t, err)
	assert.Equal(t, "two", string(content))

	err = mfs.WriteFile("/root/missing/new.txt", []byte("x"), FileMode)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "missing parent: %v", err)

	mfs.AddDir("sub")
	err = mfs.WriteFile("/root/sub", []byte("x"), FileMode)
	assert.Error(t, err, "writing over a directory must fail")
}

func TestMemoryFileSystem_WriteFile_CopiesData(t *testing.T) {
	mfs := NewMemoryFileSystem("/root")

	data := []byte("abc")
	require.NoError(t, mfs.WriteFile("/root/f", data, FileMode))
	data[0] = 'X'

	content, err := mfs.ReadFile("/root/f")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(content))
}

func TestMemoryFileSystem_Remove(t *testing.T) {
	mfs := NewMemoryFileSystem("/root")
	mfs.AddFile("a.txt", "a")
	mfs.AddFile("dir/b.txt", "b")

	require.NoError(t, mfs.Remove("/root/a.txt"))
	_, err := mfs.Stat("/root/a.txt")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	assert.Error(t, mfs.Remove("/root/dir"), "non-empty directory")
	assert.True(t, errors.Is(mfs.Remove("/root/a.txt"), fs.ErrNotExist))
}

func TestMemoryFileSystem_RemoveAll(t *testing.T) {
	mfs := NewMemoryFileSystem("/root")
	mfs.AddFile("dir/b.txt", "b")
	mfs.AddFile("dir/sub/c.txt", "c")
	mfs.AddFile("dirty.txt", "keep")

	require.NoError(t, mfs.RemoveAll("/root/dir"))

	names, err := mfs.ReadDirNames("/root")
	require.NoError(t, err)
	assert.Equal(t, []string{"dirty.txt"}, names)

	require.NoError(t, mfs.RemoveAll("/root/never-existed"))
}
