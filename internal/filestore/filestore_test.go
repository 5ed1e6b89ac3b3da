package filestore_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"go-hrm/internal/filestore"

	"github.com/stretchr/testify/assert"
)

func TestDiskStore_SaveAndOpen(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	handle, err := store.Save(ctx, "my resume.pdf", strings.NewReader("pdf-bytes"))
	assert.NoError(t, err)
	assert.NotEmpty(t, handle)
	assert.NotContains(t, handle, " ")

	rc, name, err := store.Open(ctx, handle)
	assert.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	assert.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))
	assert.Equal(t, "my-resume.pdf", name)
}

func TestDiskStore_OpenUnknownHandle(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	_, _, err = store.Open(ctx, "missing_file.pdf")
	assert.ErrorIs(t, err, filestore.ErrHandleNotFound)
}

func TestDiskStore_OpenRejectsPaths(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	for _, handle := range []string{"../etc/passwd", "a/b.pdf", `a\b.pdf`, ""} {
		_, _, err := store.Open(ctx, handle)
		assert.ErrorIs(t, err, filestore.ErrHandleNotFound, handle)
	}
}

func TestOriginalName(t *testing.T) {
	assert.Equal(t, "resume.pdf", filestore.OriginalName("4d1c9f2a_resume.pdf"))
	assert.Equal(t, "weird", filestore.OriginalName("weird"))
}
