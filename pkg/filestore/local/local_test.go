package local_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"countervalidator/pkg/filestore"
	"countervalidator/pkg/filestore/local"
	"countervalidator/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := local.New(root, "http://localhost:8080/media/")

	p, err := s.Save(ctx, "Report.JSON", strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(p, filestore.Dir+"/"))
	require.True(t, strings.HasSuffix(p, ".json"))
	require.Equal(t, "http://localhost:8080/media/"+p, s.URL(p))

	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(p)))
	require.NoError(t, err)

	rc, err := s.Open(ctx, p)
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, `{"a":1}`, string(b))

	p2, err := s.Save(ctx, "Report.JSON", strings.NewReader("x"))
	require.NoError(t, err)
	require.NotEqual(t, p, p2)

	require.NoError(t, s.Delete(ctx, p))
	_, err = s.Open(ctx, p)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	// deleting twice is fine
	require.NoError(t, s.Delete(ctx, p))
}

func TestStore_pathEscape(t *testing.T) {
	s := local.New(t.TempDir(), "")

	_, err := s.Open(context.Background(), "../etc/passwd")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.ErrorIs(t, s.Delete(context.Background(), "/etc/passwd"), serrors.ErrBadRequest)
}
