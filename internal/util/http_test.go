package util_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youruser/outfitapp/internal/util"
)

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	t.Run("OK", func(t *testing.T) {
		b, err := util.GetBytes(context.Background(), srv.Client(), srv.URL+"/ok")
		require.NoError(t, err)
		assert.Equal(t, "hello", string(b))
	})

	t.Run("NonSuccessStatus", func(t *testing.T) {
		_, err := util.GetBytes(context.Background(), srv.Client(), srv.URL+"/missing")
		require.Error(t, err)

		var se *util.StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
	})

	t.Run("BadURL", func(t *testing.T) {
		_, err := util.GetBytes(context.Background(), nil, "://bad")
		assert.Error(t, err)
	})
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.png")
	require.NoError(t, util.WriteFile(path, []byte{1, 2, 3}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
}
