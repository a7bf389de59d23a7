package lokat_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/lokapod/lokat"
)

func TestHTTPLoader(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/de.json":
			w.Write([]byte(`{"hello":"hallo"}`))
		case "/broken.json":
			w.Write([]byte(`{"hello":`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	loader := lokat.HTTPLoader(srv.Client(), func(locale string) string {
		return srv.URL + "/" + locale + ".json"
	})

	t.Run("fetches and decodes a dictionary", func(t *testing.T) {
		t.Parallel()

		d, err := loader(context.Background(), "de")
		require.NoError(t, err)
		require.Equal(t, "hallo", d["hello"])
	})

	t.Run("non-2xx status is a load failure", func(t *testing.T) {
		t.Parallel()

		_, err := loader(context.Background(), "missing")
		require.ErrorIs(t, err, lokat.ErrUnexpectedStatus)
	})

	t.Run("invalid JSON is a load failure", func(t *testing.T) {
		t.Parallel()

		_, err := loader(context.Background(), "broken")
		require.Error(t, err)
	})

	t.Run("nil resolver panics", func(t *testing.T) {
		t.Parallel()

		require.Panics(t, func() { lokat.HTTPLoader(nil, nil) })
	})
}

func TestFSLoader(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"de/common.json": {Data: []byte(`{"hello":"hallo"}`)},
	}

	loader := lokat.FSLoader(fsys, "common")

	d, err := loader(context.Background(), "de")
	require.NoError(t, err)
	require.Equal(t, "hallo", d["hello"])

	_, err = loader(context.Background(), "fr")
	require.Error(t, err)
}

func TestTableLoader(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/buttons.json": {Data: []byte(`["OK","Cancel"]`)},
	}

	loader := lokat.TableLoader(fsys, "buttons")

	tab, err := loader(context.Background(), "en")
	require.NoError(t, err)
	require.Equal(t, lokat.Table{"OK", "Cancel"}, tab)

	_, err = loader(context.Background(), "de")
	require.Error(t, err)
}
