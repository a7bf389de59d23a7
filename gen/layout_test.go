package gen_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/lokapod/lokat/gen"
)

func TestLoadLayout(t *testing.T) {
	t.Parallel()

	t.Run("loads the nested convention preserving key order", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/buttons.json": {Data: []byte(`{"z.last":"Last","a.first":"First"}`)},
			"en/errors.json":  {Data: []byte(`{"not_found":"Not found"}`)},
		}

		layout, err := gen.LoadLayout(fsys, []string{"en"})
		require.NoError(t, err)
		require.Equal(t, []string{"en"}, layout.Locales())
		require.Equal(t, []string{"buttons", "errors"}, layout.Namespaces("en"))

		doc, ok := layout.Document("en", "buttons")
		require.True(t, ok)
		require.Equal(t, []string{"z.last", "a.first"}, doc.Keys)
		require.Equal(t, "First", doc.Values["a.first"])
	})

	t.Run("loads the flat convention", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"de.buttons.json": {Data: []byte(`{"ok":"OK"}`)},
		}

		layout, err := gen.LoadLayout(fsys, []string{"de"})
		require.NoError(t, err)
		require.Equal(t, []string{"buttons"}, layout.Namespaces("de"))
	})

	t.Run("prefers nested over flat, never merging", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/buttons.json": {Data: []byte(`{"ok":"OK"}`)},
			"en.errors.json":  {Data: []byte(`{"not_found":"Not found"}`)},
		}

		layout, err := gen.LoadLayout(fsys, []string{"en"})
		require.NoError(t, err)
		require.Equal(t, []string{"buttons"}, layout.Namespaces("en"))
	})

	t.Run("keeps a locale without files, with zero namespaces", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/buttons.json": {Data: []byte(`{"ok":"OK"}`)},
		}

		layout, err := gen.LoadLayout(fsys, []string{"en", "sv"})
		require.NoError(t, err)
		require.Equal(t, []string{"en", "sv"}, layout.Locales())
		require.Empty(t, layout.Namespaces("sv"))
	})

	t.Run("preserves YAML mapping order", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/menu.yaml": {Data: []byte("zeta: Z\nalpha: A\n")},
			"de/menu.yml":  {Data: []byte("zeta: Z\nalpha: A\n")},
		}

		layout, err := gen.LoadLayout(fsys, []string{"en", "de"})
		require.NoError(t, err)

		for _, locale := range []string{"en", "de"} {
			doc, ok := layout.Document(locale, "menu")
			require.True(t, ok, locale)
			require.Equal(t, []string{"zeta", "alpha"}, doc.Keys)
		}
	})

	t.Run("malformed JSON aborts the whole load", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/buttons.json": {Data: []byte(`{"ok":"OK"}`)},
			"de/buttons.json": {Data: []byte(`{"ok":`)},
		}

		layout, err := gen.LoadLayout(fsys, []string{"en", "de"})
		require.ErrorIs(t, err, gen.ErrMalformedInput)
		require.ErrorContains(t, err, "de/buttons.json")
		require.Nil(t, layout)
	})

	t.Run("duplicate keys are malformed input", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/buttons.json": {Data: []byte(`{"ok":"OK","ok":"Okay"}`)},
		}

		_, err := gen.LoadLayout(fsys, []string{"en"})
		require.ErrorIs(t, err, gen.ErrMalformedInput)
	})

	t.Run("non-string values are malformed input", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/buttons.json": {Data: []byte(`{"ok":{"nested":"no"}}`)},
		}

		_, err := gen.LoadLayout(fsys, []string{"en"})
		require.ErrorIs(t, err, gen.ErrMalformedInput)
	})

	t.Run("deduplicates repeated locales", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/buttons.json": {Data: []byte(`{"ok":"OK"}`)},
		}

		layout, err := gen.LoadLayout(fsys, []string{"en", "en"})
		require.NoError(t, err)
		require.Equal(t, []string{"en"}, layout.Locales())
	})
}
