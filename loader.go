package lokat

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"path"
)

// Loader resolves a locale identifier to a dictionary. Implementations are
// supplied by the caller; the runtime performs no schema validation on the
// result. Loaders must be safe for concurrent use: the cache guarantees at
// most one in-flight call per locale, but different locales may load in
// parallel.
type Loader[D any] func(ctx context.Context, locale string) (D, error)

// HTTPLoader returns a Loader that fetches a flat JSON dictionary over HTTP.
// The resolve function maps a locale to the URL to fetch. The response body
// is decoded as a JSON object of string values with no shape validation; the
// data source is inside the caller's trust boundary.
//
// If client is nil, http.DefaultClient is used.
func HTTPLoader(client *http.Client, resolve func(locale string) string) Loader[Dictionary] {
	if resolve == nil {
		panic("lokat: resolve function is not provided")
	}
	if client == nil {
		client = http.DefaultClient
	}

	return func(ctx context.Context, locale string) (Dictionary, error) {
		url := resolve(locale)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("lokat: building request for %q: %w", url, err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("lokat: fetching %q: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: %s from %q", ErrUnexpectedStatus, resp.Status, url)
		}

		var dict Dictionary
		if err := json.NewDecoder(resp.Body).Decode(&dict); err != nil {
			return nil, fmt.Errorf("lokat: decoding %q: %w", url, err)
		}

		return dict, nil
	}
}

// FSLoader returns a Loader that reads {locale}/{namespace}.json from fsys.
// Useful with embed.FS when dictionaries ship inside the binary.
func FSLoader(fsys fs.FS, namespace string) Loader[Dictionary] {
	return func(_ context.Context, locale string) (Dictionary, error) {
		var dict Dictionary
		if err := readJSONFile(fsys, locale, namespace, &dict); err != nil {
			return nil, err
		}
		return dict, nil
	}
}

// TableLoader returns a Loader that reads a compiled keyspace artifact
// ({locale}/{namespace}.json, a JSON array of strings) from fsys. The
// artifacts are produced by lokat-gen.
func TableLoader(fsys fs.FS, namespace string) Loader[Table] {
	return func(_ context.Context, locale string) (Table, error) {
		var table Table
		if err := readJSONFile(fsys, locale, namespace, &table); err != nil {
			return nil, err
		}
		return table, nil
	}
}

func readJSONFile(fsys fs.FS, locale, namespace string, v any) error {
	name := path.Join(locale, namespace+".json")

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("lokat: reading %q: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("lokat: decoding %q: %w", name, err)
	}

	return nil
}
