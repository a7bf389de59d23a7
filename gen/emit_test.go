package gen_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lokapod/lokat/gen"
)

func emitFixture(t *testing.T) (*gen.Layout, *gen.Result) {
	t.Helper()

	layout := loadLayout(t, map[string]string{
		"en/buttons.json": `{"ok":"OK","cancel":"Cancel","submit.label":"Submit"}`,
		"de/buttons.json": `{"ok":"OK","cancel":"Abbrechen"}`,
	}, "en", "de", "sv")

	result, err := gen.Validate(layout, "en")
	require.NoError(t, err)
	return layout, result
}

func artifactByPath(t *testing.T, artifacts []gen.Artifact, path string) gen.Artifact {
	t.Helper()

	for _, a := range artifacts {
		if a.Path == path {
			return a
		}
	}
	t.Fatalf("no artifact %q", path)
	return gen.Artifact{}
}

func TestJSONEmitter(t *testing.T) {
	t.Parallel()

	layout, result := emitFixture(t)

	artifacts, err := gen.JSONEmitter{}.Emit(layout, result)
	require.NoError(t, err)

	t.Run("emits tables in canonical order", func(t *testing.T) {
		t.Parallel()

		var table []string
		require.NoError(t, json.Unmarshal(artifactByPath(t, artifacts, "en/buttons.json").Data, &table))
		require.Equal(t, []string{"OK", "Cancel", "Submit"}, table)
	})

	t.Run("fills gaps from the reference locale", func(t *testing.T) {
		t.Parallel()

		// de is missing "submit.label"; sv is missing the whole namespace.
		var table []string
		require.NoError(t, json.Unmarshal(artifactByPath(t, artifacts, "de/buttons.json").Data, &table))
		require.Equal(t, []string{"OK", "Abbrechen", "Submit"}, table)

		require.NoError(t, json.Unmarshal(artifactByPath(t, artifacts, "sv/buttons.json").Data, &table))
		require.Equal(t, []string{"OK", "Cancel", "Submit"}, table)
	})

	t.Run("emits key positions matching the canonical order", func(t *testing.T) {
		t.Parallel()

		var positions map[string]int
		require.NoError(t, json.Unmarshal(artifactByPath(t, artifacts, "buttons.keys.json").Data, &positions))
		require.Equal(t, map[string]int{"ok": 0, "cancel": 1, "submit.label": 2}, positions)
	})
}

func TestGoEmitter(t *testing.T) {
	t.Parallel()

	layout, result := emitFixture(t)

	artifacts, err := gen.GoEmitter{}.Emit(layout, result)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	require.Equal(t, "keys.gen.go", artifacts[0].Path)

	src := string(artifacts[0].Data)
	require.Contains(t, src, "package messages")
	require.Contains(t, src, "type Index int")
	require.Regexp(t, `ButtonsOk\s+Index = 0`, src)
	require.Regexp(t, `ButtonsCancel\s+Index = 1`, src)
	require.Regexp(t, `ButtonsSubmitLabel\s+Index = 2`, src)

	t.Run("honors a custom package name", func(t *testing.T) {
		t.Parallel()

		artifacts, err := gen.GoEmitter{Package: "l10n"}.Emit(layout, result)
		require.NoError(t, err)
		require.Contains(t, string(artifacts[0].Data), "package l10n")
	})
}

func TestWriteArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := gen.WriteArtifacts(dir, []gen.Artifact{
		{Path: "en/buttons.json", Data: []byte(`["OK"]`)},
		{Path: "buttons.keys.json", Data: []byte(`{"ok":0}`)},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "en", "buttons.json"))
	require.NoError(t, err)
	require.Equal(t, `["OK"]`, string(data))

	_, err = os.Stat(filepath.Join(dir, "buttons.keys.json"))
	require.NoError(t, err)
}
