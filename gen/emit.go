package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"
)

// Artifact is one generated file, with a path relative to the output root.
type Artifact struct {
	Path string
	Data []byte
}

// Emitter turns a validated layout into generated artifacts. Emission is
// best-effort by contract: it runs even when validation produced issues, and
// fills structural gaps from the reference locale.
type Emitter interface {
	Emit(layout *Layout, result *Result) ([]Artifact, error)
}

// JSONEmitter produces the compiled keyspace artifacts consumed by the
// runtime's indexed translator:
//
//   - {locale}/{namespace}.json: a JSON array of localized strings in
//     canonical key order, loadable with lokat.TableLoader;
//   - {namespace}.keys.json: an object mapping key names to positions.
//
// A locale missing a key (or a whole namespace) falls back to the reference
// locale's value, so every emitted table is fully populated.
type JSONEmitter struct{}

func (JSONEmitter) Emit(layout *Layout, result *Result) ([]Artifact, error) {
	var artifacts []Artifact

	for _, ns := range result.Namespaces {
		order := result.Order[ns]
		refDoc, _ := layout.Document(result.Reference, ns)

		for _, locale := range layout.Locales() {
			values := make([]string, len(order))
			doc, _ := layout.Document(locale, ns)
			for i, key := range order {
				if doc != nil {
					if v, ok := doc.Values[key]; ok {
						values[i] = v
						continue
					}
				}
				values[i] = refDoc.Values[key]
			}

			data, err := marshalJSON(values)
			if err != nil {
				return nil, fmt.Errorf("gen: encoding %s/%s: %w", locale, ns, err)
			}
			artifacts = append(artifacts, Artifact{
				Path: path.Join(locale, ns+".json"),
				Data: data,
			})
		}

		positions := make(map[string]int, len(order))
		for i, key := range order {
			positions[key] = i
		}
		data, err := marshalJSON(positions)
		if err != nil {
			return nil, fmt.Errorf("gen: encoding %s keys: %w", ns, err)
		}
		artifacts = append(artifacts, Artifact{
			Path: ns + ".keys.json",
			Data: data,
		})
	}

	return artifacts, nil
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// GoEmitter produces one Go source file declaring a typed index constant per
// key, grouped by namespace, so lookups into the compiled tables can be
// spelled symbolically and verified by the compiler.
type GoEmitter struct {
	// Package is the generated file's package name. Defaults to "messages".
	Package string
}

func (e GoEmitter) Emit(_ *Layout, result *Result) ([]Artifact, error) {
	pkg := e.Package
	if pkg == "" {
		pkg = "messages"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by lokat-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// Index addresses an entry in a compiled dictionary table.\n")
	fmt.Fprintf(&buf, "type Index int\n")

	for _, ns := range result.Namespaces {
		order := result.Order[ns]
		if len(order) == 0 {
			continue
		}

		fmt.Fprintf(&buf, "\n// %s\n", ns)
		fmt.Fprintf(&buf, "const (\n")
		seen := make(map[string]bool, len(order))
		for i, key := range order {
			name := identifier(ns, key)
			if seen[name] {
				name = fmt.Sprintf("%s_%d", name, i)
			}
			seen[name] = true
			fmt.Fprintf(&buf, "\t%s Index = %d\n", name, i)
		}
		fmt.Fprintf(&buf, ")\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: formatting generated source: %w", err)
	}

	return []Artifact{{Path: "keys.gen.go", Data: src}}, nil
}

// identifier builds an exported Go identifier from a namespace and a key,
// e.g. ("buttons", "submit.label") -> "ButtonsSubmitLabel".
func identifier(namespace, key string) string {
	var b strings.Builder
	for _, part := range []string{namespace, key} {
		upper := true
		for _, r := range part {
			switch {
			case unicode.IsLetter(r):
				if upper {
					r = unicode.ToUpper(r)
					upper = false
				}
				b.WriteRune(r)
			case unicode.IsDigit(r):
				b.WriteRune(r)
				upper = true
			default:
				upper = true
			}
		}
	}
	name := b.String()
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		name = "Key" + name
	}
	return name
}

var (
	_ Emitter = JSONEmitter{}
	_ Emitter = GoEmitter{}
)

// WriteArtifacts writes artifacts under dir, creating directories as needed.
func WriteArtifacts(dir string, artifacts []Artifact) error {
	for _, a := range artifacts {
		target := filepath.Join(dir, filepath.FromSlash(a.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("gen: creating %q: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, a.Data, 0o644); err != nil {
			return fmt.Errorf("gen: writing %q: %w", target, err)
		}
	}
	return nil
}
