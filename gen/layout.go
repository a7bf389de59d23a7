package gen

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// Layout is the in-memory model of every requested locale's dictionaries:
// locale, then namespace, then an ordered flat document. Locale iteration
// order is the order locales were requested in.
type Layout struct {
	locales []string
	data    map[string]map[string]*Document
}

// Locales returns the locales in request order. A requested locale with no
// dictionary files on disk is still present, with zero namespaces.
func (l *Layout) Locales() []string {
	return slices.Clone(l.locales)
}

// Namespaces returns the namespaces loaded for locale, sorted.
func (l *Layout) Namespaces(locale string) []string {
	docs := l.data[locale]
	namespaces := make([]string, 0, len(docs))
	for ns := range docs {
		namespaces = append(namespaces, ns)
	}
	slices.Sort(namespaces)
	return namespaces
}

// Document returns the dictionary for (locale, namespace).
func (l *Layout) Document(locale, namespace string) (*Document, bool) {
	doc, ok := l.data[locale][namespace]
	return doc, ok
}

// dictionaryExtensions are the accepted file extensions, in preference order
// when one namespace exists under several of them.
var dictionaryExtensions = []string{".json", ".yaml", ".yml"}

// LoadLayout reads per-locale dictionaries from fsys for each requested
// locale. Two directory conventions are probed: nested
// ({locale}/{namespace}.json) and flat ({locale}.{namespace}.json). When a
// locale has nested files, its flat files are ignored entirely: first match,
// never merged. Any unreadable or malformed file aborts the load with no
// partial layout.
func LoadLayout(fsys fs.FS, locales []string) (*Layout, error) {
	layout := &Layout{data: make(map[string]map[string]*Document, len(locales))}

	for _, locale := range locales {
		if _, ok := layout.data[locale]; ok {
			continue
		}

		docs, err := loadLocale(fsys, locale)
		if err != nil {
			return nil, err
		}

		layout.locales = append(layout.locales, locale)
		layout.data[locale] = docs
	}

	return layout, nil
}

func loadLocale(fsys fs.FS, locale string) (map[string]*Document, error) {
	docs := make(map[string]*Document)

	// Nested convention: {locale}/{namespace}.{ext}.
	entries, err := fs.ReadDir(fsys, locale)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ns, ok := splitNamespace(entry.Name())
			if !ok {
				continue
			}
			if _, dup := docs[ns]; dup {
				// fs.ReadDir sorts entries, so .json wins over .yaml/.yml.
				continue
			}
			doc, err := loadDocument(fsys, path.Join(locale, entry.Name()))
			if err != nil {
				return nil, err
			}
			docs[ns] = doc
		}
	}
	if len(docs) > 0 {
		return docs, nil
	}

	// Flat convention: {locale}.{namespace}.{ext} at the root.
	entries, err = fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("gen: reading input root: %w", err)
	}
	prefix := locale + "."
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		ns, ok := splitNamespace(strings.TrimPrefix(entry.Name(), prefix))
		if !ok || ns == "" {
			continue
		}
		if _, dup := docs[ns]; dup {
			continue
		}
		doc, err := loadDocument(fsys, entry.Name())
		if err != nil {
			return nil, err
		}
		docs[ns] = doc
	}

	return docs, nil
}

// splitNamespace strips a supported dictionary extension from name, returning
// false when the extension is not one of dictionaryExtensions.
func splitNamespace(name string) (string, bool) {
	ext := strings.ToLower(path.Ext(name))
	if !slices.Contains(dictionaryExtensions, ext) {
		return "", false
	}
	return strings.TrimSuffix(name, path.Ext(name)), true
}

func loadDocument(fsys fs.FS, name string) (*Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("gen: reading %q: %w", name, err)
	}

	var doc *Document
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		doc, err = parseJSONDocument(data)
	default:
		doc, err = parseYAMLDocument(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrMalformedInput, name, err)
	}

	return doc, nil
}
