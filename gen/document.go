package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is one namespace's dictionary for one locale, with the file's key
// insertion order preserved. The order is load-bearing: for the reference
// locale it becomes the canonical integer-id assignment.
type Document struct {
	Keys   []string
	Values map[string]string
}

func newDocument() *Document {
	return &Document{Values: make(map[string]string)}
}

func (d *Document) add(key, value string) error {
	if _, ok := d.Values[key]; ok {
		return fmt.Errorf("duplicate key %q", key)
	}
	d.Keys = append(d.Keys, key)
	d.Values[key] = value
	return nil
}

// Len returns the number of keys in the document.
func (d *Document) Len() int {
	return len(d.Keys)
}

// parseJSONDocument decodes a flat JSON object while preserving key order,
// which encoding/json's map decoding would discard. Values must be strings;
// nested objects, arrays, and non-string scalars are rejected.
func parseJSONDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	doc := newDocument()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		value, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("value for key %q must be a string, got %v", key, valTok)
		}

		if err := doc.add(key, value); err != nil {
			return nil, err
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after JSON object")
	}

	return doc, nil
}

// parseYAMLDocument decodes a flat YAML mapping; yaml.Node retains the
// mapping order the file was written in.
func parseYAMLDocument(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	doc := newDocument()
	if len(root.Content) == 0 {
		// Empty file: a valid, empty dictionary.
		return doc, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a YAML mapping, got %v", mapping.Tag)
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valNode := mapping.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("expected a scalar key at line %d", keyNode.Line)
		}
		if valNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("value for key %q must be a scalar, got %v", keyNode.Value, valNode.Tag)
		}

		if err := doc.add(keyNode.Value, valNode.Value); err != nil {
			return nil, err
		}
	}

	return doc, nil
}
