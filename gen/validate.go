package gen

import (
	"fmt"
	"slices"
)

// IssueKind classifies a structural mismatch between a locale and the
// reference locale.
type IssueKind string

const (
	// IssueMissingNamespace flags a locale that lacks a namespace the
	// reference locale has.
	IssueMissingNamespace IssueKind = "missing-namespace"
	// IssueKeyCountMismatch flags a namespace whose key count differs from
	// the reference's.
	IssueKeyCountMismatch IssueKind = "key-count-mismatch"
	// IssueKeyOrderMismatch flags the first index where a locale's key name
	// diverges from the canonical order.
	IssueKeyOrderMismatch IssueKind = "key-order-mismatch"
)

// Issue is one validation finding for a (locale, namespace) pair. Issues are
// diagnostics, not errors: generation proceeds regardless, and the caller
// decides through the CLI exit status whether they fail the build.
type Issue struct {
	Kind      IssueKind
	Locale    string
	Namespace string

	// Index, Want and Got are set for key-order mismatches: the first
	// diverging position, the canonical key name, and the locale's key name.
	Index int
	Want  string
	Got   string

	// Count and RefCount are set for key-count mismatches.
	Count    int
	RefCount int
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueMissingNamespace:
		return fmt.Sprintf("%s/%s: namespace missing", i.Locale, i.Namespace)
	case IssueKeyCountMismatch:
		return fmt.Sprintf("%s/%s: %d keys, reference has %d", i.Locale, i.Namespace, i.Count, i.RefCount)
	case IssueKeyOrderMismatch:
		return fmt.Sprintf("%s/%s: key order mismatch at index %d: have %q, want %q", i.Locale, i.Namespace, i.Index, i.Got, i.Want)
	default:
		return fmt.Sprintf("%s/%s: %s", i.Locale, i.Namespace, i.Kind)
	}
}

// Result is the validated, ordered view of a layout that emitters consume.
type Result struct {
	// Reference is the locale whose key order defined the canonical order.
	Reference string
	// Namespaces are the reference locale's namespaces, lexicographically
	// sorted. Namespaces present only in non-reference locales are excluded.
	Namespaces []string
	// Order maps each namespace to its canonical key order, the integer-id
	// assignment consumed by code generation.
	Order map[string][]string
	// Issues holds every finding in discovery order: namespace-major, then
	// locale in layout order.
	Issues []Issue
}

// Validate derives the canonical key order per namespace from the reference
// locale and checks every locale in the layout against it. It is a pure
// function of its inputs and never mutates the layout.
//
// Per (locale, namespace) pair at most two issues are emitted: a missing
// namespace short-circuits everything else, a key-count mismatch is still
// followed by an order check, and the order check stops at the first
// diverging index rather than producing an exhaustive diff.
func Validate(layout *Layout, reference string) (*Result, error) {
	refNamespaces := layout.Namespaces(reference)
	if len(refNamespaces) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrReferenceLocale, reference)
	}

	result := &Result{
		Reference:  reference,
		Namespaces: refNamespaces,
		Order:      make(map[string][]string, len(refNamespaces)),
	}

	for _, ns := range refNamespaces {
		refDoc, _ := layout.Document(reference, ns)
		order := slices.Clone(refDoc.Keys)
		result.Order[ns] = order

		for _, locale := range layout.Locales() {
			doc, ok := layout.Document(locale, ns)
			if !ok {
				result.Issues = append(result.Issues, Issue{
					Kind:      IssueMissingNamespace,
					Locale:    locale,
					Namespace: ns,
				})
				continue
			}

			if doc.Len() != len(order) {
				result.Issues = append(result.Issues, Issue{
					Kind:      IssueKeyCountMismatch,
					Locale:    locale,
					Namespace: ns,
					Count:     doc.Len(),
					RefCount:  len(order),
				})
			}

			for i := 0; i < min(doc.Len(), len(order)); i++ {
				if doc.Keys[i] != order[i] {
					result.Issues = append(result.Issues, Issue{
						Kind:      IssueKeyOrderMismatch,
						Locale:    locale,
						Namespace: ns,
						Index:     i,
						Want:      order[i],
						Got:       doc.Keys[i],
					})
					break
				}
			}
		}
	}

	return result, nil
}
