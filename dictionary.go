package lokat

// Dictionary is a flat mapping from message keys to localized strings.
// The zero value (nil) is a valid, empty dictionary.
type Dictionary map[string]string

// Resolve returns the localized string for key, or the key itself when the
// dictionary has no entry for it. It never fails; untranslated keys surface
// verbatim in the output, which keeps missing translations visible without
// breaking rendering.
func (d Dictionary) Resolve(key string) string {
	if v, ok := d[key]; ok {
		return v
	}
	return key
}

// Has reports whether the dictionary contains an entry for key.
func (d Dictionary) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Table is a compiled keyspace: localized strings addressed by contiguous
// integer ids assigned at generation time. The zero value (nil) is a valid,
// empty table.
type Table []string

// At returns the string at id, or the empty string when id is out of range.
// Out-of-range ids are not errors: compiled keyspaces are verified at build
// time, so a miss here means a stale artifact, and an empty string degrades
// more gracefully than a panic.
func (t Table) At(id int) string {
	if id < 0 || id >= len(t) {
		return ""
	}
	return t[id]
}

// Len returns the number of entries in the table.
func (t Table) Len() int {
	return len(t)
}
