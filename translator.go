package lokat

// Keyed binds a keyed lookup function to the switcher's current dictionary.
// The returned function resolves keys against whatever snapshot is current at
// call time, rebinding automatically when the switcher settles on a new
// locale, and performs no allocations. A missing key resolves to itself.
func Keyed(s *Switcher[Dictionary]) func(key string) string {
	return func(key string) string {
		return s.Snapshot().Resolve(key)
	}
}

// Indexed binds an indexed lookup function to the switcher's current table.
// Like Keyed, the returned function follows snapshot swaps through a single
// atomic load. An out-of-range id yields the empty string, never a panic:
// integer keyspaces are verified at generation time, so a miss indicates a
// stale artifact rather than a caller bug worth crashing over.
func Indexed(s *Switcher[Table]) func(id int) string {
	return func(id int) string {
		return s.Snapshot().At(id)
	}
}
