// Package gen compiles per-locale JSON/YAML dictionaries into a validated,
// deterministic integer keyspace.
//
// LoadLayout reads every requested locale's dictionaries from disk, keeping
// each file's key insertion order. Validate derives the canonical key order
// per namespace from a reference locale (that order is the integer-id
// assignment) and reports structural mismatches (missing namespaces, key
// count drift, key order drift) for every other locale. Emitters then turn
// the validated layout into artifacts: compiled string tables per locale plus
// a symbolic name-to-position mapping, and optionally Go index constants.
//
// Validation issues never block emission. The lokat-gen command prints them
// and signals failure through its exit status instead, so a build can decide
// how strict to be.
package gen
