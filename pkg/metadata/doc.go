// Package metadata contains the version-independent XDS domain model:
// document entries, submission sets, folders, associations and the
// transaction envelopes built from them. The types carry no wire-format
// concerns so both ebXML versions can be converted into and out of them.
//
// An empty string means "absent" and optional composites are pointers.
// Every type exposes a nil-safe Equal method with field-wise semantics in
// which nil and empty slices compare equal.
package metadata
