// Package local provides a vector index backed by the local BadgerDB
// note store. There is no separate index structure: queries are
// embedded on demand and matched against the vectors stored on the
// notes themselves, which is plenty fast for personal-scale corpora.
package local
