// Package mock provides test doubles for the ai interfaces.
//
// The mocks generate deterministic embeddings from a text hash, so
// tests get stable vectors without any external service. Behavior can
// be overridden per test via the exported function fields.
package mock
