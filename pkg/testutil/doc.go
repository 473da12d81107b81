// Package testutil provides shared helpers for roster tests.
//
// Key components:
//   - MockStore: testify mock of directory.Store for handler tests that
//     need to script store responses or assert on the calls made
//   - PopulatedStore: memory store holding the standard fixture departments
//   - CaptureLogs: redirects the global zerolog logger into a buffer so a
//     test can assert on the exact messages logged
//
// Usage guidelines:
//   - Prefer a real MemoryStore; reach for MockStore only to observe calls
//   - Build test data inline or from the fixtures here, not from files
package testutil
