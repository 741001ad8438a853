// Package testutil provides fixtures and a harness for running the
// application end to end in tests.
package testutil
