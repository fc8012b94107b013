//go:build e2e

// Package e2e holds the end-to-end UI tests for xengvang.com.
//
// These tests are isolated from the standard test suite via build tags.
// They drive a real Chrome (auto-downloaded by Rod if not present) unless
// BROWSER_DRIVER=static, and are intended for CI pipelines or explicit
// local testing.
//
// Running E2E tests:
//
//	TEST_ENVIRONMENT=production go test -tags=e2e ./e2e/...
//
// Against the bundled fixture site on :3000, no Chrome needed:
//
//	TEST_ENVIRONMENT=local E2E_SERVE_FIXTURE=true BROWSER_DRIVER=static go test -tags=e2e ./e2e/...
//
// Without E2E_SERVE_FIXTURE, local runs check whatever already serves
// localhost:3000.
//
// Running all tests except E2E:
//
//	go test ./...
//
// Configuration comes from pkg/config: e2e.yaml and .env at the repository
// root, then the process environment.
//
// Test isolation:
// One browser is launched for the package. Every check registered in
// pages.Checks runs as its own subtest in its own session (tab), so tests
// run in parallel.
package e2e
