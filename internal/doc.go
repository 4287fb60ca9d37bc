// Package internal contains the core implementation packages for styletree.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the styletree CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - styles: selector resolution, declaration collection, exclusion
//     matching, output formatting, and the tree compiler itself
//   - loader: YAML style tree loading with partial ($use) splicing
//   - build: batch pipeline turning configured units into CSS files
//   - config: configuration management with validation
//   - watcher: file system monitoring with debouncing
//   - errors: structured error types carrying unit and path context
//   - logging: structured logging built on log/slog
//   - version: build metadata injected at link time
//
// # Inter-Package Communication
//
// Packages communicate through well-defined interfaces:
//
//   - Config describes the units the build pipeline compiles
//   - Loader produces style trees and reports their file dependencies
//   - Build pipeline compiles trees and writes outputs atomically
//   - Watcher monitors the reported dependencies and triggers rebuilds
//
// For detailed documentation, see the individual package documentation.
package internal
