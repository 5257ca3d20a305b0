// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package ctxkeys holds the context keys shared between packages.
package ctxkeys

// Caller is the context key for the authenticated caller.
type Caller struct{}
