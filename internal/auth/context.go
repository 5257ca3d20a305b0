// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package auth provides the authenticated caller value and context helpers.
package auth

import (
	"context"

	"todoapp/internal/ctxkeys"
)

// Caller is the identity extracted from the request credentials, built once
// per request and passed explicitly into each operation.
type Caller struct {
	Username string
	ID       int64
	IsAdmin  bool
}

// SetCaller stores the caller in the context.
func SetCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, ctxkeys.Caller{}, caller)
}

// GetCaller returns the authenticated caller from the context, or nil if the
// request carries no usable identity.
func GetCaller(ctx context.Context) *Caller {
	if caller, ok := ctx.Value(ctxkeys.Caller{}).(*Caller); ok {
		return caller
	}
	return nil
}

// IsAuthenticated returns true if the context has an authenticated caller.
func IsAuthenticated(ctx context.Context) bool {
	return GetCaller(ctx) != nil
}
