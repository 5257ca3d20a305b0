// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package middleware provides the JWT extraction and caller loading chain.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"todoapp/internal/auth"
	authsvc "todoapp/internal/services/auth"
)

// JWT returns middleware that rejects requests without a valid bearer token.
// Missing and malformed tokens alike answer 401; echo-jwt's default of 400
// for an absent token would leak the distinction to unauthenticated clients.
func JWT(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(secret),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(authsvc.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		},
	})
}

// LoadCaller copies the verified token claims into an auth.Caller on the
// request context. Requests with no usable claims pass through without a
// caller; the operations fail closed on that.
func LoadCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := c.Get("user").(*jwt.Token); ok {
			if claims, ok := token.Claims.(*authsvc.Claims); ok && claims.Username != "" {
				id, err := strconv.ParseInt(claims.Subject, 10, 64)
				if err != nil {
					id = 0
				}
				caller := &auth.Caller{
					ID:       id,
					Username: claims.Username,
					IsAdmin:  claims.IsAdmin,
				}
				ctx := auth.SetCaller(c.Request().Context(), caller)
				c.SetRequest(c.Request().WithContext(ctx))
			}
		}
		return next(c)
	}
}
