// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrAdminRoleRequired is returned when a valid token without the ADMIN
	// role is presented to an admin-only route.
	ErrAdminRoleRequired = errors.New("admin role required")

	// ErrMissingFilePart is returned when a verify request carries no
	// multipart "file" part.
	ErrMissingFilePart = errors.New("multipart `file` part is required")

	// ErrInvalidLimit is returned when the limit query parameter is not an
	// integer.
	ErrInvalidLimit = errors.New("invalid `limit` query parameter")
)
