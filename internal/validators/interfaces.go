// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks caller input before it reaches the services.
//
// A [Validator] accepts any supported value and an optional list of field
// names restricting which rules run. Rule failures are the sentinel errors
// in errors.go, so transport layers can map them with [errors.Is].
package validators

import "context"

// Validator validates request values of the types it knows.
type Validator interface {
	// Validate checks obj. When fields are given only those rules run, in
	// the given order; unknown field names yield ErrUnknownField.
	Validate(ctx context.Context, obj any, fields ...string) error
}
