// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the business rules notes must satisfy before they
// enter the collection.
//
// A Validator checks a value and may be scoped to named fields, so a caller
// holding only the raw input buffer can validate the content field alone:
//
//	err := v.Validate(ctx, input, validators.FieldContent)
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
