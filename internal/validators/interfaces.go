// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks employee payloads, query parameters and login
// credentials before the service layer acts on them.
//
// A Validator accepts any supported value and, optionally, the names of the
// fields to check (see the Field* constants). With no field names every rule
// for that type applies.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
