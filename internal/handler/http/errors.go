// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request errors found before the service layer is called. errorStatusMap
// maps each of them to a 4xx status.
var (
	// Authorization header missing. Answered with 401.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
	// Authorization header not of the form "Bearer <token>". Answered with 401.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// Body of POST or PUT /employees is not a single JSON value.
	ErrInvalidJSON = errors.New("Invalid JSON was passed")
	// skip or limit is not an integer.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
	// POST /token body is not a parseable form.
	ErrInvalidForm = errors.New("invalid form body")
)
