// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks submitted forms before they reach the storage
// layer.
//
// Validation never stops at the first problem: every failing field is
// reported in a [FieldErrors] value so that a page can be re-rendered with
// all messages next to their inputs.
package validators

import "context"

// Validator validates arbitrary input values. The optional field names
// restrict validation to a subset of the value's fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
