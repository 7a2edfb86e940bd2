// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidListing indicates a Listing failed validation.
	ErrInvalidListing = errors.New("invalid listing")

	// ErrInvalidFilterCondition indicates a FilterCondition failed validation.
	ErrInvalidFilterCondition = errors.New("invalid filter condition")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrNegativePrice indicates a negative price value.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidEditionCategory indicates an unknown EditionCategory value.
	ErrInvalidEditionCategory = errors.New("invalid edition category")

	// ErrInvalidAvailability indicates an unknown Availability value.
	ErrInvalidAvailability = errors.New("invalid availability state")

	// ErrEmptyField indicates a filter condition with no target field.
	ErrEmptyField = errors.New("filter field cannot be empty")

	// ErrInvalidOperator indicates an unknown FilterOperator value.
	ErrInvalidOperator = errors.New("invalid filter operator")

	// ErrOperandMismatch indicates a filter condition whose populated operand
	// does not match its operator.
	ErrOperandMismatch = errors.New("filter operand does not match operator")

	// ErrEmptyRange indicates a range condition with neither bound present.
	ErrEmptyRange = errors.New("range condition requires at least one bound")
)
