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

import (
	"fmt"
	"slices"
)

// ValidateListing validates a Listing according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Price must not be negative (0 is valid and means unknown)
//   - EditionType, when set, must be a known category
//   - Availability, when set, must be a known state
//
// NOT validated (populated by processors):
//   - Vector (can be empty until the embedding processor runs)
//   - ID (0 is valid from database sequences)
func ValidateListing(listing *Listing) error {
	if listing == nil {
		return fmt.Errorf("%w: listing is nil", ErrInvalidListing)
	}

	if listing.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrEmptyTitle)
	}

	if listing.Price < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrNegativePrice)
	}

	if listing.EditionType != "" {
		if err := ValidateEditionCategory(listing.EditionType); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidListing, err)
		}
	}

	if listing.Availability != "" {
		if err := ValidateAvailability(listing.Availability); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidListing, err)
		}
	}

	return nil
}

// ValidateEditionCategory validates that an EditionCategory has a known value.
func ValidateEditionCategory(category EditionCategory) error {
	if !slices.Contains(EditionCategories, category) {
		return fmt.Errorf("%w: %q", ErrInvalidEditionCategory, category)
	}
	return nil
}

// ValidateAvailability validates that an Availability has a known value.
func ValidateAvailability(state Availability) error {
	switch state {
	case AvailabilityInStock, AvailabilityPreOrder, AvailabilitySoldOut:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidAvailability, state)
}

// ValidateFilterCondition validates a FilterCondition according to domain rules.
//
// Exactly one operand must be populated, and it must match the operator:
//   - equals and text_match carry Value
//   - any_of carries Values
//   - range carries Range with at least one bound
func ValidateFilterCondition(cond *FilterCondition) error {
	if cond == nil {
		return fmt.Errorf("%w: condition is nil", ErrInvalidFilterCondition)
	}

	if cond.Field == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFilterCondition, ErrEmptyField)
	}

	switch cond.Operator {
	case OperatorEquals, OperatorTextMatch:
		if cond.Value == "" || cond.Values != nil || cond.Range != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFilterCondition, ErrOperandMismatch)
		}
	case OperatorAnyOf:
		if len(cond.Values) == 0 || cond.Value != "" || cond.Range != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFilterCondition, ErrOperandMismatch)
		}
	case OperatorRange:
		if cond.Range == nil || cond.Value != "" || cond.Values != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFilterCondition, ErrOperandMismatch)
		}
		if cond.Range.Min == nil && cond.Range.Max == nil {
			return fmt.Errorf("%w: %w", ErrInvalidFilterCondition, ErrEmptyRange)
		}
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidFilterCondition, ErrInvalidOperator, cond.Operator)
	}

	return nil
}
