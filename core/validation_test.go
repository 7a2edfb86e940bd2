package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateListing(t *testing.T) {
	tests := []struct {
		name    string
		listing *Listing
		wantErr error
	}{
		{
			name:    "nil listing",
			listing: nil,
			wantErr: ErrInvalidListing,
		},
		{
			name:    "empty title",
			listing: &Listing{},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "negative price",
			listing: &Listing{Title: "The Croning", Price: -1},
			wantErr: ErrNegativePrice,
		},
		{
			name:    "zero price is unknown, not invalid",
			listing: &Listing{Title: "The Croning", Price: 0},
			wantErr: nil,
		},
		{
			name:    "unknown edition category",
			listing: &Listing{Title: "The Croning", EditionType: "goatskin"},
			wantErr: ErrInvalidEditionCategory,
		},
		{
			name:    "empty edition category is fine",
			listing: &Listing{Title: "The Croning"},
			wantErr: nil,
		},
		{
			name:    "unknown availability",
			listing: &Listing{Title: "The Croning", Availability: "maybe"},
			wantErr: ErrInvalidAvailability,
		},
		{
			name: "fully populated",
			listing: &Listing{
				Title:        "The Croning",
				Author:       "Laird Barron",
				Publisher:    "Centipede Press",
				EditionType:  EditionLettered,
				Price:        395,
				Availability: AvailabilitySoldOut,
				GenreTags:    []string{"cosmic horror"},
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateListing(tt.listing)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEditionCategory(t *testing.T) {
	for _, category := range EditionCategories {
		assert.NoError(t, ValidateEditionCategory(category))
	}
	assert.ErrorIs(t, ValidateEditionCategory("first_state"), ErrInvalidEditionCategory)
	assert.ErrorIs(t, ValidateEditionCategory(""), ErrInvalidEditionCategory)
}

func TestValidateAvailability(t *testing.T) {
	for _, state := range []Availability{AvailabilityInStock, AvailabilityPreOrder, AvailabilitySoldOut} {
		assert.NoError(t, ValidateAvailability(state))
	}
	assert.ErrorIs(t, ValidateAvailability("backordered"), ErrInvalidAvailability)
	assert.ErrorIs(t, ValidateAvailability(""), ErrInvalidAvailability)
}

func TestValidateFilterCondition(t *testing.T) {
	max := 200.0

	tests := []struct {
		name    string
		cond    *FilterCondition
		wantErr error
	}{
		{
			name:    "nil condition",
			cond:    nil,
			wantErr: ErrInvalidFilterCondition,
		},
		{
			name:    "empty field",
			cond:    &FilterCondition{Operator: OperatorEquals, Value: "x"},
			wantErr: ErrEmptyField,
		},
		{
			name:    "equals with value",
			cond:    &FilterCondition{Field: FieldPublisher, Operator: OperatorEquals, Value: "Centipede Press"},
			wantErr: nil,
		},
		{
			name:    "equals without value",
			cond:    &FilterCondition{Field: FieldPublisher, Operator: OperatorEquals},
			wantErr: ErrOperandMismatch,
		},
		{
			name: "equals with extra operand",
			cond: &FilterCondition{
				Field:    FieldPublisher,
				Operator: OperatorEquals,
				Value:    "Centipede Press",
				Values:   []string{"horror"},
			},
			wantErr: ErrOperandMismatch,
		},
		{
			name:    "text_match with value",
			cond:    &FilterCondition{Field: FieldAuthor, Operator: OperatorTextMatch, Value: "Laird Barron"},
			wantErr: nil,
		},
		{
			name:    "any_of with values",
			cond:    &FilterCondition{Field: FieldGenreTags, Operator: OperatorAnyOf, Values: []string{"horror"}},
			wantErr: nil,
		},
		{
			name:    "any_of without values",
			cond:    &FilterCondition{Field: FieldGenreTags, Operator: OperatorAnyOf},
			wantErr: ErrOperandMismatch,
		},
		{
			name:    "range with max",
			cond:    &FilterCondition{Field: FieldPrice, Operator: OperatorRange, Range: &NumericRange{Max: &max}},
			wantErr: nil,
		},
		{
			name:    "range without bounds",
			cond:    &FilterCondition{Field: FieldPrice, Operator: OperatorRange, Range: &NumericRange{}},
			wantErr: ErrEmptyRange,
		},
		{
			name:    "range without range operand",
			cond:    &FilterCondition{Field: FieldPrice, Operator: OperatorRange},
			wantErr: ErrOperandMismatch,
		},
		{
			name:    "unknown operator",
			cond:    &FilterCondition{Field: FieldPrice, Operator: "between", Value: "x"},
			wantErr: ErrInvalidOperator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilterCondition(tt.cond)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
