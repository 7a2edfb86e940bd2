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


package query

import "github.com/poiesic/finepress/core"

// Analyze runs all six dimension extractors against one query string and
// assembles the results into an ordered filter condition list plus the
// parallel QueryAnalysis summary.
//
// Conditions appear in a fixed canonical field order: publisher, author,
// edition type, price, availability, genre tags. The order is deterministic
// so callers and tests can assert exact output. Analyze never adds a
// default availability condition; that decision belongs to the Resolver,
// keeping Analyze a pure, total function of the query string.
func Analyze(query string) (core.QueryAnalysis, []core.FilterCondition) {
	filters := core.ExtractedFilters{
		Publisher:    ExtractPublisher(query),
		Author:       ExtractAuthor(query),
		Edition:      ExtractEdition(query),
		MaxPrice:     ExtractMaxPrice(query),
		Availability: ExtractAvailability(query),
		GenreTags:    ExtractGenres(query),
	}

	conditions := Conditions(filters)

	analysis := core.QueryAnalysis{
		Query:      query,
		Filters:    filters,
		Confidence: filters.Confidence(),
	}

	return analysis, conditions
}

// Conditions converts an ExtractedFilters summary into the ordered
// condition list, one condition per populated dimension.
func Conditions(filters core.ExtractedFilters) []core.FilterCondition {
	var conditions []core.FilterCondition

	if filters.Publisher != nil {
		conditions = append(conditions, core.FilterCondition{
			Field:    core.FieldPublisher,
			Operator: core.OperatorEquals,
			Value:    *filters.Publisher,
		})
	}

	if filters.Author != nil {
		// Author fields vary across seller sites ("Laird Barron",
		// "Barron, Laird"), so match tokens against the text index
		// instead of requiring exact equality.
		conditions = append(conditions, core.FilterCondition{
			Field:    core.FieldAuthor,
			Operator: core.OperatorTextMatch,
			Value:    *filters.Author,
		})
	}

	if filters.Edition != nil {
		conditions = append(conditions, core.FilterCondition{
			Field:    core.FieldEditionType,
			Operator: core.OperatorEquals,
			Value:    string(*filters.Edition),
		})
	}

	if filters.MaxPrice != nil {
		conditions = append(conditions, PriceCeiling(*filters.MaxPrice))
	}

	if filters.Availability != nil {
		conditions = append(conditions, AvailabilityCondition(*filters.Availability))
	}

	if len(filters.GenreTags) > 0 {
		conditions = append(conditions, core.FilterCondition{
			Field:    core.FieldGenreTags,
			Operator: core.OperatorAnyOf,
			Values:   filters.GenreTags,
		})
	}

	return conditions
}

// PriceCeiling builds an inclusive upper-bound price condition.
func PriceCeiling(max float64) core.FilterCondition {
	return core.FilterCondition{
		Field:    core.FieldPrice,
		Operator: core.OperatorRange,
		Range:    &core.NumericRange{Max: &max},
	}
}

// AvailabilityCondition builds an exact-match availability condition.
func AvailabilityCondition(state core.Availability) core.FilterCondition {
	return core.FilterCondition{
		Field:    core.FieldAvailability,
		Operator: core.OperatorEquals,
		Value:    string(state),
	}
}
