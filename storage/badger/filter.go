package badger

import (
	"fmt"
	"strings"

	"github.com/poiesic/finepress/core"
	"github.com/poiesic/finepress/storage"
)

// matchConditions reports whether a listing satisfies every filter
// condition. Semantics are conjunctive: one failed condition rejects the
// listing. An empty condition list matches everything.
func matchConditions(listing *core.Listing, conditions []core.FilterCondition) (bool, error) {
	for i := range conditions {
		matched, err := matchCondition(listing, &conditions[i])
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

// matchCondition evaluates one condition against the listing field it names.
func matchCondition(listing *core.Listing, cond *core.FilterCondition) (bool, error) {
	switch cond.Field {
	case core.FieldPublisher:
		if cond.Operator != core.OperatorEquals {
			return false, unsupported(cond)
		}
		return listing.Publisher == cond.Value, nil

	case core.FieldAuthor:
		if cond.Operator != core.OperatorTextMatch {
			return false, unsupported(cond)
		}
		return textMatch(listing.Author, cond.Value), nil

	case core.FieldEditionType:
		if cond.Operator != core.OperatorEquals {
			return false, unsupported(cond)
		}
		return string(listing.EditionType) == cond.Value, nil

	case core.FieldPrice:
		if cond.Operator != core.OperatorRange || cond.Range == nil {
			return false, unsupported(cond)
		}
		// Price 0 means unknown, not free; an unknown price cannot be
		// confirmed against either bound.
		if listing.Price == 0 {
			return false, nil
		}
		if cond.Range.Min != nil && listing.Price < *cond.Range.Min {
			return false, nil
		}
		if cond.Range.Max != nil && listing.Price > *cond.Range.Max {
			return false, nil
		}
		return true, nil

	case core.FieldAvailability:
		if cond.Operator != core.OperatorEquals {
			return false, unsupported(cond)
		}
		return string(listing.Availability) == cond.Value, nil

	case core.FieldGenreTags:
		if cond.Operator != core.OperatorAnyOf {
			return false, unsupported(cond)
		}
		for _, want := range cond.Values {
			for _, tag := range listing.GenreTags {
				if strings.EqualFold(tag, want) {
					return true, nil
				}
			}
		}
		return false, nil
	}

	return false, unsupported(cond)
}

// textMatch reports whether every token of the condition value appears in
// the text, case-insensitively. Token order is ignored so "Laird Barron"
// matches an author field stored as "Barron, Laird".
func textMatch(text, value string) bool {
	haystack := strings.ToLower(text)
	tokens := strings.Fields(strings.ToLower(value))
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		token = strings.Trim(token, ".,!?;:'\"-()[]{}")
		if token == "" {
			continue
		}
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}

func unsupported(cond *core.FilterCondition) error {
	return fmt.Errorf("%w: %s %s", storage.ErrUnsupportedCondition, cond.Field, cond.Operator)
}
