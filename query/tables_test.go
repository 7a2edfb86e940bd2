package query

import (
	"strings"
	"testing"

	"github.com/poiesic/finepress/core"
	"github.com/stretchr/testify/assert"
)

func TestTables_TriggerPhrasesAreLowercase(t *testing.T) {
	// Every table matches against a lowercased query, so a mixed-case
	// trigger phrase could never fire.
	for _, entry := range publisherAliases {
		for _, alias := range entry.aliases {
			assert.Equal(t, strings.ToLower(alias), alias)
		}
	}
	for surname := range authorSurnames {
		assert.Equal(t, strings.ToLower(surname), surname)
	}
	for phrase := range editionSynonyms {
		assert.Equal(t, strings.ToLower(phrase), phrase)
	}
	for _, entry := range genreVocabulary {
		assert.Equal(t, strings.ToLower(entry.phrase), entry.phrase)
		assert.Equal(t, strings.ToLower(entry.tag), entry.tag)
	}
	for _, group := range availabilityGroups {
		for _, phrase := range group.phrases {
			assert.Equal(t, strings.ToLower(phrase), phrase)
		}
	}
}

func TestTables_EditionPhrasesOrderedByLength(t *testing.T) {
	for i := 1; i < len(editionPhrases); i++ {
		assert.GreaterOrEqual(t, len(editionPhrases[i-1]), len(editionPhrases[i]),
			"%q must be tested before %q", editionPhrases[i-1], editionPhrases[i])
	}
}

func TestTables_EditionSynonymsMapToValidCategories(t *testing.T) {
	for phrase, category := range editionSynonyms {
		assert.NoError(t, core.ValidateEditionCategory(category), "phrase %q", phrase)
	}
}

func TestTables_GenreVocabularyMostSpecificFirst(t *testing.T) {
	// A phrase must appear before any later phrase it contains, otherwise
	// the generic entry would be accepted first and mask the specific one.
	for i, entry := range genreVocabulary {
		for _, later := range genreVocabulary[i+1:] {
			assert.False(t, strings.Contains(later.phrase, entry.phrase) && later.phrase != entry.phrase,
				"%q is listed after %q which it contains", later.phrase, entry.phrase)
		}
	}
}

func TestTables_AvailabilityGroupsCoverAllStates(t *testing.T) {
	seen := map[core.Availability]bool{}
	for _, group := range availabilityGroups {
		assert.NoError(t, core.ValidateAvailability(group.state))
		seen[group.state] = true
	}
	assert.Len(t, seen, 3)
}

func TestTables_GenericAvailabilityGroupLast(t *testing.T) {
	// "available" is a substring of phrases in the pre-order and sold-out
	// groups, so the in-stock group must be scanned last.
	assert.Equal(t, core.AvailabilityInStock, availabilityGroups[len(availabilityGroups)-1].state)
}
