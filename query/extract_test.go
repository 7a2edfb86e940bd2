package query

import (
	"testing"

	"github.com/poiesic/finepress/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPublisher(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
		none  bool
	}{
		{name: "full name", query: "Centipede Press horror", want: "Centipede Press"},
		{name: "short alias", query: "anything from suntup", want: "Suntup Editions"},
		{name: "abbreviation", query: "new subpress releases", want: "Subterranean Press"},
		{name: "case insensitive", query: "FOLIO SOCIETY classics", want: "The Folio Society"},
		{name: "no publisher", query: "rare books", none: true},
		{name: "empty query", query: "", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPublisher(tt.query)
			if tt.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
		none  bool
	}{
		{name: "by pattern", query: "anything by Laird Barron", want: "Laird Barron"},
		{name: "by pattern with initials", query: "collected works by H. P. Lovecraft", want: "H. P. Lovecraft"},
		{name: "titles pattern", query: "Gene Wolfe titles in print", want: "Gene Wolfe"},
		{name: "surname lookup", query: "signed ketchum first editions", want: "Jack Ketchum"},
		{name: "surname with punctuation", query: "anything by barron?", want: "Laird Barron"},
		{name: "by requires two capitalized words", query: "delivery by mail", none: true},
		{name: "unknown name", query: "rare books", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAuthor(tt.query)
			if tt.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractAuthor_PatternPrecedence(t *testing.T) {
	// The "by" pattern wins before the surname table is consulted.
	got := ExtractAuthor("king arthur retold by Neil Gaiman")
	require.NotNil(t, got)
	assert.Equal(t, "Neil Gaiman", *got)
}

func TestExtractEdition(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  core.EditionCategory
		none  bool
	}{
		{name: "lettered edition", query: "lettered edition under $200", want: core.EditionLettered},
		{name: "bare synonym", query: "any lettered copies", want: core.EditionLettered},
		{name: "limited", query: "sold out limited editions", want: core.EditionLimited},
		{name: "hand numbered", query: "hand-numbered state", want: core.EditionHandNumbered},
		{name: "traycased", query: "traycased with extras", want: core.EditionTraycased},
		{name: "hand signed maps to limited", query: "hand-signed copies", want: core.EditionLimited},
		{name: "no edition", query: "rare books", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEdition(tt.query)
			if tt.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractEdition_LongerPhraseWins(t *testing.T) {
	// "lettered edition" must be tested before the shorter "deluxe" and
	// "limited" synonyms it appears alongside.
	t.Run("specific beats generic in same query", func(t *testing.T) {
		got := ExtractEdition("deluxe lettered edition of 26")
		require.NotNil(t, got)
		assert.Equal(t, core.EditionLettered, *got)
	})

	t.Run("containing phrase beats contained phrase", func(t *testing.T) {
		got := ExtractEdition("lettered edition, limited to 26 copies")
		require.NotNil(t, got)
		assert.Equal(t, core.EditionLettered, *got)
	})
}

func TestExtractMaxPrice(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  float64
		none  bool
	}{
		{name: "under with symbol", query: "lettered edition under $200", want: 200},
		{name: "under without symbol", query: "under 200", want: 200},
		{name: "less than", query: "less than 150 dollars", want: 150},
		{name: "no more than", query: "no more than £75.50", want: 75.50},
		{name: "at most", query: "at most $45", want: 45},
		{name: "budget of", query: "budget of 150", want: 150},
		{name: "budget is", query: "my budget is $300", want: 300},
		{name: "trailing or less", query: "$200 or less", want: 200},
		{name: "trailing max", query: "€99 max", want: 99},
		{name: "vague qualifier yields nothing", query: "cheap horror books", none: true},
		{name: "bare number yields nothing", query: "200 copies", none: true},
		{name: "no price", query: "rare books", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMaxPrice(tt.query)
			if tt.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractMaxPrice_TriggerShapeWinsFirst(t *testing.T) {
	// Both shapes are present; the trigger-before-number value is returned.
	got := ExtractMaxPrice("under $150, maybe $200 or less")
	require.NotNil(t, got)
	assert.Equal(t, float64(150), *got)
}

func TestExtractAvailability(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  core.Availability
		none  bool
	}{
		{name: "in stock", query: "in stock now", want: core.AvailabilityInStock},
		{name: "in print", query: "still in print", want: core.AvailabilityInStock},
		{name: "sold out", query: "sold out limited editions", want: core.AvailabilitySoldOut},
		{name: "out of print", query: "out of print king", want: core.AvailabilitySoldOut},
		{name: "preorder", query: "open for preorder", want: core.AvailabilityPreOrder},
		{name: "no availability", query: "rare books", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAvailability(tt.query)
			if tt.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractAvailability_SpecificGroupWins(t *testing.T) {
	// These phrases contain "available", which alone would resolve to
	// in-stock; the more specific groups are tested first.
	t.Run("pre-order beats available", func(t *testing.T) {
		got := ExtractAvailability("available for pre-order")
		require.NotNil(t, got)
		assert.Equal(t, core.AvailabilityPreOrder, *got)
	})

	t.Run("no longer available beats available", func(t *testing.T) {
		got := ExtractAvailability("no longer available anywhere")
		require.NotNil(t, got)
		assert.Equal(t, core.AvailabilitySoldOut, *got)
	})
}

func TestExtractGenres(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "single tag", query: "Centipede Press horror", want: []string{"horror"}},
		{name: "multi-word suppresses component", query: "cosmic horror anthologies", want: []string{"cosmic horror"}},
		{name: "independent tags accumulate", query: "dark fantasy and western", want: []string{"dark fantasy", "western"}},
		{name: "alias maps to canonical tag", query: "classic sci-fi", want: []string{"science fiction"}},
		{name: "no tags", query: "rare books", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractGenres(tt.query))
		})
	}
}

func TestExtractGenres_NoSubstringPairs(t *testing.T) {
	queries := []string{
		"cosmic horror and more horror",
		"folk horror and gothic horror",
		"dark fantasy high fantasy and fantasy",
		"weird fiction science fiction",
	}

	for _, q := range queries {
		tags := ExtractGenres(q)
		for i, a := range tags {
			for j, b := range tags {
				if i == j {
					continue
				}
				assert.NotContains(t, a, b, "query %q produced overlapping tags %v", q, tags)
			}
		}
	}
}
