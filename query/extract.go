package query

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/poiesic/finepress/core"
)

// Each extractor in this file is a pure, total function of the query
// string: no match yields nil, never an error.

// normalize lowercases and trims a phrase for table lookup.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ExtractPublisher scans the publisher alias table and returns the canonical
// name of the first alias found as a substring of the lowercased query.
func ExtractPublisher(query string) *string {
	q := strings.ToLower(query)
	for _, entry := range publisherAliases {
		for _, alias := range entry.aliases {
			if strings.Contains(q, alias) {
				canonical := entry.canonical
				return &canonical
			}
		}
	}
	return nil
}

var (
	// "by <Capitalized Name>" with at least two capitalized words, so that
	// "by mail" or "by far" never parse as an author.
	authorByPattern = regexp.MustCompile(`\bby\s+([A-Z][\w'.-]*(?:\s+[A-Z][\w'.-]*)+)`)

	// "<Capitalized Name> titles" with the same capitalization requirement.
	authorTitlesPattern = regexp.MustCompile(`([A-Z][\w'.-]*(?:\s+[A-Z][\w'.-]*)+)\s+titles\b`)
)

// ExtractAuthor tries, in order: the "by <Name>" phrase pattern, the
// "<Name> titles" phrase pattern, and finally a per-word surname lookup.
// The first successful pattern wins; later patterns are not attempted.
func ExtractAuthor(query string) *string {
	if m := authorByPattern.FindStringSubmatch(query); m != nil {
		name := strings.TrimSpace(m[1])
		return &name
	}

	if m := authorTitlesPattern.FindStringSubmatch(query); m != nil {
		name := strings.TrimSpace(m[1])
		return &name
	}

	for _, word := range strings.Fields(query) {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if full, ok := authorSurnames[cleaned]; ok {
			return &full
		}
	}

	return nil
}

// ExtractEdition tests every edition synonym ordered by descending phrase
// length and returns the canonical category for the first phrase found as a
// substring of the lowercased query. Length ordering prevents a generic
// synonym ("lettered") from masking a more specific one ("lettered edition").
func ExtractEdition(query string) *core.EditionCategory {
	q := strings.ToLower(query)
	for _, phrase := range editionPhrases {
		if strings.Contains(q, phrase) {
			category := editionSynonyms[phrase]
			return &category
		}
	}
	return nil
}

var (
	// Budget/ceiling keyword followed by an optional currency symbol, a
	// number, and an optional currency word.
	priceTriggerPattern = regexp.MustCompile(
		`(?i)\b(?:under|below|less than|no more than|at most|max(?:imum)?|budget(?:\s+(?:of|is))?)\s*[$€£]?\s*(\d+(?:\.\d{1,2})?)\s*(?:dollars|usd|bucks|euros?|pounds)?`)

	// Currency symbol, number, then a trailing qualifier.
	priceQualifierPattern = regexp.MustCompile(
		`(?i)[$€£]\s*(\d+(?:\.\d{1,2})?)\s*(?:or less|or under|max|tops)\b`)
)

// ExtractMaxPrice recognizes two phrase shapes: trigger-before-number
// ("under $200", "budget of 150 dollars") and number-before-qualifier
// ("$200 or less"). The trigger shape is attempted first and wins outright.
// Vague non-numeric budget words such as "cheap" deliberately yield no
// value, deferring entirely to similarity ranking. The extractor is
// currency-agnostic; symbols are accepted but never converted.
func ExtractMaxPrice(query string) *float64 {
	for _, pattern := range []*regexp.Regexp{priceTriggerPattern, priceQualifierPattern} {
		if m := pattern.FindStringSubmatch(query); m != nil {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			return &value
		}
	}
	return nil
}

// ExtractAvailability scans the availability phrase groups in their defined
// specificity order and returns the first matching group's canonical state.
func ExtractAvailability(query string) *core.Availability {
	q := strings.ToLower(query)
	for _, group := range availabilityGroups {
		for _, phrase := range group.phrases {
			if strings.Contains(q, phrase) {
				state := group.state
				return &state
			}
		}
	}
	return nil
}

// ExtractGenres accumulates every vocabulary phrase found as a substring of
// the lowercased query. A candidate is skipped when it is a substring of,
// or contains, an already-accepted phrase, so a generic tag never
// duplicates a more specific tag captured in the same scan.
// Returns nil when nothing matched.
func ExtractGenres(query string) []string {
	q := strings.ToLower(query)
	var accepted []string
	var tags []string
	for _, entry := range genreVocabulary {
		if !strings.Contains(q, entry.phrase) {
			continue
		}
		overlaps := false
		for _, prior := range accepted {
			if strings.Contains(prior, entry.phrase) || strings.Contains(entry.phrase, prior) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		accepted = append(accepted, entry.phrase)
		if !slices.Contains(tags, entry.tag) {
			tags = append(tags, entry.tag)
		}
	}
	return tags
}
