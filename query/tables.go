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

import (
	"sort"

	"github.com/poiesic/finepress/core"
)

// All tables in this file are read-only after package initialization and
// safe to share across concurrent requests without synchronization.

// publisherAlias maps alias spellings to one canonical publisher name.
// Lookup is substring containment against the lowercased query; the first
// entry whose alias matches wins, so entries with collision risk must list
// the longer alias earlier.
type publisherAlias struct {
	aliases   []string
	canonical string
}

var publisherAliases = []publisherAlias{
	{[]string{"centipede press", "centipede"}, "Centipede Press"},
	{[]string{"subterranean press", "subterranean", "subpress"}, "Subterranean Press"},
	{[]string{"suntup editions", "suntup"}, "Suntup Editions"},
	{[]string{"folio society"}, "The Folio Society"},
	{[]string{"arion press", "arion"}, "Arion Press"},
	{[]string{"lividian publications", "lividian"}, "Lividian Publications"},
	{[]string{"cemetery dance"}, "Cemetery Dance Publications"},
	{[]string{"ps publishing"}, "PS Publishing"},
	{[]string{"thornwillow press", "thornwillow"}, "Thornwillow Press"},
	{[]string{"curious king"}, "Curious King"},
	{[]string{"grim oak press", "grim oak"}, "Grim Oak Press"},
	{[]string{"easton press", "easton"}, "Easton Press"},
	{[]string{"franklin library", "franklin mint"}, "Franklin Library"},
}

// authorSurnames maps a single lowercase surname to the canonical full name
// for authors well known in the fine-press trade. Consulted only after the
// phrase patterns in ExtractAuthor fail.
var authorSurnames = map[string]string{
	"barron":     "Laird Barron",
	"ketchum":    "Jack Ketchum",
	"king":       "Stephen King",
	"gaiman":     "Neil Gaiman",
	"lovecraft":  "H. P. Lovecraft",
	"mccarthy":   "Cormac McCarthy",
	"ligotti":    "Thomas Ligotti",
	"wolfe":      "Gene Wolfe",
	"vandermeer": "Jeff VanderMeer",
	"tolkien":    "J. R. R. Tolkien",
	"bradbury":   "Ray Bradbury",
	"herbert":    "Frank Herbert",
}

// editionSynonyms maps lowercase phrases to one canonical edition category.
// Lookup is by descending phrase length (see editionPhrases), not map order,
// so "lettered edition" is tested before "lettered".
var editionSynonyms = map[string]core.EditionCategory{
	"lettered edition":     core.EditionLettered,
	"lettered state":       core.EditionLettered,
	"lettered":             core.EditionLettered,
	"limited edition":      core.EditionLimited,
	"signed limited":       core.EditionLimited,
	"hand-signed":          core.EditionLimited,
	"hand signed":          core.EditionLimited,
	"limited":              core.EditionLimited,
	"numbered edition":     core.EditionHandNumbered,
	"hand-numbered":        core.EditionHandNumbered,
	"hand numbered":        core.EditionHandNumbered,
	"signed and numbered":  core.EditionHandNumbered,
	"numbered":             core.EditionHandNumbered,
	"deluxe edition":       core.EditionDeluxe,
	"slipcased edition":    core.EditionDeluxe,
	"deluxe":               core.EditionDeluxe,
	"collector's edition":  core.EditionCollector,
	"collectors edition":   core.EditionCollector,
	"collector edition":    core.EditionCollector,
	"collector":            core.EditionCollector,
	"trade edition":        core.EditionTrade,
	"trade hardcover":      core.EditionTrade,
	"artist gift edition":  core.EditionArtist,
	"artist edition":       core.EditionArtist,
	"traycased":            core.EditionTraycased,
	"traycase":             core.EditionTraycased,
	"tray-cased":           core.EditionTraycased,
	"remarqued":            core.EditionRemarqued,
	"remarque":             core.EditionRemarqued,
	"standard edition":     core.EditionStandard,
	"standard":             core.EditionStandard,
}

// editionPhrases holds the editionSynonyms keys ordered by descending
// length so a longer, more specific phrase always wins over a shorter
// phrase it contains. Ties keep lexicographic order for determinism.
var editionPhrases = sortedByLengthDesc(editionSynonyms)

func sortedByLengthDesc(m map[string]core.EditionCategory) []string {
	phrases := make([]string, 0, len(m))
	for phrase := range m {
		phrases = append(phrases, phrase)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	return phrases
}

// genreEntry maps a recognized phrase to a lowercase genre tag.
// Most phrases are their own tag; a few are spelling aliases.
type genreEntry struct {
	phrase string
	tag    string
}

// genreVocabulary is ordered most-specific-first: a multi-word phrase
// appears before any of its single-word components so that matching it
// suppresses matching the components separately.
var genreVocabulary = []genreEntry{
	{"cosmic horror", "cosmic horror"},
	{"folk horror", "folk horror"},
	{"gothic horror", "gothic horror"},
	{"weird fiction", "weird fiction"},
	{"dark fantasy", "dark fantasy"},
	{"high fantasy", "high fantasy"},
	{"science fiction", "science fiction"},
	{"sci-fi", "science fiction"},
	{"true crime", "true crime"},
	{"horror", "horror"},
	{"fantasy", "fantasy"},
	{"mystery", "mystery"},
	{"thriller", "thriller"},
	{"crime", "crime"},
	{"western", "western"},
	{"poetry", "poetry"},
	{"occult", "occult"},
}

// availabilityGroup maps trigger phrases to one canonical availability state.
type availabilityGroup struct {
	phrases []string
	state   core.Availability
}

// availabilityGroups is ordered most-specific-state-first: phrases such as
// "available for pre-order" and "no longer available" contain "available",
// so the pre-order and sold-out groups must be tested before the generic
// in-stock group.
var availabilityGroups = []availabilityGroup{
	{
		phrases: []string{"pre-order", "preorder", "pre order", "coming soon", "forthcoming"},
		state:   core.AvailabilityPreOrder,
	},
	{
		phrases: []string{"sold out", "sold-out", "out of print", "no longer available", "unavailable"},
		state:   core.AvailabilitySoldOut,
	},
	{
		phrases: []string{"in stock", "in-stock", "in print", "available", "still available", "for sale"},
		state:   core.AvailabilityInStock,
	},
}

// LookupEdition resolves a whole keyword against the edition synonym table.
// Unlike ExtractEdition this is an exact lookup, not a substring scan; it is
// used by the explicit-parameters resolution path where the caller supplies
// the keyword directly. Returns nil when the keyword is not a known synonym.
func LookupEdition(keyword string) *core.EditionCategory {
	category, ok := editionSynonyms[normalize(keyword)]
	if !ok {
		return nil
	}
	return &category
}
