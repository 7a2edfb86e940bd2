package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Listings use their source URL so that a re-scraped listing keeps its ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// EditionCategory is a canonical collecting-trade edition category.
// Many natural-language synonyms collapse onto each category; the
// mapping lives in the query package and is not invertible.
type EditionCategory string

const (
	EditionStandard     EditionCategory = "standard"
	EditionTrade        EditionCategory = "trade"
	EditionCollector    EditionCategory = "collector"
	EditionDeluxe       EditionCategory = "deluxe"
	EditionLettered     EditionCategory = "lettered"
	EditionLimited      EditionCategory = "limited"
	EditionArtist       EditionCategory = "artist"
	EditionTraycased    EditionCategory = "traycased"
	EditionHandNumbered EditionCategory = "hand_numbered"
	EditionRemarqued    EditionCategory = "remarqued"
)

// EditionCategories lists every valid EditionCategory value.
var EditionCategories = []EditionCategory{
	EditionStandard,
	EditionTrade,
	EditionCollector,
	EditionDeluxe,
	EditionLettered,
	EditionLimited,
	EditionArtist,
	EditionTraycased,
	EditionHandNumbered,
	EditionRemarqued,
}

// Availability is the stock state of a listing. Exactly three states exist.
type Availability string

const (
	// AvailabilityInStock covers in-stock and in-print listings.
	AvailabilityInStock Availability = "in_stock"
	// AvailabilityPreOrder covers forthcoming listings accepting pre-orders.
	AvailabilityPreOrder Availability = "preorder"
	// AvailabilitySoldOut covers sold-out and out-of-print listings.
	AvailabilitySoldOut Availability = "sold_out"
)

// Listing represents a single fine-press book listing scraped from a
// seller site. It may be enriched with an embedding vector during ingestion.
type Listing struct {
	Id           ID
	Title        string
	Author       string
	Publisher    string
	EditionType  EditionCategory
	Price        float64 // 0 means unknown, not free
	Availability Availability
	GenreTags    []string
	URL          string
	Description  string
	Vector       []float32 // Embedding vector for semantic search (populated by processors)
	InsertedAt   time.Time // When the listing was inserted into the database
	UpdatedAt    time.Time // When the listing was last updated
}

// Record schema field names referenced by filter conditions.
const (
	FieldPublisher    = "publisher"
	FieldAuthor       = "author"
	FieldEditionType  = "edition_type"
	FieldPrice        = "price"
	FieldAvailability = "availability"
	FieldGenreTags    = "genre_tags"
)

// FilterOperator selects how a FilterCondition compares against a field.
type FilterOperator string

const (
	// OperatorEquals matches a scalar field exactly.
	OperatorEquals FilterOperator = "equals"
	// OperatorTextMatch matches tokens against a free-text field.
	OperatorTextMatch FilterOperator = "text_match"
	// OperatorAnyOf matches when the record's set field intersects the given set.
	OperatorAnyOf FilterOperator = "any_of"
	// OperatorRange matches a numeric field against upper/lower bounds.
	OperatorRange FilterOperator = "range"
)

// NumericRange holds the bounds of a range condition.
// At least one bound must be present. Bounds are inclusive.
type NumericRange struct {
	Min *float64
	Max *float64
}

// FilterCondition is a single constraint targeting one field of a Listing,
// ready to hand to the similarity-search backend. Exactly one of Value,
// Values, or Range is populated, matching the operator.
type FilterCondition struct {
	Field    string
	Operator FilterOperator
	Value    string        // equals, text_match
	Values   []string      // any_of
	Range    *NumericRange // range
}

// ExtractedFilters is the structured summary of what was understood from a
// query. All fields are independently optional; no field implies another.
type ExtractedFilters struct {
	Publisher    *string
	Author       *string
	Edition      *EditionCategory
	MaxPrice     *float64
	Availability *Availability
	GenreTags    []string
}

// FilterDimensions is the fixed number of independently extractable
// dimensions. The confidence denominator never changes with how many
// dimensions actually matched.
const FilterDimensions = 6

// PopulatedCount returns the number of populated dimensions.
func (f *ExtractedFilters) PopulatedCount() int {
	count := 0
	if f.Publisher != nil {
		count++
	}
	if f.Author != nil {
		count++
	}
	if f.Edition != nil {
		count++
	}
	if f.MaxPrice != nil {
		count++
	}
	if f.Availability != nil {
		count++
	}
	if len(f.GenreTags) > 0 {
		count++
	}
	return count
}

// Confidence returns the coverage ratio of populated dimensions.
// It is not a probability; it is reproducible from the filters alone.
func (f *ExtractedFilters) Confidence() float64 {
	return float64(f.PopulatedCount()) / float64(FilterDimensions)
}

// QueryAnalysis reports what the engine understood from a query string.
// Query holds the original string verbatim for audit and reproducibility.
type QueryAnalysis struct {
	Query      string
	Filters    ExtractedFilters
	Confidence float64
}

// SearchResult represents a search result with the full listing and relevance score.
type SearchResult struct {
	Listing *Listing
	Score   float32
}
