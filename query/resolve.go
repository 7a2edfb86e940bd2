package query

import "github.com/poiesic/finepress/core"

// Path identifies which of the two mutually exclusive resolution paths
// produced a Resolution. The paths never blend within a single request:
// either the caller supplied parameters explicitly, or every dimension was
// inferred from the query text.
type Path int

const (
	// PathExplicit means the caller supplied budget and/or keyword directly.
	PathExplicit Path = iota + 1
	// PathInferred means all dimensions were extracted from the query text.
	PathInferred
)

// Resolution is the Resolver's output: the ordered condition list ready for
// the similarity-search backend, the text to embed for semantic ranking,
// and, on the inferred path, the analysis report for caller transparency.
type Resolution struct {
	Path       Path
	Conditions []core.FilterCondition
	EmbedText  string
	Analysis   *core.QueryAnalysis // nil on the explicit path
}

// ResolveExplicit resolves a request whose caller supplied a budget and/or
// a single free-text keyword directly, bypassing natural-language
// extraction.
//
// The explicit path always enforces an in-stock availability condition. A
// budget adds a price-ceiling condition. A keyword is resolved through the
// edition synonym table with an exact whole-keyword lookup; when the lookup
// fails no edition condition is added and the search falls back to
// similarity ranking alone. The raw keyword is always appended to the
// embedding text, whether or not it resolved.
func ResolveExplicit(query string, budget *float64, keyword string) Resolution {
	conditions := []core.FilterCondition{
		AvailabilityCondition(core.AvailabilityInStock),
	}

	if budget != nil {
		conditions = append(conditions, PriceCeiling(*budget))
	}

	embedText := query
	if keyword != "" {
		if category := LookupEdition(keyword); category != nil {
			conditions = append(conditions, core.FilterCondition{
				Field:    core.FieldEditionType,
				Operator: core.OperatorEquals,
				Value:    string(*category),
			})
		}
		embedText = embedText + " " + keyword
	}

	return Resolution{
		Path:       PathExplicit,
		Conditions: conditions,
		EmbedText:  embedText,
	}
}

// ResolveQuery resolves a request by inferring every dimension from the
// query text. It runs the Assembler, injects the default in-stock
// availability condition only when the query expressed no availability
// intent of its own, and appends the resolved edition name and genre tags
// to the embedding text so semantic ranking is reinforced by what was
// already captured structurally.
func ResolveQuery(query string) Resolution {
	analysis, conditions := Analyze(query)

	if analysis.Filters.Availability == nil {
		conditions = append(conditions, AvailabilityCondition(core.AvailabilityInStock))
	}

	embedText := query
	if analysis.Filters.Edition != nil {
		embedText = embedText + " " + string(*analysis.Filters.Edition)
	}
	for _, tag := range analysis.Filters.GenreTags {
		embedText = embedText + " " + tag
	}

	return Resolution{
		Path:       PathInferred,
		Conditions: conditions,
		EmbedText:  embedText,
		Analysis:   &analysis,
	}
}
