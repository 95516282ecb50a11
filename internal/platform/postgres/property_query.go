package postgres

import (
	"fmt"
	"strings"

	"github.com/phrazzld/lightbnb/internal/domain"
	"github.com/phrazzld/lightbnb/internal/store"
)

const propertySearchBase = `SELECT properties.*, avg(property_reviews.rating) AS average_rating
FROM properties
JOIN property_reviews ON property_reviews.property_id = properties.id
WHERE 1=1`

// propertyFilter is one optional search condition. clause holds a single %d
// verb that receives the placeholder number of the bound value.
type propertyFilter struct {
	clause string
	having bool
	value  func(opts domain.PropertySearchOptions) (any, bool)
}

// propertyFilters is applied in order; the order fixes the argument order.
var propertyFilters = []propertyFilter{
	{
		clause: "city LIKE $%d",
		value: func(opts domain.PropertySearchOptions) (any, bool) {
			if opts.City == "" {
				return nil, false
			}
			return "%" + opts.City + "%", true
		},
	},
	{
		clause: "cost_per_night >= $%d",
		value: func(opts domain.PropertySearchOptions) (any, bool) {
			return centsOf(opts.MinimumPricePerNight)
		},
	},
	{
		clause: "cost_per_night <= $%d",
		value: func(opts domain.PropertySearchOptions) (any, bool) {
			return centsOf(opts.MaximumPricePerNight)
		},
	},
	{
		clause: "avg(property_reviews.rating) >= $%d",
		having: true,
		value: func(opts domain.PropertySearchOptions) (any, bool) {
			if opts.Rating == nil {
				return nil, false
			}
			return *opts.Rating, true
		},
	},
}

func centsOf(price *float64) (any, bool) {
	if price == nil {
		return nil, false
	}
	return domain.ToCents(*price), true
}

// buildPropertySearchQuery returns the search statement and its arguments.
// Placeholders are numbered from the argument count at the time each value
// is bound, so $n always refers to args[n-1]. The limit is always bound last.
func buildPropertySearchQuery(opts domain.PropertySearchOptions, limit int) (string, []any) {
	var (
		args   []any
		where  []string
		having []string
	)

	for _, f := range propertyFilters {
		v, ok := f.value(opts)
		if !ok {
			continue
		}
		args = append(args, v)
		clause := fmt.Sprintf(f.clause, len(args))
		if f.having {
			having = append(having, clause)
		} else {
			where = append(where, clause)
		}
	}

	var sb strings.Builder
	sb.WriteString(propertySearchBase)
	for _, clause := range where {
		sb.WriteString("\n  AND ")
		sb.WriteString(clause)
	}
	sb.WriteString("\nGROUP BY properties.id")
	if len(having) > 0 {
		sb.WriteString("\nHAVING ")
		sb.WriteString(strings.Join(having, " AND "))
	}
	sb.WriteString("\nORDER BY cost_per_night")

	args = append(args, store.NormalizeLimit(limit))
	fmt.Fprintf(&sb, "\nLIMIT $%d;", len(args))

	return sb.String(), args
}
