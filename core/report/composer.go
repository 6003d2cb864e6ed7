// Package report composes and writes the ordered result rows.
package report

import (
	"github.com/shopspring/decimal"

	"slcsp/core/types"
)

// Row is one output line: a zip code and its premium, or a blank rate
// when no value was determinable.
type Row struct {
	// Zip is the requested zip code
	Zip string

	// Rate is the SLCSP premium, nil when undeterminable
	Rate *decimal.Decimal
}

// Compose joins the ordered request list against the resolver's and
// aggregator's maps. Exactly one row per request entry, in request
// order, duplicates repeated verbatim — the output must be a drop-in
// replacement for the request file.
func Compose(request types.RequestList, resolved map[string]types.AreaKey, rates types.AreaRateIndex) []Row {
	rows := make([]Row, 0, len(request))
	for _, zip := range request {
		row := Row{Zip: zip}
		if area, ok := resolved[zip]; ok {
			if premium, ok := rates[area]; ok {
				p := premium
				row.Rate = &p
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Blanks counts the rows without a determined rate
func Blanks(rows []Row) int {
	n := 0
	for _, row := range rows {
		if row.Rate == nil {
			n++
		}
	}
	return n
}
