// Package types holds the value types shared by the rating pipeline.
package types

import "github.com/shopspring/decimal"

// PremiumScale is the number of fractional digits premium values carry.
// Two digits everywhere: comparison, dedup and output all use the same
// canonical representation, never raw float equality.
const PremiumScale = 2

// AreaKey uniquely identifies a geographic rate area.
// It is the state code concatenated with the rate-area number, no
// separator ("GA" + "7" -> "GA7"). Both the plan side and the zip side
// of the join must derive it through NewAreaKey so the two are
// comparable by equality.
type AreaKey string

// NewAreaKey derives the composite rate-area key
func NewAreaKey(state, rateArea string) AreaKey {
	return AreaKey(state + rateArea)
}

// String returns the string representation
func (k AreaKey) String() string {
	return string(k)
}

// PlanRecord is a parsed plan row. Ephemeral: created per input line
// and consumed by the aggregator during grouping.
type PlanRecord struct {
	// Area is the rate area the plan is priced in
	Area AreaKey

	// MetalLevel is the plan tier (Bronze, Silver, Gold, ...)
	MetalLevel string

	// Premium is the monthly premium
	Premium decimal.Decimal
}

// ZipArea is a parsed zip-to-rate-area row. Multiple county rows can
// produce identical (Zip, Area) pairs; the struct is comparable so
// those duplicates collapse under map-key equality.
type ZipArea struct {
	// Zip is the five-digit zip code
	Zip string

	// Area is the rate area the county row places the zip in
	Area AreaKey
}

// AreaRateIndex maps a rate area to the second-lowest distinct
// premium among its Silver plans. Built once, read-only afterward.
// An area with fewer than two distinct premiums is simply absent.
type AreaRateIndex map[AreaKey]decimal.Decimal

// ZipRateIndex maps a zip code to its determined premium. Built once,
// read-only afterward. Absence means no determinable value.
type ZipRateIndex map[string]decimal.Decimal

// RequestList is the ordered zip-code request sequence. It is the sole
// source of output ordering and duplicates: output row i carries the
// zip at index i.
type RequestList []string

// Set returns the requested zips as a membership set
func (r RequestList) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(r))
	for _, zip := range r {
		set[zip] = struct{}{}
	}
	return set
}
