// Package rating computes the second-lowest-cost premium per rate area.
package rating

import (
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"slcsp/core/types"
	"slcsp/internal/logging"
)

// SecondLowest groups plans of the given metal level by rate area and
// returns, per area, the second-smallest distinct premium.
//
// Distinctness is by premium value, not plan identity: two plans with
// identical premiums count as one entry, so the returned value is the
// rank-1 element of the sorted distinct premium set. Areas with fewer
// than two distinct premiums have no entry at all.
//
// Metal level matching is case-sensitive and exact; everything else,
// header rows included, is dropped silently.
func SecondLowest(plans []types.PlanRecord, metalLevel string) types.AreaRateIndex {
	grouped := make(map[types.AreaKey]map[string]decimal.Decimal)

	for _, plan := range plans {
		if plan.MetalLevel != metalLevel {
			continue
		}
		distinct, ok := grouped[plan.Area]
		if !ok {
			distinct = make(map[string]decimal.Decimal)
			grouped[plan.Area] = distinct
		}
		// Canonical fixed-point key: equal values collapse even when
		// their decimal exponents differ ("245.2" vs "245.20").
		distinct[plan.Premium.StringFixed(types.PremiumScale)] = plan.Premium
	}

	index := make(types.AreaRateIndex, len(grouped))
	for area, distinct := range grouped {
		if len(distinct) < 2 {
			logging.Debug("rate area has no determinable value",
				zap.String("area", area.String()),
				zap.Int("distinct_premiums", len(distinct)))
			continue
		}
		premiums := make([]decimal.Decimal, 0, len(distinct))
		for _, p := range distinct {
			premiums = append(premiums, p)
		}
		sort.Slice(premiums, func(i, j int) bool {
			return premiums[i].LessThan(premiums[j])
		})
		index[area] = premiums[1]
	}
	return index
}
