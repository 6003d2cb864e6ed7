// Package geo resolves zip codes to a single rate area.
package geo

import (
	"go.uber.org/zap"

	"slcsp/core/types"
	"slcsp/internal/logging"
)

// Resolve restricts the zip-to-area rows to those that matter — the
// area must have an aggregated rate and the zip must be requested —
// and keeps only zip codes that map to exactly one rate area.
//
// Multiple county rows producing the same (zip, area) pair collapse to
// one before the cardinality check: a zip reaching the same area
// through two counties is still unambiguous. A zip spanning two or
// more distinct areas has no well-defined answer and is excluded;
// that is a normal outcome, never an error.
func Resolve(zipAreas []types.ZipArea, requested map[string]struct{}, rates types.AreaRateIndex) map[string]types.AreaKey {
	seen := make(map[types.ZipArea]struct{})
	byZip := make(map[string][]types.AreaKey)

	for _, za := range zipAreas {
		if _, ok := rates[za.Area]; !ok {
			continue
		}
		if _, ok := requested[za.Zip]; !ok {
			continue
		}
		if _, dup := seen[za]; dup {
			continue
		}
		seen[za] = struct{}{}
		byZip[za.Zip] = append(byZip[za.Zip], za.Area)
	}

	resolved := make(map[string]types.AreaKey, len(byZip))
	for zip, areas := range byZip {
		if len(areas) != 1 {
			logging.Debug("ambiguous zip excluded",
				zap.String("zip", zip),
				zap.Int("rate_areas", len(areas)))
			continue
		}
		resolved[zip] = areas[0]
	}
	return resolved
}
