package geo

import (
	"testing"

	"github.com/shopspring/decimal"

	"slcsp/core/types"
)

func rates(areas ...types.AreaKey) types.AreaRateIndex {
	index := make(types.AreaRateIndex, len(areas))
	for _, a := range areas {
		index[a] = decimal.RequireFromString("200.00")
	}
	return index
}

func requested(zips ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(zips))
	for _, z := range zips {
		set[z] = struct{}{}
	}
	return set
}

// TestResolve tests the single-rate-area rule
func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		zipAreas  []types.ZipArea
		requested map[string]struct{}
		rates     types.AreaRateIndex
		want      map[string]types.AreaKey
	}{
		{
			name: "one zip one area",
			zipAreas: []types.ZipArea{
				{Zip: "64148", Area: "MO3"},
			},
			requested: requested("64148"),
			rates:     rates("MO3"),
			want:      map[string]types.AreaKey{"64148": "MO3"},
		},
		{
			name: "same area through two counties collapses",
			zipAreas: []types.ZipArea{
				{Zip: "36749", Area: "GA7"},
				{Zip: "36749", Area: "GA7"},
			},
			requested: requested("36749"),
			rates:     rates("GA7"),
			want:      map[string]types.AreaKey{"36749": "GA7"},
		},
		{
			name: "two distinct areas is ambiguous",
			zipAreas: []types.ZipArea{
				{Zip: "10001", Area: "NY1"},
				{Zip: "10001", Area: "NY2"},
			},
			requested: requested("10001"),
			rates:     rates("NY1", "NY2"),
			want:      map[string]types.AreaKey{},
		},
		{
			name: "unpriced area filtered before cardinality check",
			zipAreas: []types.ZipArea{
				{Zip: "10001", Area: "NY1"},
				{Zip: "10001", Area: "NY2"},
			},
			requested: requested("10001"),
			rates:     rates("NY1"),
			want:      map[string]types.AreaKey{"10001": "NY1"},
		},
		{
			name: "unrequested zip dropped",
			zipAreas: []types.ZipArea{
				{Zip: "64148", Area: "MO3"},
				{Zip: "99999", Area: "MO3"},
			},
			requested: requested("64148"),
			rates:     rates("MO3"),
			want:      map[string]types.AreaKey{"64148": "MO3"},
		},
		{
			name: "zip whose only area is unpriced vanishes",
			zipAreas: []types.ZipArea{
				{Zip: "64148", Area: "MO3"},
			},
			requested: requested("64148"),
			rates:     rates("GA7"),
			want:      map[string]types.AreaKey{},
		},
		{
			name:      "empty input",
			zipAreas:  nil,
			requested: requested("64148"),
			rates:     rates("MO3"),
			want:      map[string]types.AreaKey{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.zipAreas, tt.requested, tt.rates)

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d resolved zips, got %d: %v", len(tt.want), len(got), got)
			}
			for zip, area := range tt.want {
				if got[zip] != area {
					t.Errorf("zip %s: expected area %s, got %s", zip, area, got[zip])
				}
			}
		})
	}
}

// TestResolveMixedCounties verifies the dedup happens on the exact
// (zip, area) pair, not on the zip alone
func TestResolveMixedCounties(t *testing.T) {
	zipAreas := []types.ZipArea{
		{Zip: "54923", Area: "WI11"},
		{Zip: "54923", Area: "WI11"},
		{Zip: "54923", Area: "WI15"},
	}

	got := Resolve(zipAreas, requested("54923"), rates("WI11", "WI15"))
	if len(got) != 0 {
		t.Errorf("expected ambiguous zip to be excluded, got %v", got)
	}
}
