package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"slcsp/core/types"
)

// TestComposePreservesOrder verifies the output mirrors the request
// list row for row, duplicates included
func TestComposePreservesOrder(t *testing.T) {
	request := types.RequestList{"64148", "10001", "64148", "36749"}
	resolved := map[string]types.AreaKey{
		"64148": "MO3",
		"36749": "GA7",
	}
	rates := types.AreaRateIndex{
		"MO3": decimal.RequireFromString("245.20"),
		"GA7": decimal.RequireFromString("295.01"),
	}

	rows := Compose(request, resolved, rates)

	if len(rows) != len(request) {
		t.Fatalf("expected %d rows, got %d", len(request), len(rows))
	}
	for i, zip := range request {
		if rows[i].Zip != zip {
			t.Errorf("row %d: expected zip %s, got %s", i, zip, rows[i].Zip)
		}
	}

	// 10001 is unresolved and must be blank
	if rows[1].Rate != nil {
		t.Errorf("expected blank rate for 10001, got %s", rows[1].Rate)
	}

	// duplicate zips get identical repeated output
	if rows[0].Rate == nil || rows[2].Rate == nil {
		t.Fatal("expected rates for both 64148 rows")
	}
	if !rows[0].Rate.Equal(*rows[2].Rate) {
		t.Errorf("duplicate zip rows differ: %s vs %s", rows[0].Rate, rows[2].Rate)
	}
}

// TestComposeResolvedButUnpricedIsBlank covers the defensive branch:
// a resolver entry whose area is somehow missing from the rate index
// composes to a blank, it never panics or drops the row
func TestComposeResolvedButUnpricedIsBlank(t *testing.T) {
	request := types.RequestList{"64148"}
	resolved := map[string]types.AreaKey{"64148": "MO3"}

	rows := Compose(request, resolved, types.AreaRateIndex{})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Rate != nil {
		t.Errorf("expected blank rate, got %s", rows[0].Rate)
	}
}

// TestWriteRows verifies the fixed output layout
func TestWriteRows(t *testing.T) {
	rate := decimal.RequireFromString("245.2")
	rows := []Row{
		{Zip: "64148", Rate: &rate},
		{Zip: "10001"},
	}

	var sb strings.Builder
	if err := WriteRows(&sb, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "zipcode,rate\n64148,245.20\n10001,\n"
	if sb.String() != want {
		t.Errorf("expected %q, got %q", want, sb.String())
	}
}

// TestBlanks counts undetermined rows
func TestBlanks(t *testing.T) {
	rate := decimal.RequireFromString("100.00")
	rows := []Row{
		{Zip: "1", Rate: &rate},
		{Zip: "2"},
		{Zip: "3"},
	}
	if got := Blanks(rows); got != 2 {
		t.Errorf("expected 2 blanks, got %d", got)
	}
}
