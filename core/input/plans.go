package input

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"slcsp/core/types"
	"slcsp/internal/errors"
)

// Column layout of plans.csv:
// plan_id,state,metal_level,rate,rate_area
const (
	planColState      = 1
	planColMetalLevel = 2
	planColRate       = 3
	planColRateArea   = 4
	planColumns       = 5
)

var errShortRow = errors.New(errors.TypeParsing, "too few fields")

// ReadPlans parses plan rows. Only state, metal level, rate and rate
// area are consumed; the plan id is never used. A row with too few
// fields or an unparsable rate aborts the run with the offending line.
func ReadPlans(r io.Reader, name string) ([]types.PlanRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	plans := make([]types.PlanRecord, 0, 1024)
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.MalformedRow(name, line, "", err)
		}
		if line == 1 {
			// header row
			continue
		}
		if len(record) < planColumns {
			return nil, errors.MalformedRow(name, line, join(record), errShortRow)
		}

		premium, err := decimal.NewFromString(record[planColRate])
		if err != nil {
			return nil, errors.MalformedRow(name, line, join(record), err)
		}

		plans = append(plans, types.PlanRecord{
			Area:       types.NewAreaKey(record[planColState], record[planColRateArea]),
			MetalLevel: record[planColMetalLevel],
			Premium:    premium,
		})
	}
	return plans, nil
}

// LoadPlans opens, reads and closes the plan file
func LoadPlans(path string) ([]types.PlanRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Input(path, err)
	}
	defer f.Close()
	return ReadPlans(f, path)
}

func join(record []string) string {
	return strings.Join(record, ",")
}
