package input

import (
	"encoding/csv"
	"io"
	"os"

	"slcsp/core/types"
	"slcsp/internal/errors"
)

// Column layout of zips.csv:
// zipcode,state,county_code,name,rate_area
const (
	zipColZip      = 0
	zipColState    = 1
	zipColRateArea = 4
	zipColumns     = 5
)

// ReadZipAreas parses zip-to-rate-area rows. Only zipcode, state and
// rate area are consumed; county code and name exist solely to explain
// why the same (zip, area) pair can appear more than once.
func ReadZipAreas(r io.Reader, name string) ([]types.ZipArea, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	areas := make([]types.ZipArea, 0, 1024)
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
		if len(record) < zipColumns {
			return nil, errors.MalformedRow(name, line, join(record), errShortRow)
		}

		areas = append(areas, types.ZipArea{
			Zip:  record[zipColZip],
			Area: types.NewAreaKey(record[zipColState], record[zipColRateArea]),
		})
	}
	return areas, nil
}

// LoadZipAreas opens, reads and closes the zip mapping file
func LoadZipAreas(path string) ([]types.ZipArea, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Input(path, err)
	}
	defer f.Close()
	return ReadZipAreas(f, path)
}
