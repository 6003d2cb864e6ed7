// Package input reads the three CSV files into parsed records.
// Each reader fully materializes its file before the next pipeline
// stage runs; nothing here streams across stages.
package input

import (
	"encoding/csv"
	"io"
	"os"

	"slcsp/core/types"
	"slcsp/internal/errors"
)

var errEmptyZip = errors.New(errors.TypeParsing, "empty zip code field")

// ReadRequestList parses the ordered request file (header "zipcode,rate").
// Only the first field of each data row is consumed; a trailing comma
// (an empty rate column) is tolerated. Order and duplicates are
// preserved exactly.
func ReadRequestList(r io.Reader, name string) (types.RequestList, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	list := make(types.RequestList, 0, 64)
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
		if len(record) == 0 || record[0] == "" {
			return nil, errors.MalformedRow(name, line, join(record), errEmptyZip)
		}
		list = append(list, record[0])
	}
	return list, nil
}

// LoadRequestList opens, reads and closes the request file
func LoadRequestList(path string) (types.RequestList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Input(path, err)
	}
	defer f.Close()
	return ReadRequestList(f, path)
}
