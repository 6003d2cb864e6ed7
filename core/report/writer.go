package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"slcsp/core/types"
	"slcsp/internal/errors"
)

// Header is the fixed output header line
const Header = "zipcode,rate"

// WriteRows writes the header and one line per row. Premiums are
// rendered with two fixed fractional digits; an undetermined rate is
// an empty second field, so every line parses back through the
// request loader identically.
func WriteRows(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}
	for _, row := range rows {
		rate := ""
		if row.Rate != nil {
			rate = row.Rate.StringFixed(types.PremiumScale)
		}
		if _, err := fmt.Fprintf(bw, "%s,%s\n", row.Zip, rate); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReplaceFile writes the rows over the file at path. The results are
// staged in a temp file in the same directory and renamed into place
// only after a successful write and sync; a failure part-way never
// leaves a truncated file where the request list used to be.
func ReplaceFile(path string, rows []Row) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Output(path, err)
	}
	tmpName := tmp.Name()

	if err := WriteRows(tmp, rows); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Output(path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Output(path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Output(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Output(path, err)
	}
	return nil
}
