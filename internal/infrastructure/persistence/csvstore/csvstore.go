// Package csvstore is the flat-file record store backing the placement
// hub. Each collection lives in one CSV file, loaded whole at startup
// and rewritten whole on every persist.
//
// Writes go to a temporary file in the same directory which is then
// atomically renamed over the target, so a crash mid-write can never
// truncate the live file. Enum values are serialized by symbolic name.
// Rows that fail to parse are skipped with a logged warning - a bad row
// never blocks loading the rest of the collection.
package csvstore

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/campus-hub/placement-hub/internal/domain/shared"
)

// readAll loads every row of the CSV file at path. A missing file is
// not an error: it yields an empty collection, matching first-run
// behavior.
func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, shared.WrapError("csvstore", "Load", shared.ErrStorage, "cannot open "+path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row length is validated by each store
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, shared.WrapError("csvstore", "Load", shared.ErrStorage, "cannot read "+path, err)
	}
	return rows, nil
}

// writeAtomic rewrites the file at path with a header plus rows via a
// temp file and rename.
func writeAtomic(path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return shared.WrapError("csvstore", "Persist", shared.ErrStorage, "cannot create data directory", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return shared.WrapError("csvstore", "Persist", shared.ErrStorage, "cannot create temp file", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	writeErr := w.Write(header)
	if writeErr == nil {
		writeErr = w.WriteAll(rows)
	}
	if writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmpName)
		return shared.WrapError("csvstore", "Persist", shared.ErrStorage, "cannot write "+path, writeErr)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return shared.WrapError("csvstore", "Persist", shared.ErrStorage, "cannot replace "+path, err)
	}
	return nil
}

// isHeader reports whether the row looks like the header line written
// by a previous persist (first cell matches the first header column).
func isHeader(row, header []string) bool {
	return len(row) > 0 && len(header) > 0 && shared.SameID(row[0], header[0])
}
