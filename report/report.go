// Package report persists batch results as a JSON array with one record per
// instance file.
//
// Every value is stored as a string; "NA" marks a run that exceeded its time
// limit or an instance without a known optimum. Branch-and-bound results are
// not persisted. The file is rewritten after every record so an interrupted
// batch keeps all finished instances.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tsplab/tsp"
)

// NA is the rendering of an unavailable value.
const NA = "NA"

// Record is one instance's row in the results file.
type Record struct {
	FileName            string `json:"file_name"`
	Cities              string `json:"cities"`
	OptimalCost         string `json:"optimal_cost"`
	TATElapsed          string `json:"tat_elapsed"`
	ChristofidesElapsed string `json:"christofides_elapsed"`
	TATCost             string `json:"tat_cost"`
	ChristofidesCost    string `json:"christofides_cost"`
}

// NewRecord renders the approximation results of one instance. optimal is
// ignored unless hasOptimal is set.
func NewRecord(fileName string, cities int, optimal float64, hasOptimal bool, tat, christofides tsp.Result) Record {
	opt := NA
	if hasOptimal {
		opt = FormatFloat(optimal)
	}

	return Record{
		FileName:            fileName,
		Cities:              strconv.Itoa(cities),
		OptimalCost:         opt,
		TATElapsed:          Elapsed(tat),
		ChristofidesElapsed: Elapsed(christofides),
		TATCost:             Cost(tat),
		ChristofidesCost:    Cost(christofides),
	}
}

// Cost renders r.Cost, or NA.
func Cost(r tsp.Result) string {
	if !r.Available {
		return NA
	}

	return FormatFloat(r.Cost)
}

// Elapsed renders r.Elapsed in seconds, or NA.
func Elapsed(r tsp.Result) string {
	if !r.Available {
		return NA
	}

	return FormatFloat(r.Elapsed.Seconds())
}

// FormatFloat is the shortest decimal form of v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Writer accumulates records and rewrites the results file on each Append.
type Writer struct {
	mu      sync.Mutex
	path    string
	records []Record
}

// NewWriter returns a Writer targeting path. Nothing is written until the
// first Append or Flush.
func NewWriter(path string) *Writer {
	return &Writer{path: path, records: []Record{}}
}

// Path returns the output file path.
func (w *Writer) Path() string { return w.path }

// Records returns a copy of the records written so far.
func (w *Writer) Records() []Record {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]Record(nil), w.records...)
}

// Append adds rec and rewrites the file.
func (w *Writer) Append(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.records = append(w.records, rec)

	return w.flushLocked()
}

// Flush writes the current records, creating an empty array when none exist.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.flushLocked()
}

func (w *Writer) flushLocked() error {
	data, err := json.MarshalIndent(w.records, "", "    ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal results")
	}

	return writeFileAtomic(w.path, data)
}

// writeFileAtomic writes data to a temp file beside path and renames it over
// path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to ensure directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath) // gone after a successful rename
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "failed to fsync temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "failed to rename results into %s", path)
	}

	return nil
}

// Read loads a results file written by Writer.
func Read(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	return recs, nil
}
