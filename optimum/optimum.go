// Package optimum loads the table of known optimal tour costs used to rate
// approximation results.
//
// The file is a JSON array of objects keyed "Nome_Arquivo" (instance file
// name, e.g. "berlin52.tsp") and "Custo_Otimo" (optimal cost, as a number or
// a numeric string).
package optimum

import (
	"encoding/json"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Entry is one row of the optima file.
type Entry struct {
	FileName string   `json:"Nome_Arquivo"`
	Cost     costJSON `json:"Custo_Otimo"`
}

// costJSON accepts both 7542 and "7542".
type costJSON float64

func (c *costJSON) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(err, "optimum: invalid cost %s", string(b))
	}
	*c = costJSON(v)

	return nil
}

// Table maps instance file names to optimal costs.
type Table map[string]float64

// Lookup returns the optimum for name (a base file name).
func (t Table) Lookup(name string) (float64, bool) {
	v, ok := t[name]

	return v, ok
}

// Names returns the instance names in sorted order.
func (t Table) Names() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Parse decodes an optima document.
func Parse(data []byte) (Table, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "optimum: decode failed")
	}
	t := make(Table, len(entries))
	for _, e := range entries {
		t[e.FileName] = float64(e.Cost)
	}

	return t, nil
}

// Load reads path. A missing file is not an error: the table is empty and
// found is false, so callers can warn and carry on without optima.
func Load(path string) (t Table, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Table{}, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "optimum: read %s", path)
	}
	t, err = Parse(data)
	if err != nil {
		return nil, true, errors.WithMessage(err, path)
	}

	return t, true, nil
}
