package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// infinityJSON is the wire form of the zero-expense sentinel; encoding/json
// rejects raw infinities.
const infinityJSON = `"Infinity"`

// Ratio is a survival ratio that may carry a positive-infinity sentinel
// (no expenses at all is treated as maximally safe).
type Ratio float64

// IsInf reports whether the ratio carries the infinity sentinel.
func (r Ratio) IsInf() bool {
	return math.IsInf(float64(r), 1)
}

// String formats the ratio for prompts and reports.
func (r Ratio) String() string {
	if r.IsInf() {
		return "Infinity"
	}
	return strconv.FormatFloat(float64(r), 'f', -1, 64)
}

// MarshalJSON emits "Infinity" for the sentinel and a plain number otherwise.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.IsInf() {
		return []byte(infinityJSON), nil
	}
	return json.Marshal(float64(r))
}

// UnmarshalJSON accepts both the sentinel string and a plain number.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == infinityJSON {
		*r = Ratio(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Ratio(f)
	return nil
}
