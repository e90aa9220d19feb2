package calendar

import (
	"encoding/json"
	"io"

	"github.com/gocarina/gocsv"
)

// HolidayRecord is the exported form of a Holiday.
type HolidayRecord struct {
	Date    string `csv:"date" json:"date"`
	Weekday string `csv:"weekday" json:"weekday"`
	Name    string `csv:"name" json:"name"`
	Kind    string `csv:"kind" json:"kind"`
}

// Records converts the set into export records in date order.
func Records(set *HolidaySet) []*HolidayRecord {
	hs := set.Holidays()
	out := make([]*HolidayRecord, len(hs))
	for i, h := range hs {
		out[i] = &HolidayRecord{
			Date:    h.Date.Key(),
			Weekday: h.Date.Weekday().String(),
			Name:    h.Name,
			Kind:    h.Kind.String(),
		}
	}
	return out
}

// WriteCSV writes the set as CSV with a header row.
func WriteCSV(w io.Writer, set *HolidaySet) error {
	return gocsv.Marshal(Records(set), w)
}

// WriteJSON writes the set as a JSON array.
func WriteJSON(w io.Writer, set *HolidaySet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Records(set))
}
