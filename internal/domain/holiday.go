package domain

import "github.com/saltylife/SL-RentalService/pkg/types"

// HolidayRule is a named date range with a price multiplier.
// The range is inclusive on both ends.
type HolidayRule struct {
	Name       string
	Start      types.DateString
	End        types.DateString
	Multiplier float64
}

// Contains returns true if the date falls inside the inclusive range
func (h HolidayRule) Contains(d types.DateString) bool {
	return !d.IsBefore(h.Start) && !d.IsAfter(h.End)
}

// HolidayTable is an ordered list of holiday rules. Order is the contract:
// matching is a linear scan and the first rule containing a date wins, even
// if ranges overlap. Do not replace with a map keyed by date.
type HolidayTable []HolidayRule

// Match returns the first rule containing the date, or false if none does
func (t HolidayTable) Match(d types.DateString) (HolidayRule, bool) {
	for _, rule := range t {
		if rule.Contains(d) {
			return rule, true
		}
	}
	return HolidayRule{}, false
}
