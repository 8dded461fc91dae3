package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltylife/SL-RentalService/internal/domain"
)

var testHolidays = domain.HolidayTable{
	{Name: "Ramadan", Start: "2026-02-17", End: "2026-03-18", Multiplier: 0.7},
	{Name: "Eid al-Fitr", Start: "2026-03-19", End: "2026-03-23", Multiplier: 2.0},
	{Name: "Eid al-Adha", Start: "2026-05-26", End: "2026-05-30", Multiplier: 2.0},
}

func TestPriceForDay_Base(t *testing.T) {
	// 2026-02-09 is a Monday
	dp := PriceForDay("2026-02-09", 12500, 1.2, testHolidays)

	assert.Equal(t, int64(12500), dp.Price)
	assert.Equal(t, domain.LabelBase, dp.Label)
}

func TestPriceForDay_WeekendIsThursdayAndFriday(t *testing.T) {
	// 2026-02-05 Thu, 2026-02-06 Fri, 2026-02-07 Sat
	thu := PriceForDay("2026-02-05", 12500, 1.2, nil)
	fri := PriceForDay("2026-02-06", 12500, 1.2, nil)
	sat := PriceForDay("2026-02-07", 12500, 1.2, nil)

	assert.Equal(t, int64(15000), thu.Price)
	assert.Equal(t, domain.LabelWeekend, thu.Label)
	assert.Equal(t, int64(15000), fri.Price)
	assert.Equal(t, int64(12500), sat.Price)
	assert.Equal(t, domain.LabelBase, sat.Label)
}

func TestPriceForDay_NeutralWeekendMultKeepsBaseLabel(t *testing.T) {
	// With a x1.0 multiplier a Thursday is priced and labeled as base
	thu := PriceForDay("2026-02-05", 12500, 1.0, nil)

	assert.Equal(t, int64(12500), thu.Price)
	assert.Equal(t, domain.LabelBase, thu.Label)
	assert.Equal(t, 1.0, thu.Multiplier)
}

func TestPriceForDay_HolidayOverridesWeekend(t *testing.T) {
	// 2026-02-19 is a Thursday inside the Ramadan period:
	// the holiday multiplier wins, the weekend one is not applied
	dp := PriceForDay("2026-02-19", 12500, 1.2, testHolidays)

	assert.Equal(t, int64(8750), dp.Price)
	assert.Equal(t, "Ramadan", dp.Label)
}

func TestPriceForDay_FirstMatchingRuleWins(t *testing.T) {
	overlapping := domain.HolidayTable{
		{Name: "First", Start: "2026-04-01", End: "2026-04-10", Multiplier: 1.5},
		{Name: "Second", Start: "2026-04-05", End: "2026-04-15", Multiplier: 3.0},
	}

	dp := PriceForDay("2026-04-07", 10000, 1.0, overlapping)

	assert.Equal(t, "First", dp.Label)
	assert.Equal(t, int64(15000), dp.Price)
}

func TestPriceForDay_RoundsHalfUp(t *testing.T) {
	rules := domain.HolidayTable{
		{Name: "Odd", Start: "2026-06-01", End: "2026-06-01", Multiplier: 0.5},
	}

	// 12501 * 0.5 = 6250.5 -> 6251
	dp := PriceForDay("2026-06-01", 12501, 1.0, rules)
	assert.Equal(t, int64(6251), dp.Price)
}

func TestEstimate_WeekendScenario(t *testing.T) {
	// Thu + Fri at x1.2, Sat at base, plus the cleaning fee once
	total := Estimate("2026-02-05", "2026-02-08", 12500, 500, 1.2, testHolidays)

	assert.Equal(t, int64(43000), total)
}

func TestEstimate_RamadanScenario(t *testing.T) {
	total := Estimate("2026-02-17", "2026-02-19", 12500, 500, 1.2, testHolidays)

	assert.Equal(t, int64(17500+500), total)
}

func TestEstimate_CheckoutDayIsNotCharged(t *testing.T) {
	// One night only: the half-open range excludes the check-out day
	total := Estimate("2026-02-09", "2026-02-10", 12500, 500, 1.2, nil)

	assert.Equal(t, int64(13000), total)
}

func TestEstimate_ZeroForInvalidRange(t *testing.T) {
	require.Equal(t, int64(0), Estimate("2026-02-10", "2026-02-10", 12500, 500, 1.2, nil))
	require.Equal(t, int64(0), Estimate("2026-02-10", "2026-02-09", 12500, 500, 1.2, nil))
}
