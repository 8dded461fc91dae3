package get_calendar

import (
	"github.com/saltylife/SL-RentalService/pkg/types"
)

const (
	// DefaultRangeDays длина календарного окна по умолчанию
	DefaultRangeDays = 90

	// MaxRangeDays максимальная длина запрошенного окна
	MaxRangeDays = 366
)

// Причины занятости дня в календаре
const (
	ReasonConfirmed = "confirmed" // занят подтверждённым бронированием
	ReasonHold      = "hold"      // занят активным hold
	ReasonManual    = "manual"    // закрыт владельцем вручную
	ReasonImported  = "imported"  // занят по импортированному календарю
)

// Request модель запроса календаря.
// Пустые границы заменяются на сегодня и сегодня + DefaultRangeDays.
type Request struct {
	From types.DateString
	To   types.DateString
}

// Day один день календаря: цена и занятость
type Day struct {
	Date      types.DateString
	Price     int64
	Label     string // "Base", "Weekend" или название праздничного периода
	Available bool
	Reason    string // причина занятости; пустая строка для свободного дня
}

// Response модель календаря за запрошенный диапазон [From, To)
type Response struct {
	From types.DateString
	To   types.DateString
	Days []Day
}
