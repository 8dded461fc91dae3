package availability

import (
	"fmt"

	"github.com/saltylife/SL-RentalService/pkg/types"
)

// ValidateStay выполняет полную валидацию запрошенного проживания.
// Проверки идут в фиксированном порядке, каждая возвращает свой sentinel,
// чтобы вызывающая сторона могла показать точное сообщение:
//  1. обе даты заданы (ErrMissingDates)
//  2. выезд строго позже заезда (ErrInvalidRange)
//  3. ночей не меньше минимума (ErrBelowMinimumStay)
//  4. весь интервал свободен (ErrDatesUnavailable)
func ValidateStay(checkIn, checkOut types.DateString, minNights int, blocked *BlockedSet) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return ErrMissingDates
	}

	nights := checkIn.DaysUntil(checkOut)
	if nights <= 0 {
		return ErrInvalidRange
	}
	if nights < minNights {
		return fmt.Errorf("%w: minimum %d nights", ErrBelowMinimumStay, minNights)
	}

	if !blocked.RangeFree(checkIn, checkOut) {
		return ErrDatesUnavailable
	}

	return nil
}
