package request_booking

import (
	"fmt"
	"strings"

	"github.com/saltylife/SL-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Имя гостя здесь не проверяется: оно обязательно только для мгновенного
// бронирования и проверяется после выбора итогового режима.
// Проверки доступности дат здесь тоже нет: она выполняется внутри
// транзакции, когда занятые даты прочитаны под блокировкой.
func validateRequest(req *Request) error {
	if len(req.GuestName) > domain.MaxGuestNameLen {
		return fmt.Errorf("%w: guestName is too long", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return ErrMissingDates
	}

	if err := req.CheckIn.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkIn format: %v", ErrInvalidInput, err)
	}

	if err := req.CheckOut.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkOut format: %v", ErrInvalidInput, err)
	}

	if !req.CheckIn.IsBefore(req.CheckOut) {
		return ErrInvalidDateRange
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	// Количество гостей записывается, но сверх лимита отклоняем как явно битый ввод
	if req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must not exceed %d", ErrInvalidInput, domain.MaxGuests)
	}

	if req.CheckIn.DaysUntil(req.CheckOut) > domain.MaxStayNights {
		return fmt.Errorf("%w: stay must not exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}

// validateGuestName проверяет имя гостя. Вызывается только для мгновенного
// бронирования: inquiry создается без имени.
func validateGuestName(req *Request) error {
	if strings.TrimSpace(req.GuestName) == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	return nil
}
