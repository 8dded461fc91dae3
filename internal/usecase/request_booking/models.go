package request_booking

import (
	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/internal/service/notify"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// ResultKind определяет, чем завершился запрос гостя
type ResultKind string

const (
	// ResultInquiry запрос сохранён как inquiry, владелец отвечает вручную
	ResultInquiry ResultKind = "inquiry"

	// ResultBooking создано бронирование (hold или confirmed)
	ResultBooking ResultKind = "booking"
)

// Request модель запроса гостя на проживание
type Request struct {
	GuestName string           // Имя гостя
	Phone     *string          // Телефон (опционально)
	Email     *string          // Email (опционально)
	CheckIn   types.DateString // Дата заезда
	CheckOut  types.DateString // Дата выезда (не включается в проживание)
	Guests    int              // Количество гостей
}

// Response модель результата обработки запроса.
// Ровно одно из полей Booking / Inquiry заполнено, в зависимости от Kind.
// Notification формируется один раз на созданную запись.
type Response struct {
	Kind         ResultKind
	Booking      *domain.Booking
	Inquiry      *domain.Inquiry
	Nights       int
	Total        int64
	Notification notify.Payload
}
