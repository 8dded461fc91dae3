package request_booking

import (
	"time"

	bookingModels "github.com/saltylife/SL-RentalService/internal/service/bookings/models"
	requestBooking "github.com/saltylife/SL-RentalService/internal/usecase/request_booking"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// BookingRequest HTTP request model
type BookingRequest struct {
	GuestName string  `json:"guestName"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	CheckIn   string  `json:"checkIn"`  // "2026-01-10"
	CheckOut  string  `json:"checkOut"` // "2026-01-15"
	Guests    int     `json:"guests"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookingRequest) ToUseCaseRequest() *requestBooking.Request {
	return &requestBooking.Request{
		GuestName: r.GuestName,
		Phone:     r.Phone,
		Email:     r.Email,
		CheckIn:   types.DateString(r.CheckIn),
		CheckOut:  types.DateString(r.CheckOut),
		Guests:    r.Guests,
	}
}

// InquiryResponse созданный запрос доступности
type InquiryResponse struct {
	ID        string `json:"id"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Guests    int    `json:"guests"`
	Estimate  int64  `json:"estimate"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// NotificationResponse сообщение для владельца
type NotificationResponse struct {
	Summary string `json:"summary"`
	WALink  string `json:"waLink"`
}

// BookingRequestResponse результат запроса: inquiry или бронирование
type BookingRequestResponse struct {
	Kind         string                         `json:"kind"` // "inquiry" | "booking"
	Booking      *bookingModels.BookingResponse `json:"booking,omitempty"`
	Inquiry      *InquiryResponse               `json:"inquiry,omitempty"`
	Nights       int                            `json:"nights"`
	Total        int64                          `json:"total"`
	Notification NotificationResponse           `json:"notification"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP модель
func FromUseCaseResponse(resp *requestBooking.Response) *BookingRequestResponse {
	out := &BookingRequestResponse{
		Kind:   string(resp.Kind),
		Nights: resp.Nights,
		Total:  resp.Total,
		Notification: NotificationResponse{
			Summary: resp.Notification.Summary,
			WALink:  resp.Notification.WALink,
		},
	}

	if resp.Booking != nil {
		out.Booking = bookingModels.FromDomainBooking(resp.Booking)
	}

	if resp.Inquiry != nil {
		out.Inquiry = &InquiryResponse{
			ID:        resp.Inquiry.ID,
			CheckIn:   resp.Inquiry.CheckIn.String(),
			CheckOut:  resp.Inquiry.CheckOut.String(),
			Guests:    resp.Inquiry.Guests,
			Estimate:  resp.Inquiry.Estimate,
			Status:    string(resp.Inquiry.Status),
			CreatedAt: resp.Inquiry.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return out
}
