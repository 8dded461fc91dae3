package models

import (
	"fmt"
	"time"

	"github.com/saltylife/SL-RentalService/internal/domain"
)

// BookingResponse модель бронирования для API
type BookingResponse struct {
	ID            string  `json:"id"`
	GuestName     string  `json:"guestName"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Guests        int     `json:"guests"`
	Nights        int     `json:"nights"`
	Total         int64   `json:"total"`
	Status        string  `json:"status"`
	Source        string  `json:"source"`
	HoldExpiresAt *string `json:"holdExpiresAt,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// BookingListResponse список бронирований для API
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в API модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:        b.ID,
		GuestName: b.GuestName,
		Phone:     b.Phone,
		Email:     b.Email,
		CheckIn:   b.CheckIn.String(),
		CheckOut:  b.CheckOut.String(),
		Guests:    b.Guests,
		Nights:    b.Nights,
		Total:     b.Total,
		Status:    string(b.Status),
		Source:    string(b.Source),
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if b.HoldExpiresAt != nil {
		s := b.HoldExpiresAt.UTC().Format(time.RFC3339)
		resp.HoldExpiresAt = &s
	}

	return resp
}

// FromDomainBookingList конвертирует список domain.Booking в API модель
func FromDomainBookingList(list []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}

// ToDomainBookingStatus конвертирует строку статуса из запроса в domain тип
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusHold, domain.StatusExpired, domain.StatusCancelled:
		return domain.BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
}
