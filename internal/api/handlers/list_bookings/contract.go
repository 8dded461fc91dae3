package list_bookings

import (
	"context"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, filter domain.BookingsFilter) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
