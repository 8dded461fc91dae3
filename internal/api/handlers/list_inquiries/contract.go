package list_inquiries

import (
	"context"

	"github.com/saltylife/SL-RentalService/internal/domain"
)

type InquiryProvider interface {
	List(ctx context.Context, status *domain.InquiryStatus) ([]*domain.Inquiry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
