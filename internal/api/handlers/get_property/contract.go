package get_property

import (
	"context"

	"github.com/saltylife/SL-RentalService/internal/domain"
)

type PropertyProvider interface {
	GetConfig(ctx context.Context) (*domain.PropertyConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
