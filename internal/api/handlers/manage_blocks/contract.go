package manage_blocks

import (
	"context"

	"github.com/saltylife/SL-RentalService/pkg/types"
)

type CalendarService interface {
	ListBlocks(ctx context.Context) ([]types.DateString, error)
	AddBlock(ctx context.Context, day types.DateString) error
	RemoveBlock(ctx context.Context, day types.DateString) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
