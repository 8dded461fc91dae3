package availability

import (
	"time"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// BlockedSet эффективное множество занятых дат: объединение ручных блокировок,
// импортированных дат и дат, занятых бронированиями со статусом confirmed или
// hold. Истёкшие холды отбрасываются уже на этапе построения (ленивая
// обработка истечения): множество, построенное в момент now, никогда не
// содержит дат холда, чей срок прошёл.
type BlockedSet struct {
	days map[types.DateString]struct{}
}

// NewBlockedSet строит эффективное множество занятых дат на момент now
func NewBlockedSet(
	manual []types.DateString,
	imported []types.DateString,
	bookings []*domain.Booking,
	now time.Time,
) *BlockedSet {
	days := make(map[types.DateString]struct{})

	for _, d := range manual {
		days[d] = struct{}{}
	}
	for _, d := range imported {
		days[d] = struct{}{}
	}
	for _, b := range bookings {
		if !b.BlocksDates(now) {
			continue
		}
		// Полуоткрытый интервал: день выезда не занят
		for _, d := range b.OccupiedDates() {
			days[d] = struct{}{}
		}
	}

	return &BlockedSet{days: days}
}

// Contains возвращает true, если дата занята
func (s *BlockedSet) Contains(d types.DateString) bool {
	_, ok := s.days[d]
	return ok
}

// Len возвращает количество занятых дат
func (s *BlockedSet) Len() int {
	return len(s.days)
}

// Dates возвращает все занятые даты (порядок не гарантируется)
func (s *BlockedSet) Dates() []types.DateString {
	out := make([]types.DateString, 0, len(s.days))
	for d := range s.days {
		out = append(out, d)
	}
	return out
}

// RangeFree возвращает true, если ни один день полуоткрытого интервала
// [checkIn, checkOut) не занят
func (s *BlockedSet) RangeFree(checkIn, checkOut types.DateString) bool {
	for day := checkIn; day.IsBefore(checkOut); day = day.AddDays(1) {
		if s.Contains(day) {
			return false
		}
	}
	return true
}
