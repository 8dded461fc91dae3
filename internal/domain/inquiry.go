package domain

import (
	"time"

	"github.com/saltylife/SL-RentalService/pkg/types"
)

// InquiryStatus represents the inbox state of an inquiry
type InquiryStatus string

const (
	InquiryStatusNew     InquiryStatus = "new"
	InquiryStatusHandled InquiryStatus = "handled"
)

// Inquiry is a non-binding availability request. Created once by this
// service in check-availability mode; the inbox collaborator reads and
// updates its status afterwards.
type Inquiry struct {
	ID        string
	CheckIn   types.DateString
	CheckOut  types.DateString
	Guests    int
	Estimate  int64 // quote computed at creation time
	Status    InquiryStatus
	CreatedAt time.Time
}
