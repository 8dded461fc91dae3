package notify

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

// PayloadKind вид уведомления
type PayloadKind string

const (
	KindInquiry PayloadKind = "inquiry"
	KindBooking PayloadKind = "booking"
)

// Payload уведомление для внешнего контактного канала (WhatsApp владельца).
// Ядро гарантирует состав полей и то, что payload формируется ровно один раз
// на созданное бронирование или запрос; доставкой занимается коллаборатор.
type Payload struct {
	Kind      PayloadKind
	GuestName string
	Phone     *string
	Email     *string
	CheckIn   types.DateString
	CheckOut  types.DateString
	Guests    int
	Total     int64
	Status    string
	Summary   string
	WALink    string
}

// ForBooking формирует уведомление о созданном бронировании
func ForBooking(propertyName, whatsapp string, b *domain.Booking) Payload {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Instant booking request:\n%s\n", propertyName)
	fmt.Fprintf(&sb, "Guest: %s\n", b.GuestName)
	fmt.Fprintf(&sb, "Phone: %s\n", orDash(b.Phone))
	fmt.Fprintf(&sb, "Email: %s\n", orDash(b.Email))
	fmt.Fprintf(&sb, "Check-in: %s\n", b.CheckIn)
	fmt.Fprintf(&sb, "Check-out: %s\n", b.CheckOut)
	fmt.Fprintf(&sb, "Guests: %d\n", b.Guests)
	fmt.Fprintf(&sb, "Total: %s EGP\n", FormatMoney(b.Total))
	fmt.Fprintf(&sb, "Status: %s", strings.ToUpper(string(b.Status)))
	if b.HoldExpiresAt != nil {
		fmt.Fprintf(&sb, " (expires %s)", b.HoldExpiresAt.UTC().Format(time.RFC3339))
	}

	summary := sb.String()
	return Payload{
		Kind:      KindBooking,
		GuestName: b.GuestName,
		Phone:     b.Phone,
		Email:     b.Email,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		Guests:    b.Guests,
		Total:     b.Total,
		Status:    string(b.Status),
		Summary:   summary,
		WALink:    WALink(whatsapp, summary),
	}
}

// ForInquiry формирует уведомление о запросе доступности
func ForInquiry(propertyName, whatsapp string, inq *domain.Inquiry) Payload {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Availability request:\n%s\n", propertyName)
	fmt.Fprintf(&sb, "Check-in: %s\n", inq.CheckIn)
	fmt.Fprintf(&sb, "Check-out: %s\n", inq.CheckOut)
	fmt.Fprintf(&sb, "Guests: %d\n", inq.Guests)
	fmt.Fprintf(&sb, "Estimate: %s EGP", FormatMoney(inq.Estimate))

	summary := sb.String()
	return Payload{
		Kind:     KindInquiry,
		CheckIn:  inq.CheckIn,
		CheckOut: inq.CheckOut,
		Guests:   inq.Guests,
		Total:    inq.Estimate,
		Status:   string(inq.Status),
		Summary:  summary,
		WALink:   WALink(whatsapp, summary),
	}
}

// WALink собирает ссылку wa.me на контактный номер с предзаполненным текстом
func WALink(phone, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(text))
}

// FormatMoney форматирует сумму с разделителями тысяч: 43000 -> "43,000"
func FormatMoney(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var out strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(r)
	}

	if neg {
		return "-" + out.String()
	}
	return out.String()
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
