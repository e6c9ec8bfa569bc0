// Package notify delivers showroom events to chat channels.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/johnadams78/capstoneproject/internal/models"
)

// Event is a human-readable notification ready for delivery.
type Event struct {
	Title     string
	Body      string
	Timestamp time.Time
}

// Notifier delivers events to a single destination.
type Notifier interface {
	Send(ctx context.Context, ev Event) error
}

// Multi fans an event out to every configured notifier. A failing
// destination does not stop delivery to the others.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, ev Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Send(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewInquiryEvent builds the notification for a freshly submitted inquiry.
func NewInquiryEvent(inq *models.Inquiry, dealerName string) Event {
	body := fmt.Sprintf("From: %s <%s>", inq.CustomerName, inq.Email)
	if inq.Phone != "" {
		body += "\nPhone: " + inq.Phone
	}
	body += "\nVehicle: " + inq.VehicleRef
	if inq.Message != "" {
		body += "\n\n" + inq.Message
	}
	return Event{
		Title:     fmt.Sprintf("New inquiry at %s", dealerName),
		Body:      body,
		Timestamp: inq.CreatedAt,
	}
}
