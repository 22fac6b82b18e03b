package audit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionBookingCreate      Action = "booking_create"
	ActionBookingUpdate      Action = "booking_update"
	ActionBookingDelete      Action = "booking_delete"
	ActionInvoiceCreate      Action = "invoice_create"
	ActionInvoiceFromBooking Action = "invoice_from_booking"
	ActionInvoiceUpdate      Action = "invoice_update"
	ActionInvoiceDelete      Action = "invoice_delete"
	ActionSettingsUpdate     Action = "settings_update"
	ActionUserCreate         Action = "user_create"
	ActionUserUpdate         Action = "user_update"
	ActionUserDelete         Action = "user_delete"
)

const SystemActorName = "System"

// Actor is whoever triggered a write. A zero Actor is the system.
type Actor struct {
	ID   *uuid.UUID
	Name string
	Role string
}

func System() Actor {
	return Actor{Name: SystemActorName}
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

func (a Actor) DisplayName() string {
	if a.Name == "" {
		return SystemActorName
	}
	return a.Name
}

// Entry is one system_log row.
type Entry struct {
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Action      Action     `json:"action"`
	Details     string     `json:"details"`
	PerformedBy string     `json:"performed_by"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

func NewEntry(actor Actor, action Action, details string, at time.Time) Entry {
	return Entry{
		UserID:      actor.ID,
		Action:      action,
		Details:     details,
		PerformedBy: actor.DisplayName(),
		OccurredAt:  at,
	}
}

func BookingCreated(actor Actor, id int64, email string, at time.Time) Entry {
	return NewEntry(actor, ActionBookingCreate, fmt.Sprintf("Booking #%d created for %s", id, email), at)
}

func BookingUpdated(actor Actor, id int64, at time.Time) Entry {
	return NewEntry(actor, ActionBookingUpdate, fmt.Sprintf("Booking #%d updated", id), at)
}

func BookingDeleted(actor Actor, id int64, at time.Time) Entry {
	return NewEntry(actor, ActionBookingDelete, fmt.Sprintf("Booking #%d deleted", id), at)
}

func InvoiceCreated(actor Actor, number string, at time.Time) Entry {
	return NewEntry(actor, ActionInvoiceCreate, fmt.Sprintf("Invoice %s created", number), at)
}

func InvoiceFromBooking(actor Actor, number string, bookingID int64, at time.Time) Entry {
	return NewEntry(actor, ActionInvoiceFromBooking,
		fmt.Sprintf("Invoice %s created from booking #%d", number, bookingID), at)
}

func InvoiceUpdated(actor Actor, id int64, at time.Time) Entry {
	return NewEntry(actor, ActionInvoiceUpdate, fmt.Sprintf("Invoice ID %d updated", id), at)
}

func InvoiceDeleted(actor Actor, number string, at time.Time) Entry {
	return NewEntry(actor, ActionInvoiceDelete, fmt.Sprintf("Invoice %s deleted", number), at)
}

func SettingsUpdated(actor Actor, at time.Time) Entry {
	return NewEntry(actor, ActionSettingsUpdate, "System settings updated", at)
}

func UserCreated(actor Actor, username, role string, at time.Time) Entry {
	return NewEntry(actor, ActionUserCreate, fmt.Sprintf("User %s created with role %s", username, role), at)
}

func UserUpdated(actor Actor, username string, at time.Time) Entry {
	return NewEntry(actor, ActionUserUpdate, fmt.Sprintf("User %s updated", username), at)
}

func UserDeleted(actor Actor, id uuid.UUID, at time.Time) Entry {
	return NewEntry(actor, ActionUserDelete, fmt.Sprintf("User ID %s deleted", id), at)
}
