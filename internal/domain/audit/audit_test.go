//go:build unit

package audit_test

import (
	"testing"
	"time"

	"travel-backoffice/internal/domain/audit"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestEntries(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	staffID := uuid.MustParse("7b1f4f0e-3c43-4a8e-9d2a-9a4c1f1f0b01")
	staff := audit.Actor{ID: &staffID, Name: "mia", Role: "staff"}

	testCases := []struct {
		name string
		got  audit.Entry
		want audit.Entry
	}{
		{
			name: "booking created by staff",
			got:  audit.BookingCreated(staff, 42, "jane@example.com", at),
			want: audit.Entry{UserID: &staffID, Action: audit.ActionBookingCreate, Details: "Booking #42 created for jane@example.com", PerformedBy: "mia", OccurredAt: at},
		},
		{
			name: "invoice from booking by system",
			got:  audit.InvoiceFromBooking(audit.System(), "RTT-INV-0007", 42, at),
			want: audit.Entry{Action: audit.ActionInvoiceFromBooking, Details: "Invoice RTT-INV-0007 created from booking #42", PerformedBy: "System", OccurredAt: at},
		},
		{
			name: "anonymous actor falls back to System",
			got:  audit.InvoiceDeleted(audit.Actor{}, "RTT-INV-0001", at),
			want: audit.Entry{Action: audit.ActionInvoiceDelete, Details: "Invoice RTT-INV-0001 deleted", PerformedBy: "System", OccurredAt: at},
		},
		{
			name: "invoice updated uses id",
			got:  audit.InvoiceUpdated(staff, 9, at),
			want: audit.Entry{UserID: &staffID, Action: audit.ActionInvoiceUpdate, Details: "Invoice ID 9 updated", PerformedBy: "mia", OccurredAt: at},
		},
		{
			name: "user created",
			got:  audit.UserCreated(staff, "omar", "admin", at),
			want: audit.Entry{UserID: &staffID, Action: audit.ActionUserCreate, Details: "User omar created with role admin", PerformedBy: "mia", OccurredAt: at},
		},
		{
			name: "settings updated",
			got:  audit.SettingsUpdated(staff, at),
			want: audit.Entry{UserID: &staffID, Action: audit.ActionSettingsUpdate, Details: "System settings updated", PerformedBy: "mia", OccurredAt: at},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.got); diff != "" {
				t.Errorf("entry mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
