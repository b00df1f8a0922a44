package entities

import "testing"

func TestParseNotificationType(t *testing.T) {
	tests := []struct {
		in   string
		want NotificationType
		ok   bool
	}{
		{"transaction", NotificationTransaction, true},
		{" Transaction ", NotificationTransaction, true},
		{"preApproval", NotificationPreApproval, true},
		{"pre_approval", NotificationPreApproval, true},
		{"PRE-APPROVAL", NotificationPreApproval, true},
		{"refund", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseNotificationType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseNotificationType(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNotification_Status(t *testing.T) {
	n := Notification{Type: NotificationTransaction, Transaction: &Transaction{Status: 3}}
	if n.Status() != "PAID" {
		t.Fatalf("expected PAID, got %s", n.Status())
	}

	n = Notification{Type: NotificationPreApproval, PreApproval: &PreApproval{Status: "ACTIVE"}}
	if n.Status() != "ACTIVE" {
		t.Fatalf("expected ACTIVE, got %s", n.Status())
	}

	if (Notification{}).Status() != "" {
		t.Fatalf("expected empty status for unresolved notification")
	}
	if TransactionStatus(42).String() != "UNKNOWN" {
		t.Fatalf("expected UNKNOWN for unmapped status")
	}
}
