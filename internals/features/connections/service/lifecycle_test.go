package service

import (
	"regexp"
	"strings"
	"testing"
)

func TestCanDeactivate_ActiveNoPendingBills(t *testing.T) {
	if err := CanDeactivate(true, 0); err != nil {
		t.Errorf("expected deactivation to be allowed, got %v", err)
	}
}

func TestCanDeactivate_AlreadyInactive(t *testing.T) {
	err := CanDeactivate(false, 0)
	if err == nil {
		t.Fatal("expected error for inactive connection")
	}
	if _, ok := err.(ErrAlreadyInactive); !ok {
		t.Errorf("expected ErrAlreadyInactive, got %T", err)
	}
}

func TestCanDeactivate_PendingBillsReportCount(t *testing.T) {
	err := CanDeactivate(true, 3)
	if err == nil {
		t.Fatal("expected error for pending bills")
	}
	pending, ok := err.(ErrPendingBills)
	if !ok {
		t.Fatalf("expected ErrPendingBills, got %T", err)
	}
	if pending.Count != 3 {
		t.Errorf("expected count 3, got %d", pending.Count)
	}
	if !strings.Contains(err.Error(), "3") {
		t.Errorf("expected count in message, got %q", err.Error())
	}
}

func TestNewMeterNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^MET-\d{8}$`)
	for i := 0; i < 10; i++ {
		n := NewMeterNumber()
		if !pattern.MatchString(n) {
			t.Errorf("unexpected meter number format: %q", n)
		}
	}
}
