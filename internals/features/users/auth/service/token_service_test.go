package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret"

func TestToken_RoundTrip(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	token, err := CreateToken(testSecret, id, "customer", now)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	gotID, gotRole, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if gotID != id {
		t.Errorf("expected id %s, got %s", id, gotID)
	}
	if gotRole != "customer" {
		t.Errorf("expected role customer, got %s", gotRole)
	}
}

func TestToken_WrongSecretRejected(t *testing.T) {
	token, err := CreateToken(testSecret, uuid.New(), "admin", time.Now())
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, _, err := ParseToken("another-secret", token); err == nil {
		t.Error("expected parse to fail with the wrong secret")
	}
}

func TestToken_EmptySecretRejected(t *testing.T) {
	if _, err := CreateToken("", uuid.New(), "admin", time.Now()); err == nil {
		t.Error("expected sign to fail with an empty secret")
	}
}

func TestToken_ExpiredRejected(t *testing.T) {
	issued := time.Now().Add(-TokenTTL - time.Hour)
	token, err := CreateToken(testSecret, uuid.New(), "customer", issued)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, _, err := ParseToken(testSecret, token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}
