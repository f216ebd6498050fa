package validator_test

import (
	"strings"
	"testing"

	"github.com/ShubhamGaur-277/Booking-Service/shared/validator"
)

type bookingItem struct {
	SeatID int    `json:"seatId" validate:"required,gt=0"`
	Name   string `json:"name"   validate:"required,max=100"`
	Phone  int64  `json:"number" validate:"required"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"seatId": 1, "name": "alice", "number": 9876543210}`,
			expectError: false,
		},
		{
			name:        "missing required field",
			body:        `{"seatId": 1, "number": 9876543210}`,
			expectError: true,
		},
		{
			name:        "malformed json",
			body:        `{"seatId": `,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item bookingItem

			err := validator.Validate(strings.NewReader(tt.body), &item)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateSlice(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
		expectLen   int
	}{
		{
			name:        "valid array",
			body:        `[{"seatId": 1, "name": "alice", "number": 9876543210}, {"seatId": 2, "name": "bob", "number": 9123456780}]`,
			expectError: false,
			expectLen:   2,
		},
		{
			name:        "empty array",
			body:        `[]`,
			expectError: true,
		},
		{
			name:        "object instead of array",
			body:        `{"seatId": 1, "name": "alice", "number": 9876543210}`,
			expectError: true,
		},
		{
			name:        "invalid element",
			body:        `[{"seatId": 1, "name": "alice", "number": 9876543210}, {"seatId": 0, "name": "", "number": 0}]`,
			expectError: true,
		},
		{
			name:        "malformed json",
			body:        `[{"seatId": 1`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []bookingItem

			err := validator.ValidateSlice(strings.NewReader(tt.body), &items)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}

			if !tt.expectError && len(items) != tt.expectLen {
				t.Errorf("expected %d items, got %d", tt.expectLen, len(items))
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("alice", "required"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected error, got nil")
	}
}
