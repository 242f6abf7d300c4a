package validator_test

import (
	"strings"
	"testing"
	"time"

	"booker/shared/validator"
)

// Test structs for validation
type ValidTestStruct struct {
	Name     string `validate:"required,max=100" json:"name"`
	Location string `validate:"omitempty,max=100" json:"location"`
}

type IntervalTestStruct struct {
	Start time.Time `validate:"required"                      json:"start"`
	End   time.Time `validate:"required,gtfield=Start"        json:"end"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "Conference Room A",
				Location: "2nd Floor",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Location: "2nd Floor",
			},
			expectError: true,
		},
		{
			name: "optional field left empty",
			data: &ValidTestStruct{
				Name: "Conference Room A",
			},
			expectError: false,
		},
		{
			name: "name too long",
			data: &ValidTestStruct{
				Name: strings.Repeat("a", 101),
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateStruct_GtField(t *testing.T) {
	start := time.Date(2025, 6, 8, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		data        *IntervalTestStruct
		expectError bool
	}{
		{
			name: "end after start",
			data: &IntervalTestStruct{
				Start: start,
				End:   start.Add(time.Hour),
			},
			expectError: false,
		},
		{
			name: "end equal to start",
			data: &IntervalTestStruct{
				Start: start,
				End:   start,
			},
			expectError: true,
		},
		{
			name: "end before start",
			data: &IntervalTestStruct{
				Start: start,
				End:   start.Add(-time.Hour),
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid json body",
			body:        `{"name": "Conference Room A", "location": "2nd Floor"}`,
			expectError: false,
		},
		{
			name:        "malformed json body",
			body:        `{"name": `,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"location": "2nd Floor"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ValidTestStruct{}
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{
			name:        "valid uuid",
			field:       "8aa47cba-5a7b-4d17-bba5-f38e9a2f1ad6",
			tag:         "uuid",
			expectError: false,
		},
		{
			name:        "invalid uuid",
			field:       "not-a-uuid",
			tag:         "uuid",
			expectError: true,
		},
		{
			name:        "required empty string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
