// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package validation

import (
	"errors"
	"math"
	"strings"
	"testing"
)

type sample struct {
	Name   string    `json:"name" validate:"required,max=10"`
	Tempo  float64   `json:"bpm" validate:"finite,gt=0"`
	Vector []float64 `json:"vector" validate:"required,min=1,dive,finite"`
	Tags   []string  `json:"tags" validate:"max=2"`
}

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     sample
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:  "valid",
			input: sample{Name: "ok", Tempo: 120, Vector: []float64{0.1}},
		},
		{
			name:      "missing name",
			input:     sample{Tempo: 120, Vector: []float64{0.1}},
			wantField: "name",
			wantTag:   "required",
			wantMsg:   "name is required",
		},
		{
			name:      "name too long",
			input:     sample{Name: "abcdefghijk", Tempo: 120, Vector: []float64{0.1}},
			wantField: "name",
			wantTag:   "max",
			wantMsg:   "name must be at most 10 characters",
		},
		{
			name:      "zero tempo",
			input:     sample{Name: "ok", Vector: []float64{0.1}},
			wantField: "bpm",
			wantTag:   "gt",
			wantMsg:   "bpm must be greater than 0",
		},
		{
			name:      "nan tempo",
			input:     sample{Name: "ok", Tempo: math.NaN(), Vector: []float64{0.1}},
			wantField: "bpm",
			wantTag:   "finite",
			wantMsg:   "bpm must be a finite number",
		},
		{
			name:      "infinite vector element",
			input:     sample{Name: "ok", Tempo: 90, Vector: []float64{0.1, math.Inf(1)}},
			wantField: "vector[1]",
			wantTag:   "finite",
		},
		{
			name:      "too many tags",
			input:     sample{Name: "ok", Tempo: 90, Vector: []float64{1}, Tags: []string{"a", "b", "c"}},
			wantField: "tags",
			wantTag:   "max",
			wantMsg:   "tags must be at most 2 items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationError_ToAPIError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		verr := ValidateStruct(&sample{Tempo: 1, Vector: []float64{1}})
		if verr == nil {
			t.Fatal("expected error")
		}
		apiErr := verr.ToAPIError()
		if apiErr.Code != ErrorCode {
			t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
		}
		if apiErr.Details["field"] != "name" {
			t.Errorf("Details[field] = %v, want name", apiErr.Details["field"])
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		verr := ValidateStruct(&sample{})
		if verr == nil {
			t.Fatal("expected error")
		}
		apiErr := verr.ToAPIError()
		if !strings.Contains(apiErr.Message, "name: name is required") {
			t.Errorf("Message = %q, want it to list the name field", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != len(verr.Errors()) {
			t.Errorf("Details[fields] = %v, want %d entries", apiErr.Details["fields"], len(verr.Errors()))
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}

func TestRequestValidationError_ErrorsAs(t *testing.T) {
	var err error = ValidateStruct(&sample{})

	var verr *RequestValidationError
	if !errors.As(err, &verr) {
		t.Fatal("errors.As should find *RequestValidationError")
	}
	if verr.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
