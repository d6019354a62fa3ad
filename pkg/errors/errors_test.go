package errors

import (
	"errors"
	"fmt"
	"testing"
)

type codedErr struct{}

func (codedErr) Error() string   { return "coded" }
func (codedErr) ErrorCode() Code { return ErrCodeLengthMismatch }

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidGroupNum, "group_num should be a positive integer, but got %d", 0)

	if err.Code != ErrCodeInvalidGroupNum {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidGroupNum)
	}

	if err.Message != "group_num should be a positive integer, but got 0" {
		t.Errorf("Message = %v", err.Message)
	}

	expected := "INVALID_GROUP_NUM: group_num should be a positive integer, but got 0"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrap(ErrCodeFileNotFound, cause, "open jobs.csv")

	if err.Code != ErrCodeFileNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFileNotFound)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidInput, "test"), ErrCodeInvalidInput, true},
		{"non-matching code", New(ErrCodeInvalidInput, "test"), ErrCodeInvalidStyle, false},
		{"outer code wins", Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInternal, true},
		{"fmt wrapped", fmt.Errorf("layout: %w", New(ErrCodeInvalidGroupNum, "bad")), ErrCodeInvalidGroupNum, true},
		{"coded error", fmt.Errorf("compute: %w", codedErr{}), ErrCodeLengthMismatch, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
		{"empty code never matches", errors.New("plain"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidMarker, "test"), ErrCodeInvalidMarker},
		{"coded error", codedErr{}, ErrCodeLengthMismatch},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(New(ErrCodeInvalidGroupNum, "x")) {
		t.Error("INVALID_GROUP_NUM should be a validation error")
	}
	if !IsValidation(codedErr{}) {
		t.Error("LENGTH_MISMATCH should be a validation error")
	}
	if IsValidation(New(ErrCodeInternal, "x")) {
		t.Error("INTERNAL_ERROR should not be a validation error")
	}
	if IsValidation(errors.New("plain")) {
		t.Error("plain errors should not be validation errors")
	}
}
