package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{name: "domain error", err: &Error{Code: EINVALID, Message: "bad input"}, want: EINVALID},
		{name: "wrapped domain error", err: fmt.Errorf("handler: %w", &Error{Code: ENOTFOUND}), want: ENOTFOUND},
		{name: "plain error", err: errors.New("boom"), want: EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.want {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{name: "domain error", err: &Error{Code: EINVALID, Message: "Cart is empty"}, want: "Cart is empty"},
		{
			name: "internal error hides details",
			err:  Internal(errors.New("connection refused"), "checkout.submit", "order submission failed"),
			want: "An internal error occurred. Please try again later.",
		},
		{name: "plain error hides details", err: errors.New("boom"), want: "An internal error occurred. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "message only", err: &Error{Message: "boom"}, want: "boom"},
		{name: "op and message", err: &Error{Op: "cart.add", Message: "boom"}, want: "cart.add: boom"},
		{
			name: "op, message and wrapped error",
			err:  &Error{Op: "cart.add", Message: "boom", Err: errors.New("inner")},
			want: "cart.add: boom: inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := Internal(inner, "op", "failed")

	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestIsCode(t *testing.T) {
	err := Invalid("checkout.begin", "cart is empty")

	if !IsCode(err, EINVALID) {
		t.Error("expected IsCode to match EINVALID")
	}
	if IsCode(err, ENOTFOUND) {
		t.Error("did not expect IsCode to match ENOTFOUND")
	}
}

func TestValidationError(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		err := NewValidationError("checkout.contact", "email", "is required")

		if !IsValidationError(err) {
			t.Fatal("expected a validation error")
		}
		if got := err.Error(); got != "checkout.contact: email: is required" {
			t.Errorf("Error() = %q", got)
		}

		fields := GetValidationFields(err)
		if fields["email"] != "is required" {
			t.Errorf("Fields = %v", fields)
		}
	})

	t.Run("multiple fields", func(t *testing.T) {
		err := &ValidationError{
			Op:     "checkout.shipping",
			Fields: map[string]string{"address": "is required", "pincode": "is required"},
		}

		if got := err.Error(); got != "checkout.shipping: validation failed for 2 fields" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("non-validation error", func(t *testing.T) {
		if IsValidationError(errors.New("boom")) {
			t.Error("plain error must not be a validation error")
		}
		if GetValidationFields(errors.New("boom")) != nil {
			t.Error("expected nil fields for a plain error")
		}
	})
}
