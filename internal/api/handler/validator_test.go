package handler

import (
	"errors"
	"testing"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  registerRequest
		want string
	}{
		{
			name: "missing full name",
			req:  registerRequest{Email: "ada@example.com", Password: "secret123", ConfirmPassword: "secret123"},
			want: "full name is required",
		},
		{
			name: "bad email",
			req:  registerRequest{FullName: "Ada", Email: "ada", Password: "secret123", ConfirmPassword: "secret123"},
			want: "email must be a valid email",
		},
		{
			name: "mismatched confirmation",
			req:  registerRequest{FullName: "Ada", Email: "ada@example.com", Password: "secret123", ConfirmPassword: "nope"},
			want: "Passwords don't match!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Message != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, ve.Message)
			}
		})
	}

	if err := v.Validate(&registerRequest{FullName: "Ada", Email: "ada@example.com", Password: "secret123", ConfirmPassword: "secret123"}); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}
