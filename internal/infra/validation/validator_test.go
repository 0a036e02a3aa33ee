package validation

import (
	"testing"

	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginInput struct {
	Phone string `json:"phone" validate:"required,ruphone"`
	Code  string `json:"code" validate:"omitempty,otpcode"`
	Role  string `json:"role" validate:"omitempty,role"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   loginInput
		wantErr string
	}{
		{name: "valid", input: loginInput{Phone: "+79991234567", Code: "1234", Role: "ADMIN", Email: "a@b.ru"}},
		{name: "short phone", input: loginInput{Phone: "+7999123456"}, wantErr: "phone:ruphone"},
		{name: "foreign phone", input: loginInput{Phone: "+19991234567"}, wantErr: "phone:ruphone"},
		{name: "letters in code", input: loginInput{Phone: "+79991234567", Code: "12a4"}, wantErr: "code:otpcode"},
		{name: "five digit code", input: loginInput{Phone: "+79991234567", Code: "12345"}, wantErr: "code:otpcode"},
		{name: "unknown role", input: loginInput{Phone: "+79991234567", Role: "ROOT"}, wantErr: "role:role"},
		{name: "bad email", input: loginInput{Phone: "+79991234567", Email: "nope"}, wantErr: "email:email"},
		{name: "missing phone", input: loginInput{}, wantErr: "phone:required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPatterns(t *testing.T) {
	assert.True(t, IsRUPhone("+79991234567"))
	assert.False(t, IsRUPhone("89991234567"))
	assert.True(t, IsOTPCode("0000"))
	assert.False(t, IsOTPCode("000"))
}

type contactInput struct {
	Email *string `json:"email" validate:"omitnil,clearable_email"`
}

func TestValidator_ClearableEmail(t *testing.T) {
	v := New()
	ptr := func(s string) *string { return &s }

	tests := []struct {
		name    string
		email   *string
		wantErr bool
	}{
		{name: "absent", email: nil},
		{name: "empty clears", email: ptr("")},
		{name: "blank clears", email: ptr("   ")},
		{name: "valid", email: ptr("ivan@example.ru")},
		{name: "invalid", email: ptr("ivan@"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&contactInput{Email: tt.email})
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			appErr, ok := errors.AsType[domainerrors.AppError](err)
			require.True(t, ok)
			assert.Equal(t, "email:clearable_email", appErr.Details())
		})
	}
}
