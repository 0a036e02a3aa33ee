package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "abc", want: ""},
		{in: "+7 (999) 123-45-67", want: "+79991234567"},
		{in: "8 (999) 123-45-67", want: "+79991234567"},
		{in: "79991234567", want: "+79991234567"},
		{in: "9991234567", want: "+79991234567"},
		{in: "12345", want: "+712345"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestFormatPhoneDisplay(t *testing.T) {
	assert.Equal(t, "+7 (999) 123-45-67", FormatPhoneDisplay("+79991234567"))
	assert.Equal(t, "+7123", FormatPhoneDisplay("+7123"))
}
