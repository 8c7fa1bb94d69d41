package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid address", "alice@example.com", false},
		{"missing at sign", "aliceexample.com", true},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		pw      string
		wantErr bool
	}{
		{"too short", "Ab1defg", true},
		{"missing uppercase", "abcdefg1", true},
		{"missing lowercase", "ABCDEFG1", true},
		{"missing digit", "Abcdefgh", true},
		{"meets all rules", "Abcdefg1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.pw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTournamentName(t *testing.T) {
	assert.Error(t, ValidateTournamentName("ab"))
	assert.NoError(t, ValidateTournamentName("Spring Open"))
	assert.Error(t, ValidateTournamentName(string(make([]byte, 256))))
}

func TestValidateTimezone(t *testing.T) {
	assert.NoError(t, ValidateTimezone("America/New_York"))
	assert.NoError(t, ValidateTimezone("UTC"))
	assert.Error(t, ValidateTimezone("Not/ARealZone"))
}
