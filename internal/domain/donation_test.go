package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonationPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  DonationPolicy
		percent int
		wantErr bool
	}{
		{"default lower bound", DefaultDonationPolicy(), 25, false},
		{"default upper bound", DefaultDonationPolicy(), 100, false},
		{"default below range", DefaultDonationPolicy(), 24, true},
		{"default above range", DefaultDonationPolicy(), 101, true},
		{"allowed set accepts member", DonationPolicy{Allowed: []int{20, 50}}, 50, false},
		{"allowed set rejects in-range non member", DonationPolicy{Min: 0, Max: 100, Allowed: []int{20, 50}}, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate(tt.percent)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidDonationPercent))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToWei(t *testing.T) {
	assert.Equal(t, "200000000000000000000000", ToWei(200000).String())
	assert.Equal(t, "0", ToWei(0).String())
}
