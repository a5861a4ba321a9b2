package domain

import (
	"fmt"
	"slices"
)

// DonationPolicy decides which donation percents a user may choose.
// When Allowed is non-empty only those exact values are accepted,
// otherwise any value within [Min, Max] is.
type DonationPolicy struct {
	Min     int
	Max     int
	Allowed []int
}

// DefaultDonationPolicy accepts 25 to 100 inclusive
func DefaultDonationPolicy() DonationPolicy {
	return DonationPolicy{Min: 25, Max: 100}
}

// Validate returns ErrInvalidDonationPercent when percent is not accepted
func (p DonationPolicy) Validate(percent int) error {
	if len(p.Allowed) > 0 {
		if !slices.Contains(p.Allowed, percent) {
			return fmt.Errorf("%w: %d is not one of %v", ErrInvalidDonationPercent, percent, p.Allowed)
		}
		return nil
	}

	if percent < p.Min || percent > p.Max {
		return fmt.Errorf("%w: %d must be between %d and %d", ErrInvalidDonationPercent, percent, p.Min, p.Max)
	}

	return nil
}
