package lottery

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/feral-file/invoice-lottery/internal/domain"
)

var (
	winningNumberPattern = regexp.MustCompile(`^\d{8}$`)
	invoiceNumberPattern = regexp.MustCompile(`^([A-Z]{2}-?)?\d{8}$`)
)

// suffixTiers lists the suffix rules against the first prize number, longest suffix first
var suffixTiers = []struct {
	digits int
	match  domain.PrizeMatch
}{
	{7, domain.PrizeMatch{Tier: domain.PrizeTierSecond, AmountTWD: domain.PrizeAmountSecond}},
	{6, domain.PrizeMatch{Tier: domain.PrizeTierThird, AmountTWD: domain.PrizeAmountThird}},
	{5, domain.PrizeMatch{Tier: domain.PrizeTierFourth, AmountTWD: domain.PrizeAmountFourth}},
	{4, domain.PrizeMatch{Tier: domain.PrizeTierFifth, AmountTWD: domain.PrizeAmountFifth}},
	{3, domain.PrizeMatch{Tier: domain.PrizeTierSixth, AmountTWD: domain.PrizeAmountSixth}},
}

// NormalizeInvoiceNumber strips every non-digit character, "AB-12345678" becomes "12345678"
func NormalizeInvoiceNumber(invoiceNumber string) string {
	var b strings.Builder
	b.Grow(len(invoiceNumber))
	for _, r := range invoiceNumber {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CanonicalInvoiceNumber uppercases an invoice number and drops separators, "ab-12345678" becomes "AB12345678"
func CanonicalInvoiceNumber(invoiceNumber string) string {
	var b strings.Builder
	b.Grow(len(invoiceNumber))
	for _, r := range strings.ToUpper(invoiceNumber) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchPrize matches an invoice number against the winning numbers of a draw.
// The winning numbers must have passed ValidateWinningNumbers.
func MatchPrize(invoiceNumber string, winning domain.WinningNumbers) domain.PrizeMatch {
	number := NormalizeInvoiceNumber(invoiceNumber)

	switch number {
	case winning.SpecialPrize:
		return domain.PrizeMatch{Tier: domain.PrizeTierSpecial, AmountTWD: domain.PrizeAmountSpecial}
	case winning.GrandPrize:
		return domain.PrizeMatch{Tier: domain.PrizeTierGrand, AmountTWD: domain.PrizeAmountGrand}
	case winning.FirstPrize:
		return domain.PrizeMatch{Tier: domain.PrizeTierFirst, AmountTWD: domain.PrizeAmountFirst}
	}

	for _, tier := range suffixTiers {
		if len(number) >= tier.digits && len(winning.FirstPrize) >= tier.digits &&
			number[len(number)-tier.digits:] == winning.FirstPrize[len(winning.FirstPrize)-tier.digits:] {
			return tier.match
		}
	}

	return domain.PrizeMatch{Tier: domain.PrizeTierNone, AmountTWD: 0}
}

// ValidateWinningNumbers checks that each winning number is exactly 8 digits
func ValidateWinningNumbers(winning domain.WinningNumbers) error {
	numbers := []struct{ name, value string }{
		{"specialPrize", winning.SpecialPrize},
		{"grandPrize", winning.GrandPrize},
		{"firstPrize", winning.FirstPrize},
	}
	for _, n := range numbers {
		if !winningNumberPattern.MatchString(n.value) {
			return fmt.Errorf("%w: %s must be 8 digits, got %q", domain.ErrValidation, n.name, n.value)
		}
	}
	return nil
}

// ValidateInvoiceNumber checks an invoice number is 8 digits with an optional 2-letter prefix
func ValidateInvoiceNumber(invoiceNumber string) error {
	if !invoiceNumberPattern.MatchString(invoiceNumber) {
		return fmt.Errorf("%w: invalid invoice number %q", domain.ErrValidation, invoiceNumber)
	}
	return nil
}

// ParseLotteryDate parses a YYYY-MM-DD date in UTC
func ParseLotteryDate(date string) (time.Time, error) {
	day, err := time.Parse(domain.LOTTERY_DATE_LAYOUT, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: lottery date must be YYYY-MM-DD, got %q", domain.ErrValidation, date)
	}
	return day, nil
}
