package lottery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/invoice-lottery/internal/domain"
)

func TestMatchPrize(t *testing.T) {
	winning := domain.WinningNumbers{
		SpecialPrize: "87654321",
		GrandPrize:   "11223344",
		FirstPrize:   "12345678",
	}

	tests := []struct {
		name          string
		invoiceNumber string
		tier          domain.PrizeTier
		amount        int64
	}{
		{"special", "87654321", domain.PrizeTierSpecial, 10_000_000},
		{"grand", "11223344", domain.PrizeTierGrand, 2_000_000},
		{"first", "12345678", domain.PrizeTierFirst, 200_000},
		{"first with letter prefix", "AB12345678", domain.PrizeTierFirst, 200_000},
		{"first with dashed prefix", "AB-12345678", domain.PrizeTierFirst, 200_000},
		{"second", "92345678", domain.PrizeTierSecond, 40_000},
		{"third", "99345678", domain.PrizeTierThird, 10_000},
		{"fourth", "99945678", domain.PrizeTierFourth, 4_000},
		{"fifth", "99995678", domain.PrizeTierFifth, 1_000},
		{"sixth", "99999678", domain.PrizeTierSixth, 200},
		{"fourth-from-last digit differs", "99990678", domain.PrizeTierSixth, 200},
		{"last digit differs", "12345679", domain.PrizeTierNone, 0},
		{"suffix of grand prize does not count", "99993344", domain.PrizeTierNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := MatchPrize(tt.invoiceNumber, winning)
			assert.Equal(t, tt.tier, match.Tier)
			assert.Equal(t, tt.amount, match.AmountTWD)

			// deterministic
			assert.Equal(t, match, MatchPrize(tt.invoiceNumber, winning))
		})
	}
}

func TestMatchPrize_Precedence(t *testing.T) {
	// equal to the special prize and sharing 7 digits with the first prize
	winning := domain.WinningNumbers{SpecialPrize: "12345678", GrandPrize: "00000000", FirstPrize: "92345678"}
	match := MatchPrize("12345678", winning)
	assert.Equal(t, domain.PrizeTierSpecial, match.Tier)
	assert.Equal(t, domain.PrizeAmountSpecial, match.AmountTWD)

	winning = domain.WinningNumbers{SpecialPrize: "00000000", GrandPrize: "12345678", FirstPrize: "99945678"}
	assert.Equal(t, domain.PrizeTierGrand, MatchPrize("12345678", winning).Tier)
}

func TestMatchPrize_NoMatch(t *testing.T) {
	match := MatchPrize("00000000", domain.WinningNumbers{SpecialPrize: "11111111", GrandPrize: "22222222", FirstPrize: "33333333"})
	assert.Equal(t, domain.PrizeMatch{Tier: domain.PrizeTierNone, AmountTWD: 0}, match)
}

func TestNormalizeInvoiceNumber(t *testing.T) {
	assert.Equal(t, "12345678", NormalizeInvoiceNumber("AB12345678"))
	assert.Equal(t, "12345678", NormalizeInvoiceNumber("AB-1234 5678"))
	assert.Equal(t, "", NormalizeInvoiceNumber("ABCD"))
}

func TestCanonicalInvoiceNumber(t *testing.T) {
	assert.Equal(t, "AB12345678", CanonicalInvoiceNumber("ab-12345678"))
	assert.Equal(t, "AB12345678", CanonicalInvoiceNumber(" AB 12345678 "))
	assert.Equal(t, "12345678", CanonicalInvoiceNumber("12345678"))
	assert.Empty(t, CanonicalInvoiceNumber("--"))
}

func TestValidateWinningNumbers(t *testing.T) {
	valid := domain.WinningNumbers{SpecialPrize: "87654321", GrandPrize: "11223344", FirstPrize: "12345678"}
	require.NoError(t, ValidateWinningNumbers(valid))

	for _, invalid := range []domain.WinningNumbers{
		{SpecialPrize: "8765432", GrandPrize: "11223344", FirstPrize: "12345678"},
		{SpecialPrize: "87654321", GrandPrize: "1122334a", FirstPrize: "12345678"},
		{SpecialPrize: "87654321", GrandPrize: "11223344", FirstPrize: "123456789"},
		{SpecialPrize: "87654321", GrandPrize: "11223344", FirstPrize: ""},
	} {
		assert.ErrorIs(t, ValidateWinningNumbers(invalid), domain.ErrValidation)
	}
}

func TestValidateInvoiceNumber(t *testing.T) {
	for _, valid := range []string{"12345678", "AB12345678", "AB-12345678"} {
		assert.NoError(t, ValidateInvoiceNumber(valid), valid)
	}
	for _, invalid := range []string{"", "1234567", "ab12345678", "ABC12345678", "AB_12345678", "AB123456789"} {
		assert.ErrorIs(t, ValidateInvoiceNumber(invalid), domain.ErrValidation, invalid)
	}
}

func TestParseLotteryDate(t *testing.T) {
	day, err := ParseLotteryDate("2025-03-25")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC), day)

	for _, invalid := range []string{"2025-3-25", "25-03-2025", "2025/03/25", "2025-02-30", ""} {
		_, err := ParseLotteryDate(invalid)
		assert.ErrorIs(t, err, domain.ErrValidation, invalid)
	}
}
