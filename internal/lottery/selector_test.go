package lottery_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/lottery"
	"github.com/feral-file/invoice-lottery/internal/mocks"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

var lotteryDay = time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC)

func TestSelectWinners(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	selector := lottery.NewSelector(st)
	winning := domain.WinningNumbers{SpecialPrize: "87654321", GrandPrize: "11223344", FirstPrize: "12345678"}

	st.EXPECT().GetUndrawnInvoices(gomock.Any(), lotteryDay).Return([]schema.Invoice{
		{ID: 1, InvoiceNumber: "AB12345678"},
		{ID: 2, InvoiceNumber: "CD00000000"},
		{ID: 3, InvoiceNumber: "EF99999678"},
	}, nil)

	winners, err := selector.SelectWinners(context.Background(), lotteryDay, winning)
	require.NoError(t, err)
	require.Len(t, winners, 2)

	assert.Equal(t, "AB12345678", winners[0].Invoice.InvoiceNumber)
	assert.Equal(t, domain.PrizeTierFirst, winners[0].Match.Tier)
	assert.Equal(t, int64(200000), winners[0].Match.AmountTWD)

	assert.Equal(t, uint64(3), winners[1].Invoice.ID)
	assert.Equal(t, domain.PrizeTierSixth, winners[1].Match.Tier)
}

func TestSelectWinners_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	selector := lottery.NewSelector(st)
	winning := domain.WinningNumbers{SpecialPrize: "11111111", GrandPrize: "22222222", FirstPrize: "33333333"}

	st.EXPECT().GetUndrawnInvoices(gomock.Any(), lotteryDay).Return(nil, nil)
	winners, err := selector.SelectWinners(context.Background(), lotteryDay, winning)
	require.NoError(t, err)
	assert.Empty(t, winners)

	st.EXPECT().GetUndrawnInvoices(gomock.Any(), lotteryDay).Return([]schema.Invoice{{InvoiceNumber: "00000000"}}, nil)
	winners, err = selector.SelectWinners(context.Background(), lotteryDay, winning)
	require.NoError(t, err)
	assert.Empty(t, winners)
}

func TestSelectWinners_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	selector := lottery.NewSelector(st)

	_, err := selector.SelectWinners(context.Background(), lotteryDay, domain.WinningNumbers{SpecialPrize: "1"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	st.EXPECT().GetUndrawnInvoices(gomock.Any(), lotteryDay).Return(nil, errors.New("db down"))
	_, err = selector.SelectWinners(context.Background(), lotteryDay,
		domain.WinningNumbers{SpecialPrize: "11111111", GrandPrize: "22222222", FirstPrize: "33333333"})
	assert.Error(t, err)
}

func TestSelectExternalWinners(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	selector := lottery.NewSelector(st)

	st.EXPECT().
		GetUndrawnInvoicesByNumbers(gomock.Any(), lotteryDay, []string{"AB12345678", "AB-12345678", "CD11111111", "CD-11111111"}).
		Return([]schema.Invoice{{ID: 9, InvoiceNumber: "CD-11111111"}}, nil)

	winners, err := selector.SelectExternalWinners(context.Background(), lotteryDay, []domain.ExternalWinningNumber{
		{Number: "AB-12345678", Prize: 200},
		{Number: "CD-11111111", Prize: 1000},
		{Number: "CD-11111111", Prize: 5},
		{Number: "EF-00000000", Prize: 0},
	})
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, uint64(9), winners[0].Invoice.ID)
	assert.Equal(t, domain.PrizeMatch{Tier: domain.PrizeTierExternal, AmountTWD: 1000}, winners[0].Match)
}

func TestSelectExternalWinners_SpellingDiffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	selector := lottery.NewSelector(st)

	st.EXPECT().
		GetUndrawnInvoicesByNumbers(gomock.Any(), lotteryDay, []string{"AB12345678", "AB-12345678", "CD11111111", "CD-11111111", "22222222"}).
		Return([]schema.Invoice{
			{ID: 1, InvoiceNumber: "AB12345678"},
			{ID: 2, InvoiceNumber: "CD-11111111"},
			{ID: 3, InvoiceNumber: "22222222"},
		}, nil)

	winners, err := selector.SelectExternalWinners(context.Background(), lotteryDay, []domain.ExternalWinningNumber{
		{Number: "ab-12345678", Prize: 200},
		{Number: "CD 11111111", Prize: 1000},
		{Number: "22222222", Prize: 4000},
		{Number: "--", Prize: 10},
	})
	require.NoError(t, err)
	require.Len(t, winners, 3)
	assert.Equal(t, int64(200), winners[0].Match.AmountTWD)
	assert.Equal(t, int64(1000), winners[1].Match.AmountTWD)
	assert.Equal(t, int64(4000), winners[2].Match.AmountTWD)
}

func TestSelectExternalWinners_NoNumbers(t *testing.T) {
	ctrl := gomock.NewController(t)
	selector := lottery.NewSelector(mocks.NewMockStore(ctrl))

	winners, err := selector.SelectExternalWinners(context.Background(), lotteryDay, nil)
	require.NoError(t, err)
	assert.Empty(t, winners)
}
