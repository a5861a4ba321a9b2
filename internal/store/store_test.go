package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

const (
	testWalletA = "0x1111111111111111111111111111111111111111"
	testWalletB = "0x2222222222222222222222222222222222222222"
	testWalletC = "0x3333333333333333333333333333333333333333"
)

var testLotteryDay = time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestInvoice(number, wallet string) CreateInvoiceInput {
	return CreateInvoiceInput{
		InvoiceNumber:   number,
		CarrierNumber:   "/CARRIER-" + wallet[len(wallet)-4:],
		WalletAddress:   wallet,
		PoolID:          "1",
		DonationPercent: 50,
		Amount:          "120.50",
		PurchaseDate:    testLotteryDay.AddDate(0, -1, 0),
		LotteryDay:      testLotteryDay,
	}
}

// createMintedInvoice stores an invoice and assigns it a token type
func createMintedInvoice(t *testing.T, store Store, number, wallet, tokenTypeID string) *schema.Invoice {
	t.Helper()
	ctx := context.Background()

	invoice, err := store.CreateInvoice(ctx, buildTestInvoice(number, wallet))
	require.NoError(t, err)
	require.NoError(t, store.AssignInvoiceTokenType(ctx, invoice.ID, tokenTypeID))

	minted, err := store.GetInvoiceByNumber(ctx, number)
	require.NoError(t, err)
	require.NotNil(t, minted)
	return minted
}

// =============================================================================
// Test: Users
// =============================================================================

func testUsers(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get user", func(t *testing.T) {
		user, err := store.CreateUser(ctx, CreateUserInput{
			WalletAddress:   testWalletA,
			CarrierNumber:   "/ABC1234",
			PoolID:          "1",
			DonationPercent: 30,
		})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)

		byWallet, err := store.GetUserByWallet(ctx, testWalletA)
		require.NoError(t, err)
		require.NotNil(t, byWallet)
		assert.Equal(t, "/ABC1234", byWallet.CarrierNumber)

		byCarrier, err := store.GetUserByCarrier(ctx, "/ABC1234")
		require.NoError(t, err)
		require.NotNil(t, byCarrier)
		assert.Equal(t, testWalletA, byCarrier.WalletAddress)
	})

	t.Run("duplicate wallet or carrier", func(t *testing.T) {
		_, err := store.CreateUser(ctx, CreateUserInput{
			WalletAddress:   testWalletA,
			CarrierNumber:   "/OTHER01",
			PoolID:          "1",
			DonationPercent: 30,
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		_, err = store.CreateUser(ctx, CreateUserInput{
			WalletAddress:   testWalletB,
			CarrierNumber:   "/ABC1234",
			PoolID:          "1",
			DonationPercent: 30,
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("update user", func(t *testing.T) {
		poolID := "7"
		percent := 80
		user, err := store.UpdateUser(ctx, testWalletA, UpdateUserInput{PoolID: &poolID, DonationPercent: &percent})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "7", user.PoolID)
		assert.Equal(t, 80, user.DonationPercent)
	})

	t.Run("unknown user", func(t *testing.T) {
		user, err := store.GetUserByWallet(ctx, testWalletC)
		require.NoError(t, err)
		assert.Nil(t, user)

		percent := 50
		updated, err := store.UpdateUser(ctx, testWalletC, UpdateUserInput{DonationPercent: &percent})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

// =============================================================================
// Test: Invoices
// =============================================================================

func testInvoiceRegistration(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create, assign token type and read back", func(t *testing.T) {
		invoice := createMintedInvoice(t, store, "AB12345678", testWalletA, "42")
		require.NotNil(t, invoice.TokenTypeID)
		assert.Equal(t, "42", *invoice.TokenTypeID)
		assert.False(t, invoice.Drawn)
		assert.False(t, invoice.Claimed)
		assert.Equal(t, int64(0), invoice.PrizeAmount)
	})

	t.Run("duplicate invoice number", func(t *testing.T) {
		_, err := store.CreateInvoice(ctx, buildTestInvoice("AB12345678", testWalletB))
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("delete only removes unminted invoices", func(t *testing.T) {
		pending, err := store.CreateInvoice(ctx, buildTestInvoice("CD00000001", testWalletA))
		require.NoError(t, err)
		require.NoError(t, store.DeleteInvoice(ctx, pending.ID))

		gone, err := store.GetInvoiceByNumber(ctx, "CD00000001")
		require.NoError(t, err)
		assert.Nil(t, gone)

		minted, err := store.GetInvoiceByNumber(ctx, "AB12345678")
		require.NoError(t, err)
		require.NoError(t, store.DeleteInvoice(ctx, minted.ID))

		kept, err := store.GetInvoiceByNumber(ctx, "AB12345678")
		require.NoError(t, err)
		assert.NotNil(t, kept)
	})

	t.Run("assign token type to unknown invoice", func(t *testing.T) {
		err := store.AssignInvoiceTokenType(ctx, 999999, "1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list by wallet", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			createMintedInvoice(t, store, fmt.Sprintf("%08d", 10+i), testWalletB, "43")
		}

		invoices, total, err := store.GetInvoicesByWallet(ctx, testWalletB, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		assert.Len(t, invoices, 2)

		rest, _, err := store.GetInvoicesByWallet(ctx, testWalletB, 2, 2)
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})
}

func testUndrawnInvoices(t *testing.T, store Store) {
	ctx := context.Background()

	first := createMintedInvoice(t, store, "11111111", testWalletA, "1")
	createMintedInvoice(t, store, "22222222", testWalletB, "1")

	other := buildTestInvoice("33333333", testWalletC)
	other.LotteryDay = testLotteryDay.AddDate(0, 2, 0)
	_, err := store.CreateInvoice(ctx, other)
	require.NoError(t, err)

	t.Run("filters by lottery day", func(t *testing.T) {
		invoices, err := store.GetUndrawnInvoices(ctx, testLotteryDay)
		require.NoError(t, err)
		require.Len(t, invoices, 2)
		assert.Equal(t, "11111111", invoices[0].InvoiceNumber)
		assert.Equal(t, "22222222", invoices[1].InvoiceNumber)
	})

	t.Run("filters by numbers", func(t *testing.T) {
		invoices, err := store.GetUndrawnInvoicesByNumbers(ctx, testLotteryDay, []string{"22222222", "33333333", "99999999"})
		require.NoError(t, err)
		require.Len(t, invoices, 1)
		assert.Equal(t, "22222222", invoices[0].InvoiceNumber)

		empty, err := store.GetUndrawnInvoicesByNumbers(ctx, testLotteryDay, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("drawn transitions exactly once", func(t *testing.T) {
		changed, err := store.MarkInvoiceDrawn(ctx, first.ID, 200000)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = store.MarkInvoiceDrawn(ctx, first.ID, 1000)
		require.NoError(t, err)
		assert.False(t, changed)

		invoice, err := store.GetInvoiceByNumber(ctx, "11111111")
		require.NoError(t, err)
		assert.True(t, invoice.Drawn)
		assert.Equal(t, int64(200000), invoice.PrizeAmount)

		undrawn, err := store.GetUndrawnInvoices(ctx, testLotteryDay)
		require.NoError(t, err)
		require.Len(t, undrawn, 1)
		assert.Equal(t, "22222222", undrawn[0].InvoiceNumber)
	})
}

func testClaimBookkeeping(t *testing.T, store Store) {
	ctx := context.Background()

	createMintedInvoice(t, store, "40000001", testWalletA, "9")
	createMintedInvoice(t, store, "40000002", testWalletA, "9")
	createMintedInvoice(t, store, "40000003", testWalletB, "9")
	createMintedInvoice(t, store, "40000004", testWalletC, "10")

	t.Run("distinct wallets per token type", func(t *testing.T) {
		wallets, err := store.GetInvoiceWalletsByTokenType(ctx, "9")
		require.NoError(t, err)
		assert.Equal(t, []string{testWalletA, testWalletB}, wallets)

		none, err := store.GetInvoiceWalletsByTokenType(ctx, "404")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("mark claimed is scoped and idempotent", func(t *testing.T) {
		claimedAt := time.Now().UTC()
		affected, err := store.MarkInvoicesClaimed(ctx, "9", []string{testWalletA, testWalletC}, claimedAt)
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)

		affected, err = store.MarkInvoicesClaimed(ctx, "9", []string{testWalletA}, claimedAt)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)

		other, err := store.GetInvoiceByNumber(ctx, "40000004")
		require.NoError(t, err)
		assert.False(t, other.Claimed)

		claimed, err := store.GetInvoiceByNumber(ctx, "40000001")
		require.NoError(t, err)
		assert.True(t, claimed.Claimed)
		assert.NotNil(t, claimed.ClaimedAt)
	})

	t.Run("claimed wallets", func(t *testing.T) {
		wallets, err := store.GetClaimedWalletsByTokenType(ctx, "9")
		require.NoError(t, err)
		assert.Equal(t, []string{testWalletA}, wallets)
	})
}

// =============================================================================
// Test: Token holders
// =============================================================================

func testTokenHolders(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("insert then refresh", func(t *testing.T) {
		err := store.UpsertTokenHolders(ctx, []schema.TokenHolder{
			{TokenTypeID: "5", WalletAddress: testWalletA, Balance: "3", LastUpdated: now.Add(-2 * time.Hour)},
			{TokenTypeID: "5", WalletAddress: testWalletB, Balance: "1", LastUpdated: now.Add(-2 * time.Hour)},
		})
		require.NoError(t, err)

		err = store.UpsertTokenHolders(ctx, []schema.TokenHolder{
			{TokenTypeID: "5", WalletAddress: testWalletA, Balance: "115792089237316195423570985008687907853269984665640564039457584007913129639935", LastUpdated: now},
		})
		require.NoError(t, err)

		holders, err := store.GetTokenHolders(ctx, "5")
		require.NoError(t, err)
		require.Len(t, holders, 2)
		assert.Equal(t, testWalletA, holders[0].WalletAddress)
		assert.Equal(t, "115792089237316195423570985008687907853269984665640564039457584007913129639935", holders[0].Balance)
		assert.True(t, holders[0].LastUpdated.Equal(now))
		assert.Equal(t, "1", holders[1].Balance)
	})

	t.Run("empty upsert is a no-op", func(t *testing.T) {
		require.NoError(t, store.UpsertTokenHolders(ctx, nil))
	})

	t.Run("unknown token type", func(t *testing.T) {
		holders, err := store.GetTokenHolders(ctx, "404")
		require.NoError(t, err)
		assert.Empty(t, holders)
	})
}

// =============================================================================
// Test: Relayer transactions
// =============================================================================

func testRelayerTransactions(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("pending row finalized once", func(t *testing.T) {
		tx, err := store.CreateRelayerTransaction(ctx, CreateRelayerTransactionInput{
			TxHash:      "0xaaa1",
			TxType:      schema.RelayerTxTypeMarkAsDistributed,
			FromAddress: testWalletA,
			ToAddress:   testWalletB,
			Metadata:    map[string]interface{}{"token_type_id": "77", "pool_id": "1"},
		})
		require.NoError(t, err)
		assert.Equal(t, schema.RelayerTxStatusPending, tx.Status)

		var metadata map[string]interface{}
		require.NoError(t, json.Unmarshal(tx.Metadata, &metadata))
		assert.Equal(t, "77", metadata["token_type_id"])

		found, err := store.HasSuccessfulTokenTypeTransaction(ctx, schema.RelayerTxTypeMarkAsDistributed, "77")
		require.NoError(t, err)
		assert.False(t, found)

		pending, err := store.GetPendingTokenTypeTransactions(ctx, schema.RelayerTxTypeMarkAsDistributed, "77")
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "0xaaa1", pending[0].TxHash)

		gasUsed := "21000"
		gasPrice := "1000000000"
		changed, err := store.FinalizeRelayerTransaction(ctx, "0xaaa1", FinalizeRelayerTransactionInput{
			Status:      schema.RelayerTxStatusSuccess,
			GasUsed:     &gasUsed,
			GasPrice:    &gasPrice,
			ConfirmedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.True(t, changed)

		message := "late failure"
		changed, err = store.FinalizeRelayerTransaction(ctx, "0xaaa1", FinalizeRelayerTransactionInput{
			Status:       schema.RelayerTxStatusFailed,
			ErrorMessage: &message,
			ConfirmedAt:  time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.False(t, changed)

		stored, err := store.GetRelayerTransactionByHash(ctx, "0xaaa1")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, schema.RelayerTxStatusSuccess, stored.Status)
		require.NotNil(t, stored.GasUsed)
		assert.Equal(t, "21000", *stored.GasUsed)
		assert.Nil(t, stored.ErrorMessage)
		assert.NotNil(t, stored.ConfirmedAt)

		found, err = store.HasSuccessfulTokenTypeTransaction(ctx, schema.RelayerTxTypeMarkAsDistributed, "77")
		require.NoError(t, err)
		assert.True(t, found)

		pending, err = store.GetPendingTokenTypeTransactions(ctx, schema.RelayerTxTypeMarkAsDistributed, "77")
		require.NoError(t, err)
		assert.Empty(t, pending)

		found, err = store.HasSuccessfulTokenTypeTransaction(ctx, schema.RelayerTxTypeMarkAsDistributed, "78")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("unknown hash", func(t *testing.T) {
		stored, err := store.GetRelayerTransactionByHash(ctx, "0xdead")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})
}

// =============================================================================
// Test: System logs and cursors
// =============================================================================

func testSystemLogs(t *testing.T, store Store) {
	ctx := context.Background()

	err := store.CreateSystemLog(ctx, schema.SystemLogLevelAlert, "Relayer balance low", map[string]interface{}{"type": "LOW_BALANCE"})
	require.NoError(t, err)

	err = store.CreateSystemLog(ctx, schema.SystemLogLevelInfo, "no context", nil)
	require.NoError(t, err)
}

func testBlockCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent cursor returns 0", func(t *testing.T) {
		cursor, err := store.GetBlockCursor(ctx, "test_chain_nonexistent")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cursor)
	})

	t.Run("set and update cursor", func(t *testing.T) {
		name := "eip155:1:lottery"

		require.NoError(t, store.SetBlockCursor(ctx, name, 100))
		require.NoError(t, store.SetBlockCursor(ctx, name, 200))

		cursor, err := store.GetBlockCursor(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, uint64(200), cursor)
	})
}

// RunStoreTests runs every store test against a fresh store per test
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Users", testUsers},
		{"InvoiceRegistration", testInvoiceRegistration},
		{"UndrawnInvoices", testUndrawnInvoices},
		{"ClaimBookkeeping", testClaimBookkeeping},
		{"TokenHolders", testTokenHolders},
		{"RelayerTransactions", testRelayerTransactions},
		{"SystemLogs", testSystemLogs},
		{"BlockCursor", testBlockCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, initDB(t))
		})
	}
}
