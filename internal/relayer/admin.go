package relayer

import (
	"context"
	"math/big"

	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/providers/ethereum"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

func (r *relayer) RegisterPool(ctx context.Context, poolID *big.Int, beneficiary string, name string, lotteryMonth *big.Int) (*domain.TxResult, error) {
	beneficiaryAddress, err := parseAddress(beneficiary)
	if err != nil {
		return nil, err
	}

	data, err := pack(ethereum.PoolABI, "registerPool", poolID, beneficiaryAddress, name, lotteryMonth)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeRegisterPool,
		signer:   r.signers.Admin,
		to:       r.pool,
		data:     data,
		gasLimit: GasLimitRegisterPool,
		metadata: map[string]interface{}{
			"pool_id":       poolID.String(),
			"beneficiary":   beneficiaryAddress.Hex(),
			"name":          name,
			"lottery_month": lotteryMonth.String(),
		},
	})
}

func (r *relayer) UpdateMinDonationPercent(ctx context.Context, poolID *big.Int, percent uint8) (*domain.TxResult, error) {
	data, err := pack(ethereum.PoolABI, "updateMinDonationPercent", poolID, percent)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeUpdateMinDonationPercent,
		signer:   r.signers.Admin,
		to:       r.pool,
		data:     data,
		gasLimit: GasLimitUpdateMinDonationPercent,
		metadata: map[string]interface{}{
			"pool_id":              poolID.String(),
			"min_donation_percent": percent,
		},
	})
}

func (r *relayer) WithdrawDonation(ctx context.Context, poolID *big.Int) (*domain.TxResult, error) {
	data, err := pack(ethereum.PoolABI, "withdrawDonation", poolID)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeWithdrawDonation,
		signer:   r.signers.Admin,
		to:       r.pool,
		data:     data,
		gasLimit: GasLimitAdmin,
		metadata: map[string]interface{}{"pool_id": poolID.String()},
	})
}

func (r *relayer) UpdateBeneficiary(ctx context.Context, poolID *big.Int, beneficiary string) (*domain.TxResult, error) {
	beneficiaryAddress, err := parseAddress(beneficiary)
	if err != nil {
		return nil, err
	}

	data, err := pack(ethereum.PoolABI, "updateBeneficiary", poolID, beneficiaryAddress)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeUpdateBeneficiary,
		signer:   r.signers.Admin,
		to:       r.pool,
		data:     data,
		gasLimit: GasLimitAdmin,
		metadata: map[string]interface{}{
			"pool_id":     poolID.String(),
			"beneficiary": beneficiaryAddress.Hex(),
		},
	})
}

func (r *relayer) DeactivatePool(ctx context.Context, poolID *big.Int) (*domain.TxResult, error) {
	data, err := pack(ethereum.PoolABI, "deactivatePool", poolID)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeDeactivatePool,
		signer:   r.signers.Admin,
		to:       r.pool,
		data:     data,
		gasLimit: GasLimitAdmin,
		metadata: map[string]interface{}{"pool_id": poolID.String()},
	})
}

func (r *relayer) ClaimReward(ctx context.Context, walletAddress string, tokenTypeID *big.Int) (*domain.TxResult, error) {
	wallet, err := parseAddress(walletAddress)
	if err != nil {
		return nil, err
	}

	data, err := pack(ethereum.PoolABI, "claimReward", wallet, tokenTypeID)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeClaimReward,
		signer:   r.signers.Admin,
		to:       r.pool,
		data:     data,
		gasLimit: GasLimitAdmin,
		metadata: map[string]interface{}{
			"token_type_id":  tokenTypeID.String(),
			"wallet_address": wallet.Hex(),
		},
	})
}

func (r *relayer) SetURI(ctx context.Context, uri string) (*domain.TxResult, error) {
	data, err := pack(ethereum.InvoiceTokenABI, "setURI", uri)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeSetURI,
		signer:   r.signers.Admin,
		to:       r.invoiceToken,
		data:     data,
		gasLimit: GasLimitAdmin,
		metadata: map[string]interface{}{"uri": uri},
	})
}

func (r *relayer) SetPoolContract(ctx context.Context, address string) (*domain.TxResult, error) {
	poolContract, err := parseAddress(address)
	if err != nil {
		return nil, err
	}

	data, err := pack(ethereum.InvoiceTokenABI, "setPoolContract", poolContract)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeSetPoolContract,
		signer:   r.signers.Admin,
		to:       r.invoiceToken,
		data:     data,
		gasLimit: GasLimitAdmin,
		metadata: map[string]interface{}{"pool_contract": poolContract.Hex()},
	})
}
