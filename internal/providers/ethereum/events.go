package ethereum

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/feral-file/invoice-lottery/internal/domain"
)

// ErrEventNotFound is returned when a receipt does not carry the expected event
var ErrEventNotFound = errors.New("event not found in receipt")

// ParseLotteryResultLog decodes a LotteryResultNotified log emitted by the pool contract
func ParseLotteryResultLog(vLog types.Log) (*domain.LotteryResult, error) {
	if len(vLog.Topics) != 3 || vLog.Topics[0] != lotteryResultNotifiedEventSignature {
		return nil, fmt.Errorf("log is not a LotteryResultNotified event")
	}

	values, err := PoolABI.Unpack("LotteryResultNotified", vLog.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack LotteryResultNotified: %w", err)
	}
	if len(values) != 3 {
		return nil, fmt.Errorf("unexpected LotteryResultNotified data length: %d", len(values))
	}

	return &domain.LotteryResult{
		TokenTypeID:    new(big.Int).SetBytes(vLog.Topics[1].Bytes()),
		PoolID:         new(big.Int).SetBytes(vLog.Topics[2].Bytes()),
		TotalAmount:    values[0].(*big.Int),
		DonationAmount: values[1].(*big.Int),
		RewardPerToken: values[2].(*big.Int),
		TxHash:         vLog.TxHash.Hex(),
		BlockNumber:    vLog.BlockNumber,
		LogIndex:       vLog.Index,
	}, nil
}

// ParseTokensMinted extracts the token type id from the TokensMinted event of a mint receipt
func ParseTokensMinted(receipt *types.Receipt, tokenAddress common.Address) (*big.Int, error) {
	for _, vLog := range receipt.Logs {
		if vLog == nil || vLog.Address != tokenAddress {
			continue
		}
		if len(vLog.Topics) != 3 || vLog.Topics[0] != tokensMintedEventSignature {
			continue
		}
		return new(big.Int).SetBytes(vLog.Topics[1].Bytes()), nil
	}

	return nil, fmt.Errorf("TokensMinted: %w", ErrEventNotFound)
}

// LotteryResultTopic is the topic filter of LotteryResultNotified
func LotteryResultTopic() common.Hash {
	return lotteryResultNotifiedEventSignature
}
