package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// invoiceTokenABIJSON is the subset of the InvoiceToken (ERC1155) contract the relayer calls
const invoiceTokenABIJSON = `[
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"donationPercent","type":"uint8"},{"name":"poolId","type":"uint256"},{"name":"lotteryDay","type":"uint256"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"},{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getTokenTypeData","stateMutability":"view","inputs":[{"name":"tokenTypeId","type":"uint256"}],"outputs":[{"name":"donationPercent","type":"uint8"},{"name":"poolId","type":"uint256"},{"name":"lotteryDay","type":"uint256"},{"name":"hasBeenDrawn","type":"bool"}]},
	{"type":"function","name":"setURI","stateMutability":"nonpayable","inputs":[{"name":"newuri","type":"string"}],"outputs":[]},
	{"type":"function","name":"setPoolContract","stateMutability":"nonpayable","inputs":[{"name":"poolContract","type":"address"}],"outputs":[]},
	{"type":"event","name":"TokensMinted","anonymous":false,"inputs":[{"name":"tokenTypeId","type":"uint256","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]}
]`

// poolABIJSON is the subset of the donation Pool contract the relayer calls
const poolABIJSON = `[
	{"type":"function","name":"notifyLotteryResult","stateMutability":"nonpayable","inputs":[{"name":"tokenTypeId","type":"uint256"},{"name":"prizeAmount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"updateRewardPerToken","stateMutability":"nonpayable","inputs":[{"name":"tokenTypeId","type":"uint256"},{"name":"rewardPerToken","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"batchClaimReward","stateMutability":"nonpayable","inputs":[{"name":"users","type":"address[]"},{"name":"tokenTypeIds","type":"uint256[]"}],"outputs":[]},
	{"type":"function","name":"markAsDistributed","stateMutability":"nonpayable","inputs":[{"name":"tokenTypeId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"claimReward","stateMutability":"nonpayable","inputs":[{"name":"user","type":"address"},{"name":"tokenTypeId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"getClaimableReward","stateMutability":"view","inputs":[{"name":"user","type":"address"},{"name":"tokenTypeId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"registerPool","stateMutability":"nonpayable","inputs":[{"name":"poolId","type":"uint256"},{"name":"beneficiary","type":"address"},{"name":"name","type":"string"},{"name":"lotteryMonth","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"updateMinDonationPercent","stateMutability":"nonpayable","inputs":[{"name":"poolId","type":"uint256"},{"name":"minDonationPercent","type":"uint8"}],"outputs":[]},
	{"type":"function","name":"withdrawDonation","stateMutability":"nonpayable","inputs":[{"name":"poolId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"updateBeneficiary","stateMutability":"nonpayable","inputs":[{"name":"poolId","type":"uint256"},{"name":"newBeneficiary","type":"address"}],"outputs":[]},
	{"type":"function","name":"deactivatePool","stateMutability":"nonpayable","inputs":[{"name":"poolId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"pools","stateMutability":"view","inputs":[{"name":"","type":"uint256"}],"outputs":[{"name":"poolId","type":"uint256"},{"name":"beneficiary","type":"address"},{"name":"name","type":"string"},{"name":"lotteryMonth","type":"uint256"},{"name":"active","type":"bool"},{"name":"minDonationPercent","type":"uint8"},{"name":"totalDonationReceived","type":"uint256"},{"name":"pendingDonation","type":"uint256"},{"name":"lastWithdrawalTime","type":"uint256"}]},
	{"type":"function","name":"getAllPoolIds","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256[]"}]},
	{"type":"event","name":"LotteryResultNotified","anonymous":false,"inputs":[{"name":"tokenTypeId","type":"uint256","indexed":true},{"name":"poolId","type":"uint256","indexed":true},{"name":"totalAmount","type":"uint256","indexed":false},{"name":"donationAmount","type":"uint256","indexed":false},{"name":"rewardPerToken","type":"uint256","indexed":false}]}
]`

var (
	// InvoiceTokenABI is the parsed InvoiceToken ABI
	InvoiceTokenABI = mustParseABI(invoiceTokenABIJSON)
	// PoolABI is the parsed Pool ABI
	PoolABI = mustParseABI(poolABIJSON)

	// TokensMinted(uint256 indexed tokenTypeId, address indexed to, uint256 amount)
	tokensMintedEventSignature = crypto.Keccak256Hash([]byte("TokensMinted(uint256,address,uint256)"))

	// LotteryResultNotified(uint256 indexed tokenTypeId, uint256 indexed poolId, uint256 totalAmount, uint256 donationAmount, uint256 rewardPerToken)
	lotteryResultNotifiedEventSignature = crypto.Keccak256Hash([]byte("LotteryResultNotified(uint256,uint256,uint256,uint256,uint256)"))
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse ABI: %v", err))
	}
	return parsed
}
