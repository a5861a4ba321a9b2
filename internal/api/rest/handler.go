package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/invoice-lottery/internal/api/shared/dto"
	"github.com/feral-file/invoice-lottery/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// RegisterUser binds a carrier code to a wallet
	// POST /api/v1/users
	RegisterUser(c *gin.Context)

	// GetUser retrieves a user by wallet address
	// GET /api/v1/users/:walletAddress
	GetUser(c *gin.Context)

	// UpdateUser updates a user's pool and donation percent
	// PUT /api/v1/users/:walletAddress
	UpdateUser(c *gin.Context)

	// RegisterInvoice registers and mints a single invoice
	// POST /api/v1/invoices/register
	RegisterInvoice(c *gin.Context)

	// BatchRegisterInvoices registers and mints up to 100 invoices
	// POST /api/v1/invoices/batch-register
	BatchRegisterInvoices(c *gin.Context)

	// GetInvoicesByWallet lists the invoices of a wallet
	// GET /api/v1/invoices/user/:walletAddress?limit=<limit>&offset=<offset>
	GetInvoicesByWallet(c *gin.Context)

	// GetUndrawnInvoices lists the undrawn invoices of a lottery day
	// GET /api/v1/invoices/lottery/:lotteryDay
	GetUndrawnInvoices(c *gin.Context)

	// RegisterPool registers a charity pool (admin signature)
	// POST /api/v1/pools/register
	RegisterPool(c *gin.Context)

	// UpdateMinDonationPercent changes a pool's minimum donation percent (beneficiary signature)
	// PUT /api/v1/pools/:poolId/min-donation-percent
	UpdateMinDonationPercent(c *gin.Context)

	// WithdrawDonation withdraws a pool's pending donations (beneficiary signature)
	// POST /api/v1/pools/:poolId/withdraw
	WithdrawDonation(c *gin.Context)

	// UpdateBeneficiary replaces a pool's beneficiary (admin signature)
	// PUT /api/v1/pools/:poolId/beneficiary
	UpdateBeneficiary(c *gin.Context)

	// DeactivatePool deactivates a pool (admin signature)
	// DELETE /api/v1/pools/:poolId
	DeactivatePool(c *gin.Context)

	// ListPools lists the registered pool ids
	// GET /api/v1/pools
	ListPools(c *gin.Context)

	// GetPool retrieves a pool record
	// GET /api/v1/pools/:poolId
	GetPool(c *gin.Context)

	// ClaimReward claims a reward for a wallet (wallet signature)
	// POST /api/v1/rewards/claim
	ClaimReward(c *gin.Context)

	// GetClaimableReward reads the claimable reward of a wallet for a token type
	// GET /api/v1/rewards/:walletAddress/:tokenTypeId
	GetClaimableReward(c *gin.Context)

	// GetTokenType reads the on-chain data of a token type
	// GET /api/v1/tokens/:tokenTypeId
	GetTokenType(c *gin.Context)

	// SetTokenURI changes the invoice token metadata URI (admin signature)
	// PUT /api/v1/admin/token-uri
	SetTokenURI(c *gin.Context)

	// SetPoolContract points the invoice token at a pool contract (admin signature)
	// PUT /api/v1/admin/pool-contract
	SetPoolContract(c *gin.Context)

	// ProcessLottery runs the manual lottery notification (requires authentication)
	// POST /api/v1/oracle/process-lottery
	ProcessLottery(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// bindJSON decodes the request body, responding 400 on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	return true
}

func (h *handler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.executor.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *handler) GetUser(c *gin.Context) {
	user, err := h.executor.GetUser(c.Request.Context(), c.Param("walletAddress"))
	if err != nil {
		respondError(c, err, "Failed to get user")
		return
	}

	if user == nil {
		respondNotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *handler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.executor.UpdateUser(c.Request.Context(), c.Param("walletAddress"), req)
	if err != nil {
		respondError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *handler) RegisterInvoice(c *gin.Context) {
	var req dto.RegisterInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.executor.RegisterInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register invoice")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) BatchRegisterInvoices(c *gin.Context) {
	var req dto.BatchRegisterInvoicesRequest
	if !bindJSON(c, &req) {
		return
	}

	summary, err := h.executor.BatchRegisterInvoices(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register invoices")
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *handler) GetInvoicesByWallet(c *gin.Context) {
	queryParams, err := ParseListInvoicesQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	invoices, err := h.executor.GetInvoicesByWallet(
		c.Request.Context(),
		c.Param("walletAddress"),
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondError(c, err, "Failed to get invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

func (h *handler) GetUndrawnInvoices(c *gin.Context) {
	invoices, err := h.executor.GetUndrawnInvoices(c.Request.Context(), c.Param("lotteryDay"))
	if err != nil {
		respondError(c, err, "Failed to get invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

func (h *handler) RegisterPool(c *gin.Context) {
	var req dto.RegisterPoolRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.executor.RegisterPool(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register pool")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) UpdateMinDonationPercent(c *gin.Context) {
	var req dto.UpdateMinDonationPercentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.executor.UpdateMinDonationPercent(c.Request.Context(), c.Param("poolId"), req)
	if err != nil {
		respondError(c, err, "Failed to update min donation percent")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) WithdrawDonation(c *gin.Context) {
	var req dto.SignedRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.executor.WithdrawDonation(c.Request.Context(), c.Param("poolId"), req)
	if err != nil {
		respondError(c, err, "Failed to withdraw donation")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) UpdateBeneficiary(c *gin.Context) {
	var req dto.UpdateBeneficiaryRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.executor.UpdateBeneficiary(c.Request.Context(), c.Param("poolId"), req)
	if err != nil {
		respondError(c, err, "Failed to update beneficiary")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) DeactivatePool(c *gin.Context) {
	var req dto.SignedRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.executor.DeactivatePool(c.Request.Context(), c.Param("poolId"), req)
	if err != nil {
		respondError(c, err, "Failed to deactivate pool")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) ListPools(c *gin.Context) {
	pools, err := h.executor.ListPools(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list pools")
		return
	}

	c.JSON(http.StatusOK, pools)
}

func (h *handler) GetPool(c *gin.Context) {
	pool, err := h.executor.GetPool(c.Request.Context(), c.Param("poolId"))
	if err != nil {
		respondError(c, err, "Failed to get pool")
		return
	}

	c.JSON(http.StatusOK, pool)
}

func (h *handler) ClaimReward(c *gin.Context) {
	var req dto.ClaimRewardRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.executor.ClaimReward(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to claim reward")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) GetClaimableReward(c *gin.Context) {
	reward, err := h.executor.GetClaimableReward(c.Request.Context(), c.Param("walletAddress"), c.Param("tokenTypeId"))
	if err != nil {
		respondError(c, err, "Failed to get claimable reward")
		return
	}

	c.JSON(http.StatusOK, reward)
}

func (h *handler) GetTokenType(c *gin.Context) {
	tokenType, err := h.executor.GetTokenType(c.Request.Context(), c.Param("tokenTypeId"))
	if err != nil {
		respondError(c, err, "Failed to get token type")
		return
	}

	c.JSON(http.StatusOK, tokenType)
}

func (h *handler) SetTokenURI(c *gin.Context) {
	var req dto.SetTokenURIRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.executor.SetTokenURI(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to set token URI")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) SetPoolContract(c *gin.Context) {
	var req dto.SetPoolContractRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.executor.SetPoolContract(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to set pool contract")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) ProcessLottery(c *gin.Context) {
	var req dto.ProcessLotteryRequest
	if !bindJSON(c, &req) {
		return
	}

	summary, err := h.executor.ProcessLottery(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to process lottery")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
