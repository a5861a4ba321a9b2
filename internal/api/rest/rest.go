package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/invoice-lottery/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// User endpoints
		v1.POST("/users", handler.RegisterUser)
		v1.GET("/users/:walletAddress", handler.GetUser)
		v1.PUT("/users/:walletAddress", handler.UpdateUser)

		// Invoice endpoints (called by the value-added center)
		v1.POST("/invoices/register", handler.RegisterInvoice)
		v1.POST("/invoices/batch-register", handler.BatchRegisterInvoices)
		v1.GET("/invoices/user/:walletAddress", handler.GetInvoicesByWallet)
		v1.GET("/invoices/lottery/:lotteryDay", handler.GetUndrawnInvoices)

		// Pool endpoints, writes are authorized by signature
		pools := v1.Group("/pools")
		{
			pools.POST("/register", handler.RegisterPool)
			pools.PUT("/:poolId/min-donation-percent", handler.UpdateMinDonationPercent)
			pools.POST("/:poolId/withdraw", handler.WithdrawDonation)
			pools.PUT("/:poolId/beneficiary", handler.UpdateBeneficiary)
			pools.DELETE("/:poolId", handler.DeactivatePool)
			pools.GET("", handler.ListPools)
			pools.GET("/:poolId", handler.GetPool)
		}

		// Reward endpoints
		v1.POST("/rewards/claim", handler.ClaimReward)
		v1.GET("/rewards/:walletAddress/:tokenTypeId", handler.GetClaimableReward)

		// Token endpoints (public read access)
		v1.GET("/tokens/:tokenTypeId", handler.GetTokenType)

		// Admin endpoints, authorized by the admin signature
		v1.PUT("/admin/token-uri", handler.SetTokenURI)
		v1.PUT("/admin/pool-contract", handler.SetPoolContract)

		// Oracle endpoints (requires authentication)
		v1.POST("/oracle/process-lottery", middleware.Auth(authCfg), handler.ProcessLottery)
	}
}
