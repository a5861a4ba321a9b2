package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/invoice-lottery/internal/api/shared/constants"
)

// ListInvoicesQueryParams holds query parameters for GET /invoices/user/:walletAddress
type ListInvoicesQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseListInvoicesQuery parses query parameters for GET /invoices/user/:walletAddress
func ParseListInvoicesQuery(c *gin.Context) (*ListInvoicesQueryParams, error) {
	var params ListInvoicesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}
	if params.Limit <= 0 {
		params.Limit = constants.DEFAULT_INVOICES_LIMIT
	}

	return &params, nil
}
