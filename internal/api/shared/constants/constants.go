package constants

const (
	MAX_INVOICES_PER_BATCH = 100
	MAX_PAGE_SIZE          = 100
	DEFAULT_OFFSET         = uint64(0)
	DEFAULT_INVOICES_LIMIT = 20
	MAX_POOL_NAME_LENGTH   = 128
	MAX_TOKEN_URI_LENGTH   = 512
)
