package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/devsquadbr/crm-template/internal/httperr"
)

// writeError maps usecase failures: business errors become 400s with their
// code and message, anything else is a 500 behind a generic code.
func writeError(c *gin.Context, err error, internalCode string) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.BadRequest(c, be.Code, be.Message)
		return
	}
	httperr.Internal(c, internalCode, "Something went wrong")
}
