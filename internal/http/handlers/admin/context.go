package admin

import (
	"github.com/fresh-groceries/internal/constants"

	"github.com/gin-gonic/gin"
)

func currentAdminID(c *gin.Context) uint {
	return c.GetUint(constants.ContextKeyUserID)
}
