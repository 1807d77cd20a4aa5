package public

import (
	handlershared "github.com/fresh-groceries/internal/http/handlers/shared"
	"github.com/fresh-groceries/internal/service"

	"github.com/gin-gonic/gin"
)

func currentActor(c *gin.Context) (service.Actor, bool) {
	return handlershared.CurrentActor(c)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	return handlershared.ParseIDParam(c, "id")
}
