package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mallhub/backend/internal/interfaces/http/handler"
)

// crudHandler is the handler set every property resource exposes
type crudHandler interface {
	Create(c *gin.Context)
	BulkCreate(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func resourceGroup(name string, h crudHandler) *DomainGroup {
	return NewDomainGroup(name, "/"+name).
		POST("", h.Create).
		POST("/bulk", h.BulkCreate).
		GET("", h.List).
		GET("/:id", h.Get).
		PATCH("/:id", h.Update).
		DELETE("/:id", h.Delete)
}

// PropertyRoutes returns the account, mall and unit route groups
func PropertyRoutes(accounts *handler.AccountHandler, malls *handler.MallHandler, units *handler.UnitHandler) []RouteRegistrar {
	return []RouteRegistrar{
		resourceGroup("accounts", accounts),
		resourceGroup("malls", malls),
		resourceGroup("units", units),
	}
}
