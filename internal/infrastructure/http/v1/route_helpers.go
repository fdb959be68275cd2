// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// CatalogRouteHandler defines the interface for catalog handlers.
// All catalog handlers must implement these methods.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// DocumentRouteHandler defines the interface for document handlers.
// All document handlers must implement these methods.
type DocumentRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterCatalogRoutes registers standard CRUD routes for a catalog.
// This eliminates the need to manually wire up routes for each catalog.
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}

// RegisterDocumentRoutes registers standard CRUD routes for a document.
func RegisterDocumentRoutes(group *gin.RouterGroup, handler DocumentRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}
