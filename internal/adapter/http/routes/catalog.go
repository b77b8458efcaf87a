package routes

import (
	"bemu_storefront/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts   = "/products"
	PathCategories = "/categories"
	PathOrganiziro = "/organiziro"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, drawerHandler *handlers.DrawerHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}

	rg.GET(PathCategories, catalogHandler.ListCategories)

	organiziro := rg.Group(PathOrganiziro)
	{
		organiziro.GET("/products", catalogHandler.ListOrganiziroProducts)
		organiziro.POST("/calculate", drawerHandler.Calculate)
		organiziro.GET("/layout.xlsx", drawerHandler.ExportLayout)
	}
}
