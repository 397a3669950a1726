package routes

import (
	"wastebazaar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPrices = "/prices"
	PathRules  = "/rules"
)

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler, ruleHandler *handlers.RuleHandler) {
	prices := rg.Group(PathPrices)
	{
		prices.POST("/calculate", pricingHandler.CalculatePrice)
		prices.GET("/market/:material_type", pricingHandler.MarketPrices)
	}

	rules := rg.Group(PathRules)
	{
		rules.POST("", ruleHandler.CreateRule)
		rules.GET("", ruleHandler.ListRules)
		rules.GET("/:id", ruleHandler.GetRule)
		rules.PATCH("/:id", ruleHandler.UpdateRule)
		rules.PATCH("/:id/approve", ruleHandler.ApproveRule)
		rules.PATCH("/:id/reject", ruleHandler.RejectRule)
	}
}
