package server

import (
	"github.com/gin-gonic/gin"

	handler "github.com/ibuchix/auto-strada001testing-sub006/services/auction/handler"
)

// SetupRouter configures all Gin routes for the auction subsystem
func SetupRouter(auctionHandler *handler.AuctionHandler) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CapabilityMiddleware)    // resolve caller capability per request

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	listings := router.Group("/listings")
	{
		listings.GET("/:listing_id/bids", auctionHandler.GetBidsByListingHandler)
		listings.GET("/:listing_id/highest", auctionHandler.GetHighestBidHandler)
		listings.GET("/:listing_id/minimum", auctionHandler.GetMinimumNextBidHandler)
		listings.POST("/:listing_id/auction", auctionHandler.ScheduleAuctionHandler)
		listings.POST("/:listing_id/auction/activate", auctionHandler.ActivateAuctionHandler)
		listings.POST("/:listing_id/auction/end", auctionHandler.EndAuctionHandler)
	}

	results := router.Group("/results")
	{
		results.GET("/:result_id", auctionHandler.GetResultHandler)
		results.POST("/:result_id/decision", auctionHandler.RecordDecisionHandler)
	}

	sellers := router.Group("/sellers")
	{
		sellers.GET("/:seller_id/listings", auctionHandler.GetListingsBySellerHandler)
	}

	pricing := router.Group("/pricing")
	{
		pricing.GET("/reserve", auctionHandler.ReservePreviewHandler)
	}

	return router
}
