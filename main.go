package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	biddingservice "github.com/ibuchix/auto-strada001testing-sub006/internal/biddingService"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/config"
	decisionservice "github.com/ibuchix/auto-strada001testing-sub006/internal/decisionService"
	lifecycleservice "github.com/ibuchix/auto-strada001testing-sub006/internal/lifecycleService"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/repository"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/server"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/stream"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/txn"
	handler "github.com/ibuchix/auto-strada001testing-sub006/services/auction/handler"
	"github.com/ibuchix/auto-strada001testing-sub006/utils"
)

func main() {
	// Optional .env for local development; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	broker := stream.NewBroker(cfg.Stream.SubscriberBuffer)
	defer broker.Close()

	engine := repository.NewMemoryEngine(broker, cfg.IncrementPolicy())
	prepopulateListings(engine)

	wrapper := txn.New(cfg.Retry)
	lifecycleSvc := lifecycleservice.NewManager(engine, cfg.Lifecycle, wrapper)
	biddingSvc := biddingservice.NewBiddingService(engine, lifecycleSvc, cfg.IncrementPolicy(), wrapper)
	decisionSvc := decisionservice.NewWorkflow(engine, wrapper)

	auctionHandler := handler.NewAuctionHandler(biddingSvc, lifecycleSvc, decisionSvc)
	router := server.SetupRouter(auctionHandler)

	port := ":" + cfg.Port
	utils.Info("starting auction server", map[string]any{"port": port})
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateListings adds sample listings to the in-memory engine
func prepopulateListings(engine *repository.MemoryEngine) {
	listings := []models.Listing{
		{ListingID: "listing1", SellerID: "seller1", Make: "Toyota", Model: "Corolla", Year: 2019, Mileage: 64000, Valuation: 20000},
		{ListingID: "listing2", SellerID: "seller1", Make: "BMW", Model: "320d", Year: 2021, Mileage: 41000, Valuation: 45000},
		{ListingID: "listing3", SellerID: "seller2", Make: "Ford", Model: "Fiesta", Year: 2017, Mileage: 98000, Valuation: 15000},
	}

	for _, listing := range listings {
		engine.AddListing(listing)
	}
}
