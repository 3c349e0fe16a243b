package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/bidding"
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
)

// testEnv wires the full stack over the in-memory engine the way main does.
type testEnv struct {
	router *gin.Engine
	engine *repository.MemoryEngine
	broker *stream.Broker
}

// SetupTestEnv initializes the router with an in-memory engine seeded with
// the given listings.
func SetupTestEnv(t *testing.T, listings ...models.Listing) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	policy := bidding.IncrementPolicy{Kind: bidding.PolicyFixed, Step: 100}
	broker := stream.NewBroker(64)
	t.Cleanup(broker.Close)

	engine := repository.NewMemoryEngine(broker, policy)
	for _, listing := range listings {
		engine.AddListing(listing)
	}

	wrapper := txn.New(config.RetryConfig{MaxAttempts: 3, BaseBackoff: time.Millisecond})
	// A tiny extension window keeps short-lived test auctions from being
	// extended by their own seed bids.
	lifecycleSvc := lifecycleservice.NewManager(engine, config.LifecycleConfig{
		ExtensionWindow: 10 * time.Millisecond,
		ExtensionStep:   10 * time.Millisecond,
		MaxExtension:    time.Second,
	}, wrapper)
	biddingSvc := biddingservice.NewBiddingService(engine, lifecycleSvc, policy, wrapper)
	decisionSvc := decisionservice.NewWorkflow(engine, wrapper)

	auctionHandler := handler.NewAuctionHandler(biddingSvc, lifecycleSvc, decisionSvc)
	return &testEnv{
		router: server.SetupRouter(auctionHandler),
		engine: engine,
		broker: broker,
	}
}

// ExecuteAs executes an HTTP request with identity headers and parses the
// JSON response.
func (e *testEnv) ExecuteAs(t *testing.T, actorID string, role models.Role, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if actorID != "" {
		req.Header.Set("X-Actor-ID", actorID)
		req.Header.Set("X-Actor-Role", string(role))
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// data extracts the data envelope from a successful response.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}
