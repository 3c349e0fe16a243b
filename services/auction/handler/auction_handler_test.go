package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
	biddingservice "github.com/ibuchix/auto-strada001testing-sub006/internal/biddingService"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/services/auction/helpers"
)

// identityFor injects the capability the middleware would normally resolve
// from the request headers.
func identityFor(actorID string, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(helpers.CapabilityKey, models.Capability{ActorID: actorID, Role: role})
		c.Next()
	}
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBidding := NewMockBiddingServiceInterface(ctrl)
	handler := NewAuctionHandler(mockBidding, nil, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityFor("dealer1", models.RoleDealer))
	router.POST("/bids", handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, resp map[string]any)
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{
				ListingID: "listing1",
				Amount:    11000,
			},
			mockSetup: func() {
				mockBidding.EXPECT().
					SubmitBid(gomock.Any(), models.Capability{ActorID: "dealer1", Role: models.RoleDealer}, "listing1", int64(11000)).
					Return(biddingservice.BidOutcome{
						Bid: models.Bid{
							BidID:     "bid1",
							ListingID: "listing1",
							DealerID:  "dealer1",
							Amount:    11000,
							Sequence:  1,
							CreatedAt: now,
						},
						MinimumNextBid: 11100,
						Txn:            models.TransactionRecord{CorrelationID: "corr1"},
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, resp map[string]any) {
				data := resp["data"].(map[string]any)
				require.Equal(t, "listing1", data["listing_id"])
				require.Equal(t, "dealer1", data["dealer_id"])
				require.Equal(t, float64(11000), data["amount"])
				require.Equal(t, float64(11100), data["minimum_next_bid"])
				require.Equal(t, "corr1", data["correlation_id"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_listing_id",
			requestBody: helpers.PlaceBidRequest{
				Amount: 100,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "bid_too_low_carries_minimum",
			requestBody: helpers.PlaceBidRequest{
				ListingID: "listing1",
				Amount:    9000,
			},
			mockSetup: func() {
				mockBidding.EXPECT().
					SubmitBid(gomock.Any(), gomock.Any(), "listing1", int64(9000)).
					Return(biddingservice.BidOutcome{}, fmt.Errorf("submit bid: %w", &auctionerrors.BidTooLowError{Minimum: 10800}))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
			validateData: func(t *testing.T, resp map[string]any) {
				require.Equal(t, float64(10800), resp["minimum_next_bid"])
			},
		},
		{
			name: "self_bid_forbidden",
			requestBody: helpers.PlaceBidRequest{
				ListingID: "listing1",
				Amount:    11000,
			},
			mockSetup: func() {
				mockBidding.EXPECT().
					SubmitBid(gomock.Any(), gomock.Any(), "listing1", int64(11000)).
					Return(biddingservice.BidOutcome{}, fmt.Errorf("submit bid: %w", auctionerrors.ErrSelfBidNotAllowed))
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "you cannot bid on your own listing",
		},
		{
			name: "auction_not_active",
			requestBody: helpers.PlaceBidRequest{
				ListingID: "listing1",
				Amount:    11000,
			},
			mockSetup: func() {
				mockBidding.EXPECT().
					SubmitBid(gomock.Any(), gomock.Any(), "listing1", int64(11000)).
					Return(biddingservice.BidOutcome{}, fmt.Errorf("submit bid: %w", auctionerrors.ErrAuctionNotActive))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction is not active",
		},
		{
			name: "transient_exhaustion_is_503",
			requestBody: helpers.PlaceBidRequest{
				ListingID: "listing1",
				Amount:    11000,
			},
			mockSetup: func() {
				mockBidding.EXPECT().
					SubmitBid(gomock.Any(), gomock.Any(), "listing1", int64(11000)).
					Return(biddingservice.BidOutcome{}, fmt.Errorf("submit_bid [corr2]: %w", auctionerrors.ErrTransient))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedMsg:    "temporary failure, please retry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := performRequest(router, http.MethodPost, "/bids", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)

			resp := decodeBody(t, w)
			require.Equal(t, tt.expectedMsg, resp["message"])
			if tt.validateData != nil {
				tt.validateData(t, resp)
			}
		})
	}
}

// Test ScheduleAuctionHandler
func TestScheduleAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLifecycle := NewMockLifecycleServiceInterface(ctrl)
	handler := NewAuctionHandler(nil, mockLifecycle, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityFor("seller1", models.RoleSeller))
	router.POST("/listings/:listing_id/auction", handler.ScheduleAuctionHandler)

	startsAt := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	endsAt := startsAt.Add(24 * time.Hour)

	t.Run("success", func(t *testing.T) {
		mockLifecycle.EXPECT().
			Schedule(gomock.Any(), models.Capability{ActorID: "seller1", Role: models.RoleSeller}, "listing1", startsAt, endsAt).
			Return(models.AuctionSchedule{
				ListingID:    "listing1",
				StartsAt:     startsAt,
				EndsAt:       endsAt,
				ScheduledEnd: endsAt,
				Status:       models.AuctionScheduled,
			}, nil)

		w := performRequest(router, http.MethodPost, "/listings/listing1/auction", helpers.ScheduleAuctionRequest{
			StartsAt: startsAt,
			EndsAt:   endsAt,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		resp := decodeBody(t, w)
		data := resp["data"].(map[string]any)
		require.Equal(t, "listing1", data["listing_id"])
		require.Equal(t, string(models.AuctionScheduled), data["status"])
	})

	t.Run("ends_before_start_rejected_by_binding", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/listings/listing1/auction", helpers.ScheduleAuctionRequest{
			StartsAt: endsAt,
			EndsAt:   startsAt,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not_owner_forbidden", func(t *testing.T) {
		mockLifecycle.EXPECT().
			Schedule(gomock.Any(), gomock.Any(), "listing2", startsAt, endsAt).
			Return(models.AuctionSchedule{}, fmt.Errorf("schedule auction: %w", auctionerrors.ErrPermissionDenied))

		w := performRequest(router, http.MethodPost, "/listings/listing2/auction", helpers.ScheduleAuctionRequest{
			StartsAt: startsAt,
			EndsAt:   endsAt,
		})
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// Test EndAuctionHandler
func TestEndAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLifecycle := NewMockLifecycleServiceInterface(ctrl)
	handler := NewAuctionHandler(nil, mockLifecycle, nil)

	gin.SetMode(gin.TestMode)

	t.Run("admin_ends_auction", func(t *testing.T) {
		router := gin.New()
		router.Use(identityFor("admin1", models.RoleAdmin))
		router.POST("/listings/:listing_id/auction/end", handler.EndAuctionHandler)

		final := int64(12500)
		mockLifecycle.EXPECT().
			End(gomock.Any(), "listing1").
			Return(models.AuctionResult{
				ResultID:      "result1",
				ListingID:     "listing1",
				FinalPrice:    &final,
				TotalBids:     4,
				UniqueBidders: 2,
				SaleStatus:    models.SaleSold,
				EndedAt:       time.Now().UTC(),
			}, nil)

		w := performRequest(router, http.MethodPost, "/listings/listing1/auction/end", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		data := resp["data"].(map[string]any)
		require.Equal(t, "result1", data["result_id"])
		require.Equal(t, float64(12500), data["final_price"])
		require.Equal(t, string(models.SaleSold), data["sale_status"])
	})

	t.Run("dealer_forbidden", func(t *testing.T) {
		router := gin.New()
		router.Use(identityFor("dealer1", models.RoleDealer))
		router.POST("/listings/:listing_id/auction/end", handler.EndAuctionHandler)

		w := performRequest(router, http.MethodPost, "/listings/listing1/auction/end", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("not_yet_expired_conflicts", func(t *testing.T) {
		router := gin.New()
		router.Use(identityFor("admin1", models.RoleAdmin))
		router.POST("/listings/:listing_id/auction/end", handler.EndAuctionHandler)

		mockLifecycle.EXPECT().
			End(gomock.Any(), "listing1").
			Return(models.AuctionResult{}, fmt.Errorf("end auction: %w", auctionerrors.ErrAuctionNotExpired))

		w := performRequest(router, http.MethodPost, "/listings/listing1/auction/end", nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

// Test RecordDecisionHandler
func TestRecordDecisionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDecisions := NewMockDecisionServiceInterface(ctrl)
	handler := NewAuctionHandler(nil, nil, mockDecisions)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityFor("seller1", models.RoleSeller))
	router.POST("/results/:result_id/decision", handler.RecordDecisionHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success_accepted",
			requestBody: helpers.DecisionRequest{Decision: "accepted"},
			mockSetup: func() {
				mockDecisions.EXPECT().
					RecordDecision(gomock.Any(), models.Capability{ActorID: "seller1", Role: models.RoleSeller}, "result1", models.DecisionAccepted).
					Return(models.SellerBidDecision{
						ResultID:  "result1",
						SellerID:  "seller1",
						Decision:  models.DecisionAccepted,
						CreatedAt: now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "decision recorded successfully",
		},
		{
			name:           "unknown_decision_value",
			requestBody:    map[string]string{"decision": "maybe"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "already_recorded",
			requestBody: helpers.DecisionRequest{Decision: "declined"},
			mockSetup: func() {
				mockDecisions.EXPECT().
					RecordDecision(gomock.Any(), gomock.Any(), "result1", models.DecisionDeclined).
					Return(models.SellerBidDecision{}, fmt.Errorf("record decision: %w", auctionerrors.ErrDecisionAlreadyRecorded))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "this has already been responded to",
		},
		{
			name:        "unsold_result_conflicts",
			requestBody: helpers.DecisionRequest{Decision: "accepted"},
			mockSetup: func() {
				mockDecisions.EXPECT().
					RecordDecision(gomock.Any(), gomock.Any(), "result1", models.DecisionAccepted).
					Return(models.SellerBidDecision{}, fmt.Errorf("record decision: %w", auctionerrors.ErrConflict))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "operation conflicts with current state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := performRequest(router, http.MethodPost, "/results/result1/decision", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)

			resp := decodeBody(t, w)
			require.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}

// Test GetResultHandler
func TestGetResultHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDecisions := NewMockDecisionServiceInterface(ctrl)
	handler := NewAuctionHandler(nil, nil, mockDecisions)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityFor("seller1", models.RoleSeller))
	router.GET("/results/:result_id", handler.GetResultHandler)

	t.Run("unsold_result_has_null_price", func(t *testing.T) {
		mockDecisions.EXPECT().
			GetResult("result1").
			Return(models.AuctionResult{
				ResultID:   "result1",
				ListingID:  "listing1",
				FinalPrice: nil,
				TotalBids:  0,
				SaleStatus: models.SaleUnsold,
				EndedAt:    time.Now().UTC(),
			}, nil)

		w := performRequest(router, http.MethodGet, "/results/result1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		data := resp["data"].(map[string]any)
		require.Nil(t, data["final_price"])
		require.Equal(t, string(models.SaleUnsold), data["sale_status"])
	})

	t.Run("not_found", func(t *testing.T) {
		mockDecisions.EXPECT().
			GetResult("missing").
			Return(models.AuctionResult{}, fmt.Errorf("get result: %w", auctionerrors.ErrResultNotFound))

		w := performRequest(router, http.MethodGet, "/results/missing", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test ReservePreviewHandler
func TestReservePreviewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBidding := NewMockBiddingServiceInterface(ctrl)
	handler := NewAuctionHandler(mockBidding, nil, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityFor("seller1", models.RoleSeller))
	router.GET("/pricing/reserve", handler.ReservePreviewHandler)

	t.Run("success", func(t *testing.T) {
		mockBidding.EXPECT().
			ReservePreview(int64(20000)).
			Return(int64(10800), nil)

		w := performRequest(router, http.MethodGet, "/pricing/reserve?valuation=20000", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		data := resp["data"].(map[string]any)
		require.Equal(t, float64(10800), data["reserve_price"])
	})

	t.Run("non_numeric_valuation", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/pricing/reserve?valuation=abc", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing_valuation", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/pricing/reserve", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero_valuation_unprocessable", func(t *testing.T) {
		mockBidding.EXPECT().
			ReservePreview(int64(0)).
			Return(int64(0), fmt.Errorf("reserve price: %w", auctionerrors.ErrNoValuation))

		w := performRequest(router, http.MethodGet, "/pricing/reserve?valuation=0", nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

// Test GetMinimumNextBidHandler
func TestGetMinimumNextBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBidding := NewMockBiddingServiceInterface(ctrl)
	handler := NewAuctionHandler(mockBidding, nil, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityFor("dealer1", models.RoleDealer))
	router.GET("/listings/:listing_id/minimum", handler.GetMinimumNextBidHandler)

	mockBidding.EXPECT().
		MinimumNextBid("listing1").
		Return(int64(11100), nil)

	w := performRequest(router, http.MethodGet, "/listings/listing1/minimum", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	data := resp["data"].(map[string]any)
	require.Equal(t, float64(11100), data["minimum_next_bid"])
}
