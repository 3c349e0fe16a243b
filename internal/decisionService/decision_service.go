package decisionservice

import (
	"context"
	"fmt"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/repository"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/txn"
)

// Workflow records the seller's one-time accept/decline response to a sold
// auction result. The decision dialog can be triggered from two UI surfaces
// at once; the storage uniqueness constraint, not this code, guarantees
// only the first write lands.
type Workflow struct {
	repo    repository.AuctionDB
	wrapper *txn.Wrapper
}

// NewWorkflow creates the decision workflow.
func NewWorkflow(repo repository.AuctionDB, wrapper *txn.Wrapper) *Workflow {
	return &Workflow{repo: repo, wrapper: wrapper}
}

// RecordDecision writes the seller's decision for an auction result.
// Preconditions: the result is sold, the caller owns the listing, and no
// prior decision exists. A second attempt fails with
// ErrDecisionAlreadyRecorded and leaves the first decision unchanged.
func (w *Workflow) RecordDecision(ctx context.Context, caller models.Capability, resultID string, decision models.Decision) (models.SellerBidDecision, error) {
	if caller.Role != models.RoleSeller {
		return models.SellerBidDecision{}, fmt.Errorf("record decision for result %s: %w", resultID, auctionerrors.ErrPermissionDenied)
	}
	if decision != models.DecisionAccepted && decision != models.DecisionDeclined {
		return models.SellerBidDecision{}, fmt.Errorf("record decision for result %s: %q: %w", resultID, decision, auctionerrors.ErrInvalidDecision)
	}

	var recorded models.SellerBidDecision
	_, err := w.wrapper.Execute(ctx, "record_decision", func(context.Context) error {
		var execErr error
		recorded, execErr = w.repo.RecordDecision(models.SellerBidDecision{
			ResultID: resultID,
			SellerID: caller.ActorID,
			Decision: decision,
		})
		return execErr
	})
	return recorded, err
}

// GetResult returns an auction result for the decision surfaces.
func (w *Workflow) GetResult(resultID string) (models.AuctionResult, error) {
	result, err := w.repo.GetAuctionResult(resultID)
	if err != nil {
		return models.AuctionResult{}, fmt.Errorf("get result %s: %w", resultID, err)
	}
	return result, nil
}
