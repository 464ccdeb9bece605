package reconciliation

import (
	"context"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/reconciliation"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService handles manual resolution of pending purchase reviews
type ReviewService struct {
	reviewRepo     reconciliation.ReviewRepository
	orderRepo      order.Repository
	employeeRepo   budget.EmployeeRepository
	adjustmentRepo budget.AdjustmentRepository
	eventPublisher shared.EventPublisher
	audit          shared.AuditSink
	logger         *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo reconciliation.ReviewRepository,
	orderRepo order.Repository,
	employeeRepo budget.EmployeeRepository,
	adjustmentRepo budget.AdjustmentRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:     reviewRepo,
		orderRepo:      orderRepo,
		employeeRepo:   employeeRepo,
		adjustmentRepo: adjustmentRepo,
		audit:          shared.NopAuditSink{},
		logger:         logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ReviewService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetAuditSink sets the audit sink for state-changing operations
func (s *ReviewService) SetAuditSink(sink shared.AuditSink) {
	s.audit = sink
}

// ListByStatus returns reviews in the given status
func (s *ReviewService) ListByStatus(ctx context.Context, status reconciliation.ReviewStatus, filter shared.Filter) ([]ReviewResponse, int64, error) {
	if !status.IsValid() {
		return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown review status")
	}
	reviews, total, err := s.reviewRepo.FindByStatus(ctx, status, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, ToReviewResponse(&reviews[i]))
	}
	return out, total, nil
}

// GetByID returns one review
func (s *ReviewService) GetByID(ctx context.Context, reviewID uuid.UUID) (*ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	response := ToReviewResponse(review)
	return &response, nil
}

// ResolveMatch binds a pending review to a chosen order of the same
// employee. Matching has no budget effect; the order already reserved it.
func (s *ReviewService) ResolveMatch(ctx context.Context, reviewID, actorID uuid.UUID, req ResolveMatchRequest) (*ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	matched, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if matched.EmployeeID != review.EmployeeID {
		return nil, shared.NewDomainError("ORDER_EMPLOYEE_MISMATCH", "Order belongs to a different employee than the review")
	}

	if err := review.ResolveMatched(matched.ID, actorID); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}
	s.finishResolution(ctx, review, actorID, "review.match")

	response := ToReviewResponse(review)
	return &response, nil
}

// ResolveAdjust forces the auto-adjust path for a pending review: a
// negative externally-sourced adjustment for the entry amount plus a cache
// refresh.
func (s *ReviewService) ResolveAdjust(ctx context.Context, reviewID, actorID uuid.UUID) (*ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !review.IsPending() {
		return nil, reconciliation.ErrReviewAlreadyResolved
	}
	employee, err := s.employeeRepo.FindByID(ctx, review.EmployeeID)
	if err != nil {
		return nil, err
	}

	reason := "Unmatched external purchase"
	if review.Description != "" {
		reason = "Unmatched external purchase: " + review.Description
	}
	adjustment, err := budget.NewHibobAdjustment(review.EmployeeID, -review.AmountCents, reason, review.HibobEntryID)
	if err != nil {
		return nil, err
	}
	if err := s.adjustmentRepo.Save(ctx, adjustment); err != nil {
		return nil, err
	}

	if err := review.ResolveAdjusted(adjustment.ID, actorID); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}
	if err := s.refreshEmployeeCache(ctx, employee); err != nil {
		return nil, err
	}
	s.finishResolution(ctx, review, actorID, "review.adjust")

	response := ToReviewResponse(review)
	return &response, nil
}

// ResolveDismiss closes a pending review with no budget effect
func (s *ReviewService) ResolveDismiss(ctx context.Context, reviewID, actorID uuid.UUID) (*ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if err := review.ResolveDismissed(actorID); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}
	s.finishResolution(ctx, review, actorID, "review.dismiss")

	response := ToReviewResponse(review)
	return &response, nil
}

func (s *ReviewService) refreshEmployeeCache(ctx context.Context, employee *budget.Employee) error {
	spent, err := s.orderRepo.SumBudgetRelevantByEmployee(ctx, employee.ID)
	if err != nil {
		return err
	}
	adjustments, err := s.adjustmentRepo.SumByEmployee(ctx, employee.ID)
	if err != nil {
		return err
	}
	employee.RefreshCache(spent, adjustments, time.Now())
	return s.employeeRepo.Save(ctx, employee)
}

func (s *ReviewService) finishResolution(ctx context.Context, review *reconciliation.PurchaseReview, actorID uuid.UUID, action string) {
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, reconciliation.NewReviewResolvedEvent(review, actorID)); err != nil {
			s.logger.Warn("failed to publish review resolved event",
				zap.String("review_id", review.ID.String()),
				zap.Error(err))
		}
	}
	if err := s.audit.Record(ctx, actorID, action, "PurchaseReview", review.ID, map[string]any{
		"status": string(review.Status),
	}); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}
}
