package budget

import (
	"context"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BudgetService handles budget ledger operations: accrual resolution, the
// cached available figure, and manual adjustments.
type BudgetService struct {
	employeeRepo   budget.EmployeeRepository
	ruleRepo       budget.BudgetRuleRepository
	overrideRepo   budget.OverrideRepository
	adjustmentRepo budget.AdjustmentRepository
	spentReader    budget.SpentReader
	eventPublisher shared.EventPublisher
	audit          shared.AuditSink
	logger         *zap.Logger
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(
	employeeRepo budget.EmployeeRepository,
	ruleRepo budget.BudgetRuleRepository,
	overrideRepo budget.OverrideRepository,
	adjustmentRepo budget.AdjustmentRepository,
	spentReader budget.SpentReader,
	logger *zap.Logger,
) *BudgetService {
	return &BudgetService{
		employeeRepo:   employeeRepo,
		ruleRepo:       ruleRepo,
		overrideRepo:   overrideRepo,
		adjustmentRepo: adjustmentRepo,
		spentReader:    spentReader,
		audit:          shared.NopAuditSink{},
		logger:         logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *BudgetService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetAuditSink sets the audit sink for state-changing operations
func (s *BudgetService) SetAuditSink(sink shared.AuditSink) {
	s.audit = sink
}

// GetAvailable returns the cached budget figures. This is the fast read
// path; it never recomputes and never locks.
func (s *BudgetService) GetAvailable(ctx context.Context, employeeID uuid.UUID) (*AvailableBudgetResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	response := ToAvailableBudgetResponse(employee)
	return &response, nil
}

// GetTimeline resolves the employee's per-year accrual history from global
// rules and personal overrides.
func (s *BudgetService) GetTimeline(ctx context.Context, employeeID uuid.UUID) ([]TimelineEntryResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	rules, err := s.ruleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	overrides, err := s.overrideRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	entries := budget.ResolveTimeline(employee.StartDate, rules, overrides, time.Now())
	return ToTimelineResponse(entries), nil
}

// RefreshCache recomputes the employee's spend and adjustment sums from the
// live ledger and overwrites the cached fields.
func (s *BudgetService) RefreshCache(ctx context.Context, employeeID uuid.UUID) (*AvailableBudgetResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := s.refreshEmployee(ctx, employee); err != nil {
		return nil, err
	}
	response := ToAvailableBudgetResponse(employee)
	return &response, nil
}

func (s *BudgetService) refreshEmployee(ctx context.Context, employee *budget.Employee) error {
	spent, err := s.spentReader.SpentCents(ctx, employee.ID)
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

// RecalculateTotal re-resolves the employee's accrued total from the
// timeline and stores it as the authoritative total_budget_cents.
func (s *BudgetService) RecalculateTotal(ctx context.Context, employeeID uuid.UUID) (*AvailableBudgetResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	rules, err := s.ruleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	overrides, err := s.overrideRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	var total int64
	entries := budget.ResolveTimeline(employee.StartDate, rules, overrides, time.Now())
	if len(entries) > 0 {
		total = entries[len(entries)-1].CumulativeCents
	}
	employee.SetTotalBudget(total)
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("recalculated employee budget total",
		zap.String("employee_id", employeeID.String()),
		zap.Int64("total_cents", total))

	response := ToAvailableBudgetResponse(employee)
	return &response, nil
}

// CreateAdjustment records a manual signed ledger entry and refreshes the
// employee's cache.
func (s *BudgetService) CreateAdjustment(ctx context.Context, actorID uuid.UUID, req CreateAdjustmentRequest) (*AdjustmentResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	adjustment, err := budget.NewManualAdjustment(req.EmployeeID, req.AmountCents, req.Reason, actorID)
	if err != nil {
		return nil, err
	}
	if err := s.adjustmentRepo.Save(ctx, adjustment); err != nil {
		return nil, err
	}
	if err := s.refreshEmployee(ctx, employee); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, budget.NewAdjustmentCreatedEvent(adjustment)); err != nil {
			s.logger.Warn("failed to publish adjustment created event",
				zap.String("adjustment_id", adjustment.ID.String()),
				zap.Error(err))
		}
	}
	if err := s.audit.Record(ctx, actorID, "adjustment.create", "BudgetAdjustment", adjustment.ID, map[string]any{
		"employee_id":  req.EmployeeID.String(),
		"amount_cents": req.AmountCents,
		"reason":       req.Reason,
	}); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}

	response := ToAdjustmentResponse(adjustment)
	return &response, nil
}

// DeleteAdjustment removes a manual adjustment and refreshes the cache.
// Externally-sourced adjustments can only change through reconciliation.
func (s *BudgetService) DeleteAdjustment(ctx context.Context, actorID, adjustmentID uuid.UUID) error {
	adjustment, err := s.adjustmentRepo.FindByID(ctx, adjustmentID)
	if err != nil {
		return err
	}
	if !adjustment.IsManual() {
		return shared.NewDomainError("ADJUSTMENT_IMMUTABLE", "Externally-sourced adjustments cannot be deleted")
	}
	employee, err := s.employeeRepo.FindByID(ctx, adjustment.EmployeeID)
	if err != nil {
		return err
	}

	if err := s.adjustmentRepo.Delete(ctx, adjustmentID); err != nil {
		return err
	}
	if err := s.refreshEmployee(ctx, employee); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, budget.NewAdjustmentDeletedEvent(adjustment)); err != nil {
			s.logger.Warn("failed to publish adjustment deleted event",
				zap.String("adjustment_id", adjustmentID.String()),
				zap.Error(err))
		}
	}
	if err := s.audit.Record(ctx, actorID, "adjustment.delete", "BudgetAdjustment", adjustmentID, nil); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}
	return nil
}

// ListAdjustments returns all adjustments of one employee
func (s *BudgetService) ListAdjustments(ctx context.Context, employeeID uuid.UUID) ([]AdjustmentResponse, error) {
	adjustments, err := s.adjustmentRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]AdjustmentResponse, 0, len(adjustments))
	for i := range adjustments {
		out = append(out, ToAdjustmentResponse(&adjustments[i]))
	}
	return out, nil
}

// CreateRule adds a global accrual rule
func (s *BudgetService) CreateRule(ctx context.Context, actorID uuid.UUID, req CreateRuleRequest) (*RuleResponse, error) {
	rule, err := budget.NewBudgetRule(req.EffectiveFrom, req.InitialCents, req.YearlyIncrementCents)
	if err != nil {
		return nil, err
	}
	if err := s.ruleRepo.Save(ctx, rule); err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, actorID, "budget_rule.create", "BudgetRule", rule.ID, map[string]any{
		"effective_from": req.EffectiveFrom.Format("2006-01-02"),
	}); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}
	response := ToRuleResponse(rule)
	return &response, nil
}

// ListRules returns all global accrual rules
func (s *BudgetService) ListRules(ctx context.Context) ([]RuleResponse, error) {
	rules, err := s.ruleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RuleResponse, 0, len(rules))
	for i := range rules {
		out = append(out, ToRuleResponse(&rules[i]))
	}
	return out, nil
}

// CreateOverride adds a per-employee accrual override
func (s *BudgetService) CreateOverride(ctx context.Context, actorID uuid.UUID, req CreateOverrideRequest) (*OverrideResponse, error) {
	if _, err := s.employeeRepo.FindByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}
	override, err := budget.NewUserBudgetOverride(req.EmployeeID, req.EffectiveFrom, req.EffectiveUntil,
		req.InitialCents, req.YearlyIncrementCents, req.Reason)
	if err != nil {
		return nil, err
	}
	if err := s.overrideRepo.Save(ctx, override); err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, actorID, "budget_override.create", "UserBudgetOverride", override.ID, map[string]any{
		"employee_id": req.EmployeeID.String(),
		"reason":      req.Reason,
	}); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}
	response := ToOverrideResponse(override)
	return &response, nil
}

// ListOverrides returns an employee's overrides
func (s *BudgetService) ListOverrides(ctx context.Context, employeeID uuid.UUID) ([]OverrideResponse, error) {
	overrides, err := s.overrideRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]OverrideResponse, 0, len(overrides))
	for i := range overrides {
		out = append(out, ToOverrideResponse(&overrides[i]))
	}
	return out, nil
}

// DeleteOverride removes a per-employee override
func (s *BudgetService) DeleteOverride(ctx context.Context, actorID, overrideID uuid.UUID) error {
	if err := s.overrideRepo.Delete(ctx, overrideID); err != nil {
		return err
	}
	if err := s.audit.Record(ctx, actorID, "budget_override.delete", "UserBudgetOverride", overrideID, nil); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}
	return nil
}
