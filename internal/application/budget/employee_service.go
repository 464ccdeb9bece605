package budget

import (
	"context"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeService manages the employee roster: creation, HR identity
// linking and deactivation. Budget math lives in BudgetService.
type EmployeeService struct {
	employeeRepo budget.EmployeeRepository
	ruleRepo     budget.BudgetRuleRepository
	overrideRepo budget.OverrideRepository
	audit        shared.AuditSink
	logger       *zap.Logger
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(
	employeeRepo budget.EmployeeRepository,
	ruleRepo budget.BudgetRuleRepository,
	overrideRepo budget.OverrideRepository,
	logger *zap.Logger,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		ruleRepo:     ruleRepo,
		overrideRepo: overrideRepo,
		audit:        shared.NopAuditSink{},
		logger:       logger,
	}
}

// SetAuditSink sets the audit sink for state-changing operations
func (s *EmployeeService) SetAuditSink(sink shared.AuditSink) {
	s.audit = sink
}

// Create registers a new employee and seeds their accrued total from the
// current rule timeline.
func (s *EmployeeService) Create(ctx context.Context, actorID uuid.UUID, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := budget.NewEmployee(req.FullName, req.Email, req.StartDate)
	if err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	entries := budget.ResolveTimeline(employee.StartDate, rules, nil, time.Now())
	if len(entries) > 0 {
		employee.SetTotalBudget(entries[len(entries)-1].CumulativeCents)
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, actorID, "employee.create", "Employee", employee.ID, map[string]any{
		"email": req.Email,
	}); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByID returns one employee
func (s *EmployeeService) GetByID(ctx context.Context, employeeID uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List returns a page of employees
func (s *EmployeeService) List(ctx context.Context, filter shared.Filter) ([]EmployeeResponse, int64, error) {
	employees, total, err := s.employeeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, ToEmployeeResponse(&employees[i]))
	}
	return out, total, nil
}

// LinkHibob attaches an external HR identity to the employee. Reconciliation
// only considers linked employees.
func (s *EmployeeService) LinkHibob(ctx context.Context, actorID, employeeID uuid.UUID, hibobID string) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := employee.LinkHibob(hibobID); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, actorID, "employee.link_hibob", "Employee", employeeID, map[string]any{
		"hibob_id": hibobID,
	}); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}
	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Deactivate marks an employee inactive. Inactive employees are excluded
// from reconciliation runs and from the active roster listing.
func (s *EmployeeService) Deactivate(ctx context.Context, actorID, employeeID uuid.UUID) error {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return err
	}
	employee.Deactivate()
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return err
	}
	if err := s.audit.Record(ctx, actorID, "employee.deactivate", "Employee", employeeID, nil); err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}
	return nil
}
