package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "rms/internal/errors"
	"rms/internal/models"
)

// allocationService handles allocation business logic and owns the
// approval state machine.
type allocationService struct {
	db          *gorm.DB
	toolService AIToolServicer
}

// NewAllocationService creates a new AllocationServicer.
func NewAllocationService(db *gorm.DB, toolService AIToolServicer) AllocationServicer {
	return &allocationService{db: db, toolService: toolService}
}

// requiredFields maps payload field names to accessors, in the order they
// are reported when missing.
var requiredFields = []struct {
	name string
	get  func(AllocationRequest) string
}{
	{"employeeId", func(r AllocationRequest) string { return r.EmployeeID }},
	{"employeeName", func(r AllocationRequest) string { return r.EmployeeName }},
	{"employeeEmail", func(r AllocationRequest) string { return r.EmployeeEmail }},
	{"employeeDepartment", func(r AllocationRequest) string { return r.EmployeeDepartment }},
	{"aiToolId", func(r AllocationRequest) string { return r.AIToolID }},
	{"startDate", func(r AllocationRequest) string { return r.StartDate }},
	{"endDate", func(r AllocationRequest) string { return r.EndDate }},
}

// CreateAllocation validates the request, resolves the referenced tool, and
// creates a new allocation in pending_approval. The tool's name and monthly
// price are copied onto the record; later edits to the tool never affect it.
// Validation and the tool lookup both happen before any write.
func (s *allocationService) CreateAllocation(req AllocationRequest) (*models.Allocation, error) {
	var missing []string
	for _, f := range requiredFields {
		if strings.TrimSpace(f.get(req)) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"Missing required fields: "+strings.Join(missing, ", "))
	}

	tool, err := s.toolService.GetToolByID(strings.TrimSpace(req.AIToolID))
	if err != nil {
		return nil, err
	}

	allocation := &models.Allocation{
		EmployeeID:         strings.TrimSpace(req.EmployeeID),
		EmployeeName:       strings.TrimSpace(req.EmployeeName),
		EmployeeEmail:      strings.TrimSpace(req.EmployeeEmail),
		EmployeeDepartment: strings.TrimSpace(req.EmployeeDepartment),
		AIToolID:           tool.ID,
		AIToolName:         tool.Name,
		MonthlyPrice:       tool.MonthlyPrice,
		StartDate:          strings.TrimSpace(req.StartDate),
		EndDate:            strings.TrimSpace(req.EndDate),
		Notes:              strings.TrimSpace(req.Notes),
		Status:             models.StatusPendingApproval,
	}

	if err := s.db.Create(allocation).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return allocation, nil
}

// GetAllocationByID returns a single allocation by id.
func (s *allocationService) GetAllocationByID(id string) (*models.Allocation, error) {
	var allocation models.Allocation
	if err := s.db.First(&allocation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &allocation, nil
}

// GetEmployeeAllocations returns all allocations for an employee, any status,
// most recently created first.
func (s *allocationService) GetEmployeeAllocations(employeeID string) ([]models.Allocation, error) {
	return s.list("employee_id = ?", employeeID)
}

// GetActiveEmployeeAllocations returns the employee's approved allocations.
func (s *allocationService) GetActiveEmployeeAllocations(employeeID string) ([]models.Allocation, error) {
	return s.list("employee_id = ? AND status = ?", employeeID, models.StatusApproved)
}

// GetPendingRequests returns all pending_approval allocations across all
// employees, for the admin review queue.
func (s *allocationService) GetPendingRequests() ([]models.Allocation, error) {
	return s.list("status = ?", models.StatusPendingApproval)
}

// GetProcessedRequests returns all approved and rejected allocations.
func (s *allocationService) GetProcessedRequests() ([]models.Allocation, error) {
	return s.list("status IN ?", []models.AllocationStatus{models.StatusApproved, models.StatusRejected})
}

func (s *allocationService) list(query string, args ...interface{}) ([]models.Allocation, error) {
	// Initialized so empty results serialize as [] rather than null.
	allocations := []models.Allocation{}
	if err := s.db.Where(query, args...).Order("created_at DESC").Find(&allocations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return allocations, nil
}

// ApproveAllocation moves a pending allocation to approved and clears any
// rejection reason.
func (s *allocationService) ApproveAllocation(id string) (*models.Allocation, error) {
	return s.transition(id, models.StatusApproved, "", apperrors.ErrAllocationNotApprovable)
}

// RejectAllocation moves a pending allocation to rejected, recording the
// reason. The reason must be non-empty after trimming; a bad reason leaves
// the allocation untouched.
func (s *allocationService) RejectAllocation(id, reason string) (*models.Allocation, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.ErrRejectionReasonRequired
	}
	return s.transition(id, models.StatusRejected, reason, apperrors.ErrAllocationNotRejectable)
}

// transition is the only path that changes an allocation's status. It issues
// a conditional single-row update gated on the current status being
// pending_approval, then rereads the row to tell "no such id" apart from
// "wrong state". The reread happens after the write on purpose: a
// precondition query could be invalidated by a racing caller, but of two
// racing transitions at most one update matches the predicate, and the loser
// sees the terminal status on reread.
func (s *allocationService) transition(id string, next models.AllocationStatus, reason string, invalidState *apperrors.AppError) (*models.Allocation, error) {
	if !models.StatusPendingApproval.CanTransitionTo(next) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("illegal target status %q", next))
	}

	res := s.db.Model(&models.Allocation{}).
		Where("id = ? AND status = ?", id, models.StatusPendingApproval).
		Updates(map[string]interface{}{
			"status":           next,
			"rejection_reason": reason,
		})
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}

	if res.RowsAffected == 0 {
		// The conditional update matched nothing: either the id does not
		// exist, or the row is no longer pending. The reread tells the two
		// apart and never reports a repeated decision as a fresh success,
		// even when the requested status matches the stored one.
		if _, err := s.GetAllocationByID(id); err != nil {
			return nil, err
		}
		return nil, invalidState
	}

	return s.GetAllocationByID(id)
}
