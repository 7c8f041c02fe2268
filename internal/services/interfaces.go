package services

import (
	"rms/internal/models"
)

// AIToolServicer defines the contract for AI tool catalog business logic.
type AIToolServicer interface {
	GetAllTools() ([]models.AITool, error)
	GetToolByID(id string) (*models.AITool, error)
	CreateTool(name, monthlyPrice string) (*models.AITool, error)
	UpdateTool(id, name, monthlyPrice string) (*models.AITool, error)
	DeleteTool(id string) error
}

// AllocationRequest carries the raw payload for a new allocation request.
// The allocation service validates it, resolves the referenced tool, and
// copies the tool's name and price onto the created record.
type AllocationRequest struct {
	EmployeeID         string
	EmployeeName       string
	EmployeeEmail      string
	EmployeeDepartment string
	AIToolID           string
	StartDate          string
	EndDate            string
	Notes              string
}

// AllocationServicer defines the contract for allocation business logic,
// including the approval state machine.
type AllocationServicer interface {
	CreateAllocation(req AllocationRequest) (*models.Allocation, error)
	GetAllocationByID(id string) (*models.Allocation, error)
	GetEmployeeAllocations(employeeID string) ([]models.Allocation, error)
	GetActiveEmployeeAllocations(employeeID string) ([]models.Allocation, error)
	GetPendingRequests() ([]models.Allocation, error)
	GetProcessedRequests() ([]models.Allocation, error)
	ApproveAllocation(id string) (*models.Allocation, error)
	RejectAllocation(id, reason string) (*models.Allocation, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
