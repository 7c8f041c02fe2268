package models

// AllocationStatus represents the approval state of an allocation request.
type AllocationStatus string

const (
	StatusPendingApproval AllocationStatus = "pending_approval"
	StatusApproved        AllocationStatus = "approved"
	StatusRejected        AllocationStatus = "rejected"
)

var validStatuses = map[AllocationStatus]bool{
	StatusPendingApproval: true,
	StatusApproved:        true,
	StatusRejected:        true,
}

// IsValid returns true if the status is one of the three allocation states.
func (s AllocationStatus) IsValid() bool {
	return validStatuses[s]
}

// IsTerminal returns true if no further transitions are allowed from s.
// approved and rejected are terminal; pending_approval is not.
func (s AllocationStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether the state machine permits moving from s to
// next. The only legal transitions are pending_approval -> approved and
// pending_approval -> rejected.
func (s AllocationStatus) CanTransitionTo(next AllocationStatus) bool {
	return s == StatusPendingApproval && next.IsTerminal()
}

// String returns the string representation of the status.
func (s AllocationStatus) String() string {
	return string(s)
}

// Allocation records one employee's time-bounded right to use one AI tool,
// carrying an approval status.
//
// AIToolName and MonthlyPrice are snapshots of the referenced tool taken at
// creation time. They never change, even if the tool is later edited or
// removed; an approved allocation records what was actually approved.
type Allocation struct {
	Base
	EmployeeID         string           `gorm:"not null;index" json:"employeeId"`
	EmployeeName       string           `gorm:"not null" json:"employeeName"`
	EmployeeEmail      string           `gorm:"not null" json:"employeeEmail"`
	EmployeeDepartment string           `gorm:"not null" json:"employeeDepartment"`
	AIToolID           string           `gorm:"column:ai_tool_id;not null;index" json:"aiToolId"`
	AIToolName         string           `gorm:"column:ai_tool_name;not null" json:"aiToolName"`
	MonthlyPrice       string           `gorm:"size:50;not null" json:"monthlyPrice"`
	StartDate          string           `gorm:"size:10;not null" json:"startDate"`
	EndDate            string           `gorm:"size:10;not null" json:"endDate"`
	Notes              string           `json:"notes,omitempty"`
	Status             AllocationStatus `gorm:"not null;default:pending_approval;index" json:"status"`
	RejectionReason    string           `json:"rejectionReason,omitempty"`
}
