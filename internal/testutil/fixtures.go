package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"rms/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTool creates a catalog tool with a unique name.
func CreateTestTool(t *testing.T, db *gorm.DB) *models.AITool {
	t.Helper()
	return CreateTestToolWithPrice(t, db, "20")
}

// CreateTestToolWithPrice creates a catalog tool with the given monthly price.
func CreateTestToolWithPrice(t *testing.T, db *gorm.DB, monthlyPrice string) *models.AITool {
	t.Helper()

	tool := &models.AITool{
		Name:         fmt.Sprintf("Test Tool %d", nextID()),
		MonthlyPrice: monthlyPrice,
	}
	if err := db.Create(tool).Error; err != nil {
		t.Fatalf("failed to create test tool: %v", err)
	}
	return tool
}

// CreateTestAllocation creates a pending allocation for the given employee
// referencing the given tool, with the tool's name and price snapshotted.
func CreateTestAllocation(t *testing.T, db *gorm.DB, employeeID string, tool *models.AITool) *models.Allocation {
	t.Helper()
	return CreateTestAllocationWithStatus(t, db, employeeID, tool, models.StatusPendingApproval)
}

// CreateTestAllocationWithStatus creates an allocation in the given status.
func CreateTestAllocationWithStatus(t *testing.T, db *gorm.DB, employeeID string, tool *models.AITool, status models.AllocationStatus) *models.Allocation {
	t.Helper()

	n := nextID()
	allocation := &models.Allocation{
		EmployeeID:         employeeID,
		EmployeeName:       fmt.Sprintf("Test Employee %d", n),
		EmployeeEmail:      fmt.Sprintf("employee%d@test.com", n),
		EmployeeDepartment: "Engineering",
		AIToolID:           tool.ID,
		AIToolName:         tool.Name,
		MonthlyPrice:       tool.MonthlyPrice,
		StartDate:          "2024-01-01",
		EndDate:            "2024-02-01",
		Status:             status,
	}
	if status == models.StatusRejected {
		allocation.RejectionReason = "not needed"
	}
	if err := db.Create(allocation).Error; err != nil {
		t.Fatalf("failed to create test allocation: %v", err)
	}
	return allocation
}

// BackdateCreatedAt shifts a record's created_at so list-ordering tests can
// rely on distinct creation times.
func BackdateCreatedAt(t *testing.T, db *gorm.DB, model interface{}, d time.Duration) {
	t.Helper()

	if err := db.Model(model).Update("created_at", time.Now().Add(-d)).Error; err != nil {
		t.Fatalf("failed to backdate created_at: %v", err)
	}
}
