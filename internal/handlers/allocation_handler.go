package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rms/internal/errors"
	"rms/internal/services"
)

// AllocationHandler handles allocation request endpoints.
type AllocationHandler struct {
	allocationService services.AllocationServicer
	auditService      services.AuditServicer
}

// NewAllocationHandler creates a new AllocationHandler.
func NewAllocationHandler(allocationService services.AllocationServicer, auditService services.AuditServicer) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService, auditService: auditService}
}

// CreateAllocationRequest represents the request payload for a new
// allocation request. Presence of the employee and tool fields is checked
// by the service so that all missing fields are reported together; binding
// only enforces the ISO date format.
type CreateAllocationRequest struct {
	EmployeeID         string `json:"employeeId"`
	EmployeeName       string `json:"employeeName"`
	EmployeeEmail      string `json:"employeeEmail"`
	EmployeeDepartment string `json:"employeeDepartment"`
	AIToolID           string `json:"aiToolId"`
	StartDate          string `json:"startDate" binding:"omitempty,iso_date"`
	EndDate            string `json:"endDate" binding:"omitempty,iso_date"`
	Notes              string `json:"notes"`
}

// RejectAllocationRequest represents the request payload for rejecting an
// allocation.
type RejectAllocationRequest struct {
	RejectionReason string `json:"rejectionReason" binding:"required"`
}

// CreateAllocation handles the creation of a new allocation request.
// @Summary     Create allocation request
// @Description Request access to an AI tool; the new allocation starts in pending_approval
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Param       request body CreateAllocationRequest true "Allocation request"
// @Success     201 {object} Response{data=models.Allocation} "Allocation created"
// @Failure     400 {object} Response "Missing or invalid fields"
// @Failure     404 {object} Response "AI tool not found"
// @Failure     500 {object} Response "Server error"
// @Router      /allocations [post]
func (h *AllocationHandler) CreateAllocation(c *gin.Context) {
	var req CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	allocation, err := h.allocationService.CreateAllocation(services.AllocationRequest{
		EmployeeID:         req.EmployeeID,
		EmployeeName:       req.EmployeeName,
		EmployeeEmail:      req.EmployeeEmail,
		EmployeeDepartment: req.EmployeeDepartment,
		AIToolID:           req.AIToolID,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Notes:              req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_ALLOCATION", "allocation", allocation.ID, c.ClientIP(),
		map[string]interface{}{"employeeId": allocation.EmployeeID, "aiToolId": allocation.AIToolID})

	respondSuccess(c, http.StatusCreated, allocation, "Allocation request created successfully")
}

// GetAllocationByID handles retrieving a single allocation.
// @Summary     Get allocation by ID
// @Description Get a single allocation by its id
// @Tags        allocations
// @Produce     json
// @Param       id path string true "Allocation ID"
// @Success     200 {object} Response{data=models.Allocation} "Allocation"
// @Failure     404 {object} Response "Allocation not found"
// @Failure     500 {object} Response "Server error"
// @Router      /allocations/{id} [get]
func (h *AllocationHandler) GetAllocationByID(c *gin.Context) {
	allocation, err := h.allocationService.GetAllocationByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, allocation, "Allocation fetched successfully")
}

// GetEmployeeAllocations handles listing an employee's allocations.
// @Summary     List employee allocations
// @Description Get all allocations for an employee, any status, newest first
// @Tags        allocations
// @Produce     json
// @Param       employeeId path string true "Employee ID"
// @Success     200 {object} Response{data=[]models.Allocation} "Employee allocations"
// @Failure     500 {object} Response "Server error"
// @Router      /allocations/employee/{employeeId} [get]
func (h *AllocationHandler) GetEmployeeAllocations(c *gin.Context) {
	allocations, err := h.allocationService.GetEmployeeAllocations(c.Param("employeeId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, allocations, "Employee allocations fetched successfully")
}

// GetActiveEmployeeAllocations handles listing an employee's approved
// allocations.
// @Summary     List active employee allocations
// @Description Get the employee's approved allocations, newest first
// @Tags        allocations
// @Produce     json
// @Param       employeeId path string true "Employee ID"
// @Success     200 {object} Response{data=[]models.Allocation} "Active allocations"
// @Failure     500 {object} Response "Server error"
// @Router      /allocations/employee/{employeeId}/active [get]
func (h *AllocationHandler) GetActiveEmployeeAllocations(c *gin.Context) {
	allocations, err := h.allocationService.GetActiveEmployeeAllocations(c.Param("employeeId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, allocations, "Active employee allocations fetched successfully")
}

// GetPendingRequests handles the admin view of pending requests.
// @Summary     List pending requests
// @Description Get all pending_approval allocations across all employees
// @Tags        allocations
// @Produce     json
// @Success     200 {object} Response{data=[]models.Allocation} "Pending requests"
// @Failure     500 {object} Response "Server error"
// @Router      /allocations/pending [get]
func (h *AllocationHandler) GetPendingRequests(c *gin.Context) {
	allocations, err := h.allocationService.GetPendingRequests()
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, allocations, "Pending requests fetched successfully")
}

// GetProcessedRequests handles the admin view of processed requests.
// @Summary     List processed requests
// @Description Get all approved and rejected allocations
// @Tags        allocations
// @Produce     json
// @Success     200 {object} Response{data=[]models.Allocation} "Processed requests"
// @Failure     500 {object} Response "Server error"
// @Router      /allocations/processed [get]
func (h *AllocationHandler) GetProcessedRequests(c *gin.Context) {
	allocations, err := h.allocationService.GetProcessedRequests()
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, allocations, "Processed requests fetched successfully")
}

// ApproveAllocation handles approving a pending allocation.
// @Summary     Approve allocation
// @Description Approve a pending_approval allocation; terminal states are final
// @Tags        allocations
// @Produce     json
// @Param       id path string true "Allocation ID"
// @Success     200 {object} Response{data=models.Allocation} "Approved allocation"
// @Failure     400 {object} Response "Only pending_approval requests can be approved"
// @Failure     404 {object} Response "Allocation not found"
// @Failure     500 {object} Response "Server error"
// @Router      /allocations/{id}/approve [put]
func (h *AllocationHandler) ApproveAllocation(c *gin.Context) {
	allocation, err := h.allocationService.ApproveAllocation(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("APPROVE_ALLOCATION", "allocation", allocation.ID, c.ClientIP(), nil)

	respondSuccess(c, http.StatusOK, allocation, "Allocation approved successfully")
}

// RejectAllocation handles rejecting a pending allocation.
// @Summary     Reject allocation
// @Description Reject a pending_approval allocation with a reason; terminal states are final
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Param       id      path string                  true "Allocation ID"
// @Param       request body RejectAllocationRequest true "Rejection reason"
// @Success     200 {object} Response{data=models.Allocation} "Rejected allocation"
// @Failure     400 {object} Response "Missing reason or not pending"
// @Failure     404 {object} Response "Allocation not found"
// @Failure     500 {object} Response "Server error"
// @Router      /allocations/{id}/reject [put]
func (h *AllocationHandler) RejectAllocation(c *gin.Context) {
	var req RejectAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrRejectionReasonRequired)
		return
	}

	allocation, err := h.allocationService.RejectAllocation(c.Param("id"), req.RejectionReason)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("REJECT_ALLOCATION", "allocation", allocation.ID, c.ClientIP(),
		map[string]interface{}{"rejectionReason": allocation.RejectionReason})

	respondSuccess(c, http.StatusOK, allocation, "Allocation rejected successfully")
}
