package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financeai/internal/models"
	"financeai/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// UpsertBudgetRequest represents the request payload for setting a budget.
type UpsertBudgetRequest struct {
	Category string              `json:"category" binding:"required,notblank,max=50"`
	Amount   *float64            `json:"amount" binding:"required,gte=0"`
	Period   models.BudgetPeriod `json:"period" binding:"omitempty,budget_period"`
}

// BudgetResponse wraps a single budget.
type BudgetResponse struct {
	Success bool          `json:"success" example:"true"`
	Message string        `json:"message"`
	Budget  models.Budget `json:"budget"`
}

// BudgetListResponse wraps the budget list.
type BudgetListResponse struct {
	Success bool                       `json:"success" example:"true"`
	Budgets []services.BudgetWithSpent `json:"budgets"`
}

// UpsertBudget creates or replaces the budget for a category
// @Summary     Set a budget
// @Description Create the budget for a category, or update it if one exists
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertBudgetRequest true "Budget details"
// @Success     201 {object} BudgetResponse "Budget saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	budget, err := h.budgetService.UpsertBudget(userID, req.Category, *req.Amount, req.Period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{
		"message": "Budget saved successfully",
		"budget":  budget,
	})
}

// GetUserBudgets lists budgets with their current-period spend
// @Summary     List budgets
// @Description Each budget carries spent for its own calendar week, month or year
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} BudgetListResponse "Budgets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetUserBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetUserBudgets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"budgets": budgets})
}

// DeleteBudget removes a budget
// @Summary     Delete a budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} MessageResponse "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditDeleteBudget, "budget", id, c.ClientIP(), nil)

	respond(c, http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
