package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financeai/internal/models"
	"financeai/internal/pagination"
	"financeai/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Amount      *float64               `json:"amount" binding:"required,gte=0"`
	Category    string                 `json:"category" binding:"required,notblank,max=50"`
	Description string                 `json:"description" binding:"max=200"`
	Type        models.TransactionType `json:"transaction_type" binding:"omitempty,transaction_type"`
	Date        *string                `json:"date"`
}

// ListTransactionsQuery holds the list filters.
type ListTransactionsQuery struct {
	Category string `form:"category"`
	pagination.LimitRequest
}

// TransactionResponse wraps a single transaction.
type TransactionResponse struct {
	Success     bool               `json:"success" example:"true"`
	Message     string             `json:"message,omitempty"`
	Transaction models.Transaction `json:"transaction"`
}

// TransactionListResponse wraps a transaction list.
type TransactionListResponse struct {
	Success      bool                 `json:"success" example:"true"`
	Transactions []models.Transaction `json:"transactions"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. Type defaults to expense and date to now.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	date, err := optionalTime(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(userID, services.TransactionInput{
		Amount:      *req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Type:        req.Type,
		Date:        date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{
		"message":     "Transaction added successfully",
		"transaction": transaction,
	})
}

// GetUserTransactions lists the user's transactions
// @Summary     List transactions
// @Description Newest first, optionally filtered by category
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       category query string false "Exact category"
// @Param       limit    query int    false "Maximum rows (default 100, max 500)"
// @Param       offset   query int    false "Rows to skip"
// @Success     200 {object} TransactionListResponse "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q ListTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	transactions, err := h.transactionService.GetUserTransactions(userID, services.TransactionFilter{
		Category: q.Category,
		Page:     q.LimitRequest,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"transactions": transactions})
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
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

	if err := h.transactionService.DeleteTransaction(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditDeleteTransaction, "transaction", id, c.ClientIP(), nil)

	respond(c, http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
