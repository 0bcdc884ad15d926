package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/apperrors"
	portssvc "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/ports/services"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/dto"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/middleware"
)

// transactionHandler handles HTTP requests that mutate account balances.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newTransactionHandler(ls portssvc.LedgerSvc) *transactionHandler {
	return &transactionHandler{
		ledgerService: ls,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newTransactionHandler(ledgerService)

	rg.POST("/clientes/:id/transacoes", h.createTransaction)
}

// createTransaction godoc
// @Summary Submit a transaction
// @Description Applies a credit or debit to the client's balance and records it atomically
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path int true "Client ID"
// @Param   transaction body dto.TransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 422 {object} map[string]string "Malformed transaction or overdraft limit exceeded"
// @Failure 503 {object} map[string]string "Temporarily out of capacity"
// @Router /clientes/{id}/transacoes [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid transaction: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("account_id", accountID))

	account, err := h.ledgerService.Apply(c.Request.Context(), accountID, req.SignedAmount(), req.Descricao)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Client not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		case errors.Is(err, apperrors.ErrOverdraftExceeded):
			// Expected business rejection, not a fault.
			logger.Info("Transaction rejected", slog.String("reason", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Transaction failed validation", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrResourceExhausted):
			logger.Warn("Store capacity exhausted", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporarily out of capacity, retry later"})
		default:
			logger.Error("Failed to apply transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(account))
}
