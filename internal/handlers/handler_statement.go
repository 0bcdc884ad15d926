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

// statementHandler handles HTTP requests for account statements.
type statementHandler struct {
	statementService portssvc.StatementSvc
}

func newStatementHandler(ss portssvc.StatementSvc) *statementHandler {
	return &statementHandler{
		statementService: ss,
	}
}

// registerStatementRoutes registers routes related to statements.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvc) {
	h := newStatementHandler(statementService)

	rg.GET("/clientes/:id/extrato", h.getStatement)
}

// getStatement godoc
// @Summary Get a client's statement
// @Description Returns the current balance, limit and the most recent transactions as one consistent snapshot
// @Tags statements
// @Produce  json
// @Param   id path int true "Client ID"
// @Success 200 {object} dto.StatementResponse
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to assemble statement"
// @Router /clientes/{id}/extrato [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	logger = logger.With(slog.Int64("account_id", accountID))

	statement, err := h.statementService.Statement(c.Request.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Client not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		case errors.Is(err, apperrors.ErrResourceExhausted):
			logger.Warn("Store capacity exhausted", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporarily out of capacity, retry later"})
		default:
			logger.Error("Failed to assemble statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}
