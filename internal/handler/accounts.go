package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"travelmap-api/internal/models"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles saving and loading the account list
type AccountHandler struct {
	service AccountService
}

// AccountService interface for dependency injection
type AccountService interface {
	Save(ctx context.Context, accounts []models.Account) (int, error)
	Load(ctx context.Context) ([]models.Account, error)
}

// SaveAccountsResponse reports how many accounts were stored.
type SaveAccountsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(svc AccountService) *AccountHandler {
	return &AccountHandler{service: svc}
}

// SaveAccounts godoc
// @Summary      Overwrite the stored accounts
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        accounts  body      []object  true  "accounts"
// @Success      200       {object}  SaveAccountsResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /api/save-accounts [post]
func (h *AccountHandler) SaveAccounts(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var accounts []models.Account
	if err := json.Unmarshal(body, &accounts); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			respondError(c, http.StatusBadRequest, "Data must be an array")
			return
		}
		respondError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if accounts == nil {
		// JSON null
		respondError(c, http.StatusBadRequest, "Data must be an array")
		return
	}

	count, err := h.service.Save(c.Request.Context(), accounts)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SaveAccountsResponse{
		Success: true,
		Message: fmt.Sprintf("Saved %d accounts", count),
		Count:   count,
	})
}

// LoadAccounts godoc
// @Summary      Load the stored accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  ErrorResponse
// @Router       /api/load-accounts [get]
func (h *AccountHandler) LoadAccounts(c *gin.Context) {
	accounts, err := h.service.Load(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}
