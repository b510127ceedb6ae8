package balances

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/GlebRadaev/jobpay/internal/dto"
	balanceservice "github.com/GlebRadaev/jobpay/internal/service/balanceservice"
	"github.com/GlebRadaev/jobpay/pkg/auth"
	"github.com/GlebRadaev/jobpay/pkg/utils"
)

type Service interface {
	Deposit(ctx context.Context, targetID, callerID int, amount float64) (*domain.Profile, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// Deposit godoc
//
//	@Summary		Deposit money to a client profile
//	@Description	Credit the calling client's own balance. A single deposit can't exceed 25% of the client's unpaid jobs total.
//	@Tags			Balances
//	@Accept			json
//	@Produce		json
//	@Param			profile_id	header		string					true	"Calling profile id"
//	@Param			id			path		int						true	"Client profile id to deposit to"
//	@Param			request		body		dto.DepositRequestDTO	true	"Deposit payload"
//	@Success		200			{object}	dto.ProfileResponseDTO	"Updated profile"
//	@Failure		400			{object}	utils.Response			"Invalid amount"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		403			{object}	utils.Response			"Invalid profile to deposit to"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/balances/deposit/{id} [post]
func (h *BalanceHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	profile := auth.ProfileFromContext(r.Context())

	targetID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.balanceService.Deposit(r.Context(), targetID, profile.ID, *req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrDepositForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, balanceservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		ID:         updated.ID,
		FirstName:  updated.FirstName,
		LastName:   updated.LastName,
		Profession: updated.Profession,
		Balance:    updated.Balance,
		Type:       updated.Type,
	})
}
