package contracts

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/GlebRadaev/jobpay/internal/dto"
	contractservice "github.com/GlebRadaev/jobpay/internal/service/contractservice"
	"github.com/GlebRadaev/jobpay/pkg/auth"
	"github.com/GlebRadaev/jobpay/pkg/utils"
)

type Service interface {
	GetContract(ctx context.Context, contractID, profileID int) (*domain.Contract, error)
	ListContracts(ctx context.Context, profileID int) ([]domain.Contract, error)
}

type ContractHandler struct {
	contractService Service
}

func New(contractService Service) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// GetContract godoc
//
//	@Summary		Get contract by id
//	@Description	Return a contract the calling profile is a party of.
//	@Tags			Contracts
//	@Produce		json
//	@Param			profile_id	header		string					true	"Calling profile id"
//	@Param			id			path		int						true	"Contract id"
//	@Success		200			{object}	dto.ContractResponseDTO	"Contract"
//	@Failure		400			{object}	utils.Response			"Invalid contract id"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		404			{object}	utils.Response			"No such contract for given profile"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/contracts/{id} [get]
func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	profile := auth.ProfileFromContext(r.Context())

	contractID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid contract id")
		return
	}

	contract, err := h.contractService.GetContract(r.Context(), contractID, profile.ID)
	if err != nil {
		switch {
		case errors.Is(err, contractservice.ErrContractNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "contract not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(*contract))
}

// ListContracts godoc
//
//	@Summary		List contracts
//	@Description	Return all non-terminated contracts the calling profile is a party of.
//	@Tags			Contracts
//	@Produce		json
//	@Param			profile_id	header		string					true	"Calling profile id"
//	@Success		200			{array}		dto.ContractResponseDTO	"Contracts"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/contracts [get]
func (h *ContractHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	profile := auth.ProfileFromContext(r.Context())

	contracts, err := h.contractService.ListContracts(r.Context(), profile.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ContractResponseDTO, len(contracts))
	for i, contract := range contracts {
		response[i] = toResponseDTO(contract)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponseDTO(contract domain.Contract) dto.ContractResponseDTO {
	return dto.ContractResponseDTO{
		ID:           contract.ID,
		Terms:        contract.Terms,
		Status:       contract.Status,
		ClientID:     contract.ClientID,
		ContractorID: contract.ContractorID,
		CreatedAt:    contract.CreatedAt,
	}
}
