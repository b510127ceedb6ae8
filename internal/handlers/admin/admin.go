package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/GlebRadaev/jobpay/internal/dto"
	reportservice "github.com/GlebRadaev/jobpay/internal/service/reportservice"
	"github.com/GlebRadaev/jobpay/pkg/utils"
)

type Service interface {
	BestProfession(ctx context.Context, start, end string) (string, error)
	BestClients(ctx context.Context, start, end string, limit int) ([]domain.ClientTotal, error)
}

type AdminHandler struct {
	reportService Service
}

func New(reportService Service) *AdminHandler {
	return &AdminHandler{
		reportService: reportService,
	}
}

// BestProfession godoc
//
//	@Summary		Best earning profession
//	@Description	Return the profession that earned the most over jobs paid inside the date range.
//	@Tags			Admin
//	@Produce		json
//	@Param			start	query		string						true	"Range start date (YYYY-MM-DD)"
//	@Param			end		query		string						true	"Range end date (YYYY-MM-DD)"
//	@Success		200		{object}	dto.BestProfessionResponseDTO	"Best profession"
//	@Failure		400		{object}	utils.Response					"Invalid date range"
//	@Failure		404		{object}	utils.Response					"No paid jobs in range"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/admin/best-profession [get]
func (h *AdminHandler) BestProfession(w http.ResponseWriter, r *http.Request) {
	profession, err := h.reportService.BestProfession(r.Context(), r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		switch {
		case errors.Is(err, reportservice.ErrInvalidRange):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, reportservice.ErrNoPaidJobsFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BestProfessionResponseDTO{Profession: profession})
}

// BestClients godoc
//
//	@Summary		Top paying clients
//	@Description	Return the clients that paid the most for jobs inside the date range.
//	@Tags			Admin
//	@Produce		json
//	@Param			start	query		string						true	"Range start date (YYYY-MM-DD)"
//	@Param			end		query		string						true	"Range end date (YYYY-MM-DD)"
//	@Param			limit	query		int							false	"Max clients to return (default 2)"
//	@Success		200		{array}		dto.BestClientResponseDTO	"Ranked clients"
//	@Failure		400		{object}	utils.Response				"Invalid date range or limit"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/admin/best-clients [get]
func (h *AdminHandler) BestClients(w http.ResponseWriter, r *http.Request) {
	limit := reportservice.DefaultClientsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	totals, err := h.reportService.BestClients(r.Context(), r.URL.Query().Get("start"), r.URL.Query().Get("end"), limit)
	if err != nil {
		switch {
		case errors.Is(err, reportservice.ErrInvalidRange):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.BestClientResponseDTO, len(totals))
	for i, total := range totals {
		response[i] = dto.BestClientResponseDTO{
			ID:         total.Client.ID,
			FullName:   total.Client.FirstName + " " + total.Client.LastName,
			TotalSpent: total.TotalSpent,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
