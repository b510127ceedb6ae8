package jobs

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/GlebRadaev/jobpay/internal/dto"
	jobservice "github.com/GlebRadaev/jobpay/internal/service/jobservice"
	"github.com/GlebRadaev/jobpay/pkg/auth"
	"github.com/GlebRadaev/jobpay/pkg/utils"
)

type Service interface {
	ListUnpaidJobs(ctx context.Context, profileID int) ([]domain.Job, error)
	PayJob(ctx context.Context, jobID, clientID int) (*domain.Job, error)
}

type JobHandler struct {
	jobService Service
}

func New(jobService Service) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// ListUnpaid godoc
//
//	@Summary		List unpaid jobs
//	@Description	Return unpaid jobs on in_progress contracts the calling profile is a party of.
//	@Tags			Jobs
//	@Produce		json
//	@Param			profile_id	header		string				true	"Calling profile id"
//	@Success		200			{array}		dto.JobResponseDTO	"Unpaid jobs"
//	@Failure		401			{object}	utils.Response		"User not authorized"
//	@Failure		500			{object}	utils.Response		"Internal server error"
//	@Router			/jobs/unpaid [get]
func (h *JobHandler) ListUnpaid(w http.ResponseWriter, r *http.Request) {
	profile := auth.ProfileFromContext(r.Context())

	unpaidJobs, err := h.jobService.ListUnpaidJobs(r.Context(), profile.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.JobResponseDTO, len(unpaidJobs))
	for i, job := range unpaidJobs {
		response[i] = toResponseDTO(job)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Pay godoc
//
//	@Summary		Pay for a job
//	@Description	Move the job price from the calling client's balance to the contractor's balance and mark the job paid.
//	@Tags			Jobs
//	@Produce		json
//	@Param			profile_id	header		string				true	"Calling profile id"
//	@Param			id			path		int					true	"Job id"
//	@Success		200			{object}	dto.JobResponseDTO	"Paid job"
//	@Failure		400			{object}	utils.Response		"Invalid job id"
//	@Failure		401			{object}	utils.Response		"User not authorized"
//	@Failure		402			{object}	utils.Response		"Insufficient balance"
//	@Failure		404			{object}	utils.Response		"No such unpaid job for given profile"
//	@Failure		500			{object}	utils.Response		"Internal server error"
//	@Router			/jobs/{id}/pay [post]
func (h *JobHandler) Pay(w http.ResponseWriter, r *http.Request) {
	profile := auth.ProfileFromContext(r.Context())

	jobID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	paidJob, err := h.jobService.PayJob(r.Context(), jobID, profile.ID)
	if err != nil {
		switch {
		case errors.Is(err, jobservice.ErrJobNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "job not found")
		case errors.Is(err, jobservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(*paidJob))
}

func toResponseDTO(job domain.Job) dto.JobResponseDTO {
	return dto.JobResponseDTO{
		ID:          job.ID,
		ContractID:  job.ContractID,
		Description: job.Description,
		Price:       job.Price,
		Paid:        job.Paid,
		PaymentDate: job.PaymentDate,
	}
}
