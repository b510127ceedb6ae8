package dto

import "time"

type ContractResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	Terms        string    `json:"terms" example:"bla bla bla"`
	Status       string    `json:"status" example:"in_progress"`
	ClientID     int       `json:"client_id" example:"1"`
	ContractorID int       `json:"contractor_id" example:"6"`
	CreatedAt    time.Time `json:"created_at" example:"2020-08-15T19:11:26Z"`
}
