package dto

import "time"

type JobResponseDTO struct {
	ID          int        `json:"id" example:"2"`
	ContractID  int        `json:"contract_id" example:"2"`
	Description string     `json:"description" example:"work"`
	Price       float64    `json:"price" example:"200"`
	Paid        bool       `json:"paid" example:"false"`
	PaymentDate *time.Time `json:"payment_date,omitempty" example:"2020-08-15T19:11:26Z"`
}
