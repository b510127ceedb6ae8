package dto

type DepositRequestDTO struct {
	Amount *float64 `json:"amount" example:"100"`
}

type ProfileResponseDTO struct {
	ID         int     `json:"id" example:"1"`
	FirstName  string  `json:"first_name" example:"Harry"`
	LastName   string  `json:"last_name" example:"Potter"`
	Profession string  `json:"profession" example:"wizard"`
	Balance    float64 `json:"balance" example:"1250"`
	Type       string  `json:"type" example:"client"`
}
