package dto

type BestProfessionResponseDTO struct {
	Profession string `json:"profession" example:"programmer"`
}

type BestClientResponseDTO struct {
	ID         int     `json:"id" example:"1"`
	FullName   string  `json:"full_name" example:"Harry Potter"`
	TotalSpent float64 `json:"total_spent" example:"400"`
}
