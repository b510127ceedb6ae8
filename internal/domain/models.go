package domain

import "time"

const (
	ProfileTypeClient     = "client"
	ProfileTypeContractor = "contractor"
)

const (
	ContractStatusNew        = "new"
	ContractStatusInProgress = "in_progress"
	ContractStatusTerminated = "terminated"
)

type Profile struct {
	ID         int       `db:"id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Profession string    `db:"profession"`
	Balance    float64   `db:"balance"`
	Type       string    `db:"type"`
	CreatedAt  time.Time `db:"created_at"`
}

type Contract struct {
	ID           int       `db:"id"`
	Terms        string    `db:"terms"`
	Status       string    `db:"status"`
	ClientID     int       `db:"client_id"`
	ContractorID int       `db:"contractor_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type Job struct {
	ID          int        `db:"id"`
	ContractID  int        `db:"contract_id"`
	Description string     `db:"description"`
	Price       float64    `db:"price"`
	Paid        bool       `db:"paid"`
	PaymentDate *time.Time `db:"payment_date"`
	CreatedAt   time.Time  `db:"created_at"`
}

// ClientTotal is a best-clients report row: a client profile together
// with the amount it spent on paid jobs inside the requested window.
type ClientTotal struct {
	Client     Profile
	TotalSpent float64
}

// ProfessionTotal is a best-profession report row.
type ProfessionTotal struct {
	Profession  string
	TotalEarned float64
}
