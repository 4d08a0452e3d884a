package entities

import "time"

const (
	CurrentNumberID = "current_number"

	// MinNumber is the floor enforced by decrement. A direct set may go below it.
	MinNumber = 1
)

// CurrentNumber is the "now serving" counter shown on the display.
type CurrentNumber struct {
	ID        string    `gorm:"column:id;primaryKey;size:64" json:"id" bson:"id"`
	Number    int       `gorm:"column:number" json:"number" bson:"number"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at" bson:"updated_at"`
}

func (CurrentNumber) TableName() string {
	return "current_number"
}

func DefaultCurrentNumber() *CurrentNumber {
	return &CurrentNumber{
		ID:        CurrentNumberID,
		Number:    MinNumber,
		UpdatedAt: time.Now().UTC(),
	}
}

type NumberUpdate struct {
	Number *int `json:"number" binding:"required"`
}
