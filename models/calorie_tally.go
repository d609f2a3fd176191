package models

import (
    "gorm.io/gorm"
)

// CalorieTally is a per-user singleton: every write overwrites the
// previous one, reads always see the latest values.
type CalorieTally struct {
    gorm.Model
    Username string  `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
    Intake   float64 `json:"intake"` // kcal consumed today
    Burned   float64 `json:"burned"` // kcal burned today
    Goal     float64 `json:"goal"`   // daily kcal target
}

func (CalorieTally) TableName() string { return "calorie_tracking" }
