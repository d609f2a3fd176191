package models

import (
    "time"

    "gorm.io/gorm"
)

// FoodLog is append-only: one row per logged food, manual or AI-analyzed.
type FoodLog struct {
    gorm.Model
    Username string    `gorm:"column:user_id;index;not null" json:"user_id"`
    LoggedAt time.Time `gorm:"index;not null" json:"logged_at"`
    FoodName string    `gorm:"not null" json:"food_name"`
    Calories float64   `json:"calories"`
}
