package models

import (
    "time"

    "gorm.io/gorm"
)

// PcodProfile rows are append-only; the latest row per user wins on read.
// Symptoms and Goals are comma-joined free text.
type PcodProfile struct {
    gorm.Model
    Username  string    `gorm:"column:user_id;index;not null" json:"user_id"`
    LoggedAt  time.Time `gorm:"index;not null" json:"logged_at"`
    Diagnosed string    `json:"diagnosed"` // "Yes" / "No" / "Not Sure"
    WeightKg  float64   `gorm:"column:weight" json:"weight"`
    HeightCm  float64   `gorm:"column:height" json:"height"`
    Symptoms  string    `json:"symptoms"`
    Goals     string    `json:"goals"`
}
