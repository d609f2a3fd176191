package models

import (
    "time"

    "gorm.io/gorm"
)

// HealthLog is append-only: rows are never updated after insert.
type HealthLog struct {
    gorm.Model
    Username      string    `gorm:"column:user_id;index;not null" json:"user_id"`
    LoggedAt      time.Time `gorm:"index;not null" json:"logged_at"`
    BloodPressure float64   `json:"blood_pressure"` // mmHg
    SugarLevel    float64   `json:"sugar_level"`    // mg/dL
    Cholesterol   float64   `json:"cholesterol"`    // mg/dL
}
