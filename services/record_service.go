package services

import (
	"errors"
	"time"

	"github.com/MeenakshiPramod/WellHer/models"

	"gorm.io/gorm"
)

// RecordRepository is the durable store for per-user record collections.
// Health, food and PCOD collections are append-only; the calorie tally is a
// per-user singleton overwritten on every update. Queries return entries in
// insertion order and never fail on an empty result.
type RecordRepository interface {
	AppendHealthLog(username string, bp, sugar, cholesterol float64) error
	AppendFoodLog(username, foodName string, calories float64) error
	AppendPcodProfile(username string, p models.PcodProfile) error
	UpsertCalorieTally(username string, intake, burned, goal float64) error

	HealthLogs(username string) ([]models.HealthLog, error)
	FoodLogs(username string) ([]models.FoodLog, error)
	LatestPcodProfile(username string) (*models.PcodProfile, error)
	CalorieTally(username string) (*models.CalorieTally, error)
}

type gormRecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &gormRecordRepository{db: db}
}

func (r *gormRecordRepository) AppendHealthLog(username string, bp, sugar, cholesterol float64) error {
	row := models.HealthLog{
		Username:      username,
		LoggedAt:      time.Now(),
		BloodPressure: bp,
		SugarLevel:    sugar,
		Cholesterol:   cholesterol,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return &StorageError{Op: "append health log", Err: err}
	}
	return nil
}

func (r *gormRecordRepository) AppendFoodLog(username, foodName string, calories float64) error {
	row := models.FoodLog{
		Username: username,
		LoggedAt: time.Now(),
		FoodName: foodName,
		Calories: calories,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return &StorageError{Op: "append food log", Err: err}
	}
	return nil
}

func (r *gormRecordRepository) AppendPcodProfile(username string, p models.PcodProfile) error {
	p.ID = 0
	p.Username = username
	p.LoggedAt = time.Now()
	if err := r.db.Create(&p).Error; err != nil {
		return &StorageError{Op: "append pcod profile", Err: err}
	}
	return nil
}

func (r *gormRecordRepository) UpsertCalorieTally(username string, intake, burned, goal float64) error {
	var tally models.CalorieTally
	err := r.db.Where("user_id = ?", username).First(&tally).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tally = models.CalorieTally{
			Username: username,
			Intake:   intake,
			Burned:   burned,
			Goal:     goal,
		}
		if err := r.db.Create(&tally).Error; err != nil {
			return &StorageError{Op: "create calorie tally", Err: err}
		}
		return nil
	}
	if err != nil {
		return &StorageError{Op: "load calorie tally", Err: err}
	}

	tally.Intake = intake
	tally.Burned = burned
	tally.Goal = goal
	if err := r.db.Save(&tally).Error; err != nil {
		return &StorageError{Op: "update calorie tally", Err: err}
	}
	return nil
}

func (r *gormRecordRepository) HealthLogs(username string) ([]models.HealthLog, error) {
	logs := []models.HealthLog{}
	err := r.db.
		Where("user_id = ?", username).
		Order("id asc").
		Find(&logs).Error
	if err != nil {
		return nil, &StorageError{Op: "query health logs", Err: err}
	}
	return logs, nil
}

func (r *gormRecordRepository) FoodLogs(username string) ([]models.FoodLog, error) {
	logs := []models.FoodLog{}
	err := r.db.
		Where("user_id = ?", username).
		Order("id asc").
		Find(&logs).Error
	if err != nil {
		return nil, &StorageError{Op: "query food logs", Err: err}
	}
	return logs, nil
}

// LatestPcodProfile returns nil without error when the user has no profile.
func (r *gormRecordRepository) LatestPcodProfile(username string) (*models.PcodProfile, error) {
	var p models.PcodProfile
	err := r.db.
		Where("user_id = ?", username).
		Order("id desc").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "query pcod profile", Err: err}
	}
	return &p, nil
}

// CalorieTally returns nil without error when the user has never saved one.
func (r *gormRecordRepository) CalorieTally(username string) (*models.CalorieTally, error) {
	var tally models.CalorieTally
	err := r.db.Where("user_id = ?", username).First(&tally).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "query calorie tally", Err: err}
	}
	return &tally, nil
}
