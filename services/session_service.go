package services

import (
	"sync"
	"time"

	"github.com/MeenakshiPramod/WellHer/config"
	"github.com/MeenakshiPramod/WellHer/models"
	"github.com/MeenakshiPramod/WellHer/utils"
)

const (
	DefaultCalorieGoal    = 1800.0
	KcalPerExerciseMinute = 5.0
)

// FoodEntry is a session-local record of one food logged today.
type FoodEntry struct {
	Time     string  `json:"time"`
	Food     string  `json:"food"`
	Calories float64 `json:"calories"`
}

// Session is the in-memory, per-identity mirror of a user's repository data
// plus today's counters. It is never the source of truth: every accepted
// mutation is also sent to the repository by the same call, and a failed
// write leaves the mirror holding the attempted change.
type Session struct {
	mu       sync.Mutex
	username string
	repo     RecordRepository

	healthLogs  []models.HealthLog
	foodEntries []FoodEntry
	profile     *models.PcodProfile

	intake float64
	burned float64
	goal   float64
}

// SessionManager holds one isolated Session per logged-in identity.
// Sessions are created on login and dropped on logout; nothing survives a
// process restart.
type SessionManager struct {
	mu       sync.Mutex
	repo     RecordRepository
	sessions map[string]*Session
}

func NewSessionManager(repo RecordRepository) *SessionManager {
	return &SessionManager{
		repo:     repo,
		sessions: make(map[string]*Session),
	}
}

var defaultManager *SessionManager

// InitSessionManager wires the default manager to the shared DB. Called once
// from main after config.InitDB.
func InitSessionManager() {
	defaultManager = NewSessionManager(NewRecordRepository(config.DB))
}

func Manager() *SessionManager { return defaultManager }

// Login seeds a fresh session from the repository: the full health-log
// history in original order, the saved calorie tally (or the defaults), and
// the latest PCOD profile. A seeding read failure aborts the login so a
// half-seeded session never exists.
func (m *SessionManager) Login(username string) (*Session, error) {
	logs, err := m.repo.HealthLogs(username)
	if err != nil {
		return nil, err
	}

	s := &Session{
		username:    username,
		repo:        m.repo,
		healthLogs:  logs,
		foodEntries: []FoodEntry{},
		intake:      0,
		burned:      0,
		goal:        DefaultCalorieGoal,
	}

	if tally, err := m.repo.CalorieTally(username); err != nil {
		return nil, err
	} else if tally != nil {
		s.intake = tally.Intake
		s.burned = tally.Burned
		s.goal = tally.Goal
	}

	if profile, err := m.repo.LatestPcodProfile(username); err != nil {
		return nil, err
	} else if profile != nil {
		s.profile = profile
	}

	m.mu.Lock()
	m.sessions[username] = s
	m.mu.Unlock()
	return s, nil
}

// Logout discards the session unconditionally; nothing is flushed beyond
// what the user already explicitly saved.
func (m *SessionManager) Logout(username string) {
	m.mu.Lock()
	delete(m.sessions, username)
	m.mu.Unlock()
}

func (m *SessionManager) Get(username string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[username]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNotLoggedIn
	}
	return s, nil
}

func (s *Session) Username() string { return s.username }

// RecordHealthMetrics appends to the mirror and persists the same entry.
func (s *Session) RecordHealthMetrics(bp, sugar, cholesterol float64) error {
	s.mu.Lock()
	s.healthLogs = append(s.healthLogs, models.HealthLog{
		Username:      s.username,
		LoggedAt:      time.Now(),
		BloodPressure: bp,
		SugarLevel:    sugar,
		Cholesterol:   cholesterol,
	})
	s.mu.Unlock()

	return s.repo.AppendHealthLog(s.username, bp, sugar, cholesterol)
}

// RecordFoodEntry adds the food to today's list, bumps intake, and persists
// a food-log row.
func (s *Session) RecordFoodEntry(name string, calories float64) error {
	s.mu.Lock()
	s.foodEntries = append(s.foodEntries, FoodEntry{
		Time:     time.Now().Format("15:04"),
		Food:     name,
		Calories: calories,
	})
	s.intake += calories
	s.mu.Unlock()

	return s.repo.AppendFoodLog(s.username, name, calories)
}

// UpdateCalorieTotals overwrites today's intake/burned and persists the tally.
func (s *Session) UpdateCalorieTotals(intake, burned float64) error {
	s.mu.Lock()
	s.intake = intake
	s.burned = burned
	goal := s.goal
	s.mu.Unlock()

	return s.repo.UpsertCalorieTally(s.username, intake, burned, goal)
}

func (s *Session) SetCalorieGoal(goal float64) error {
	s.mu.Lock()
	s.goal = goal
	intake, burned := s.intake, s.burned
	s.mu.Unlock()

	return s.repo.UpsertCalorieTally(s.username, intake, burned, goal)
}

// AddExerciseBurn credits a flat 5 kcal per minute no matter the activity;
// the label is echoed back but does not change the computation.
func (s *Session) AddExerciseBurn(activity string, minutes float64) (float64, error) {
	added := minutes * KcalPerExerciseMinute

	s.mu.Lock()
	s.burned += added
	intake, burned, goal := s.intake, s.burned, s.goal
	s.mu.Unlock()

	return added, s.repo.UpsertCalorieTally(s.username, intake, burned, goal)
}

// SavePcodProfile replaces the mirrored profile and appends a new profile row.
func (s *Session) SavePcodProfile(p models.PcodProfile) error {
	p.Username = s.username

	s.mu.Lock()
	copied := p
	s.profile = &copied
	s.mu.Unlock()

	return s.repo.AppendPcodProfile(s.username, p)
}

func (s *Session) NetCalories() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intake - s.burned
}

func (s *Session) CalorieTotals() (intake, burned, goal float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intake, s.burned, s.goal
}

// BMI is defined only when the profile carries both weight and height.
func (s *Session) BMI() (float64, bool) {
	s.mu.Lock()
	p := s.profile
	s.mu.Unlock()

	if p == nil || p.WeightKg <= 0 || p.HeightCm <= 0 {
		return 0, false
	}
	bmi, err := utils.CalculateBMI(p.HeightCm, p.WeightKg)
	if err != nil {
		return 0, false
	}
	return bmi, true
}

func (s *Session) HealthLogs() []models.HealthLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.HealthLog, len(s.healthLogs))
	copy(out, s.healthLogs)
	return out
}

func (s *Session) FoodEntries() []FoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FoodEntry, len(s.foodEntries))
	copy(out, s.foodEntries)
	return out
}

func (s *Session) PcodProfile() *models.PcodProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	copied := *s.profile
	return &copied
}
