package repository

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"coldreach-backend/internal/analytics/domain"
)

// AttemptRepository defines persistence for outreach attempts
type AttemptRepository interface {
	// Insert creates a new attempt with status Sent and returns its id
	Insert(subject, recipient string, probability float64) (uint, error)
	// List returns all attempts, newest first
	List() ([]domain.OutreachAttempt, error)
	// Stats aggregates the whole table in one query
	Stats() (*domain.Stats, error)
	// Count returns the number of stored attempts
	Count() (int64, error)
	// Seed bulk-inserts n synthetic attempts in a single transaction
	Seed(n int) error
}

type attemptRepository struct {
	db *gorm.DB
}

// NewAttemptRepository creates a new GORM-based AttemptRepository
func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Insert(subject, recipient string, probability float64) (uint, error) {
	attempt := &domain.OutreachAttempt{
		Subject:     subject,
		Recipient:   recipient,
		Probability: probability,
		Status:      domain.StatusSent,
		Opened:      false,
		Replied:     false,
		Timestamp:   time.Now(),
	}
	if err := r.db.Create(attempt).Error; err != nil {
		return 0, err
	}
	return attempt.ID, nil
}

func (r *attemptRepository) List() ([]domain.OutreachAttempt, error) {
	var attempts []domain.OutreachAttempt
	err := r.db.Order("timestamp DESC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) Stats() (*domain.Stats, error) {
	var stats domain.Stats
	err := r.db.Model(&domain.OutreachAttempt{}).
		Select("COUNT(*) as total, " +
			"COALESCE(AVG(probability), 0) as avg_prob, " +
			"COALESCE(SUM(CASE WHEN opened THEN 1 ELSE 0 END), 0) as total_opened, " +
			"COALESCE(SUM(CASE WHEN replied THEN 1 ELSE 0 END), 0) as total_replied").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *attemptRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.OutreachAttempt{}).Count(&count).Error
	return count, err
}

var seedSubjects = []string{
	"Scaling your Engineering Team",
	"Question about [Company] Infrastructure",
	"Frontend Performance optimization tips",
	"New Growth Strategy for 2024",
	"Partnership Inquiry: AI Integration",
}

var seedCompanies = []string{"TechFlow", "Nexus", "CloudScale", "Vertex AI", "DataPulse"}

// Seed fills the table with synthetic history so the dashboard has data
// on a fresh install. All rows go in as one transaction.
func (r *attemptRepository) Seed(n int) error {
	attempts := make([]domain.OutreachAttempt, 0, n)
	for i := 0; i < n; i++ {
		opened := rand.Float64() > 0.4
		replied := opened && rand.Float64() > 0.7
		prob := math.Round((0.4+rand.Float64()*0.55)*100) / 100

		status := domain.StatusSent
		if replied {
			status = domain.StatusReplied
		} else if opened {
			status = domain.StatusOpened
		}

		attempts = append(attempts, domain.OutreachAttempt{
			Subject:     fmt.Sprintf("%s - Proposal", seedSubjects[i%len(seedSubjects)]),
			Recipient:   fmt.Sprintf("hiring@%s.io", strings.ToLower(seedCompanies[i%len(seedCompanies)])),
			Probability: prob,
			Status:      status,
			Opened:      opened,
			Replied:     replied,
			Timestamp:   time.Now().Add(-time.Duration(rand.Int63n(10_000_000_000)) * time.Millisecond),
		})
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(attempts, 200).Error
	})
}
