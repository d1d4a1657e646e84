package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hiring-copilot/internal/models"
)

type ReportRepository interface {
	Create(report *models.ResumeReport) error
	FindByID(id uuid.UUID) (*models.ResumeReport, error)
	FindByUser(userID uuid.UUID) ([]models.ResumeReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create implements ReportRepository.
func (r *reportRepository) Create(report *models.ResumeReport) error {
	if err := r.db.Create(report).Error; err != nil {
		return fmt.Errorf("failed to create resume report: %w", err)
	}

	return nil
}

// FindByID implements ReportRepository.
func (r *reportRepository) FindByID(id uuid.UUID) (*models.ResumeReport, error) {
	var report models.ResumeReport
	if err := r.db.Where("id = ?", id).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resume report not found")
		}

		return nil, fmt.Errorf("failed to find resume report: %w", err)
	}

	return &report, nil
}

// FindByUser implements ReportRepository.
func (r *reportRepository) FindByUser(userID uuid.UUID) ([]models.ResumeReport, error) {
	var reports []models.ResumeReport
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list resume reports: %w", err)
	}

	return reports, nil
}
