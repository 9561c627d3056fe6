package progress

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/models"
)

const uniqueViolationCode = "23505"

// GormStore backs the recorder with the application's Postgres database.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) IncrementUserTotal(userID uint, delta int64) (int64, error) {
	var newTotal int64
	err := s.DB.Raw(
		"UPDATE users SET total_plank_seconds = total_plank_seconds + ?, updated_at = NOW() WHERE id = ? RETURNING total_plank_seconds",
		delta, userID,
	).Scan(&newTotal).Error
	if err != nil {
		return 0, err
	}
	return newTotal, nil
}

func (s *GormStore) CreatePlankLog(log *models.PlankLog) error {
	return s.DB.Create(log).Error
}

func (s *GormStore) EnsureMilestone(name, description string, thresholdSeconds int64) (uint, error) {
	var milestone models.Milestone
	err := s.DB.Where("name = ?", name).First(&milestone).Error
	if err == nil {
		return milestone.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	milestone = models.Milestone{
		Name:             name,
		Description:      description,
		ThresholdSeconds: thresholdSeconds,
	}
	if err := s.DB.Create(&milestone).Error; err != nil {
		// Concurrent creation of the same definition row; re-read it.
		if isUniqueViolation(err) {
			if lookupErr := s.DB.Where("name = ?", name).First(&milestone).Error; lookupErr == nil {
				return milestone.ID, nil
			}
		}
		return 0, err
	}
	return milestone.ID, nil
}

func (s *GormStore) CreateUserMilestone(um *models.UserMilestone) error {
	if err := s.DB.Create(um).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyRecorded
		}
		return err
	}
	return nil
}

func (s *GormStore) CompanyTotal(companyID uint) (int64, error) {
	var total int64
	err := s.DB.Model(&models.User{}).
		Where("company_id = ?", companyID).
		Select("COALESCE(SUM(total_plank_seconds), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *GormStore) CompanyMilestoneByName(name string) (*models.CompanyMilestone, error) {
	var cm models.CompanyMilestone
	if err := s.DB.Where("name = ?", name).First(&cm).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

func (s *GormStore) CreateCompanyAchievement(a *models.CompanyMilestoneAchievement) error {
	if err := s.DB.Create(a).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyRecorded
		}
		return err
	}
	return nil
}

func (s *GormStore) CreateFeedEntries(entries []models.ActivityFeedEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return s.DB.Create(&entries).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
