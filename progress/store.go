package progress

import (
	"errors"

	"github.com/daily-hold/plank-api/models"
)

// ErrAlreadyRecorded is returned by achievement inserts that lose the race
// against a concurrent submission crossing the same threshold. The recorder
// treats it as a benign no-op.
var ErrAlreadyRecorded = errors.New("achievement already recorded")

// Store is the persistence surface the recorder needs: point updates, inserts
// and one aggregate, all against the challenge tables.
type Store interface {
	// IncrementUserTotal applies the duration to the user's running total as a
	// single atomic update and returns the resulting total.
	IncrementUserTotal(userID uint, delta int64) (int64, error)
	CreatePlankLog(log *models.PlankLog) error
	// EnsureMilestone looks up the milestone definition row by name, creating
	// it if missing, and returns its id.
	EnsureMilestone(name, description string, thresholdSeconds int64) (uint, error)
	CreateUserMilestone(um *models.UserMilestone) error
	// CompanyTotal sums the running totals of every member of the company.
	CompanyTotal(companyID uint) (int64, error)
	CompanyMilestoneByName(name string) (*models.CompanyMilestone, error)
	CreateCompanyAchievement(a *models.CompanyMilestoneAchievement) error
	CreateFeedEntries(entries []models.ActivityFeedEntry) error
}
