package progress

import (
	"errors"
	"fmt"

	"github.com/daily-hold/plank-api/models"
)

// Recorder applies a plank submission: log row, running total, milestone
// crossings on both scopes, and the activity feed entries derived from them.
//
// There is no transaction spanning the steps. A failure aborts the remaining
// steps and surfaces to the caller; already-applied writes stay in place, so
// the running total can drift from the log sum under partial failure.
type Recorder struct {
	store Store
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Result is what the submitter sees: the new personal total plus any
// thresholds this submission crossed.
type Result struct {
	NewTotal          int64
	Milestones        []MilestoneDef
	CompanyMilestones []MilestoneDef
}

// RecordPlankSession records durationSeconds for the user. durationSeconds
// must be positive; the HTTP layer additionally caps it at one hour.
func (r *Recorder) RecordPlankSession(userID, companyID uint, durationSeconds int) (*Result, error) {
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", durationSeconds)
	}

	if err := r.store.CreatePlankLog(&models.PlankLog{
		UserID:          userID,
		DurationSeconds: durationSeconds,
	}); err != nil {
		return nil, fmt.Errorf("create plank log: %w", err)
	}

	newTotal, err := r.store.IncrementUserTotal(userID, int64(durationSeconds))
	if err != nil {
		return nil, fmt.Errorf("update total: %w", err)
	}
	oldTotal := newTotal - int64(durationSeconds)

	crossed := CrossedMilestones(Milestones, oldTotal, newTotal)
	if err := r.recordMilestones(userID, crossed); err != nil {
		return nil, err
	}

	entries := r.feedEntries(userID, companyID, durationSeconds, crossed)

	var crossedCompany []MilestoneDef
	if companyID != 0 {
		crossedCompany, err = r.recordCompanyMilestones(companyID, durationSeconds)
		if err != nil {
			return nil, err
		}
		for _, def := range crossedCompany {
			entries = append(entries, models.ActivityFeedEntry{
				CompanyID:    companyID,
				UserID:       userID,
				ActivityType: "company_milestone_achieved",
				Message:      fmt.Sprintf("Company achieved %s %s milestone (%s)!", def.Emoji, def.Name, def.Label),
				Metadata:     models.JSONMap{"milestone": def.Name, "threshold": def.Seconds},
			})
		}
	}

	if err := r.store.CreateFeedEntries(entries); err != nil {
		return nil, fmt.Errorf("create feed entries: %w", err)
	}

	return &Result{
		NewTotal:          newTotal,
		Milestones:        crossed,
		CompanyMilestones: crossedCompany,
	}, nil
}

func (r *Recorder) recordMilestones(userID uint, crossed []MilestoneDef) error {
	for _, def := range crossed {
		milestoneID, err := r.store.EnsureMilestone(
			def.Name,
			fmt.Sprintf("Reach %s of total plank time", def.Label),
			def.Seconds,
		)
		if err != nil {
			return fmt.Errorf("ensure milestone %q: %w", def.Name, err)
		}

		err = r.store.CreateUserMilestone(&models.UserMilestone{
			UserID:        userID,
			MilestoneID:   milestoneID,
			MilestoneName: def.Name,
		})
		if err != nil && !errors.Is(err, ErrAlreadyRecorded) {
			return fmt.Errorf("record milestone %q: %w", def.Name, err)
		}
	}
	return nil
}

// recordCompanyMilestones recomputes the company total after this submission
// and backs out the old total by subtracting the submission's duration. That
// back-out is only exact when no other member's submission interleaves; an
// interleaving submission shifts the window, and the unique index on
// achievements is what keeps a doubly-detected crossing from recording twice.
func (r *Recorder) recordCompanyMilestones(companyID uint, durationSeconds int) ([]MilestoneDef, error) {
	companyTotal, err := r.store.CompanyTotal(companyID)
	if err != nil {
		return nil, fmt.Errorf("company total: %w", err)
	}
	oldCompanyTotal := companyTotal - int64(durationSeconds)

	crossed := CrossedMilestones(CompanyMilestones, oldCompanyTotal, companyTotal)
	for _, def := range crossed {
		cm, err := r.store.CompanyMilestoneByName(def.Name)
		if err != nil {
			return nil, fmt.Errorf("company milestone %q: %w", def.Name, err)
		}

		err = r.store.CreateCompanyAchievement(&models.CompanyMilestoneAchievement{
			CompanyID:                 companyID,
			MilestoneID:               cm.ID,
			MilestoneName:             def.Name,
			TotalSecondsAtAchievement: companyTotal,
		})
		if err != nil && !errors.Is(err, ErrAlreadyRecorded) {
			return nil, fmt.Errorf("record company milestone %q: %w", def.Name, err)
		}
	}
	return crossed, nil
}

func (r *Recorder) feedEntries(userID, companyID uint, durationSeconds int, crossed []MilestoneDef) []models.ActivityFeedEntry {
	entries := []models.ActivityFeedEntry{
		{
			CompanyID:    companyID,
			UserID:       userID,
			ActivityType: "plank_logged",
			Message:      fmt.Sprintf("Logged a %dm %ds plank", durationSeconds/60, durationSeconds%60),
			Metadata:     models.JSONMap{"duration_seconds": durationSeconds},
		},
	}
	for _, def := range crossed {
		entries = append(entries, models.ActivityFeedEntry{
			CompanyID:    companyID,
			UserID:       userID,
			ActivityType: "milestone_achieved",
			Message:      fmt.Sprintf("Achieved %s milestone (%s)", def.Name, def.Label),
			Metadata:     models.JSONMap{"milestone": def.Name, "threshold": def.Seconds},
		})
	}
	return entries
}
