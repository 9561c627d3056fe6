package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daily-hold/plank-api/models"
)

// fakeStore keeps everything in memory and mimics the uniqueness behavior of
// the real achievement tables.
type fakeStore struct {
	userTotals       map[uint]int64
	companyOfUser    map[uint]uint
	plankLogs        []models.PlankLog
	milestones       map[string]uint
	userMilestones   []models.UserMilestone
	companyAchieved  []models.CompanyMilestoneAchievement
	feedEntries      []models.ActivityFeedEntry
	failIncrement    error
	failFeed         error
	nextMilestoneSeq uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		userTotals:    map[uint]int64{},
		companyOfUser: map[uint]uint{},
		milestones:    map[string]uint{},
	}
}

func (f *fakeStore) IncrementUserTotal(userID uint, delta int64) (int64, error) {
	if f.failIncrement != nil {
		return 0, f.failIncrement
	}
	f.userTotals[userID] += delta
	return f.userTotals[userID], nil
}

func (f *fakeStore) CreatePlankLog(log *models.PlankLog) error {
	f.plankLogs = append(f.plankLogs, *log)
	return nil
}

func (f *fakeStore) EnsureMilestone(name, description string, thresholdSeconds int64) (uint, error) {
	if id, ok := f.milestones[name]; ok {
		return id, nil
	}
	f.nextMilestoneSeq++
	f.milestones[name] = f.nextMilestoneSeq
	return f.nextMilestoneSeq, nil
}

func (f *fakeStore) CreateUserMilestone(um *models.UserMilestone) error {
	for _, existing := range f.userMilestones {
		if existing.UserID == um.UserID && existing.MilestoneName == um.MilestoneName {
			return ErrAlreadyRecorded
		}
	}
	f.userMilestones = append(f.userMilestones, *um)
	return nil
}

func (f *fakeStore) CompanyTotal(companyID uint) (int64, error) {
	var total int64
	for userID, t := range f.userTotals {
		if f.companyOfUser[userID] == companyID {
			total += t
		}
	}
	return total, nil
}

func (f *fakeStore) CompanyMilestoneByName(name string) (*models.CompanyMilestone, error) {
	for i, def := range CompanyMilestones {
		if def.Name == name {
			return &models.CompanyMilestone{ID: uint(i + 1), Name: name, ThresholdSeconds: def.Seconds}, nil
		}
	}
	return nil, errors.New("company milestone not found")
}

func (f *fakeStore) CreateCompanyAchievement(a *models.CompanyMilestoneAchievement) error {
	for _, existing := range f.companyAchieved {
		if existing.CompanyID == a.CompanyID && existing.MilestoneName == a.MilestoneName {
			return ErrAlreadyRecorded
		}
	}
	f.companyAchieved = append(f.companyAchieved, *a)
	return nil
}

func (f *fakeStore) CreateFeedEntries(entries []models.ActivityFeedEntry) error {
	if f.failFeed != nil {
		return f.failFeed
	}
	f.feedEntries = append(f.feedEntries, entries...)
	return nil
}

func milestoneNames(defs []MilestoneDef) []string {
	var names []string
	for _, def := range defs {
		names = append(names, def.Name)
	}
	return names
}

func TestRecordFirstMilestone(t *testing.T) {
	store := newFakeStore()
	store.companyOfUser[1] = 10
	recorder := NewRecorder(store)

	result, err := recorder.RecordPlankSession(1, 10, 650)
	require.NoError(t, err)

	assert.Equal(t, int64(650), result.NewTotal)
	assert.Equal(t, []string{"Beginner"}, milestoneNames(result.Milestones))
	assert.Empty(t, result.CompanyMilestones)

	require.Len(t, store.plankLogs, 1)
	assert.Equal(t, 650, store.plankLogs[0].DurationSeconds)

	require.Len(t, store.userMilestones, 1)
	assert.Equal(t, "Beginner", store.userMilestones[0].MilestoneName)

	// One plank_logged entry plus one milestone entry.
	require.Len(t, store.feedEntries, 2)
	assert.Equal(t, "plank_logged", store.feedEntries[0].ActivityType)
	assert.Equal(t, "Logged a 10m 50s plank", store.feedEntries[0].Message)
	assert.Equal(t, "milestone_achieved", store.feedEntries[1].ActivityType)
	assert.Equal(t, "Achieved Beginner milestone (10 minutes)", store.feedEntries[1].Message)
}

func TestRecordSkipsAlreadyPassedThresholds(t *testing.T) {
	store := newFakeStore()
	store.userTotals[1] = 7150
	store.companyOfUser[1] = 10
	recorder := NewRecorder(store)

	result, err := recorder.RecordPlankSession(1, 10, 100)
	require.NoError(t, err)

	assert.Equal(t, int64(7250), result.NewTotal)
	assert.Equal(t, []string{"Expert"}, milestoneNames(result.Milestones))
}

func TestRecordNoMilestone(t *testing.T) {
	store := newFakeStore()
	store.companyOfUser[1] = 10
	recorder := NewRecorder(store)

	result, err := recorder.RecordPlankSession(1, 10, 120)
	require.NoError(t, err)

	assert.Equal(t, int64(120), result.NewTotal)
	assert.Empty(t, result.Milestones)
	assert.Empty(t, store.userMilestones)
	require.Len(t, store.feedEntries, 1)
	assert.Equal(t, "plank_logged", store.feedEntries[0].ActivityType)
}

func TestSequentialSubmissionsConserveTotal(t *testing.T) {
	store := newFakeStore()
	store.companyOfUser[1] = 10
	recorder := NewRecorder(store)

	durations := []int{30, 90, 240, 60, 600}
	var sum int64
	var last *Result
	for _, d := range durations {
		var err error
		last, err = recorder.RecordPlankSession(1, 10, d)
		require.NoError(t, err)
		sum += int64(d)
	}

	assert.Equal(t, sum, last.NewTotal)
	assert.Len(t, store.plankLogs, len(durations))
}

func TestCompanyMilestoneCrossing(t *testing.T) {
	store := newFakeStore()
	// Other members carry the company to 29900 before this submission.
	store.userTotals[2] = 15000
	store.userTotals[3] = 14900
	store.companyOfUser[1] = 10
	store.companyOfUser[2] = 10
	store.companyOfUser[3] = 10
	recorder := NewRecorder(store)

	result, err := recorder.RecordPlankSession(1, 10, 200)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bronze"}, milestoneNames(result.CompanyMilestones))
	require.Len(t, store.companyAchieved, 1)
	assert.Equal(t, int64(30100), store.companyAchieved[0].TotalSecondsAtAchievement)
	assert.Equal(t, "Bronze", store.companyAchieved[0].MilestoneName)

	last := store.feedEntries[len(store.feedEntries)-1]
	assert.Equal(t, "company_milestone_achieved", last.ActivityType)
	assert.Equal(t, "Company achieved 🥉 Bronze milestone (500 minutes)!", last.Message)
}

func TestCompanyMilestoneNotDoubleRecorded(t *testing.T) {
	store := newFakeStore()
	store.userTotals[2] = 30500
	store.companyOfUser[1] = 10
	store.companyOfUser[2] = 10
	recorder := NewRecorder(store)

	// Bronze is already behind the company; only the submission window counts.
	result, err := recorder.RecordPlankSession(1, 10, 100)
	require.NoError(t, err)

	assert.Empty(t, result.CompanyMilestones)
	assert.Empty(t, store.companyAchieved)
}

func TestDuplicateAchievementIsBenign(t *testing.T) {
	store := newFakeStore()
	store.companyOfUser[1] = 10
	// Simulate an earlier submission having already recorded Beginner while
	// the running total was lost (drift scenario).
	store.userMilestones = append(store.userMilestones, models.UserMilestone{
		UserID:        1,
		MilestoneName: "Beginner",
	})
	recorder := NewRecorder(store)

	result, err := recorder.RecordPlankSession(1, 10, 650)
	require.NoError(t, err)

	// Crossing still reported to the submitter, but no second row appears.
	assert.Equal(t, []string{"Beginner"}, milestoneNames(result.Milestones))
	assert.Len(t, store.userMilestones, 1)
}

func TestStoreFailureAborts(t *testing.T) {
	store := newFakeStore()
	store.companyOfUser[1] = 10
	store.failIncrement = errors.New("connection reset")
	recorder := NewRecorder(store)

	_, err := recorder.RecordPlankSession(1, 10, 650)
	require.Error(t, err)

	// The log insert preceded the failure and is not rolled back; nothing
	// after the failed step runs.
	assert.Len(t, store.plankLogs, 1)
	assert.Empty(t, store.userMilestones)
	assert.Empty(t, store.feedEntries)
}

func TestRejectsNonPositiveDuration(t *testing.T) {
	recorder := NewRecorder(newFakeStore())

	_, err := recorder.RecordPlankSession(1, 10, 0)
	assert.Error(t, err)

	_, err = recorder.RecordPlankSession(1, 10, -30)
	assert.Error(t, err)
}
