package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/models"
	"github.com/daily-hold/plank-api/progress"
)

func InitDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"))
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto Migrate models
	db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.RefreshToken{},
		&models.PasswordReset{},
		&models.PlankLog{},
		&models.Milestone{},
		&models.UserMilestone{},
		&models.CompanyMilestone{},
		&models.CompanyMilestoneAchievement{},
		&models.ActivityFeedEntry{},
		&models.CommunityPost{},
		&models.PostReaction{},
		&models.HealthTip{},
		&models.SignupError{},
	)

	seedMilestones(db)
	seedHealthTips(db)

	return db
}

// seedMilestones makes sure the static threshold tables exist as rows, so
// achievement records always have a definition to reference.
func seedMilestones(db *gorm.DB) {
	for _, def := range progress.Milestones {
		var count int64
		db.Model(&models.Milestone{}).Where("name = ?", def.Name).Count(&count)
		if count == 0 {
			db.Create(&models.Milestone{
				Name:             def.Name,
				Description:      fmt.Sprintf("Reach %s of total plank time", def.Label),
				ThresholdSeconds: def.Seconds,
			})
		}
	}

	for _, def := range progress.CompanyMilestones {
		var count int64
		db.Model(&models.CompanyMilestone{}).Where("name = ?", def.Name).Count(&count)
		if count == 0 {
			db.Create(&models.CompanyMilestone{
				Name:             def.Name,
				ThresholdSeconds: def.Seconds,
			})
		}
	}
}

func seedHealthTips(db *gorm.DB) {
	var count int64
	db.Model(&models.HealthTip{}).Count(&count)
	if count > 0 {
		return
	}

	tips := []models.HealthTip{
		{
			Title:    "Keep a straight line",
			Body:     "Your head, shoulders, hips and ankles should form one straight line. Sagging hips shift the load off your core.",
			Category: "form",
			Tags:     []string{"core", "posture"},
		},
		{
			Title:    "Breathe steadily",
			Body:     "Holding your breath raises blood pressure and tires you faster. Breathe slowly and evenly through the hold.",
			Category: "breathing",
			Tags:     []string{"endurance"},
		},
		{
			Title:    "Squeeze your glutes",
			Body:     "Actively squeezing your glutes protects your lower back and keeps your pelvis from tilting.",
			Category: "form",
			Tags:     []string{"glutes", "lower-back"},
		},
		{
			Title:    "Quality over duration",
			Body:     "A shorter plank with perfect form beats a long one with a sagging back. Stop when your form breaks down.",
			Category: "form",
			Tags:     []string{"safety"},
		},
		{
			Title:    "Rest between sessions",
			Body:     "Your core needs recovery like any other muscle group. Alternate hard days with easy ones.",
			Category: "recovery",
			Tags:     []string{"rest"},
		},
		{
			Title:    "Small daily holds add up",
			Body:     "Two minutes a day is over an hour a month. Consistency moves you through the milestones, not heroics.",
			Category: "motivation",
			Tags:     []string{"habit", "milestones"},
		},
	}
	db.Create(&tips)
}
