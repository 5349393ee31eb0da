package bootstrap

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/urbancare/urbancare-api/internal/entity"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Issue{},
		&entity.IssueUpdate{},
	)
}

type demoAccount struct {
	Email    string
	Password string
	Name     string
	Mobile   string
	Role     entity.Role
}

// Fixture accounts for local development and demos, one per role. Seeding
// only runs when SEED_DEMO_DATA is enabled so these never land in a
// production credential store.
var demoAccounts = []demoAccount{
	{"citizen@urbancare.local", "citizen123", "Demo Citizen", "5550100001", entity.RoleCitizen},
	{"admin@urbancare.local", "admin123", "Demo Admin", "5550100002", entity.RoleAdmin},
	{"central@urbancare.local", "central123", "Demo Central Admin", "5550100003", entity.RoleCentralAdmin},
}

func SeedDemoAccounts(db *gorm.DB) error {
	for _, account := range demoAccounts {
		var count int64
		if err := db.Model(&entity.User{}).
			Where("email = ?", account.Email).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := entity.User{
			Email:        account.Email,
			PasswordHash: string(hashed),
			Name:         account.Name,
			Mobile:       account.Mobile,
			Role:         account.Role,
		}

		if err := db.Create(&user).Error; err != nil {
			return err
		}

		log.Printf("seeded demo account %s (%s)", account.Email, account.Role)
	}

	return nil
}
