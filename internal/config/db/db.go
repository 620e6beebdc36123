package db

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dormhub/dormhub-go/internal/config"
	"github.com/dormhub/dormhub-go/internal/domain/audit"
	"github.com/dormhub/dormhub-go/internal/domain/budget"
	"github.com/dormhub/dormhub-go/internal/domain/dorm"
	"github.com/dormhub/dormhub-go/internal/domain/expense"
	"github.com/dormhub/dormhub-go/internal/domain/membership"
	"github.com/dormhub/dormhub-go/internal/domain/notification"
	"github.com/dormhub/dormhub-go/internal/domain/user"
	"github.com/dormhub/dormhub-go/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	// TranslateError maps driver constraint violations onto gorm sentinel
	// errors so the business layer never sees raw database errors.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get sql.DB:", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Println("Database connected")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&dorm.Dorm{},
		&dorm.DismissalProcess{},
		&membership.Membership{},
		&expense.ExpenseCategory{},
		&expense.Expense{},
		&expense.ExpenseSplit{},
		&budget.Budget{},
		&budget.BudgetUsageRecord{},
		&audit.AuditLog{},
		&notification.Notification{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Seed inserts the seed categories and budgets when they are absent.
// Idempotent, safe to run on every start. An expired seed budget is not a
// match, so a restart opens a fresh period for it.
func Seed(gormDB *gorm.DB, seed *config.SeedData) error {
	repos := repository.NewRepositories(gormDB)
	now := time.Now()

	for _, name := range seed.Categories {
		_, err := repos.Expense.GetCategoryByName(name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := repos.Expense.CreateCategory(&expense.ExpenseCategory{CategoryName: name}); err != nil {
			return err
		}
	}

	for _, b := range seed.Budgets {
		_, err := repos.Budget.FindActiveByName(b.Name, now)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var categoryID *uint
		if b.Category != "" {
			if cat, err := repos.Expense.GetCategoryByName(b.Category); err == nil {
				categoryID = &cat.CategoryID
			}
		}

		periodDays := b.PeriodDays
		if periodDays <= 0 {
			periodDays = 365
		}
		if err := repos.Budget.CreateBudget(&budget.Budget{
			BudgetName:   b.Name,
			CategoryID:   categoryID,
			BudgetAmount: b.Amount,
			PeriodStart:  now,
			PeriodEnd:    now.AddDate(0, 0, periodDays),
			IsActive:     true,
		}); err != nil {
			return err
		}
	}

	return nil
}
