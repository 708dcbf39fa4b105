package migration

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/repository"
)

// ErrEmployeeExists is returned when the login of a new employee is taken
var ErrEmployeeExists = errors.New("a user with that email already exists")

// PasswordHasher hashes passwords for stored users
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// EmployeeInput describes a staff login to create
type EmployeeInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	JobTitle  string
}

// SeedOptions holds the values written by Seed
type SeedOptions struct {
	StripeAPIKey      string
	BootstrapEmail    string
	BootstrapPassword string
}

// Seeder writes the rows a new installation needs
type Seeder struct {
	db           *gorm.DB
	hasher       PasswordHasher
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewSeeder creates a new seeder
func NewSeeder(db *gorm.DB, hasher PasswordHasher, logger coreport.Logger, timeProvider coreport.TimeProvider) *Seeder {
	return &Seeder{
		db:           db,
		hasher:       hasher,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Seed makes sure the gateway key setting exists and, when credentials are
// given, that a bootstrap employee can log in
func (s *Seeder) Seed(ctx context.Context, opts SeedOptions) error {
	settings := repository.NewSettingRepository(s.db)
	if err := settings.Ensure(ctx, &entity.Setting{
		Name:        entity.SettingStripeAPIKey,
		Value:       opts.StripeAPIKey,
		Description: "Secret key used for card payments",
	}); err != nil {
		return err
	}

	if opts.BootstrapEmail == "" || opts.BootstrapPassword == "" {
		s.logger.Info("No bootstrap employee configured", nil)
		return nil
	}

	_, err := s.CreateEmployee(ctx, EmployeeInput{
		FirstName: "Camp",
		LastName:  "Administrator",
		Email:     opts.BootstrapEmail,
		Password:  opts.BootstrapPassword,
		JobTitle:  "Administrator",
	})
	if errors.Is(err, ErrEmployeeExists) {
		s.logger.Info("Bootstrap employee already present", map[string]any{"email": opts.BootstrapEmail})
		return nil
	}
	return err
}

// CreateEmployee inserts a user and its employee row and returns the user ID
func (s *Seeder) CreateEmployee(ctx context.Context, in EmployeeInput) (uint64, error) {
	user, err := entity.NewUser(in.FirstName, in.LastName, in.Email, entity.UserTypeEmployee, s.timeProvider.Now())
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(in.Password) == "" {
		return 0, errors.New("password is required")
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return 0, err
	}

	row := model.User{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		UserName:  user.UserName,
		Password:  hash,
		Status:    user.Status,
		UserType:  string(user.UserType),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("LOWER(email) = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmployeeExists
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.Create(&model.Employee{UserID: row.ID, Active: true, JobTitle: in.JobTitle}).Error
	})
	if err != nil {
		if errors.Is(err, ErrEmployeeExists) {
			return 0, err
		}
		return 0, repository.MapError(err, "create employee")
	}

	s.logger.Info("Employee created", map[string]any{"user_id": row.ID, "email": row.Email})
	return row.ID, nil
}
