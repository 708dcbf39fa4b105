package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/model"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID retrieves an account
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var m model.Account
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, MapError(err, fmt.Sprintf("get account %d", id))
	}
	return &entity.Account{
		ID:         m.ID,
		Name:       m.Name,
		ExternalID: m.ExternalID,
		Active:     m.Active,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

// SetExternalID stores the payment gateway customer id
func (r *AccountRepository) SetExternalID(ctx context.Context, id uint64, externalID string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"external_id": externalID,
			"updated_at":  r.timeProvider.Now(),
		})
	if result.Error != nil {
		return MapError(result.Error, "set account external id")
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("account %d: %w", id, errs.ErrNotFound)
	}
	return nil
}

// MemberUserIDs lists the users behind the account's owners and attendees
func (r *AccountRepository) MemberUserIDs(ctx context.Context, accountID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Raw(
		`SELECT user_id FROM owners WHERE account_id = ? UNION SELECT user_id FROM attendees WHERE account_id = ?`,
		accountID, accountID,
	).Scan(&ids).Error
	if err != nil {
		return nil, MapError(err, "list account members")
	}
	return ids, nil
}

// HasPayments reports whether any payment row references the account
func (r *AccountRepository) HasPayments(ctx context.Context, accountID uint64) (bool, error) {
	var found bool
	err := r.db.WithContext(ctx).Raw(
		`SELECT EXISTS (SELECT 1 FROM payments WHERE account_id = ?)`, accountID,
	).Scan(&found).Error
	if err != nil {
		return false, MapError(err, "check account payments")
	}
	return found, nil
}

// DeleteUsers removes users together with their profile rows
func (r *AccountRepository) DeleteUsers(ctx context.Context, userIDs []uint64) error {
	if len(userIDs) == 0 {
		return nil
	}
	db := r.db.WithContext(ctx)

	for _, profile := range []any{&model.Owner{}, &model.Attendee{}, &model.Employee{}} {
		if err := db.Where("user_id IN ?", userIDs).Delete(profile).Error; err != nil {
			return MapError(err, "delete member profiles")
		}
	}
	if err := db.Where("id IN ?", userIDs).Delete(&model.User{}).Error; err != nil {
		return MapError(err, "delete member users")
	}

	r.logger.Info("Account member users deleted", map[string]any{
		"count": len(userIDs),
	})
	return nil
}

// CustomFieldRepository implements persistence.CustomFieldRepository using GORM
type CustomFieldRepository struct {
	db *gorm.DB
}

// NewCustomFieldRepository creates a new CustomFieldRepository instance
func NewCustomFieldRepository(db *gorm.DB) *CustomFieldRepository {
	return &CustomFieldRepository{db: db}
}

// ActiveFields lists the active custom fields declared for a table
func (r *CustomFieldRepository) ActiveFields(ctx context.Context, table string) ([]entity.CustomField, error) {
	var rows []model.CustomField
	err := r.db.WithContext(ctx).
		Where("table_name = ? AND active = ?", table, true).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, MapError(err, "list custom fields")
	}

	fields := make([]entity.CustomField, 0, len(rows))
	for _, m := range rows {
		fields = append(fields, entity.CustomField{
			ID:          m.ID,
			Name:        m.Name,
			DisplayName: m.DisplayName,
			TableName:   m.ForTable,
			FieldType:   m.FieldType,
			Required:    m.Required,
			Active:      m.Active,
		})
	}
	return fields, nil
}

// UpsertValue creates or replaces the value of one field for one account
func (r *CustomFieldRepository) UpsertValue(ctx context.Context, value *entity.CustomFieldValue) error {
	m := model.CustomAccountField{
		AccountID:     value.AccountID,
		CustomFieldID: value.CustomFieldID,
		Value:         value.Value,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "custom_field_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&m).Error
	if err != nil {
		return MapError(err, "save custom field value")
	}
	value.ID = m.ID
	return nil
}

// SettingRepository implements persistence.SettingRepository using GORM
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new SettingRepository instance
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetValue returns the value of the named setting
func (r *SettingRepository) GetValue(ctx context.Context, name string) (string, error) {
	var m model.Setting
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		return "", MapError(err, "get setting "+name)
	}
	return m.Value, nil
}

// Ensure creates the setting when missing and leaves an existing value alone
func (r *SettingRepository) Ensure(ctx context.Context, setting *entity.Setting) error {
	m := model.Setting{
		Name:        setting.Name,
		Value:       setting.Value,
		Description: setting.Description,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&m).Error
	if err != nil {
		return MapError(err, "ensure setting "+setting.Name)
	}
	setting.ID = m.ID
	return nil
}
