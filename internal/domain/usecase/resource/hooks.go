package resource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
)

// Hooks are callbacks run inside the write transaction of a resource.
// Before hooks may change the record that is about to be written.
// AfterSave receives the unfiltered client record.
type Hooks struct {
	BeforeCreate func(ctx context.Context, record search.Record) error
	BeforeUpdate func(ctx context.Context, id uint64, record search.Record) error
	AfterSave    func(ctx context.Context, id uint64, input search.Record, created bool) error
	BeforeDelete func(ctx context.Context, id uint64) error
}

func (s *Service) defaultHooks() map[string]Hooks {
	return map[string]Hooks{
		"users": {
			BeforeCreate: s.userDefaults(entity.UserTypeEmployee),
			BeforeUpdate: s.rehashPassword,
		},
		"owners": {
			BeforeCreate: s.userDefaults(entity.UserTypeOwner),
			BeforeUpdate: s.rehashPassword,
		},
		"attendees": {
			BeforeCreate: s.userDefaults(entity.UserTypeAttendee),
			BeforeUpdate: s.rehashPassword,
		},
		"employees": {
			BeforeCreate: s.employeeDefaults,
			BeforeUpdate: s.rehashPassword,
		},
		"accounts": {
			BeforeCreate: accountDefaults,
			AfterSave:    s.saveCustomFields,
			BeforeDelete: s.removeAccountMembers,
		},
		"cards": {
			BeforeDelete: s.removeCardFromGateway,
		},
	}
}

// userDefaults fills the users columns of a new login
func (s *Service) userDefaults(userType entity.UserType) func(context.Context, search.Record) error {
	return func(_ context.Context, record search.Record) error {
		record["user_type"] = string(userType)
		if _, ok := record["status"]; !ok {
			record["status"] = entity.UserStatusActive
		}

		email := strings.ToLower(strings.TrimSpace(stringValue(record["email"])))
		if email != "" {
			record["email"] = email
			if stringValue(record["user_name"]) == "" {
				record["user_name"] = email
			}
		}

		user := &entity.User{
			FirstName: strings.TrimSpace(stringValue(record["first_name"])),
			LastName:  strings.TrimSpace(stringValue(record["last_name"])),
			Email:     email,
			UserType:  userType,
		}
		if err := user.Validate(); err != nil {
			return err
		}

		return s.hashPassword(record)
	}
}

// employeeDefaults makes a new employee an active login with a password
func (s *Service) employeeDefaults(ctx context.Context, record search.Record) error {
	if stringValue(record["password"]) == "" {
		return errs.NewValidationError("Could not save employee", errs.CodeInvalidRequest, map[string]string{
			"password": "Password is required",
		})
	}
	record["active"] = true

	return s.userDefaults(entity.UserTypeEmployee)(ctx, record)
}

func (s *Service) rehashPassword(_ context.Context, _ uint64, record search.Record) error {
	return s.hashPassword(record)
}

// hashPassword replaces a plain password with its hash and a fresh salt.
// An empty password is dropped so updates never blank it.
func (s *Service) hashPassword(record search.Record) error {
	raw, ok := record["password"]
	if !ok {
		return nil
	}

	password := stringValue(raw)
	if password == "" {
		delete(record, "password")
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if errors.Is(err, errs.ErrPasswordTooLong) {
		return errs.NewValidationError("Could not save password", errs.CodeInvalidRequest, map[string]string{
			"password": "Password must be at most 72 bytes",
		}).WithCause(err)
	}
	if err != nil {
		return err
	}
	record["password"] = hash
	record["salt"] = s.secrets.Salt()
	return nil
}

func accountDefaults(_ context.Context, record search.Record) error {
	if _, ok := record["active"]; !ok {
		record["active"] = true
	}
	return nil
}

// saveCustomFields stores the values of active account custom fields found in
// the client record. Required fields must be present on create.
func (s *Service) saveCustomFields(ctx context.Context, id uint64, input search.Record, created bool) error {
	repo := s.uow.GetCustomFieldRepository(ctx)

	fields, err := repo.ActiveFields(ctx, "accounts")
	if err != nil {
		return err
	}

	for i := range fields {
		field := &fields[i]

		raw, present := input[field.Name]
		if !present && !(created && field.Required) {
			continue
		}

		value, err := field.Normalize(raw)
		if err != nil {
			return err
		}

		if err := repo.UpsertValue(ctx, &entity.CustomFieldValue{
			AccountID:     id,
			CustomFieldID: field.ID,
			Value:         value,
		}); err != nil {
			return err
		}
	}
	return nil
}

// removeAccountMembers deletes the users behind the account's owners and
// attendees, then the gateway customer
func (s *Service) removeAccountMembers(ctx context.Context, id uint64) error {
	accounts := s.uow.GetAccountRepository(ctx)

	account, err := accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// checked before any member or gateway customer is removed
	paid, err := accounts.HasPayments(ctx, id)
	if err != nil {
		return err
	}
	if paid {
		return errs.NewHTTPError(http.StatusConflict, "Account has payments and cannot be deleted", errs.CodeConstraintViolation).
			WithDev(fmt.Sprintf("Account %d has payments on record. Deactivate it instead.", id)).
			WithCause(errs.ErrConstraintViolation)
	}

	userIDs, err := accounts.MemberUserIDs(ctx, id)
	if err != nil {
		return err
	}
	if len(userIDs) > 0 {
		if err := accounts.DeleteUsers(ctx, userIDs); err != nil {
			return err
		}
	}

	if account.HasCustomer() && s.processors != nil {
		if err := s.processors.Processor(ctx).DeleteCustomer(ctx, account.ExternalID); err != nil {
			s.logger.Warn("Could not remove gateway customer of deleted account", map[string]any{
				"account_id":  id,
				"external_id": account.ExternalID,
				"error":       err.Error(),
			})
		}
	}

	s.logger.Info("Account members removed", map[string]any{
		"account_id": id,
		"users":      len(userIDs),
	})
	return nil
}

func (s *Service) removeCardFromGateway(ctx context.Context, id uint64) error {
	if s.cards == nil {
		return nil
	}
	return s.cards.RemoveFromGateway(ctx, id)
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
