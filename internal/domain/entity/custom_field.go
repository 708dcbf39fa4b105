package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

// Custom field value types
const (
	FieldTypeText    = "text"
	FieldTypeNumber  = "number"
	FieldTypeBoolean = "boolean"
	FieldTypeDate    = "date"
)

// CustomField is an administrator defined extra attribute of a table
type CustomField struct {
	ID          uint64
	Name        string
	DisplayName string
	TableName   string
	FieldType   string
	Required    bool
	Active      bool
}

// CustomFieldValue is the value of one custom field for one account
type CustomFieldValue struct {
	ID            uint64
	AccountID     uint64
	CustomFieldID uint64
	Value         string
}

// Normalize checks a raw submitted value against the field type and returns
// the string that will be stored
func (f *CustomField) Normalize(raw any) (string, error) {
	value := strings.TrimSpace(stringify(raw))

	if value == "" {
		if f.Required {
			return "", f.invalid("is required")
		}
		return "", nil
	}

	switch f.FieldType {
	case FieldTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return "", f.invalid("must be a number")
		}
	case FieldTypeBoolean:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", f.invalid("must be true or false")
		}
		value = strconv.FormatBool(b)
	case FieldTypeDate:
		if _, err := time.Parse(time.DateOnly, value); err != nil {
			return "", f.invalid("must be a date formatted YYYY-MM-DD")
		}
	}

	return value, nil
}

func (f *CustomField) invalid(reason string) error {
	label := f.DisplayName
	if label == "" {
		label = f.Name
	}
	return errs.NewValidationError("Could not save custom fields", errs.CodeInvalidRequest, map[string]string{
		f.Name: fmt.Sprintf("%s %s", label, reason),
	})
}

func stringify(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
