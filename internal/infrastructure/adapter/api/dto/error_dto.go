package dto

import (
	"sort"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

// ValidationMessage is one field level message
type ValidationMessage struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorItem is one entry of an error envelope
type ErrorItem struct {
	Status         int                 `json:"status"`
	Code           int64               `json:"code"`
	Title          string              `json:"title"`
	Dev            string              `json:"dev,omitempty"`
	More           string              `json:"more,omitempty"`
	ValidationList []ValidationMessage `json:"validation_list,omitempty"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// NewErrorResponse renders an APIError. Field messages are sorted by field.
func NewErrorResponse(apiErr *errs.APIError) ErrorResponse {
	item := ErrorItem{
		Status: apiErr.Status,
		Code:   apiErr.Code,
		Title:  apiErr.Title,
		Dev:    apiErr.Dev,
		More:   apiErr.More,
	}

	if len(apiErr.Fields) > 0 {
		fields := make([]string, 0, len(apiErr.Fields))
		for field := range apiErr.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		item.ValidationList = make([]ValidationMessage, 0, len(fields))
		for _, field := range fields {
			item.ValidationList = append(item.ValidationList, ValidationMessage{
				Field:   field,
				Message: apiErr.Fields[field],
			})
		}
	}

	return ErrorResponse{Errors: []ErrorItem{item}}
}
