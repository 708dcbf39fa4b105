package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"unicode"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/gin-gonic/gin"
)

const bodyKey = "smores.body"

const (
	invalidJSONTitle = "There was a problem understanding the data sent to the server by the application."
	invalidJSONDev   = "The JSON body sent to the server was unable to be parsed."
)

// ErrInvalidJSON is rendered when a request body is not a JSON object
func ErrInvalidJSON(cause error) error {
	return errs.NewHTTPError(http.StatusConflict, invalidJSONTitle, errs.CodeInvalidJSON).
		WithDev(invalidJSONDev).
		WithCause(cause)
}

// JSONBody requires a JSON object body. Keys are converted to snake_case at
// every depth and the result is stored for Body.
func JSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			Abort(c, ErrInvalidJSON(err))
			return
		}

		body, err := decodeObject(raw)
		if err != nil {
			Abort(c, ErrInvalidJSON(err))
			return
		}

		c.Set(bodyKey, body)
		c.Next()
	}
}

// Body returns the object parsed by JSONBody
func Body(c *gin.Context) map[string]any {
	v, ok := c.Get(bodyKey)
	if !ok {
		return map[string]any{}
	}
	body, _ := v.(map[string]any)
	if body == nil {
		return map[string]any{}
	}
	return body
}

// BindBody decodes the parsed body, unwrapped from key, into target using
// its json tags
func BindBody(c *gin.Context, key string, target any) error {
	raw, err := json.Marshal(Unwrap(Body(c), key))
	if err != nil {
		return ErrInvalidJSON(err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return ErrInvalidJSON(err)
	}
	return nil
}

// Unwrap returns the object under key when body holds only that key,
// otherwise body itself
func Unwrap(body map[string]any, key string) map[string]any {
	if len(body) != 1 {
		return body
	}
	if inner, ok := body[key].(map[string]any); ok {
		return inner
	}
	if list, ok := body[key].([]any); ok && len(list) == 1 {
		if inner, ok := list[0].(map[string]any); ok {
			return inner
		}
	}
	return body
}

func decodeObject(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, io.ErrUnexpectedEOF
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errs.ErrInvalidRequest
	}
	if body == nil {
		return nil, errs.ErrInvalidRequest
	}

	return normalize(body).(map[string]any), nil
}

// normalize snake-cases keys and turns numbers into int64 or float64
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[SnakeCase(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}

// SnakeCase converts camelCase and PascalCase names to snake_case.
// Names that already contain underscores are only lower cased.
func SnakeCase(name string) string {
	if strings.ContainsRune(name, '_') {
		return strings.ToLower(name)
	}

	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
