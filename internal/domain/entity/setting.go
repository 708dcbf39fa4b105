package entity

// SettingStripeAPIKey names the settings row holding the gateway secret key
const SettingStripeAPIKey = "Stripe API Key"

// RedactedValue replaces secret setting values in API responses
const RedactedValue = "********"

var secretSettings = map[string]bool{
	SettingStripeAPIKey: true,
}

// Setting is an administrator editable key/value row
type Setting struct {
	ID          uint64
	Name        string
	Value       string
	Description string
}

// IsSecretSetting reports whether the named setting must never be returned
func IsSecretSetting(name string) bool {
	return secretSettings[name]
}
