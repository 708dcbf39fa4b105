package search

import (
	"sort"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
)

// Catalog holds every resource the API exposes
type Catalog struct {
	resources map[string]*Resource
}

// NewCatalog builds a catalog from resource declarations
func NewCatalog(resources ...*Resource) *Catalog {
	c := &Catalog{resources: make(map[string]*Resource, len(resources))}
	for _, r := range resources {
		c.resources[r.Name] = r
	}
	return c
}

// Lookup returns the resource with the given plural name
func (c *Catalog) Lookup(name string) (*Resource, bool) {
	r, ok := c.resources[name]
	return r, ok
}

// Names returns the resource names in alphabetical order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.resources))
	for name := range c.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func userFields() []Field {
	return []Field{
		Int("id").ReadOnlyField(),
		String("first_name"),
		String("last_name"),
		String("email"),
		String("user_name"),
		String("password").HiddenField(),
		String("salt").HiddenField().ReadOnlyField(),
		String("status"),
		String("user_type").ReadOnlyField(),
		Time("created_at").ReadOnlyField(),
		Time("updated_at").ReadOnlyField(),
	}
}

func usersParent() *Parent {
	return &Parent{Table: "users", Key: "id", ForeignKey: "user_id", Fields: userFields()}
}

func belongsTo(name, local string) Relation {
	return Relation{Name: name, Target: name, Kind: BelongsTo, LocalField: local, ForeignField: "id"}
}

func hasMany(name, foreign string) Relation {
	return Relation{Name: name, Target: name, Kind: HasMany, LocalField: "id", ForeignField: foreign}
}

// DefaultCatalog declares the camp management schema
func DefaultCatalog() *Catalog {
	return NewCatalog(
		&Resource{
			Name: "users", Singular: "user", Table: "users", Key: "id",
			Fields: userFields(),
		},
		&Resource{
			Name: "accounts", Singular: "account", Table: "accounts", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				String("name"),
				String("external_id").ReadOnlyField(),
				Bool("active"),
				String("address"),
				String("city"),
				String("state"),
				String("zip"),
				String("phone"),
				Time("created_at").ReadOnlyField(),
				Time("updated_at").ReadOnlyField(),
			},
			Relations: []Relation{
				hasMany("owners", "account_id"),
				hasMany("attendees", "account_id"),
				hasMany("cards", "account_id"),
				hasMany("checks", "account_id"),
				hasMany("payments", "account_id"),
				hasMany("custom_account_fields", "account_id"),
			},
			AlwaysWith: []string{"custom_account_fields"},
		},
		&Resource{
			Name: "owners", Singular: "owner", Table: "owners", Key: "user_id",
			Parent: usersParent(),
			Fields: []Field{
				Int("user_id").ReadOnlyField(),
				Int("account_id"),
				Bool("primary_contact"),
				String("relationship"),
				String("mobile_phone"),
			},
			Relations: []Relation{belongsTo("accounts", "account_id")},
		},
		&Resource{
			Name: "attendees", Singular: "attendee", Table: "attendees", Key: "user_id",
			Parent: usersParent(),
			Fields: []Field{
				Int("user_id").ReadOnlyField(),
				Int("account_id"),
				Bool("active"),
				Int("school_grade"),
				Date("date_of_birth"),
				String("gender"),
			},
			Relations: []Relation{belongsTo("accounts", "account_id")},
		},
		&Resource{
			Name: "employees", Singular: "employee", Table: "employees", Key: "user_id",
			Parent: usersParent(),
			Fields: []Field{
				Int("user_id").ReadOnlyField(),
				Bool("active"),
				String("job_title"),
				String("phone"),
			},
		},
		&Resource{
			Name: "events", Singular: "event", Table: "events", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				String("name"),
				String("description"),
				Time("start_date"),
				Time("end_date"),
				Decimal("fee"),
				Int("capacity"),
				Int("location_id"),
				Int("program_id"),
				Int("session_id"),
				Time("created_at").ReadOnlyField(),
				Time("updated_at").ReadOnlyField(),
			},
			Relations: []Relation{
				belongsTo("locations", "location_id"),
				belongsTo("programs", "program_id"),
				belongsTo("sessions", "session_id"),
				{
					Name: "cabins", Target: "cabins", Kind: ManyToMany,
					LocalField: "id", ForeignField: "id",
					Through: &Through{Table: "event_cabins", LocalKey: "event_id", ForeignKey: "cabin_id"},
				},
			},
		},
		&Resource{
			Name: "cabins", Singular: "cabin", Table: "cabins", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				String("name"),
				Int("capacity"),
				Int("location_id"),
			},
			Relations: []Relation{belongsTo("locations", "location_id")},
		},
		&Resource{
			Name: "locations", Singular: "location", Table: "locations", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				String("name"),
				String("address"),
				String("city"),
				String("state"),
				String("zip"),
			},
			Relations: []Relation{hasMany("cabins", "location_id")},
		},
		&Resource{
			Name: "programs", Singular: "program", Table: "programs", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				String("name"),
				String("description"),
				Decimal("cost"),
			},
			Relations: []Relation{hasMany("events", "program_id")},
		},
		&Resource{
			Name: "sessions", Singular: "session", Table: "sessions", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				String("name"),
				Date("start_date"),
				Date("end_date"),
			},
			Relations: []Relation{hasMany("events", "session_id")},
		},
		&Resource{
			Name: "checks", Singular: "check", Table: "checks", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				Int("account_id"),
				String("number"),
				Date("date"),
				String("account_number"),
				String("routing_number"),
				String("name_on_check"),
				Decimal("amount"),
				Time("created_at").ReadOnlyField(),
			},
			Relations: []Relation{
				belongsTo("accounts", "account_id"),
				hasMany("payments", "check_id"),
			},
		},
		&Resource{
			Name: "cards", Singular: "card", Table: "cards", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				Int("account_id").ReadOnlyField(),
				String("external_id").ReadOnlyField(),
				String("name_on_card"),
				String("last_four").ReadOnlyField(),
				String("vendor").ReadOnlyField(),
				Int("expiration_month").ReadOnlyField(),
				Int("expiration_year").ReadOnlyField(),
				String("address"),
				String("zip"),
				Bool("active"),
				Time("created_at").ReadOnlyField(),
				Time("updated_at").ReadOnlyField(),
			},
			Relations: []Relation{
				belongsTo("accounts", "account_id"),
				hasMany("payments", "card_id"),
			},
		},
		&Resource{
			Name: "payments", Singular: "payment", Table: "payments", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				Int("account_id").ReadOnlyField(),
				Int("card_id").ReadOnlyField(),
				Int("check_id").ReadOnlyField(),
				Int("refund_of_id").ReadOnlyField(),
				Decimal("amount").ReadOnlyField(),
				String("mode").ReadOnlyField(),
				String("external_id").ReadOnlyField(),
				Bool("refunded").ReadOnlyField(),
				String("notes"),
				Time("created_at").ReadOnlyField(),
				Time("updated_at").ReadOnlyField(),
			},
			Relations: []Relation{
				belongsTo("accounts", "account_id"),
				belongsTo("cards", "card_id"),
				belongsTo("checks", "check_id"),
			},
		},
		&Resource{
			Name: "settings", Singular: "setting", Table: "settings", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				String("name"),
				String("value"),
				String("description"),
			},
			EmployeesOnly: true,
			Redact:        redactSecretSetting,
		},
		&Resource{
			Name: "custom_fields", Singular: "custom_field", Table: "custom_fields", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				String("name"),
				String("display_name"),
				String("table_name"),
				String("field_type"),
				Bool("required"),
				Bool("active"),
			},
		},
		&Resource{
			Name: "custom_account_fields", Singular: "custom_account_field", Table: "custom_account_fields", Key: "id",
			Fields: []Field{
				Int("id").ReadOnlyField(),
				Int("account_id"),
				Int("custom_field_id"),
				String("value"),
			},
			Relations: []Relation{
				belongsTo("accounts", "account_id"),
				belongsTo("custom_fields", "custom_field_id"),
			},
		},
	)
}

// redactSecretSetting masks the value of settings holding credentials
func redactSecretSetting(record Record) {
	name, _ := record["name"].(string)
	if !entity.IsSecretSetting(name) {
		return
	}
	if value, _ := record["value"].(string); value != "" {
		record["value"] = entity.RedactedValue
	}
}
