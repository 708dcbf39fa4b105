package repository

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
)

func mustParse(t *testing.T, raw string) *search.Query {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	q, err := search.Parse(values, search.DefaultLimits)
	require.NoError(t, err)
	return q
}

func TestBuildConditions(t *testing.T) {
	catalog := search.DefaultCatalog()
	accounts, _ := catalog.Lookup("accounts")
	owners, _ := catalog.Lookup("owners")

	testCases := []struct {
		name     string
		res      *search.Resource
		query    string
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "equality",
			res:      accounts,
			query:    "name=Smith",
			wantSQL:  `"accounts"."name" = ?`,
			wantArgs: []any{"Smith"},
		},
		{
			name:     "integer conversion",
			res:      accounts,
			query:    "id=12",
			wantSQL:  `"accounts"."id" = ?`,
			wantArgs: []any{int64(12)},
		},
		{
			name:     "wildcard",
			res:      accounts,
			query:    "name=*mit*",
			wantSQL:  `CAST("accounts"."name" AS TEXT) ILIKE ?`,
			wantArgs: []any{"%mit%"},
		},
		{
			name:     "or across fields",
			res:      owners,
			query:    "first_name||last_name=Jo*",
			wantSQL:  `(CAST("users"."first_name" AS TEXT) ILIKE ? OR CAST("users"."last_name" AS TEXT) ILIKE ?)`,
			wantArgs: []any{"Jo%", "Jo%"},
		},
		{
			name:     "or across values",
			res:      accounts,
			query:    "state=WA||OR",
			wantSQL:  `("accounts"."state" = ? OR "accounts"."state" = ?)`,
			wantArgs: []any{"WA", "OR"},
		},
		{
			name:     "negated and null",
			res:      accounts,
			query:    "external_id=!null&name=!Smith",
			wantSQL:  `"accounts"."external_id" IS NOT NULL AND "accounts"."name" <> ?`,
			wantArgs: []any{"Smith"},
		},
		{
			name:     "range",
			res:      owners,
			query:    "account_id=>=3",
			wantSQL:  `"owners"."account_id" >= ?`,
			wantArgs: []any{int64(3)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args, err := buildConditions(tc.res, mustParse(t, tc.query).Filters)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, sql)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestBuildConditionsErrors(t *testing.T) {
	accounts, _ := search.DefaultCatalog().Lookup("accounts")

	t.Run("unknown field", func(t *testing.T) {
		_, _, err := buildConditions(accounts, mustParse(t, "shoe_size=9").Filters)
		assert.ErrorIs(t, err, errs.ErrUnknownField)
	})

	t.Run("bad value", func(t *testing.T) {
		_, _, err := buildConditions(accounts, mustParse(t, "id=abc").Filters)
		assert.ErrorIs(t, err, errs.ErrInvalidQuery)
	})

	t.Run("hidden field", func(t *testing.T) {
		users, _ := search.DefaultCatalog().Lookup("users")
		_, _, err := buildConditions(users, mustParse(t, "password=x").Filters)
		assert.ErrorIs(t, err, errs.ErrUnknownField)
	})
}

func TestBuildOrder(t *testing.T) {
	owners, _ := search.DefaultCatalog().Lookup("owners")

	assert.Equal(t, `"owners"."user_id" ASC`, buildOrder(owners, nil))
	assert.Equal(t, `"users"."last_name" DESC, "owners"."account_id" ASC`, buildOrder(owners, []search.SortKey{
		{Field: "last_name", Desc: true},
		{Field: "account_id"},
	}))
}

func TestInsertStatement(t *testing.T) {
	sql, args := insertStatement("accounts", search.Record{"name": "Smith", "active": true}, "id")
	assert.Equal(t, `INSERT INTO "accounts" ("active","name") VALUES (?,?) RETURNING "id"`, sql)
	assert.Equal(t, []any{true, "Smith"}, args)

	sql, args = insertStatement("sessions", search.Record{}, "id")
	assert.Equal(t, `INSERT INTO "sessions" DEFAULT VALUES RETURNING "id"`, sql)
	assert.Empty(t, args)

	sql, _ = insertStatement("owners", search.Record{"user_id": uint64(3)}, "")
	assert.Equal(t, `INSERT INTO "owners" ("user_id") VALUES (?)`, sql)
}

func TestCoerceRecord(t *testing.T) {
	events, _ := search.DefaultCatalog().Lookup("events")

	record := search.Record{
		"capacity":   float64(40),
		"program_id": "7",
		"fee":        float64(125.5),
		"name":       "Week 1",
		"session_id": "",
	}
	require.NoError(t, coerceRecord(events.Fields, record))
	assert.Equal(t, int64(40), record["capacity"])
	assert.Equal(t, int64(7), record["program_id"])
	assert.Equal(t, 125.5, record["fee"])
	assert.Equal(t, "Week 1", record["name"])
	assert.Nil(t, record["session_id"])

	err := coerceRecord(events.Fields, search.Record{"capacity": 2.5})
	require.Error(t, err)
	assert.True(t, errs.IsValidationError(err))
}
