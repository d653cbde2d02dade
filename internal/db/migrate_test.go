package db_test

import (
	"database/sql"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvkuechen/secguard/internal/db"
	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/testutil"
)

func TestMigrateV1AnswerSet(t *testing.T) {
	tests := []struct {
		name string
		old  map[string]string
		want map[string]string
	}{
		{
			name: "password manager yes becomes dedicated",
			old:  map[string]string{"passwordManager": "yes"},
			want: map[string]string{"passwordManager": "dedicated"},
		},
		{
			name: "password manager no becomes memory",
			old:  map[string]string{"passwordManager": "no"},
			want: map[string]string{"passwordManager": "memory"},
		},
		{
			name: "password manager other values pass through",
			old:  map[string]string{"passwordManager": "browser"},
			want: map[string]string{"passwordManager": "browser"},
		},
		{
			name: "email 2fa renames verbatim",
			old:  map[string]string{"twoFactorEmail": "unsure"},
			want: map[string]string{"emailTwoFactor": "unsure"},
		},
		{
			name: "banking 2fa yes becomes all",
			old:  map[string]string{"twoFactorBanking": "yes"},
			want: map[string]string{"financialTwoFactor": "all"},
		},
		{
			name: "banking 2fa no stays no",
			old:  map[string]string{"twoFactorBanking": "no"},
			want: map[string]string{"financialTwoFactor": "no"},
		},
		{
			name: "banking 2fa unknown becomes unsure",
			old:  map[string]string{"twoFactorBanking": "partial"},
			want: map[string]string{"financialTwoFactor": "unsure"},
		},
		{
			name: "updates split into frequency values",
			old:  map[string]string{"updates": "yes-auto"},
			want: map[string]string{"softwareUpdates": "auto"},
		},
		{
			name: "manual updates become prompt",
			old:  map[string]string{"updates": "yes-manual"},
			want: map[string]string{"softwareUpdates": "prompt"},
		},
		{
			name: "skipped updates become delay",
			old:  map[string]string{"updates": "no"},
			want: map[string]string{"softwareUpdates": "delay"},
		},
		{
			name: "unknown update value becomes unsure",
			old:  map[string]string{"updates": "sometimes"},
			want: map[string]string{"softwareUpdates": "unsure"},
		},
		{
			name: "unmapped keys are dropped",
			old:  map[string]string{"antivirus": "yes", "twoFactorEmail": "yes"},
			want: map[string]string{"emailTwoFactor": "yes"},
		},
		{
			name: "empty input",
			old:  map[string]string{},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, db.MigrateV1AnswerSet(tt.old))
		})
	}
}

func TestMigrate_RemapsV1Rows(t *testing.T) {
	database := testutil.NewTestDB(t)

	// Rewind the store to the v1 shape: old keys, version marker 1.
	_, err := database.Exec(`DELETE FROM answers`)
	require.NoError(t, err)
	for k, v := range map[string]string{
		"passwordManager":  "yes",
		"twoFactorEmail":   "yes",
		"twoFactorBanking": "yes",
		"updates":          "yes-manual",
		"antivirus":        "yes",
	} {
		_, err := database.Exec(`INSERT INTO answers (question_id, value, updated_at) VALUES (?, ?, '2025-01-01T00:00:00Z')`, k, v)
		require.NoError(t, err)
	}
	_, err = database.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', '1')`)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(database))

	got := readAnswers(t, database)
	assert.Equal(t, map[string]string{
		"passwordManager":    "dedicated",
		"emailTwoFactor":     "yes",
		"financialTwoFactor": "all",
		"softwareUpdates":    "prompt",
	}, got)
	assert.Equal(t, domain.StateVersion, readVersion(t, database))
}

func TestMigrate_CurrentVersionUntouched(t *testing.T) {
	database := testutil.NewTestDB(t)

	_, err := database.Exec(`INSERT INTO answers (question_id, value, updated_at) VALUES ('emailTwoFactor', 'yes', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(database))

	assert.Equal(t, map[string]string{"emailTwoFactor": "yes"}, readAnswers(t, database))
}

func TestMigrate_UnknownVersionWipesState(t *testing.T) {
	database := testutil.NewTestDB(t)

	_, err := database.Exec(`INSERT INTO answers (question_id, value, updated_at) VALUES ('emailTwoFactor', 'yes', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO task_marks (task_id, mark, marked_at) VALUES ('enable-2fa-email', 'completed', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', '99')`)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(database))

	assert.Empty(t, readAnswers(t, database))
	var marks int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM task_marks`).Scan(&marks))
	assert.Zero(t, marks)
	assert.Equal(t, domain.StateVersion, readVersion(t, database))
}

func readAnswers(t *testing.T, database *sql.DB) map[string]string {
	t.Helper()
	rows, err := database.Query(`SELECT question_id, value FROM answers`)
	require.NoError(t, err)
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		require.NoError(t, rows.Scan(&k, &v))
		out[k] = v
	}
	require.NoError(t, rows.Err())
	return out
}

func readVersion(t *testing.T, database *sql.DB) int {
	t.Helper()
	var raw string
	require.NoError(t, database.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&raw))
	v, err := strconv.Atoi(raw)
	require.NoError(t, err)
	return v
}
