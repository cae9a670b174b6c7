package sqldb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionBackend_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		driver   string
		mock     func(mock sqlmock.Sqlmock)
		wantData string
		wantOK   bool
		wantErr  bool
	}{
		{
			name:   "found",
			driver: DriverPostgres,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT data\s+FROM collections\s+WHERE name = \$1`).
					WithArgs("events").
					WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(`[{"id":"1"}]`))
			},
			wantData: `[{"id":"1"}]`,
			wantOK:   true,
		},
		{
			name:   "missing",
			driver: DriverPgx,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT data`).
					WithArgs("events").
					WillReturnError(sql.ErrNoRows)
			},
			wantOK: false,
		},
		{
			name:   "sqlite placeholders",
			driver: DriverSQLite,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE name = \?`).
					WithArgs("events").
					WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(`[]`))
			},
			wantData: `[]`,
			wantOK:   true,
		},
		{
			name:   "db error",
			driver: DriverPostgres,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT data`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			backend := NewBackend(db, tt.driver)
			data, ok, err := backend.Get(ctx, "events")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantData, string(data))
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCollectionBackend_Put(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO collections \(name, data, updated_at\)\s+VALUES \(\$1, \$2, \$3\)\s+ON CONFLICT \(name\) DO UPDATE`).
			WithArgs("users", `[{"id":"1"}]`, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = NewBackend(db, DriverPostgres).Put(ctx, "users", []byte(`[{"id":"1"}]`))
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sqlite placeholders", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`VALUES \(\?, \?, \?\)`).
			WithArgs("users", `[]`, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err = NewBackend(db, DriverSQLite).Put(ctx, "users", []byte(`[]`))
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO collections`).WillReturnError(sql.ErrConnDone)

		err = NewBackend(db, DriverPostgres).Put(ctx, "users", []byte(`[]`))
		require.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS collections`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "")
	assert.ErrorContains(t, err, "unsupported database driver")
}
