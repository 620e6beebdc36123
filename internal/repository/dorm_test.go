package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUpdateOccupancy(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDormRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "dorms" SET "current_occupancy"=.+ WHERE dorm_id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateOccupancy(7, 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDormByIDForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDormRepo(db)

	rows := sqlmock.NewRows([]string{"dorm_id", "dorm_code", "dorm_name", "status", "capacity", "current_occupancy"}).
		AddRow(7, "D-1", "North", "active", 4, 2)
	mock.ExpectQuery(`SELECT .+ FROM "dorms" WHERE .+ FOR UPDATE`).WillReturnRows(rows)

	d, err := repo.GetDormByIDForUpdate(7)
	assert.NoError(t, err)
	assert.Equal(t, "D-1", d.DormCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAdminID_NullClearsPointer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDormRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "dorms" SET "admin_id"=.+ WHERE dorm_id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SetAdminID(7, nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
