package capperService

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})

	return gormDB, mock, err
}

func TestGetCapperByUsernameNotTracked(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery("SELECT \\* FROM `cappers`").
		WithArgs("nobody", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "capper_id", "username"}))

	capper, err := GetCapperByUsername(db, "nobody")
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if capper != nil {
		t.Errorf("Expected nil capper, got %+v", capper)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestGetCapperByUsernameFound(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery("SELECT \\* FROM `cappers`").
		WithArgs("sharpcapper", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "capper_id", "username"}).
			AddRow(1, "12345", "sharpcapper"))

	capper, err := GetCapperByUsername(db, "sharpcapper")
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if capper == nil {
		t.Fatal("Expected a capper, got nil")
	}
	if capper.CapperID != "12345" {
		t.Errorf("Expected capper ID 12345, got %s", capper.CapperID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
