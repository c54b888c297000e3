package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory sqlite store for the integration suite.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens the shared in-memory database and migrates the schema.
// Scenarios call Reset between runs instead of reopening.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the in-memory database alive.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(
		&model.CategoryModel{},
		&model.TrackerModel{},
		&model.RecordModel{},
		&model.SettingModel{},
	); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{DbConn: dbConn}
}

// Reset empties every table so a scenario starts from a clean slate.
func (d *Db) Reset() error {
	for _, m := range []any{
		&model.RecordModel{},
		&model.TrackerModel{},
		&model.CategoryModel{},
		&model.SettingModel{},
	} {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error
		if err != nil {
			return err
		}
	}
	return d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = 'tracker_records'").Error
}
