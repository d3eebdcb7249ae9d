package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type BWContext string

const (
	DBContextURL BWContext = "bw-backend-url"
)

var pluralIES = regexp.MustCompile("ies$")

// Connect opens the SQLite database, migrates the schema and configures
// the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	// Migrations run with foreign keys disabled since sqlite does not
	// support ALTER COLUMN and gorm recreates tables instead
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func registerCallbacks(db *gorm.DB) error {
	if err := db.Callback().Query().After("*").Register("basketwise:after_query", queryCallback); err != nil {
		return err
	}

	if err := db.Callback().Query().After("*").Register("basketwise:after_query_general", generalCallback); err != nil {
		return err
	}

	if err := db.Callback().Create().After("*").Register("basketwise:after_create", createUpdateCallback); err != nil {
		return err
	}

	if err := db.Callback().Create().After("*").Register("basketwise:after_create_general", generalCallback); err != nil {
		return err
	}

	if err := db.Callback().Update().After("*").Register("basketwise:after_update", createUpdateCallback); err != nil {
		return err
	}

	if err := db.Callback().Update().After("*").Register("basketwise:after_update_general", generalCallback); err != nil {
		return err
	}

	if err := db.Callback().Delete().After("*").Register("basketwise:after_delete", createUpdateCallback); err != nil {
		return err
	}

	return db.Callback().Delete().After("*").Register("basketwise:after_delete_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// The table name is used as the resource type
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = pluralIES.ReplaceAllString(name, "y")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// constraintErrors maps substrings of SQLite constraint errors to
// the errors returned to users.
var constraintErrors = []struct {
	match string
	err   error
}{
	{"UNIQUE constraint failed: users.email", ErrUserEmailNotUnique},
	{"UNIQUE constraint failed: household_members.household_id, household_members.user_id", ErrAlreadyMember},
	{"UNIQUE constraint failed: inflation_rates.month, inflation_rates.category", ErrInflationRateNotUnique},
	{"FOREIGN KEY constraint failed", ErrInvalidReference},
}

// createUpdateCallback inspects errors returned by the database for create,
// update and delete calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for _, c := range constraintErrors {
		if strings.Contains(db.Error.Error(), c.match) {
			db.Error = c.err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, users cannot be given a helpful message.
// The error is logged and a general message is returned instead.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in database/sql
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(User{}, Household{}, HouseholdMember{}, Budget{}, Receipt{}, CategoryRule{}, InflationRate{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
