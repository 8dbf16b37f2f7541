package repo

import (
	"Booklets/internal/apperr"
	"Booklets/internal/model"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// InitDB открывает соединение и прогоняет миграции. Postgres — основное
// хранилище, при не-postgres DSN (путь к файлу) открывается SQLite.
// TranslateError включён, чтобы нарушения constraint'ов приходили как
// gorm.ErrDuplicatedKey, а не как сырые ошибки драйвера.
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "booklets.db"
	}

	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Tag{}, &model.Bookmark{}, &model.Token{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// translate приводит ошибки gorm к доменным видам из apperr.
// TranslateError покрывает postgres; modernc-драйвер в нём не участвует,
// и нарушения уникальности от SQLite приходят сырым кодом constraint'а.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.ErrDuplicate
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return apperr.ErrDuplicate
		}
	}
	return err
}
