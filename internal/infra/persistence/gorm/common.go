// Package gormpersistence implements the repository interfaces on top
// of GORM. Rows with JSON columns use dedicated row types and are
// decoded into typed domain entities at this boundary; a decode
// failure surfaces as repository.ErrCorruptData.
package gormpersistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// AutoMigrate creates or updates the schema for every table this
// package owns. Users, messages and media map straight from their
// domain structs; scenes, collaborators and artworks have row types
// here because of their JSON columns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&sceneRow{},
		&collaboratorRow{},
		&domain.Message{},
		&domain.Media{},
		&artworkRow{},
	)
}

// isDuplicateEntryError checks common unique-constraint error strings.
// TODO: switch to go-sql-driver's mysql.MySQLError code 1062 check.
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || // MySQL
		strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
