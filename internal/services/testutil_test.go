package services

import (
	"errors"
	"testing"

	"github.com/devtasks/devtasks/internal/auth"
	"github.com/devtasks/devtasks/internal/models"
	"github.com/devtasks/devtasks/pkg/response"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// A pooled second connection would see a different in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email, password string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user := models.User{Name: name, Email: email, PasswordHash: hash}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("creating user: %v", err)
	}
	return &user
}

func createProject(t *testing.T, db *gorm.DB, name string, ownerID uint) *models.Project {
	t.Helper()

	project := models.Project{Name: name, OwnerID: ownerID}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("creating project: %v", err)
	}
	return &project
}

func createTask(t *testing.T, db *gorm.DB, projectID uint, title string, assignee *uint) *models.Task {
	t.Helper()

	task := models.Task{
		Title:            title,
		Status:           models.StatusToDo,
		ProjectID:        projectID,
		AssignedToUserID: assignee,
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("creating task: %v", err)
	}
	return &task
}

// assertAppError fails the test unless err is an *response.AppError with the
// given HTTP status.
func assertAppError(t *testing.T, err error, status int) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with status %d, got nil", status)
	}
	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *response.AppError, got %T: %v", err, err)
	}
	if appErr.HTTPStatus != status {
		t.Fatalf("error status = %d, expected %d (message %q)", appErr.HTTPStatus, status, appErr.Message)
	}
}
