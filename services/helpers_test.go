package services

import (
	"context"
	"testing"

	"formbox.link/models"
	"formbox.link/pkg/testdb"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Name: "Test User", Email: email, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func newTestForm(t *testing.T, db *gorm.DB, owner *models.User, enabled bool) *models.Form {
	t.Helper()
	svc := NewFormService(db)
	form, err := svc.CreateForm(context.Background(), owner.ID, FormInput{
		Title:       "Customer feedback",
		Description: "How did we do?",
		IsEnabled:   &enabled,
	})
	if err != nil {
		t.Fatalf("create form: %v", err)
	}
	return form
}

func newTestQuestion(t *testing.T, db *gorm.DB, owner *models.User, form *models.Form, title string) *models.Question {
	t.Helper()
	svc := NewQuestionService(db)
	question, err := svc.CreateQuestion(context.Background(), owner.ID, form.ID, QuestionInput{
		Title: title,
		Kind:  models.KindShortText,
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	return question
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testdb.Open(t)
}
