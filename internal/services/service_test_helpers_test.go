package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/constancia/internal/models"
)

func newTestDocument(userNames ...string) *models.Document {
	document := models.NewDocument()
	for _, name := range userNames {
		document.Users[name] = &models.User{
			PasswordHash:    "x",
			Role:            models.RoleMember,
			Members:         []string{},
			PendingRequests: []string{},
		}
	}
	return document
}

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse(models.DayFormat, value)
	if err != nil {
		t.Fatalf("parse day %q failed: %v", value, err)
	}
	return day
}

func makeLeader(document *models.Document, name string) {
	document.Users[name] = &models.User{
		PasswordHash:    "x",
		Role:            models.RoleLeader,
		Members:         []string{},
		PendingRequests: []string{},
	}
}
