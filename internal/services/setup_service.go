package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/constancia/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// SetupService makes a freshly loaded document usable: the admin account
// must always exist so password resets and product management have an owner.
type SetupService struct {
	document *models.Document
}

func NewSetupService(document *models.Document) *SetupService {
	return &SetupService{document: document}
}

// EnsureAdmin seeds the admin user when missing and reports whether the
// document changed (the caller only persists when it did).
func (service *SetupService) EnsureAdmin(adminName string, adminPassword string, now time.Time) (bool, error) {
	if existing, exists := service.document.Users[adminName]; exists {
		if existing.Role == models.RoleAdmin {
			return false, nil
		}
		existing.Role = models.RoleAdmin
		return true, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	service.document.Users[adminName] = &models.User{
		PasswordHash:    string(hash),
		Role:            models.RoleAdmin,
		Members:         []string{},
		PendingRequests: []string{},
		CreatedAt:       now,
	}
	return true, nil
}
