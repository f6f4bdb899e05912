package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/constancia/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// AuthService manages the document's user map: registration, credential
// checks, forgotten-password notices and admin resets.
type AuthService struct {
	document *models.Document
}

func NewAuthService(document *models.Document) *AuthService {
	return &AuthService{document: document}
}

func (service *AuthService) Register(name string, password string, now time.Time) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty user name", ErrValidation)
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if _, exists := service.document.Users[name]; exists {
		return nil, fmt.Errorf("%w: user %q already exists", ErrInvalidState, name)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		PasswordHash:    string(hash),
		Role:            models.RoleMember,
		Members:         []string{},
		PendingRequests: []string{},
		CreatedAt:       now,
	}
	service.document.Users[name] = user
	return user, nil
}

func (service *AuthService) Authenticate(name string, password string) (*models.User, error) {
	user, exists := service.document.Users[strings.TrimSpace(name)]
	if !exists {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ReportForgottenPassword leaves a notice for the admin; the user cannot
// reset anything on their own.
func (service *AuthService) ReportForgottenPassword(name string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty user name", ErrValidation)
	}

	service.document.AdminNotices = append(service.document.AdminNotices, models.AdminNotice{
		Date:    DayKey(now),
		User:    name,
		Message: "forgot password",
	})
	return nil
}

func (service *AuthService) ResetPassword(name string, newPassword string) error {
	user, exists := service.document.Users[name]
	if !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, name)
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	return nil
}

// PromoteToLeader lets the admin turn a member into a leader so others can
// request to join their team.
func (service *AuthService) PromoteToLeader(name string) error {
	user, exists := service.document.Users[name]
	if !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, name)
	}
	if user.IsAdmin() {
		return fmt.Errorf("%w: admin role is fixed", ErrInvalidState)
	}
	user.Role = models.RoleLeader
	return nil
}
