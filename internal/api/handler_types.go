package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/constancia/internal/docstore"
	"github.com/terraincognita07/constancia/internal/services"
)

type Handler struct {
	store        docstore.Store
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	goals        services.WeeklyGoals
}

func NewHandler(store docstore.Store, secretKey string, location *time.Location, cookieSecure bool, goals services.WeeklyGoals) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		store:        store,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		goals:        goals,
	}
}

const (
	authCookieName = "constancia_token"
	authTokenTTL   = 7 * 24 * time.Hour

	contextUserNameKey = "user_name"
	contextUserKey     = "user"
	contextDocumentKey = "document"
	contextRevisionKey = "revision"
)

type authClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}
