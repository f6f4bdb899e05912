package api

import (
	"time"

	"github.com/terraincognita07/constancia/internal/services"
)

// resolveDay parses an optional YYYY-MM-DD input; empty means today in the
// server's location.
func (handler *Handler) resolveDay(raw string) (time.Time, error) {
	if raw == "" {
		return services.DateAtLocation(time.Now(), handler.location), nil
	}
	return services.ParseDay(raw)
}
