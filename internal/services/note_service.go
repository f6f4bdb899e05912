package services

import (
	"fmt"

	"github.com/terraincognita07/constancia/internal/models"
)

// NoteService keeps one free-text note per user, fully overwritten on each
// save. There is no history.
type NoteService struct {
	document *models.Document
}

func NewNoteService(document *models.Document) *NoteService {
	return &NoteService{document: document}
}

func (service *NoteService) Note(userName string) (string, error) {
	if _, exists := service.document.Users[userName]; !exists {
		return "", fmt.Errorf("%w: user %q", ErrNotFound, userName)
	}
	return service.document.Notes[userName], nil
}

func (service *NoteService) SaveNote(userName string, text string) error {
	if _, exists := service.document.Users[userName]; !exists {
		return fmt.Errorf("%w: user %q", ErrNotFound, userName)
	}
	service.document.Notes[userName] = text
	return nil
}
