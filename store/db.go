package store

import (
	"time"

	"github.com/ayoisaiah/tomate/internal/models"
)

// DB is the history storage interface.
type DB interface {
	// GetSessions returns saved sessions that started within the given bounds
	GetSessions(startTime, endTime time.Time) ([]*models.Session, error)
	// UpdateSession stores a session. The session is created if it doesn't
	// exist already, or overwritten if it does.
	UpdateSession(sess *models.Session) error
	// DeleteSessions deletes the saved sessions that started within the given
	// bounds
	DeleteSessions(startTime, endTime time.Time) error
	// Close ends the database connection
	Close() error
}
