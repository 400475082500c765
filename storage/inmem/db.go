// Package inmemdb provides in-memory repositories, used as substitutes for the
// JSON document store in tests and throwaway environments.
package inmemdb

import (
	"sync"

	"github.com/karniella/revisions/core/content"
)

// DB holds every entity collection behind one lock. Slices keep the stored
// sequence, which the quiz listing and stable order sorting rely on.
type DB struct {
	mutex    sync.RWMutex
	subjects []content.Subject
	lessons  []content.Lesson
	quizzes  []content.Quiz
}

func NewDB() *DB {
	return &DB{}
}

// Reset clears all collections between tests.
func (db *DB) Reset() {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.subjects = nil
	db.lessons = nil
	db.quizzes = nil
}
