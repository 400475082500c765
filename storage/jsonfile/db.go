// Package jsonfile persists each entity collection as one flat JSON document,
// read and rewritten wholesale on every operation. There is no locking;
// concurrent writers race and the last one wins, which is accepted for a
// single-admin deployment.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/karniella/revisions/core/content"
)

const (
	subjectsFile = "subjects.json"
	lessonsFile  = "lessons.json"
	quizzesFile  = "quizzes.json"
)

// DB is a handle on the data directory holding the JSON documents.
type DB struct {
	dir string
}

func Open(dir string) *DB {
	return &DB{dir: dir}
}

func (db *DB) path(filename string) string {
	return filepath.Join(db.dir, filename)
}

// read unmarshals a whole document. A missing document is an error; fresh
// deployments are bootstrapped with EnsureDocuments.
func (db *DB) read(filename string, doc interface{}) error {
	data, err := os.ReadFile(db.path(filename))
	if err != nil {
		return errors.Wrapf(err, "reading %s", filename)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return errors.Wrapf(err, "parsing %s", filename)
	}
	return nil
}

// write rewrites a whole document, indented like the original data files.
func (db *DB) write(filename string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding %s", filename)
	}
	if err := os.WriteFile(db.path(filename), data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}
	return nil
}

// EnsureDocuments creates the data directory and any missing document with an
// empty collection. Existing documents are left untouched.
func (db *DB) EnsureDocuments() error {
	if err := os.MkdirAll(db.dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", db.dir)
	}
	empty := map[string]interface{}{
		subjectsFile: subjectDocument{Subjects: []content.Subject{}},
		lessonsFile:  lessonDocument{Lessons: []content.Lesson{}},
		quizzesFile:  quizDocument{Quizzes: []content.Quiz{}},
	}
	for filename, doc := range empty {
		if _, err := os.Stat(db.path(filename)); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, "checking %s", filename)
		}
		if err := db.write(filename, doc); err != nil {
			return err
		}
	}
	return nil
}
