package jsonfile

import (
	"github.com/karniella/revisions/core/content"
)

type lessonDocument struct {
	Lessons []content.Lesson `json:"lessons"`
}

type lessonRepository struct {
	db *DB
}

func NewLessonRepository(db *DB) content.LessonRepository {
	return &lessonRepository{db: db}
}

func (repo *lessonRepository) QueryAllLessons() ([]content.Lesson, error) {
	var doc lessonDocument
	if err := repo.db.read(lessonsFile, &doc); err != nil {
		return nil, err
	}
	return doc.Lessons, nil
}

func (repo *lessonRepository) GetLessonByID(id string) (content.Lesson, error) {
	var doc lessonDocument
	if err := repo.db.read(lessonsFile, &doc); err != nil {
		return content.Lesson{}, err
	}
	for _, les := range doc.Lessons {
		if les.ID == id {
			return les, nil
		}
	}
	return content.Lesson{}, content.ErrLessonNotFound
}

func (repo *lessonRepository) CreateLesson(les content.Lesson) (content.Lesson, error) {
	var doc lessonDocument
	if err := repo.db.read(lessonsFile, &doc); err != nil {
		return content.Lesson{}, err
	}
	doc.Lessons = append(doc.Lessons, les)
	if err := repo.db.write(lessonsFile, doc); err != nil {
		return content.Lesson{}, err
	}
	return les, nil
}

func (repo *lessonRepository) SaveLesson(les content.Lesson) (content.Lesson, error) {
	var doc lessonDocument
	if err := repo.db.read(lessonsFile, &doc); err != nil {
		return content.Lesson{}, err
	}
	for i := range doc.Lessons {
		if doc.Lessons[i].ID == les.ID {
			doc.Lessons[i] = les
			if err := repo.db.write(lessonsFile, doc); err != nil {
				return content.Lesson{}, err
			}
			return les, nil
		}
	}
	return content.Lesson{}, content.ErrLessonNotFound
}

func (repo *lessonRepository) DeleteLesson(id string) error {
	var doc lessonDocument
	if err := repo.db.read(lessonsFile, &doc); err != nil {
		return err
	}
	kept := doc.Lessons[:0]
	for _, les := range doc.Lessons {
		if les.ID != id {
			kept = append(kept, les)
		}
	}
	doc.Lessons = kept
	return repo.db.write(lessonsFile, doc)
}
