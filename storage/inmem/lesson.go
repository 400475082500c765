package inmemdb

import (
	"github.com/karniella/revisions/core/content"
)

type lessonRepository struct {
	db *DB
}

func NewLessonRepository(db *DB) content.LessonRepository {
	return &lessonRepository{db: db}
}

func (repo *lessonRepository) QueryAllLessons() ([]content.Lesson, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	lessons := make([]content.Lesson, len(repo.db.lessons))
	copy(lessons, repo.db.lessons)
	return lessons, nil
}

func (repo *lessonRepository) GetLessonByID(id string) (content.Lesson, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, les := range repo.db.lessons {
		if les.ID == id {
			return les, nil
		}
	}
	return content.Lesson{}, content.ErrLessonNotFound
}

func (repo *lessonRepository) CreateLesson(les content.Lesson) (content.Lesson, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.lessons = append(repo.db.lessons, les)
	return les, nil
}

func (repo *lessonRepository) SaveLesson(les content.Lesson) (content.Lesson, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i := range repo.db.lessons {
		if repo.db.lessons[i].ID == les.ID {
			repo.db.lessons[i] = les
			return les, nil
		}
	}
	return content.Lesson{}, content.ErrLessonNotFound
}

func (repo *lessonRepository) DeleteLesson(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	kept := repo.db.lessons[:0]
	for _, les := range repo.db.lessons {
		if les.ID != id {
			kept = append(kept, les)
		}
	}
	repo.db.lessons = kept
	return nil
}
