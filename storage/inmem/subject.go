package inmemdb

import (
	"github.com/karniella/revisions/core/content"
)

type subjectRepository struct {
	db *DB
}

func NewSubjectRepository(db *DB) content.SubjectRepository {
	return &subjectRepository{db: db}
}

func (repo *subjectRepository) QueryAllSubjects() ([]content.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	subs := make([]content.Subject, len(repo.db.subjects))
	copy(subs, repo.db.subjects)
	return subs, nil
}

func (repo *subjectRepository) GetSubjectByID(id string) (content.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, sub := range repo.db.subjects {
		if sub.ID == id {
			return sub, nil
		}
	}
	return content.Subject{}, content.ErrSubjectNotFound
}

func (repo *subjectRepository) CreateSubject(sub content.Subject) (content.Subject, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.subjects = append(repo.db.subjects, sub)
	return sub, nil
}

func (repo *subjectRepository) SaveSubject(sub content.Subject) (content.Subject, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i := range repo.db.subjects {
		if repo.db.subjects[i].ID == sub.ID {
			repo.db.subjects[i] = sub
			return sub, nil
		}
	}
	return content.Subject{}, content.ErrSubjectNotFound
}

func (repo *subjectRepository) DeleteSubject(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	kept := repo.db.subjects[:0]
	for _, sub := range repo.db.subjects {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	repo.db.subjects = kept
	return nil
}
