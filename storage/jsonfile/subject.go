package jsonfile

import (
	"github.com/karniella/revisions/core/content"
)

type subjectDocument struct {
	Subjects []content.Subject `json:"subjects"`
}

type subjectRepository struct {
	db *DB
}

func NewSubjectRepository(db *DB) content.SubjectRepository {
	return &subjectRepository{db: db}
}

func (repo *subjectRepository) QueryAllSubjects() ([]content.Subject, error) {
	var doc subjectDocument
	if err := repo.db.read(subjectsFile, &doc); err != nil {
		return nil, err
	}
	return doc.Subjects, nil
}

func (repo *subjectRepository) GetSubjectByID(id string) (content.Subject, error) {
	var doc subjectDocument
	if err := repo.db.read(subjectsFile, &doc); err != nil {
		return content.Subject{}, err
	}
	for _, sub := range doc.Subjects {
		if sub.ID == id {
			return sub, nil
		}
	}
	return content.Subject{}, content.ErrSubjectNotFound
}

func (repo *subjectRepository) CreateSubject(sub content.Subject) (content.Subject, error) {
	var doc subjectDocument
	if err := repo.db.read(subjectsFile, &doc); err != nil {
		return content.Subject{}, err
	}
	doc.Subjects = append(doc.Subjects, sub)
	if err := repo.db.write(subjectsFile, doc); err != nil {
		return content.Subject{}, err
	}
	return sub, nil
}

func (repo *subjectRepository) SaveSubject(sub content.Subject) (content.Subject, error) {
	var doc subjectDocument
	if err := repo.db.read(subjectsFile, &doc); err != nil {
		return content.Subject{}, err
	}
	for i := range doc.Subjects {
		if doc.Subjects[i].ID == sub.ID {
			doc.Subjects[i] = sub
			if err := repo.db.write(subjectsFile, doc); err != nil {
				return content.Subject{}, err
			}
			return sub, nil
		}
	}
	return content.Subject{}, content.ErrSubjectNotFound
}

func (repo *subjectRepository) DeleteSubject(id string) error {
	var doc subjectDocument
	if err := repo.db.read(subjectsFile, &doc); err != nil {
		return err
	}
	kept := doc.Subjects[:0]
	for _, sub := range doc.Subjects {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	doc.Subjects = kept
	return repo.db.write(subjectsFile, doc)
}
