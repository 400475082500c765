package jsonfile

import (
	"github.com/karniella/revisions/core/content"
)

type quizDocument struct {
	Quizzes []content.Quiz `json:"quizzes"`
}

type quizRepository struct {
	db *DB
}

func NewQuizRepository(db *DB) content.QuizRepository {
	return &quizRepository{db: db}
}

func (repo *quizRepository) QueryAllQuizzes() ([]content.Quiz, error) {
	var doc quizDocument
	if err := repo.db.read(quizzesFile, &doc); err != nil {
		return nil, err
	}
	return doc.Quizzes, nil
}

func (repo *quizRepository) GetQuizByID(id string) (content.Quiz, error) {
	var doc quizDocument
	if err := repo.db.read(quizzesFile, &doc); err != nil {
		return content.Quiz{}, err
	}
	for _, qz := range doc.Quizzes {
		if qz.ID == id {
			return qz, nil
		}
	}
	return content.Quiz{}, content.ErrQuizNotFound
}

func (repo *quizRepository) CreateQuiz(qz content.Quiz) (content.Quiz, error) {
	var doc quizDocument
	if err := repo.db.read(quizzesFile, &doc); err != nil {
		return content.Quiz{}, err
	}
	doc.Quizzes = append(doc.Quizzes, qz)
	if err := repo.db.write(quizzesFile, doc); err != nil {
		return content.Quiz{}, err
	}
	return qz, nil
}

func (repo *quizRepository) SaveQuiz(qz content.Quiz) (content.Quiz, error) {
	var doc quizDocument
	if err := repo.db.read(quizzesFile, &doc); err != nil {
		return content.Quiz{}, err
	}
	for i := range doc.Quizzes {
		if doc.Quizzes[i].ID == qz.ID {
			doc.Quizzes[i] = qz
			if err := repo.db.write(quizzesFile, doc); err != nil {
				return content.Quiz{}, err
			}
			return qz, nil
		}
	}
	return content.Quiz{}, content.ErrQuizNotFound
}

func (repo *quizRepository) DeleteQuiz(id string) error {
	var doc quizDocument
	if err := repo.db.read(quizzesFile, &doc); err != nil {
		return err
	}
	kept := doc.Quizzes[:0]
	for _, qz := range doc.Quizzes {
		if qz.ID != id {
			kept = append(kept, qz)
		}
	}
	doc.Quizzes = kept
	return repo.db.write(quizzesFile, doc)
}
