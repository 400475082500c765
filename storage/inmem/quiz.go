package inmemdb

import (
	"github.com/karniella/revisions/core/content"
)

type quizRepository struct {
	db *DB
}

func NewQuizRepository(db *DB) content.QuizRepository {
	return &quizRepository{db: db}
}

func (repo *quizRepository) QueryAllQuizzes() ([]content.Quiz, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	quizzes := make([]content.Quiz, len(repo.db.quizzes))
	copy(quizzes, repo.db.quizzes)
	return quizzes, nil
}

func (repo *quizRepository) GetQuizByID(id string) (content.Quiz, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, qz := range repo.db.quizzes {
		if qz.ID == id {
			return qz, nil
		}
	}
	return content.Quiz{}, content.ErrQuizNotFound
}

func (repo *quizRepository) CreateQuiz(qz content.Quiz) (content.Quiz, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.quizzes = append(repo.db.quizzes, qz)
	return qz, nil
}

func (repo *quizRepository) SaveQuiz(qz content.Quiz) (content.Quiz, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i := range repo.db.quizzes {
		if repo.db.quizzes[i].ID == qz.ID {
			repo.db.quizzes[i] = qz
			return qz, nil
		}
	}
	return content.Quiz{}, content.ErrQuizNotFound
}

func (repo *quizRepository) DeleteQuiz(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	kept := repo.db.quizzes[:0]
	for _, qz := range repo.db.quizzes {
		if qz.ID != id {
			kept = append(kept, qz)
		}
	}
	repo.db.quizzes = kept
	return nil
}
