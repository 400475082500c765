package jsonfile_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karniella/revisions/core/content"
	"github.com/karniella/revisions/storage/jsonfile"
)

func newDB(t *testing.T) (*jsonfile.DB, string) {
	t.Helper()
	dir := t.TempDir()
	db := jsonfile.Open(dir)
	require.NoError(t, db.EnsureDocuments())
	return db, dir
}

func TestEnsureDocuments(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	db := jsonfile.Open(dir)
	require.NoError(t, db.EnsureDocuments())

	for _, filename := range []string{"subjects.json", "lessons.json", "quizzes.json"} {
		data, err := os.ReadFile(filepath.Join(dir, filename))
		require.NoError(t, err)

		var doc map[string][]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &doc))
		require.Len(t, doc, 1)
		for _, collection := range doc {
			assert.Empty(t, collection)
		}
	}
}

func TestEnsureDocuments_keepsExistingData(t *testing.T) {
	db, _ := newDB(t)
	repo := jsonfile.NewSubjectRepository(db)

	sub := content.Subject{ID: "mat-1", Name: "Mathématiques", IsActive: true, Order: 1}
	_, err := repo.CreateSubject(sub)
	require.NoError(t, err)

	require.NoError(t, db.EnsureDocuments())

	subs, err := repo.QueryAllSubjects()
	require.NoError(t, err)
	assert.Equal(t, []content.Subject{sub}, subs)
}

func TestSubjectRepository_roundtrip(t *testing.T) {
	db, dir := newDB(t)
	repo := jsonfile.NewSubjectRepository(db)

	sub := content.Subject{
		ID:          "mat-1700000000000",
		Name:        "Mathématiques",
		Icon:        "📐",
		Description: "Nombres et calcul",
		IsActive:    true,
		Order:       1,
	}
	created, err := repo.CreateSubject(sub)
	require.NoError(t, err)
	assert.Equal(t, sub, created)

	// a second handle reads the same document
	got, err := jsonfile.NewSubjectRepository(jsonfile.Open(dir)).GetSubjectByID(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub, got)

	sub.Name = "Maths"
	saved, err := repo.SaveSubject(sub)
	require.NoError(t, err)
	assert.Equal(t, "Maths", saved.Name)

	got, err = repo.GetSubjectByID(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maths", got.Name)

	require.NoError(t, repo.DeleteSubject(sub.ID))
	_, err = repo.GetSubjectByID(sub.ID)
	assert.ErrorIs(t, err, content.ErrSubjectNotFound)
}

func TestSubjectRepository_saveUnknownID(t *testing.T) {
	db, _ := newDB(t)
	repo := jsonfile.NewSubjectRepository(db)

	_, err := repo.SaveSubject(content.Subject{ID: "unknown", Name: "X"})
	assert.ErrorIs(t, err, content.ErrSubjectNotFound)
}

func TestSubjectRepository_deleteIsIdempotent(t *testing.T) {
	db, _ := newDB(t)
	repo := jsonfile.NewSubjectRepository(db)

	assert.NoError(t, repo.DeleteSubject("never-existed"))
	assert.NoError(t, repo.DeleteSubject("never-existed"))
}

func TestLessonRepository_roundtrip(t *testing.T) {
	db, _ := newDB(t)
	repo := jsonfile.NewLessonRepository(db)

	les := content.Lesson{
		ID:        "additions-1700000000000",
		SubjectID: "mat-1",
		Title:     "Additions",
		Content:   "<p>1 + 1 = 2</p>",
		IsActive:  true,
		Order:     1,
	}
	_, err := repo.CreateLesson(les)
	require.NoError(t, err)

	got, err := repo.GetLessonByID(les.ID)
	require.NoError(t, err)
	assert.Equal(t, les, got)

	les.HasQuiz = true
	_, err = repo.SaveLesson(les)
	require.NoError(t, err)

	all, err := repo.QueryAllLessons()
	require.NoError(t, err)
	assert.Equal(t, []content.Lesson{les}, all)

	require.NoError(t, repo.DeleteLesson(les.ID))
	_, err = repo.GetLessonByID(les.ID)
	assert.ErrorIs(t, err, content.ErrLessonNotFound)
}

func TestQuizRepository_roundtrip(t *testing.T) {
	db, _ := newDB(t)
	repo := jsonfile.NewQuizRepository(db)

	qz := content.Quiz{
		ID:        "quiz-1700000000000",
		SubjectID: "mat-1",
		LessonID:  "additions-1700000000000",
		Title:     "Quiz sur les additions",
		IsActive:  true,
		Questions: []content.Question{
			{ID: 1, Text: "1 + 1 ?", Options: []string{"1", "2", "3"}, CorrectAnswer: 1, Explanation: "Un plus un font deux."},
		},
	}
	_, err := repo.CreateQuiz(qz)
	require.NoError(t, err)

	got, err := repo.GetQuizByID(qz.ID)
	require.NoError(t, err)
	assert.Equal(t, qz, got)

	require.NoError(t, repo.DeleteQuiz(qz.ID))
	_, err = repo.GetQuizByID(qz.ID)
	assert.ErrorIs(t, err, content.ErrQuizNotFound)
}

func TestRead_missingDocument(t *testing.T) {
	db := jsonfile.Open(t.TempDir()) // no EnsureDocuments

	_, err := jsonfile.NewSubjectRepository(db).QueryAllSubjects()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subjects.json")
}

func TestRead_malformedDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "subjects.json"), []byte("{not json"), 0o644))

	_, err := jsonfile.NewSubjectRepository(jsonfile.Open(dir)).QueryAllSubjects()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing subjects.json")
}
