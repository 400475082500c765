// Package testutil provides fixtures shared by the test suites.
package testutil

import (
	"testing"
	"time"

	"github.com/karniella/revisions/core"
	"github.com/karniella/revisions/core/content"
)

// NewConfig returns a self-contained test configuration; it never touches the
// environment or .env files.
func NewConfig() *core.Config {
	return &core.Config{
		AppName:  "Revisions",
		Env:      "TEST",
		Build:    "test",
		Debug:    true,
		TestMode: true,
		Server: core.ServerConfig{
			Host:            "localhost",
			Addr:            ":0",
			SessionTTL:      24 * time.Hour,
			ShutdownTimeout: 5 * time.Second,
		},
		Admin: core.AdminConfig{
			Username: "karniella",
			Password: "houedanou",
		},
	}
}

func CreateSubject(t *testing.T, repo content.SubjectRepository, id, name string, order int) content.Subject {
	t.Helper()
	sub, err := repo.CreateSubject(content.Subject{
		ID:       id,
		Name:     name,
		Icon:     "📚",
		IsActive: true,
		Order:    order,
	})
	if err != nil {
		t.Fatalf("CreateSubject() failed: %v", err)
	}
	return sub
}

func CreateLesson(t *testing.T, repo content.LessonRepository, id, subjectID, title string, order int) content.Lesson {
	t.Helper()
	les, err := repo.CreateLesson(content.Lesson{
		ID:        id,
		SubjectID: subjectID,
		Title:     title,
		Icon:      "📖",
		Content:   "<p>" + title + "</p>",
		Order:     order,
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("CreateLesson() failed: %v", err)
	}
	return les
}

func CreateQuiz(t *testing.T, repo content.QuizRepository, id, subjectID, lessonID, title string, questions ...content.Question) content.Quiz {
	t.Helper()
	qz, err := repo.CreateQuiz(content.Quiz{
		ID:        id,
		SubjectID: subjectID,
		LessonID:  lessonID,
		Title:     title,
		Icon:      "📝",
		IsActive:  true,
		Questions: questions,
	})
	if err != nil {
		t.Fatalf("CreateQuiz() failed: %v", err)
	}
	return qz
}

// SampleQuestions is a two-question fixture with one 4-option and one
// 2-option question.
func SampleQuestions() []content.Question {
	return []content.Question{
		{
			ID:            1,
			Text:          "Pick the second option",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: 1,
			Explanation:   "B is the one.",
		},
		{
			ID:            2,
			Text:          "Pick the first option",
			Options:       []string{"X", "Y"},
			CorrectAnswer: 0,
		},
	}
}
