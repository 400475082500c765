package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karniella/revisions/core/content"
)

func Test_checkCatalog(t *testing.T) {
	subjects := []content.Subject{
		{ID: "mat", Name: "Mathématiques", Order: 1},
		{ID: "fra", Name: "Français", Order: 2},
	}
	lessons := []content.Lesson{
		{ID: "l1", SubjectID: "mat", Title: "Additions", Order: 1},
		{ID: "l2", SubjectID: "fra", Title: "Grammaire", Order: 1},
	}
	quizzes := []content.Quiz{
		{ID: "q1", SubjectID: "mat", LessonID: "l1", Questions: []content.Question{
			{ID: 1, Options: []string{"a", "b"}, CorrectAnswer: 0},
		}},
	}

	t.Run("clean catalog", func(t *testing.T) {
		assert.Empty(t, checkCatalog(subjects, lessons, quizzes))
	})

	t.Run("duplicate ids", func(t *testing.T) {
		findings := checkCatalog(
			append(subjects, content.Subject{ID: "mat", Name: "Doublon"}),
			append(lessons, content.Lesson{ID: "l1", SubjectID: "mat"}),
			append(quizzes, content.Quiz{ID: "q1", SubjectID: "mat"}),
		)
		assert.Contains(t, findings, `duplicate subject id "mat"`)
		assert.Contains(t, findings, `duplicate lesson id "l1"`)
		assert.Contains(t, findings, `duplicate quiz id "q1"`)
	})

	t.Run("dangling references", func(t *testing.T) {
		findings := checkCatalog(subjects,
			append(lessons, content.Lesson{ID: "l3", SubjectID: "gone"}),
			append(quizzes,
				content.Quiz{ID: "q2", SubjectID: "gone"},
				content.Quiz{ID: "q3", SubjectID: "mat", LessonID: "gone"},
			),
		)
		assert.Contains(t, findings, `lesson "l3" references unknown subject "gone"`)
		assert.Contains(t, findings, `quiz "q2" references unknown subject "gone"`)
		assert.Contains(t, findings, `quiz "q3" references unknown lesson "gone"`)
	})

	t.Run("lesson reference is optional", func(t *testing.T) {
		findings := checkCatalog(subjects, lessons, []content.Quiz{{ID: "q1", SubjectID: "mat"}})
		assert.Empty(t, findings)
	})

	t.Run("out of range answers", func(t *testing.T) {
		findings := checkCatalog(subjects, lessons, []content.Quiz{
			{ID: "q1", SubjectID: "mat", Questions: []content.Question{
				{ID: 1, Options: []string{"a", "b"}, CorrectAnswer: 2},
				{ID: 2, Options: []string{"a", "b"}, CorrectAnswer: -1},
			}},
		})
		assert.Equal(t, []string{
			`quiz "q1" question 1: correctAnswer 2 is out of range`,
			`quiz "q1" question 2: correctAnswer -1 is out of range`,
		}, findings)
	})
}

func Test_checkCmd(t *testing.T) {
	dir := t.TempDir()

	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)

	// bootstrap then check an empty catalog
	cmd.SetArgs([]string{"seed", "--data-dir", dir})
	require.NoError(t, cmd.Execute())

	cmd.SetArgs([]string{"check", "--data-dir", dir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "no issues found")
}

func Test_seedCmd_sample(t *testing.T) {
	dir := t.TempDir()

	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.SetArgs([]string{"seed", "--data-dir", dir, "--sample"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "sample content loaded")

	// seeding twice never duplicates content
	cmd.SetArgs([]string{"seed", "--data-dir", dir, "--sample"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "catalog is not empty, skipping sample content")

	// the sample catalog satisfies every invariant
	cmd.SetArgs([]string{"check", "--data-dir", dir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "no issues found")
}
