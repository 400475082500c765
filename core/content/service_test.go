package content_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karniella/revisions/core/content"
	inmemdb "github.com/karniella/revisions/storage/inmem"
	testutil "github.com/karniella/revisions/tests"
)

// tickingClock returns a clock advancing one millisecond per call so every
// generated id is unique.
func tickingClock() func() time.Time {
	ms := int64(1700000000000)
	return func() time.Time {
		ms++
		return time.UnixMilli(ms)
	}
}

func setup() (*content.Service, *inmemdb.DB) {
	db := inmemdb.NewDB()
	svc := content.NewServiceWithClock(
		inmemdb.NewSubjectRepository(db),
		inmemdb.NewLessonRepository(db),
		inmemdb.NewQuizRepository(db),
		tickingClock(),
	)
	return svc, db
}

func TestService_CreateSubject(t *testing.T) {
	svc, _ := setup()

	sub, err := svc.CreateSubject(content.NewSubject{
		Name:        "Mathématiques",
		Icon:        "📐",
		Description: "Nombres et calcul",
		IsActive:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "mathematiques-1700000000001", sub.ID)
	assert.Equal(t, 1, sub.Order)

	got, err := svc.GetSubject(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub, got)

	// order keeps incrementing with the collection size
	sub2, err := svc.CreateSubject(content.NewSubject{Name: "Français", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 2, sub2.Order)
}

func TestService_QuerySubjects(t *testing.T) {
	svc, db := setup()
	subRepo := inmemdb.NewSubjectRepository(db)

	third := testutil.CreateSubject(t, subRepo, "sci", "Sciences", 3)
	first := testutil.CreateSubject(t, subRepo, "mat", "Mathématiques", 1)
	second := testutil.CreateSubject(t, subRepo, "fra", "Français", 2)

	subs, err := svc.QuerySubjects()
	require.NoError(t, err)
	assert.Equal(t, []content.Subject{first, second, third}, subs)
}

func TestService_QuerySubjects_equalOrdersAreStable(t *testing.T) {
	svc, db := setup()
	subRepo := inmemdb.NewSubjectRepository(db)

	// deleted subjects leave order gaps; re-created ones may collide
	a := testutil.CreateSubject(t, subRepo, "a", "A", 2)
	b := testutil.CreateSubject(t, subRepo, "b", "B", 2)
	c := testutil.CreateSubject(t, subRepo, "c", "C", 1)

	for i := 0; i < 5; i++ {
		subs, err := svc.QuerySubjects()
		require.NoError(t, err)
		assert.Equal(t, []content.Subject{c, a, b}, subs)
	}
}

func TestService_UpdateSubject(t *testing.T) {
	svc, _ := setup()

	sub, err := svc.CreateSubject(content.NewSubject{Name: "Histoire", Icon: "🏛️", IsActive: true})
	require.NoError(t, err)

	name := "Histoire-Géographie"
	active := false
	updated, err := svc.UpdateSubject(sub.ID, content.UpdateSubject{Name: &name, IsActive: &active})
	require.NoError(t, err)

	assert.Equal(t, sub.ID, updated.ID) // id is immutable
	assert.Equal(t, name, updated.Name)
	assert.False(t, updated.IsActive)
	assert.Equal(t, sub.Icon, updated.Icon) // untouched fields keep their value
	assert.Equal(t, sub.Order, updated.Order)

	got, err := svc.GetSubject(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestService_UpdateSubject_notFound(t *testing.T) {
	svc, _ := setup()

	name := "nope"
	_, err := svc.UpdateSubject("unknown", content.UpdateSubject{Name: &name})
	assert.ErrorIs(t, err, content.ErrSubjectNotFound)
}

func TestService_DeleteSubject(t *testing.T) {
	svc, _ := setup()

	sub, err := svc.CreateSubject(content.NewSubject{Name: "Musique", IsActive: true})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSubject(sub.ID))

	_, err = svc.GetSubject(sub.ID)
	assert.ErrorIs(t, err, content.ErrSubjectNotFound)

	// delete is idempotent
	assert.NoError(t, svc.DeleteSubject(sub.ID))
}

func TestService_DeleteSubject_keepsOrderGaps(t *testing.T) {
	svc, _ := setup()

	first, err := svc.CreateSubject(content.NewSubject{Name: "Un", IsActive: true})
	require.NoError(t, err)
	_, err = svc.CreateSubject(content.NewSubject{Name: "Deux", IsActive: true})
	require.NoError(t, err)
	third, err := svc.CreateSubject(content.NewSubject{Name: "Trois", IsActive: true})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSubject(first.ID))

	subs, err := svc.QuerySubjects()
	require.NoError(t, err)
	require.Len(t, subs, 2)
	// remaining orders are never renumbered
	assert.Equal(t, 2, subs[0].Order)
	assert.Equal(t, 3, subs[1].Order)
	assert.Equal(t, third.ID, subs[1].ID)
}

func TestService_CreateLesson_orderIsScopedPerSubject(t *testing.T) {
	svc, _ := setup()

	mat, err := svc.CreateLesson(content.NewLesson{SubjectID: "mat", Title: "Additions", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, mat.Order)

	fra, err := svc.CreateLesson(content.NewLesson{SubjectID: "fra", Title: "Grammaire", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, fra.Order) // different subject starts at 1

	mat2, err := svc.CreateLesson(content.NewLesson{SubjectID: "mat", Title: "Soustractions", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 2, mat2.Order)
}

func TestService_QueryLessons(t *testing.T) {
	svc, db := setup()
	lesRepo := inmemdb.NewLessonRepository(db)

	l2 := testutil.CreateLesson(t, lesRepo, "l2", "mat", "Soustractions", 2)
	l1 := testutil.CreateLesson(t, lesRepo, "l1", "mat", "Additions", 1)
	other := testutil.CreateLesson(t, lesRepo, "l3", "fra", "Grammaire", 1)

	// no filter: everything, sorted by order
	all, err := svc.QueryLessons(content.LessonFilter{})
	require.NoError(t, err)
	assert.Equal(t, []content.Lesson{l1, other, l2}, all)

	// filter by subject
	mat, err := svc.QueryLessons(content.LessonFilter{SubjectID: "mat"})
	require.NoError(t, err)
	assert.Equal(t, []content.Lesson{l1, l2}, mat)

	// unknown subject matches nothing
	none, err := svc.QueryLessons(content.LessonFilter{SubjectID: "nope"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_UpdateLesson(t *testing.T) {
	svc, _ := setup()

	les, err := svc.CreateLesson(content.NewLesson{
		SubjectID: "mat",
		Title:     "Additions",
		Content:   "<p>1 + 1</p>",
		IsActive:  true,
	})
	require.NoError(t, err)

	contentHTML := "<p>1 + 1 = 2</p>"
	hasQuiz := true
	updated, err := svc.UpdateLesson(les.ID, content.UpdateLesson{Content: &contentHTML, HasQuiz: &hasQuiz})
	require.NoError(t, err)
	assert.Equal(t, les.ID, updated.ID)
	assert.Equal(t, contentHTML, updated.Content)
	assert.True(t, updated.HasQuiz)
	assert.Equal(t, les.Title, updated.Title)
}

func TestService_QueryQuizzes(t *testing.T) {
	svc, db := setup()
	quizRepo := inmemdb.NewQuizRepository(db)

	q1 := testutil.CreateQuiz(t, quizRepo, "q1", "mat", "l1", "Quiz un")
	q2 := testutil.CreateQuiz(t, quizRepo, "q2", "mat", "", "Quiz deux")
	q3 := testutil.CreateQuiz(t, quizRepo, "q3", "fra", "l3", "Quiz trois")

	// stored sequence is preserved, quizzes are never sorted
	all, err := svc.QueryQuizzes(content.QuizFilter{})
	require.NoError(t, err)
	assert.Equal(t, []content.Quiz{q1, q2, q3}, all)

	mat, err := svc.QueryQuizzes(content.QuizFilter{SubjectID: "mat"})
	require.NoError(t, err)
	assert.Equal(t, []content.Quiz{q1, q2}, mat)

	// filters combine
	both, err := svc.QueryQuizzes(content.QuizFilter{SubjectID: "mat", LessonID: "l1"})
	require.NoError(t, err)
	assert.Equal(t, []content.Quiz{q1}, both)
}

func TestService_UpdateQuiz_replacesQuestions(t *testing.T) {
	svc, _ := setup()

	qz, err := svc.CreateQuiz(content.NewQuiz{
		SubjectID: "mat",
		Title:     "Quiz",
		IsActive:  true,
		Questions: testutil.SampleQuestions(),
	})
	require.NoError(t, err)

	questions := []content.Question{
		{ID: 1, Text: "Nouveau", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 3},
	}
	updated, err := svc.UpdateQuiz(qz.ID, content.UpdateQuiz{Questions: &questions})
	require.NoError(t, err)
	assert.Equal(t, qz.ID, updated.ID)
	assert.Equal(t, questions, updated.Questions)
	assert.Equal(t, qz.Title, updated.Title)
}

func TestService_GetQuiz_notFound(t *testing.T) {
	svc, _ := setup()

	_, err := svc.GetQuiz("unknown")
	assert.ErrorIs(t, err, content.ErrQuizNotFound)
}
