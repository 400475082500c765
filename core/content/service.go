package content

import (
	"errors"
	"sort"
	"time"
)

var (
	// errors
	ErrSubjectNotFound = errors.New("subject not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrQuizNotFound    = errors.New("quiz not found")
)

type (
	// SubjectRepository abstracts subject persistence. Save replaces the whole
	// record matching its ID; Delete is idempotent.
	SubjectRepository interface {
		QueryAllSubjects() ([]Subject, error)
		GetSubjectByID(id string) (Subject, error)
		CreateSubject(sub Subject) (Subject, error)
		SaveSubject(sub Subject) (Subject, error)
		DeleteSubject(id string) error
	}

	LessonRepository interface {
		QueryAllLessons() ([]Lesson, error)
		GetLessonByID(id string) (Lesson, error)
		CreateLesson(les Lesson) (Lesson, error)
		SaveLesson(les Lesson) (Lesson, error)
		DeleteLesson(id string) error
	}

	QuizRepository interface {
		QueryAllQuizzes() ([]Quiz, error)
		GetQuizByID(id string) (Quiz, error)
		CreateQuiz(qz Quiz) (Quiz, error)
		SaveQuiz(qz Quiz) (Quiz, error)
		DeleteQuiz(id string) error
	}

	Service struct {
		subjects SubjectRepository
		lessons  LessonRepository
		quizzes  QuizRepository
		now      func() time.Time
	}
)

func NewService(subjects SubjectRepository, lessons LessonRepository, quizzes QuizRepository) *Service {
	return NewServiceWithClock(subjects, lessons, quizzes, time.Now)
}

// NewServiceWithClock allows deterministic generated ids in tests.
func NewServiceWithClock(subjects SubjectRepository, lessons LessonRepository, quizzes QuizRepository, now func() time.Time) *Service {
	return &Service{subjects: subjects, lessons: lessons, quizzes: quizzes, now: now}
}

// Subjects

// QuerySubjects returns all subjects sorted ascending by Order.
// Equal orders keep their stored sequence.
func (svc *Service) QuerySubjects() ([]Subject, error) {
	subs, err := svc.subjects.QueryAllSubjects()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].Order < subs[j].Order })
	return subs, nil
}

func (svc *Service) GetSubject(id string) (Subject, error) {
	return svc.subjects.GetSubjectByID(id)
}

// CreateSubject assigns a generated id and the next display order.
// Order is never renumbered on delete, so gaps are expected.
func (svc *Service) CreateSubject(ns NewSubject) (Subject, error) {
	subs, err := svc.subjects.QueryAllSubjects()
	if err != nil {
		return Subject{}, err
	}
	sub := Subject{
		ID:          GenerateID(ns.Name, svc.now()),
		Name:        ns.Name,
		Icon:        ns.Icon,
		Description: ns.Description,
		URL:         ns.URL,
		IsActive:    ns.IsActive,
		Order:       len(subs) + 1,
	}
	return svc.subjects.CreateSubject(sub)
}

func (svc *Service) UpdateSubject(id string, us UpdateSubject) (Subject, error) {
	sub, err := svc.subjects.GetSubjectByID(id)
	if err != nil {
		return Subject{}, err
	}
	return svc.subjects.SaveSubject(us.apply(sub))
}

func (svc *Service) DeleteSubject(id string) error {
	return svc.subjects.DeleteSubject(id)
}

// Lessons

// QueryLessons returns lessons matching the filter, sorted ascending by Order.
func (svc *Service) QueryLessons(filter LessonFilter) ([]Lesson, error) {
	all, err := svc.lessons.QueryAllLessons()
	if err != nil {
		return nil, err
	}
	lessons := make([]Lesson, 0, len(all))
	for _, les := range all {
		if filter.SubjectID != "" && les.SubjectID != filter.SubjectID {
			continue
		}
		lessons = append(lessons, les)
	}
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Order < lessons[j].Order })
	return lessons, nil
}

func (svc *Service) GetLesson(id string) (Lesson, error) {
	return svc.lessons.GetLessonByID(id)
}

// CreateLesson assigns a generated id and an order scoped to the lesson's subject.
func (svc *Service) CreateLesson(nl NewLesson) (Lesson, error) {
	all, err := svc.lessons.QueryAllLessons()
	if err != nil {
		return Lesson{}, err
	}
	siblings := 0
	for _, les := range all {
		if les.SubjectID == nl.SubjectID {
			siblings++
		}
	}
	les := Lesson{
		ID:          GenerateID(nl.Title, svc.now()),
		SubjectID:   nl.SubjectID,
		Title:       nl.Title,
		Icon:        nl.Icon,
		Description: nl.Description,
		Content:     nl.Content,
		URL:         nl.URL,
		Order:       siblings + 1,
		IsActive:    nl.IsActive,
		HasQuiz:     nl.HasQuiz,
	}
	return svc.lessons.CreateLesson(les)
}

func (svc *Service) UpdateLesson(id string, ul UpdateLesson) (Lesson, error) {
	les, err := svc.lessons.GetLessonByID(id)
	if err != nil {
		return Lesson{}, err
	}
	return svc.lessons.SaveLesson(ul.apply(les))
}

func (svc *Service) DeleteLesson(id string) error {
	return svc.lessons.DeleteLesson(id)
}

// Quizzes

// QueryQuizzes returns quizzes matching the filter in stored sequence.
func (svc *Service) QueryQuizzes(filter QuizFilter) ([]Quiz, error) {
	all, err := svc.quizzes.QueryAllQuizzes()
	if err != nil {
		return nil, err
	}
	quizzes := make([]Quiz, 0, len(all))
	for _, qz := range all {
		if filter.SubjectID != "" && qz.SubjectID != filter.SubjectID {
			continue
		}
		if filter.LessonID != "" && qz.LessonID != filter.LessonID {
			continue
		}
		quizzes = append(quizzes, qz)
	}
	return quizzes, nil
}

func (svc *Service) GetQuiz(id string) (Quiz, error) {
	return svc.quizzes.GetQuizByID(id)
}

func (svc *Service) CreateQuiz(nq NewQuiz) (Quiz, error) {
	qz := Quiz{
		ID:          GenerateID(nq.Title, svc.now()),
		SubjectID:   nq.SubjectID,
		LessonID:    nq.LessonID,
		Title:       nq.Title,
		Description: nq.Description,
		Icon:        nq.Icon,
		IsActive:    nq.IsActive,
		Questions:   nq.Questions,
	}
	return svc.quizzes.CreateQuiz(qz)
}

func (svc *Service) UpdateQuiz(id string, uq UpdateQuiz) (Quiz, error) {
	qz, err := svc.quizzes.GetQuizByID(id)
	if err != nil {
		return Quiz{}, err
	}
	return svc.quizzes.SaveQuiz(uq.apply(qz))
}

func (svc *Service) DeleteQuiz(id string) error {
	return svc.quizzes.DeleteQuiz(id)
}
