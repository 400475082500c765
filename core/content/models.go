package content

// Subject is a top-level catalog entry (a school subject).
type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	IsActive    bool   `json:"isActive"`
	Order       int    `json:"order"`
}

// Lesson belongs to a Subject. Content is an HTML fragment rendered by the
// client. SubjectID is not checked against existing subjects.
type Lesson struct {
	ID          string `json:"id"`
	SubjectID   string `json:"subjectId"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url,omitempty"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"isActive"`
	HasQuiz     bool   `json:"hasQuiz"`
}

// Quiz is a set of single-choice questions, optionally tied to a lesson.
type Quiz struct {
	ID          string     `json:"id"`
	SubjectID   string     `json:"subjectId"`
	LessonID    string     `json:"lessonId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	IsActive    bool       `json:"isActive"`
	Questions   []Question `json:"questions"`
}

// Question is an MCQ with one correct option. ID is the 1-based position of
// the question within its quiz. CorrectAnswer indexes into Options; the range
// is not validated at write time.
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// NewSubject is the creation payload; ID and Order are always derived.
type NewSubject struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	URL         string `json:"url"`
	IsActive    bool   `json:"isActive"`
}

type NewLesson struct {
	SubjectID   string `json:"subjectId"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	IsActive    bool   `json:"isActive"`
	HasQuiz     bool   `json:"hasQuiz"`
}

type NewQuiz struct {
	SubjectID   string     `json:"subjectId"`
	LessonID    string     `json:"lessonId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	IsActive    bool       `json:"isActive"`
	Questions   []Question `json:"questions"`
}

// UpdateSubject enumerates the mutable fields; nil leaves the stored value.
// Unknown payload fields are dropped by construction and ID can never change.
type UpdateSubject struct {
	Name        *string `json:"name"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

type UpdateLesson struct {
	SubjectID   *string `json:"subjectId"`
	Title       *string `json:"title"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	URL         *string `json:"url"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
	HasQuiz     *bool   `json:"hasQuiz"`
}

type UpdateQuiz struct {
	SubjectID   *string     `json:"subjectId"`
	LessonID    *string     `json:"lessonId"`
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Icon        *string     `json:"icon"`
	IsActive    *bool       `json:"isActive"`
	Questions   *[]Question `json:"questions"`
}

// LessonFilter narrows lesson queries; zero values match everything.
type LessonFilter struct {
	SubjectID string
}

// QuizFilter narrows quiz queries; filters combine with AND.
type QuizFilter struct {
	SubjectID string
	LessonID  string
}

func (u UpdateSubject) apply(sub Subject) Subject {
	if u.Name != nil {
		sub.Name = *u.Name
	}
	if u.Icon != nil {
		sub.Icon = *u.Icon
	}
	if u.Description != nil {
		sub.Description = *u.Description
	}
	if u.URL != nil {
		sub.URL = *u.URL
	}
	if u.IsActive != nil {
		sub.IsActive = *u.IsActive
	}
	if u.Order != nil {
		sub.Order = *u.Order
	}
	return sub
}

func (u UpdateLesson) apply(les Lesson) Lesson {
	if u.SubjectID != nil {
		les.SubjectID = *u.SubjectID
	}
	if u.Title != nil {
		les.Title = *u.Title
	}
	if u.Icon != nil {
		les.Icon = *u.Icon
	}
	if u.Description != nil {
		les.Description = *u.Description
	}
	if u.Content != nil {
		les.Content = *u.Content
	}
	if u.URL != nil {
		les.URL = *u.URL
	}
	if u.Order != nil {
		les.Order = *u.Order
	}
	if u.IsActive != nil {
		les.IsActive = *u.IsActive
	}
	if u.HasQuiz != nil {
		les.HasQuiz = *u.HasQuiz
	}
	return les
}

func (u UpdateQuiz) apply(qz Quiz) Quiz {
	if u.SubjectID != nil {
		qz.SubjectID = *u.SubjectID
	}
	if u.LessonID != nil {
		qz.LessonID = *u.LessonID
	}
	if u.Title != nil {
		qz.Title = *u.Title
	}
	if u.Description != nil {
		qz.Description = *u.Description
	}
	if u.Icon != nil {
		qz.Icon = *u.Icon
	}
	if u.IsActive != nil {
		qz.IsActive = *u.IsActive
	}
	if u.Questions != nil {
		qz.Questions = *u.Questions
	}
	return qz
}
