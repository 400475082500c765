// Package grading scores quiz submissions: a straight comparison of selected
// option indices against each question's stored correct index.
package grading

import (
	"github.com/karniella/revisions/core/content"
)

// Tier is a qualitative score bucket.
type Tier string

const (
	TierPerfect     Tier = "perfect"
	TierExcellent   Tier = "excellent"
	TierGood        Tier = "good"
	TierNeedsReview Tier = "needs-review"
)

type (
	// Answer selects an option (0-based index) for a question (by its id).
	Answer struct {
		Question int `json:"question"`
		Selected int `json:"selected"`
	}

	Submission struct {
		Answers []Answer `json:"answers"`
	}

	// Feedback reveals per-question correctness, the correct option and the
	// explanation, mirroring what the quiz page shows under each question.
	Feedback struct {
		Question      int    `json:"question"`
		Selected      int    `json:"selected"`
		Correct       bool   `json:"correct"`
		CorrectAnswer int    `json:"correctAnswer"`
		CorrectOption string `json:"correctOption,omitempty"`
		Explanation   string `json:"explanation,omitempty"`
	}

	// Result is the outcome of grading one submission. When any question is
	// left unanswered, Scored is false, Unanswered lists the question ids and
	// no score is computed.
	Result struct {
		Scored     bool       `json:"scored"`
		Unanswered []int      `json:"unanswered,omitempty"`
		Score      int        `json:"score"`
		Total      int        `json:"total"`
		Percentage float64    `json:"percentage"`
		Tier       Tier       `json:"tier,omitempty"`
		Message    string     `json:"message,omitempty"`
		Feedback   []Feedback `json:"feedback,omitempty"`
	}
)

// Grade scores a submission against a quiz. Submission is all-or-nothing:
// every question must carry an answer before anything is scored.
func Grade(quiz content.Quiz, sub Submission) Result {
	selections := make(map[int]int, len(sub.Answers))
	for _, ans := range sub.Answers {
		selections[ans.Question] = ans.Selected
	}

	total := len(quiz.Questions)

	var unanswered []int
	for _, q := range quiz.Questions {
		if _, ok := selections[q.ID]; !ok {
			unanswered = append(unanswered, q.ID)
		}
	}
	if len(unanswered) > 0 {
		return Result{Unanswered: unanswered, Total: total}
	}

	score := 0
	feedback := make([]Feedback, 0, total)
	for _, q := range quiz.Questions {
		selected := selections[q.ID]
		// Raw index comparison; an out-of-range CorrectAnswer is persisted as-is
		// and such a question simply never matches a real option.
		correct := selected == q.CorrectAnswer
		if correct {
			score++
		}
		fb := Feedback{
			Question:      q.ID,
			Selected:      selected,
			Correct:       correct,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
		if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
			fb.CorrectOption = q.Options[q.CorrectAnswer]
		}
		feedback = append(feedback, fb)
	}

	var percentage float64
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}
	tier, message := tierFor(percentage)

	return Result{
		Scored:     true,
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Tier:       tier,
		Message:    message,
		Feedback:   feedback,
	}
}

func tierFor(percentage float64) (Tier, string) {
	switch {
	case percentage == 100:
		return TierPerfect, "Perfect score!"
	case percentage >= 80:
		return TierExcellent, "Excellent work!"
	case percentage >= 50:
		return TierGood, "Good effort!"
	default:
		return TierNeedsReview, "Keep revising, you will get there."
	}
}
