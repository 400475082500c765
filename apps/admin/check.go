package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/karniella/revisions/core/content"
	"github.com/karniella/revisions/storage/jsonfile"
)

// newCheckCmd reports records breaking the intended (but unenforced) catalog
// invariants: duplicate ids, dangling references and out-of-range answers.
// It never modifies data.
func newCheckCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report catalog records that break the intended invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, *dataDir)
		},
	}
}

func runCheck(cmd *cobra.Command, dataDir string) error {
	db := jsonfile.Open(dataDir)
	subjectRepo := jsonfile.NewSubjectRepository(db)
	lessonRepo := jsonfile.NewLessonRepository(db)
	quizRepo := jsonfile.NewQuizRepository(db)

	var (
		subjects []content.Subject
		lessons  []content.Lesson
		quizzes  []content.Quiz
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		subjects, err = subjectRepo.QueryAllSubjects()
		return err
	})
	g.Go(func() (err error) {
		lessons, err = lessonRepo.QueryAllLessons()
		return err
	})
	g.Go(func() (err error) {
		quizzes, err = quizRepo.QueryAllQuizzes()
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	findings := checkCatalog(subjects, lessons, quizzes)
	if len(findings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no issues found")
		return nil
	}
	for _, finding := range findings {
		fmt.Fprintln(cmd.OutOrStdout(), finding)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d issue(s) found\n", len(findings))
	return nil
}

func checkCatalog(subjects []content.Subject, lessons []content.Lesson, quizzes []content.Quiz) []string {
	var findings []string

	subjectIDs := make(map[string]bool, len(subjects))
	for _, sub := range subjects {
		if subjectIDs[sub.ID] {
			findings = append(findings, fmt.Sprintf("duplicate subject id %q", sub.ID))
		}
		subjectIDs[sub.ID] = true
	}

	lessonIDs := make(map[string]bool, len(lessons))
	for _, les := range lessons {
		if lessonIDs[les.ID] {
			findings = append(findings, fmt.Sprintf("duplicate lesson id %q", les.ID))
		}
		lessonIDs[les.ID] = true
		if !subjectIDs[les.SubjectID] {
			findings = append(findings, fmt.Sprintf("lesson %q references unknown subject %q", les.ID, les.SubjectID))
		}
	}

	quizIDs := make(map[string]bool, len(quizzes))
	for _, qz := range quizzes {
		if quizIDs[qz.ID] {
			findings = append(findings, fmt.Sprintf("duplicate quiz id %q", qz.ID))
		}
		quizIDs[qz.ID] = true
		if !subjectIDs[qz.SubjectID] {
			findings = append(findings, fmt.Sprintf("quiz %q references unknown subject %q", qz.ID, qz.SubjectID))
		}
		if qz.LessonID != "" && !lessonIDs[qz.LessonID] {
			findings = append(findings, fmt.Sprintf("quiz %q references unknown lesson %q", qz.ID, qz.LessonID))
		}
		for _, q := range qz.Questions {
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				findings = append(findings, fmt.Sprintf("quiz %q question %d: correctAnswer %d is out of range", qz.ID, q.ID, q.CorrectAnswer))
			}
		}
	}

	return findings
}
