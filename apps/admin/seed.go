package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karniella/revisions/core/content"
	"github.com/karniella/revisions/storage/jsonfile"
)

// newSeedCmd bootstraps the data directory. Missing documents are created with
// empty collections; --sample additionally loads a starter subject, lesson and
// quiz into an empty catalog.
func newSeedCmd(dataDir *string) *cobra.Command {
	var withSample bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create any missing JSON document, optionally with sample content",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, *dataDir, withSample)
		},
	}
	cmd.Flags().BoolVar(&withSample, "sample", false, "load sample content when the catalog is empty")
	return cmd
}

func runSeed(cmd *cobra.Command, dataDir string, withSample bool) error {
	db := jsonfile.Open(dataDir)
	if err := db.EnsureDocuments(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "documents ready in %s\n", dataDir)

	if !withSample {
		return nil
	}

	svc := content.NewService(
		jsonfile.NewSubjectRepository(db),
		jsonfile.NewLessonRepository(db),
		jsonfile.NewQuizRepository(db),
	)

	subjects, err := svc.QuerySubjects()
	if err != nil {
		return err
	}
	if len(subjects) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "catalog is not empty, skipping sample content")
		return nil
	}

	subject, err := svc.CreateSubject(content.NewSubject{
		Name:        "Mathématiques",
		Icon:        "📐",
		Description: "Nombres, calcul et géométrie",
		IsActive:    true,
	})
	if err != nil {
		return err
	}

	lesson, err := svc.CreateLesson(content.NewLesson{
		SubjectID:   subject.ID,
		Title:       "Les fractions",
		Icon:        "🧮",
		Description: "Comprendre et comparer les fractions",
		Content:     "<h2>Les fractions</h2><p>Une fraction représente une partie d'un tout.</p>",
		IsActive:    true,
		HasQuiz:     true,
	})
	if err != nil {
		return err
	}

	if _, err := svc.CreateQuiz(content.NewQuiz{
		SubjectID:   subject.ID,
		LessonID:    lesson.ID,
		Title:       "Quiz : les fractions",
		Description: "Vérifie ta compréhension des fractions",
		Icon:        "📝",
		IsActive:    true,
		Questions: []content.Question{
			{
				ID:            1,
				Text:          "Que vaut 1/2 + 1/4 ?",
				Options:       []string{"1/6", "2/6", "3/4", "1/4"},
				CorrectAnswer: 2,
				Explanation:   "1/2 = 2/4, donc 2/4 + 1/4 = 3/4.",
			},
			{
				ID:            2,
				Text:          "Quelle fraction est la plus grande ?",
				Options:       []string{"1/3", "1/2", "1/4", "1/5"},
				CorrectAnswer: 1,
				Explanation:   "Plus le dénominateur est petit, plus la part est grande.",
			},
		},
	}); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "sample content loaded")
	return nil
}
