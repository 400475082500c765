package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/karniella/revisions/core/content"
	"github.com/karniella/revisions/core/grading"
)

type quizApi struct {
	svc *content.Service
}

func registerQuizAPI(g *echo.Group, svc *content.Service, guard echo.MiddlewareFunc) {
	api := quizApi{svc: svc}

	qg := g.Group("/quizzes")

	// public endpoints
	qg.GET("", api.query)
	qg.GET("/:id", api.retrieve)
	qg.POST("/:id/submissions", api.submit)

	// admin endpoints
	qg.POST("", api.create, guard)
	qg.PUT("/:id", api.update, guard)
	qg.DELETE("/:id", api.destroy, guard)
}

func (api *quizApi) query(ctx echo.Context) error {
	filter := content.QuizFilter{
		SubjectID: ctx.QueryParam("subjectId"),
		LessonID:  ctx.QueryParam("lessonId"),
	}
	quizzes, err := api.svc.QueryQuizzes(filter)
	if err != nil {
		return err
	}
	return respondData(ctx, quizzes)
}

func (api *quizApi) retrieve(ctx echo.Context) error {
	quiz, err := api.svc.GetQuiz(ctx.Param("id"))
	if err != nil {
		return err
	}
	return respondData(ctx, quiz)
}

// submit grades a quiz submission. Scoring is all-or-nothing: when a question
// is unanswered the result only reports which ones are missing.
func (api *quizApi) submit(ctx echo.Context) error {
	quiz, err := api.svc.GetQuiz(ctx.Param("id"))
	if err != nil {
		return err
	}
	data := new(grading.Submission)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	return respondData(ctx, grading.Grade(quiz, *data))
}

func (api *quizApi) create(ctx echo.Context) error {
	data := new(content.NewQuiz)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	quiz, err := api.svc.CreateQuiz(*data)
	if err != nil {
		return err
	}
	return respondData(ctx, quiz)
}

func (api *quizApi) update(ctx echo.Context) error {
	data := new(content.UpdateQuiz)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	quiz, err := api.svc.UpdateQuiz(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return respondData(ctx, quiz)
}

func (api *quizApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteQuiz(ctx.Param("id")); err != nil {
		return err
	}
	return respondMessage(ctx, "quiz deleted")
}
