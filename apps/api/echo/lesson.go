package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/karniella/revisions/core/content"
)

type lessonApi struct {
	svc *content.Service
}

func registerLessonAPI(g *echo.Group, svc *content.Service, guard echo.MiddlewareFunc) {
	api := lessonApi{svc: svc}

	lg := g.Group("/lessons")

	// public endpoints
	lg.GET("", api.query)
	lg.GET("/:id", api.retrieve)

	// admin endpoints
	lg.POST("", api.create, guard)
	lg.PUT("/:id", api.update, guard)
	lg.DELETE("/:id", api.destroy, guard)
}

func (api *lessonApi) query(ctx echo.Context) error {
	filter := content.LessonFilter{SubjectID: ctx.QueryParam("subjectId")}
	lessons, err := api.svc.QueryLessons(filter)
	if err != nil {
		return err
	}
	return respondData(ctx, lessons)
}

func (api *lessonApi) retrieve(ctx echo.Context) error {
	lesson, err := api.svc.GetLesson(ctx.Param("id"))
	if err != nil {
		return err
	}
	return respondData(ctx, lesson)
}

func (api *lessonApi) create(ctx echo.Context) error {
	data := new(content.NewLesson)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	lesson, err := api.svc.CreateLesson(*data)
	if err != nil {
		return err
	}
	return respondData(ctx, lesson)
}

func (api *lessonApi) update(ctx echo.Context) error {
	data := new(content.UpdateLesson)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	lesson, err := api.svc.UpdateLesson(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return respondData(ctx, lesson)
}

func (api *lessonApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteLesson(ctx.Param("id")); err != nil {
		return err
	}
	return respondMessage(ctx, "lesson deleted")
}
