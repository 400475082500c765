package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/karniella/revisions/core/content"
)

type subjectApi struct {
	svc *content.Service
}

func registerSubjectAPI(g *echo.Group, svc *content.Service, guard echo.MiddlewareFunc) {
	api := subjectApi{svc: svc}

	sg := g.Group("/subjects")

	// public endpoints
	sg.GET("", api.query)
	sg.GET("/:id", api.retrieve)

	// admin endpoints
	sg.POST("", api.create, guard)
	sg.PUT("/:id", api.update, guard)
	sg.DELETE("/:id", api.destroy, guard)
}

func (api *subjectApi) query(ctx echo.Context) error {
	subjects, err := api.svc.QuerySubjects()
	if err != nil {
		return err
	}
	return respondData(ctx, subjects)
}

func (api *subjectApi) retrieve(ctx echo.Context) error {
	subject, err := api.svc.GetSubject(ctx.Param("id"))
	if err != nil {
		return err
	}
	return respondData(ctx, subject)
}

func (api *subjectApi) create(ctx echo.Context) error {
	data := new(content.NewSubject)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	subject, err := api.svc.CreateSubject(*data)
	if err != nil {
		return err
	}
	return respondData(ctx, subject)
}

func (api *subjectApi) update(ctx echo.Context) error {
	data := new(content.UpdateSubject)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	subject, err := api.svc.UpdateSubject(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return respondData(ctx, subject)
}

func (api *subjectApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteSubject(ctx.Param("id")); err != nil {
		return err
	}
	return respondMessage(ctx, "subject deleted")
}
