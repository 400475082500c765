package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/karniella/revisions/core/session"
)

type authApi struct {
	svc      *session.Service
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, svc *session.Service, validate *validator.Validate) {
	api := authApi{svc: svc, validate: validate}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
	ag.POST("/logout", api.logout)
	ag.GET("/status", api.status)
}

func (api *authApi) login(ctx echo.Context) error {
	data := new(LoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sess, err := api.svc.Login(ctx.Request().Context(), data.Username, data.Password)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return ctx.JSON(http.StatusOK, LoginResponse{Success: true, Message: "login successful", Username: sess.Username})
}

func (api *authApi) logout(ctx echo.Context) error {
	if cookie, err := ctx.Cookie(sessionCookieName); err == nil {
		if err := api.svc.Logout(ctx.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	// expire the cookie regardless
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return respondMessage(ctx, "logout successful")
}

func (api *authApi) status(ctx echo.Context) error {
	var id string
	if cookie, err := ctx.Cookie(sessionCookieName); err == nil {
		id = cookie.Value
	}
	return ctx.JSON(http.StatusOK, api.svc.Status(ctx.Request().Context(), id))
}
