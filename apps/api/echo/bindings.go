package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// response is the uniform envelope wrapping every API payload.
type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message interface{} `json:"message,omitempty"`
}

func respondData(ctx echo.Context, data interface{}) error {
	return ctx.JSON(http.StatusOK, response{Success: true, Data: data})
}

func respondMessage(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusOK, response{Success: true, Message: msg})
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

// LoginResponse keeps the original top-level username field.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username"`
}
