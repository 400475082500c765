package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/karniella/revisions/core"
	"github.com/karniella/revisions/core/content"
	"github.com/karniella/revisions/core/session"
)

var errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "authentication required")

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that wraps every
// error in the response envelope. signalShutdown is called whenever a
// core.shutdown error is caught so the server can stop gracefully.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default:
			switch errors.Cause(err) {
			case content.ErrSubjectNotFound, content.ErrLessonNotFound, content.ErrQuizNotFound:
				code = http.StatusNotFound
				message = errors.Cause(err).Error()
			case session.ErrBadCredentials:
				code = http.StatusUnauthorized
				message = errors.Cause(err).Error()
			default:
				// storage and any other failure: 500 with the raw message
				code = http.StatusInternalServerError
				message = err.Error()
				logger.Error(http.StatusText(code), err)

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, response{Success: false, Message: message})
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
