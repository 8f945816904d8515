package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "pr-notes/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error sends the error with optional data. A *pkgErrors.HTTPError keeps its own status,
// message and details; any other error is a 400 with err.Error() as message.
func Error(c *gin.Context, err error, data map[string]any) {
	var he *pkgErrors.HTTPError
	if errors.As(err, &he) {
		ErrorWithStatus(c, he.Code, he.Message, data, he.Errors)
		return
	}
	ErrorWithStatus(c, http.StatusBadRequest, err.Error(), data, nil)
}

// ErrorWithStatus sends an error body with an explicit status code.
// errs carries field-level problems (e.g. validation codes) and is omitted when nil.
func ErrorWithStatus(c *gin.Context, status int, message string, data map[string]any, errs any) {
	if data == nil {
		data = make(map[string]any)
	}

	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   message,
		Data:      data,
		Errors:    errs,
	})
}

// NotFound sends 404 with the given message.
func NotFound(c *gin.Context, message string, data map[string]any) {
	ErrorWithStatus(c, http.StatusNotFound, message, data, nil)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}
