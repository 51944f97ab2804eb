package response

import (
	"go-empdir/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the envelope every failed request carries:
// {"error":{"code":"...","message":"..."}}.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessMessage is the confirmation body for mutating operations.
type SuccessMessage struct {
	Success string `json:"success"`
}

// JSON writes a success payload as-is. List and detail endpoints return
// their data at the top level, without a wrapper.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Message writes a {"success": ...} confirmation.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, SuccessMessage{Success: msg})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
}

// AppError writes any error through the apperror translation.
func AppError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
}
