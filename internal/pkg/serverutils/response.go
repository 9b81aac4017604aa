package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AppError carries an HTTP status alongside a user-facing message so the
// error handler can map domain failures onto responses.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// SuccessResponse writes the standard success envelope.
func SuccessResponse(ctx *fiber.Ctx, status int, message string, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

// ValidateRequest parses the JSON body into req and runs struct validation.
func ValidateRequest(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(req); err != nil {
		return NewAppError(fiber.StatusBadRequest, "Validation failed: "+err.Error(), err)
	}
	return nil
}

// ErrorHandlerMiddleware is installed as the Fiber app's ErrorHandler. It
// unwraps AppError for domain failures and hides internals for the rest.
func ErrorHandlerMiddleware(ctx *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ctx.Status(appErr.Code).JSON(fiber.Map{"message": appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
}
