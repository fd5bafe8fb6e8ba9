package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"shop_service/internal/domain"

	"github.com/gin-gonic/gin"
)

const debugKey = "debug"

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrCategoryInUse):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// FailFromError writes an error envelope for a use case failure. Internal
// errors only expose their detail when the debug flag is set on the context.
func FailFromError(c *gin.Context, prefix string, err error) {
	statusCode := mapErrorToStatus(err)
	message := prefix + ": " + err.Error()
	if statusCode == http.StatusInternalServerError && !c.GetBool(debugKey) {
		message = prefix
	}
	ErrorResponse(c, statusCode, message)
}

// DebugFlag stores the debug setting on every request for FailFromError.
func DebugFlag(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(debugKey, debug)
		c.Next()
	}
}

func parsePositiveID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parsePagination reads limit and offset as given; unparsable values become
// zero and the repository applies the defaults and bounds.
func parsePagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit"))
	offset, _ = strconv.Atoi(c.Query("offset"))
	return limit, offset
}
