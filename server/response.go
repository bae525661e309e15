package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/commercekit/storefront/errors"
)

// RespondWithError writes an error response. AppErrors are rendered with
// their mapped HTTP status; anything else becomes a 500 with a generic body.
func RespondWithError(c *gin.Context, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.Internal(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToResponse())
}

// RespondOK writes a 200 response with the given payload.
func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// RespondCreated writes a 201 response with the given payload.
func RespondCreated(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// RespondNoContent writes an empty 204 response.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
