package controllers

import (
	"errors"
	"log"

	"foodie/pkg/resp"
	"foodie/services"

	"github.com/gin-gonic/gin"
)

// fail maps service errors onto the response taxonomy. Store failures get
// the generic serverMsg; the cause is only logged.
func fail(c *gin.Context, err error, notFoundMsg, serverMsg string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		resp.BadRequest(c, ve.Msg)
	case errors.Is(err, services.ErrInvalidID):
		resp.BadRequest(c, "invalid id")
	case errors.Is(err, services.ErrInvalidStatus):
		resp.BadRequest(c, "Invalid status value.")
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, notFoundMsg)
	case errors.Is(err, services.ErrEmailTaken):
		resp.BadRequest(c, err.Error())
	default:
		log.Printf("%s: %v", serverMsg, err)
		resp.ServerError(c, serverMsg)
	}
}
