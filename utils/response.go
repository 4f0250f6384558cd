package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"hotel-booking/failure"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// RespondError writes err with the status its failure kind maps to. Storage
// failures are logged with a stack trace; their text still reaches the client.
func RespondError(c *gin.Context, log *zerolog.Logger, err error) {
	if failure.KindOf(err) == failure.KindStorage {
		ErrorWithStack(log, c.FullPath(), err)
	}
	JSONError(c, failure.HTTPStatus(err), err.Error())
}

func ErrorWithStack(log *zerolog.Logger, route string, err error) {
	log.Error().Str("route", route).Msgf("%+v", errors.WithStack(err))
}
