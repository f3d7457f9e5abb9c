package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"consig_origination/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HeaderActor identifies the operator (or system) behind a request. It is recorded as
// created_by on every status history entry.
const HeaderActor = "X-Actor"

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func actorFrom(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderActor))
}

func writeError(c *gin.Context, log *zap.Logger, area string, err error) {
	appErr := pkg.FromError(err)
	fields := []zap.Field{
		zap.String("path", c.FullPath()),
		zap.String("token", c.Param("token")),
		zap.String("code", appErr.Code),
		zap.Int("status", appErr.HTTPStatus),
		zap.Error(err),
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("["+area+"][handler] request failed", fields...)
	} else {
		log.Info("["+area+"][handler] request refused", fields...)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

// pagination reads page and per_page, falling back to 1 and defaultPerPage.
func pagination(c *gin.Context) (page, perPage int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
