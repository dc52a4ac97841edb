package controller

import (
	"github.com/citra/storefront/internal/app/model"
	apperrors "github.com/citra/storefront/internal/errors"
	"github.com/citra/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bindJSON decodes the body into req and writes a 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Invalid request body", map[string]interface{}{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, err.Error())
		return false
	}
	return true
}

// respondError logs a rejected call and maps err to its HTTP shape
func respondError(c *gin.Context, msg string, err error, fields map[string]interface{}) {
	log := middleware.GetLoggerFromContext(c)
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["error"] = err.Error()

	info := apperrors.ParseError(err)
	if info.Status >= 500 {
		log.Error(msg, err, fields)
	} else {
		log.Warn(msg, fields)
	}
	apperrors.RespondWithError(c, info.Status, info.Code, info.Message)
}

func sessionID(c *gin.Context) string {
	id, _ := middleware.GetSessionID(c)
	return id
}

func pathFromParams(c *gin.Context) model.CategoryPath {
	return model.CategoryPath{
		CategoryID:       c.Param("categoryId"),
		SubCategoryID:    c.Param("subCategoryId"),
		SubSubCategoryID: c.Param("subSubCategoryId"),
	}
}
