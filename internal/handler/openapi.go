package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doggyworld/backend/docs"
)

// OpenAPIDoc returns the OpenAPI document.
func OpenAPIDoc(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
}
