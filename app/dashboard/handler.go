// Package dashboard serves the index page and the catch-all 404.
package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Eternity | Dashboard",
		"url":   "/",
	})
}

func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"title": "404 Page Not Found",
		"url":   "/404",
	})
}
