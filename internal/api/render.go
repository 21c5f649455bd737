package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tdiagne/resto-inventory/internal/service"
)

// parseID reads the :id path parameter. A malformed id is indistinguishable
// from a missing record as far as the caller is concerned, so it renders 404.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		renderNotFound(c, "The requested record does not exist.")
		return uuid.Nil, false
	}
	return id, true
}

func renderNotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"title":   "Not Found",
		"message": message,
	})
}

func renderServerError(c *gin.Context, err error) {
	log.Printf("Error: %v", err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"title":   "Server Error",
		"message": "Something went wrong while handling the request.",
	})
}

// renderLookupError maps a service error on a read/update/delete path to the
// right error page.
func renderLookupError(c *gin.Context, err error, message string) {
	if errors.Is(err, service.ErrNotFound) {
		renderNotFound(c, message)
		return
	}
	renderServerError(c, err)
}

// postForm parses the request body and returns the submitted values.
func postForm(c *gin.Context) (map[string][]string, error) {
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return c.Request.PostForm, nil
}
