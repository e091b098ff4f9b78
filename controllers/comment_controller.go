package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/smiggiddy/100daysofcode-blog/middleware"
	"github.com/smiggiddy/100daysofcode-blog/services"
	"github.com/smiggiddy/100daysofcode-blog/utils"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// POST /post/:id — гард LoginRequired отрабатывает до хендлера
func (cc *CommentController) Create(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		utils.SetFlash(c, "Comment text is required")
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
		return
	}

	user, _ := middleware.Identity(c)
	if _, err := cc.comments.Add(user, id, text); err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthenticated):
			utils.SetFlash(c, "Please login to make a comment!")
			c.Redirect(http.StatusFound, "/login")
		case errors.Is(err, services.ErrNotFound):
			c.String(http.StatusNotFound, "404 Not Found")
		default:
			utils.LogError(err, "add comment")
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
}
