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

type PostController struct {
	posts    *services.PostService
	comments *services.CommentService
}

func NewPostController(posts *services.PostService, comments *services.CommentService) *PostController {
	return &PostController{posts: posts, comments: comments}
}

// GET /
func (pc *PostController) Index(c *gin.Context) {
	posts, err := pc.posts.List()
	if err != nil {
		utils.LogError(err, "list posts")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	render(c, "index.html", gin.H{"posts": posts})
}

// GET /post/:id
func (pc *PostController) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := pc.posts.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.String(http.StatusNotFound, "404 Not Found")
			return
		}
		utils.LogError(err, "get post")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	comments, err := pc.comments.ForPost(id)
	if err != nil {
		utils.LogError(err, "list comments")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	render(c, "post.html", gin.H{"post": post, "comments": comments})
}

// GET /new-post
func (pc *PostController) NewForm(c *gin.Context) {
	render(c, "make-post.html", gin.H{
		"heading": "New Post",
		"action":  "/new-post",
	})
}

// POST /new-post
func (pc *PostController) Create(c *gin.Context) {
	title, subtitle, body, imgURL, ok := postForm(c)
	if !ok {
		c.Redirect(http.StatusFound, "/new-post")
		return
	}
	admin, _ := middleware.Identity(c)
	_, err := pc.posts.Create(admin, title, subtitle, body, imgURL)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateTitle) {
			utils.SetFlash(c, "A post with that title already exists")
			c.Redirect(http.StatusFound, "/new-post")
			return
		}
		utils.LogError(err, "create post")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// GET /edit-post/:id — форма с текущими значениями
func (pc *PostController) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := pc.posts.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.String(http.StatusNotFound, "404 Not Found")
			return
		}
		utils.LogError(err, "get post")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	render(c, "make-post.html", gin.H{
		"heading": "Edit Post",
		"action":  fmt.Sprintf("/edit-post/%d", post.ID),
		"post":    post,
	})
}

// POST /edit-post/:id
func (pc *PostController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	title, subtitle, body, imgURL, ok := postForm(c)
	if !ok {
		c.Redirect(http.StatusFound, fmt.Sprintf("/edit-post/%d", id))
		return
	}
	post, err := pc.posts.Update(id, title, subtitle, body, imgURL)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.String(http.StatusNotFound, "404 Not Found")
		case errors.Is(err, services.ErrDuplicateTitle):
			utils.SetFlash(c, "A post with that title already exists")
			c.Redirect(http.StatusFound, fmt.Sprintf("/edit-post/%d", id))
		default:
			utils.LogError(err, "update post")
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

// GET /delete/:id
func (pc *PostController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := pc.posts.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.String(http.StatusNotFound, "404 Not Found")
			return
		}
		utils.LogError(err, "delete post")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func postForm(c *gin.Context) (title, subtitle, body, imgURL string, ok bool) {
	title = strings.TrimSpace(c.PostForm("title"))
	subtitle = strings.TrimSpace(c.PostForm("subtitle"))
	body = strings.TrimSpace(c.PostForm("body"))
	imgURL = strings.TrimSpace(c.PostForm("img_url"))
	if title == "" || subtitle == "" || body == "" || imgURL == "" {
		utils.SetFlash(c, "All fields are required")
		return "", "", "", "", false
	}
	return title, subtitle, body, imgURL, true
}
