package controllers

import (
	"net/http"
	"strconv"

	"github.com/smiggiddy/100daysofcode-blog/middleware"
	"github.com/smiggiddy/100daysofcode-blog/utils"

	"github.com/gin-gonic/gin"
)

// render добавляет к данным страницы текущего пользователя и flash-сообщение
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := middleware.Identity(c); ok {
		data["user"] = user
	}
	if flash := utils.PopFlash(c); flash != "" {
		data["flash"] = flash
	}
	c.HTML(http.StatusOK, name, data)
}

// parseID читает :id из пути; мусор в URL равнозначен несуществующему посту
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.String(http.StatusNotFound, "404 Not Found")
		return 0, false
	}
	return uint(id), true
}
