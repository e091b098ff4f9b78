package middleware

import (
	"net/http"

	"github.com/smiggiddy/100daysofcode-blog/models"
	"github.com/smiggiddy/100daysofcode-blog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	// SessionCookie — подписанный JWT на клиенте, сервер состояния не хранит
	SessionCookie  = "session"
	contextUserKey = "currentUser"
)

// CurrentUser резолвит личность из сессионной cookie и кладёт её в контекст
// запроса. Невалидный или истёкший токен просто означает "не залогинен".
func CurrentUser(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		claims, err := utils.ParseSessionToken(token, secret)
		if err != nil || claims == nil {
			c.Next()
			return
		}
		id, ok := claims["user_id"].(float64)
		if !ok {
			c.Next()
			return
		}
		var user models.User
		if db.First(&user, uint(id)).Error == nil {
			c.Set(contextUserKey, &user)
		}
		c.Next()
	}
}

// Identity возвращает залогиненного пользователя текущего запроса
func Identity(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// LoginRequired пускает дальше только аутентифицированных; гостя уводит
// на /login с flash-сообщением
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Identity(c); !ok {
			utils.SetFlash(c, "Please login to make a comment!")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly отвечает голым 403 и гостю, и обычному пользователю
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := Identity(c)
		if !ok || !user.IsAdmin() {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
