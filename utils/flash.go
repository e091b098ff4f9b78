package utils

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// SetFlash кладёт одноразовое сообщение в cookie, оно покажется на
// следующей отрендеренной странице
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, base64.URLEncoding.EncodeToString([]byte(message)), 60, "/", "", false, true)
}

// PopFlash читает и сразу стирает flash-сообщение
func PopFlash(c *gin.Context) string {
	v, err := c.Cookie(flashCookie)
	if err != nil || v == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	decoded, err := base64.URLEncoding.DecodeString(v)
	if err != nil {
		return ""
	}
	return string(decoded)
}
