package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/smiggiddy/100daysofcode-blog/config"
	"github.com/smiggiddy/100daysofcode-blog/utils"

	"github.com/gin-gonic/gin"
)

type PageController struct {
	cfg *config.Config
}

func NewPageController(cfg *config.Config) *PageController {
	return &PageController{cfg: cfg}
}

// GET /about
func (pc *PageController) About(c *gin.Context) {
	render(c, "about.html", nil)
}

// GET /contact
func (pc *PageController) Contact(c *gin.Context) {
	render(c, "contact.html", nil)
}

// POST /contact — письмо владельцу сайта через SMTP
func (pc *PageController) ContactSubmit(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))
	if name == "" || email == "" || message == "" {
		utils.SetFlash(c, "All fields are required")
		c.Redirect(http.StatusFound, "/contact")
		return
	}
	if pc.cfg.SMTPHost == "" || pc.cfg.ContactRecipient == "" {
		utils.SetFlash(c, "Messaging is not configured, try again later")
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	body := fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message)
	err := utils.SendEmail(pc.cfg.ContactRecipient, "New blog contact message", body,
		pc.cfg.SMTPHost, pc.cfg.SMTPPort, pc.cfg.SMTPUser, pc.cfg.SMTPPass)
	if err != nil {
		utils.LogError(err, "contact email")
		utils.SetFlash(c, "Could not send your message, try again later")
		c.Redirect(http.StatusFound, "/contact")
		return
	}
	utils.SetFlash(c, "Your message has been sent!")
	c.Redirect(http.StatusFound, "/contact")
}
