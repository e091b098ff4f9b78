package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/smiggiddy/100daysofcode-blog/config"
	"github.com/smiggiddy/100daysofcode-blog/middleware"
	"github.com/smiggiddy/100daysofcode-blog/models"
	"github.com/smiggiddy/100daysofcode-blog/services"
	"github.com/smiggiddy/100daysofcode-blog/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
	cfg  *config.Config
}

func NewAuthController(auth *services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{auth: auth, cfg: cfg}
}

// GET /register
func (ac *AuthController) RegisterForm(c *gin.Context) {
	render(c, "register.html", gin.H{"title": "Register"})
}

// POST /register
func (ac *AuthController) Register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	if name == "" || email == "" || password == "" {
		utils.SetFlash(c, "All fields are required")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user, err := ac.auth.Register(name, email, password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			utils.SetFlash(c, "You already have an account! Sign in")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		utils.LogError(err, "register")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// Сразу логиним нового пользователя
	if err := ac.establishSession(c, user); err != nil {
		utils.LogError(err, "register session")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// GET /login
func (ac *AuthController) LoginForm(c *gin.Context) {
	render(c, "login.html", gin.H{"title": "Log In"})
}

// POST /login
func (ac *AuthController) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	user, err := ac.auth.Login(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.SetFlash(c, "Incorrect Username or Password. Try Again")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		utils.LogError(err, "login")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := ac.establishSession(c, user); err != nil {
		utils.LogError(err, "login session")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.SetFlash(c, "You were logged in!")
	c.Redirect(http.StatusFound, "/")
}

// GET /logout — стираем только клиентскую cookie, токен живёт до exp
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) establishSession(c *gin.Context, user *models.User) error {
	token, err := utils.GenerateSessionToken(user.ID, user.Role, ac.cfg.SecretKey)
	if err != nil {
		return err
	}
	c.SetCookie(middleware.SessionCookie, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)
	return nil
}
