package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/cavalaria/backend/internal/auth"
	"github.com/cavalaria/backend/internal/httputil"
	"github.com/cavalaria/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthController handles login and logout. It carries the token issuer and
// the revocation blacklist explicitly.
type AuthController struct {
	Issuer    *auth.Issuer
	Blacklist *auth.Blacklist
}

// LoginRequest is the payload for a login.
type LoginRequest struct {
	Username string `json:"username" example:"sgt.almeida"` // The account name
	Password string `json:"password" example:"hunter2"`     // The account password
}

// Login is the representation of a successful login.
type Login struct {
	Token     string          `json:"token"`                                        // The bearer token for subsequent requests
	ExpiresAt time.Time       `json:"expiresAt" example:"2024-03-12T16:15:00Z"`     // When the token expires
	Username  string          `json:"username" example:"sgt.almeida"`               // The account name
	Role      models.UserRole `json:"role" example:"OPERATOR"`                      // The account role
}

type LoginResponse struct {
	Error *string `json:"error" example:"the username or password is incorrect"` // The error, if any occurred
	Data  *Login  `json:"data"`                                                  // The login data, if authentication was successful
}

// RegisterAuthRoutes registers the authentication routes with
// the RouterGroup that is passed.
func (a AuthController) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", a.Login)

	r.OPTIONS("/logout", OptionsLogout)
	r.POST("/logout", a.Logout)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/logout [options]
func OptionsLogout(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a bearer token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func (a AuthController) Login(c *gin.Context) {
	var request LoginRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.Where("username = ?", strings.TrimSpace(request.Username)).First(&user).Error

	// An unknown username and a wrong password are the same error, the
	// response must not reveal which accounts exist
	if err != nil || !user.CheckPassword(request.Password) {
		e := errCredentialsInvalid.Error()
		c.JSON(http.StatusUnauthorized, LoginResponse{
			Error: &e,
		})
		return
	}

	token, err := a.Issuer.Issue(user)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{
			Error: &e,
		})
		return
	}

	log.Info().Str("username", user.Username).Msg("user logged in")

	data := Login{
		Token:     token,
		ExpiresAt: time.Now().In(time.UTC).Add(a.Issuer.ExpiresIn()),
		Username:  user.Username,
		Role:      user.Role,
	}
	c.JSON(http.StatusOK, LoginResponse{Data: &data})
}

// @Summary		Log out
// @Description	Revokes the bearer token of the request
// @Tags			Auth
// @Produce		json
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/auth/logout [post]
func (a AuthController) Logout(c *gin.Context) {
	token := BearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, httpError{
			Error: auth.ErrTokenInvalid.Error(),
		})
		return
	}

	claims, err := a.Issuer.Verify(token)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Without a blacklist the token stays valid until it expires on its
	// own, the logout is only acknowledged
	if a.Blacklist != nil {
		// The blacklist entry only needs to live as long as the token itself
		ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
		err = a.Blacklist.Add(c.Request.Context(), token, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			return
		}
	}

	log.Info().Str("username", claims.Username).Msg("user logged out")
	c.JSON(http.StatusNoContent, nil)
}

// BearerToken extracts the bearer token from the Authorization header.
// It returns the empty string when the header is missing or malformed.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}

	return strings.TrimSpace(token)
}
