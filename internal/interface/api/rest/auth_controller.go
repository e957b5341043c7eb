package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"media-share-api/internal/application/ports"
	"media-share-api/internal/application/services"
	userDB "media-share-api/internal/infrastructure/db/postgres/user"
	"media-share-api/internal/interface/api/rest/dto/auth"
	userDTO "media-share-api/internal/interface/api/rest/dto/user"
	"media-share-api/internal/interface/api/rest/middleware"
	"media-share-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.AuthService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.AuthService,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteSignup, ac.SignupHandler)
	r.POST(RouteSignin, ac.SigninHandler)
	r.POST(RouteSignout, middleware.SessionMiddleware(authService), ac.SignoutHandler)
	r.GET(RouteMe, middleware.SessionMiddleware(authService), ac.MeHandler)

	return ac
}

func (ac *AuthController) SignupHandler(c *gin.Context) {
	var req auth.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateCredentials(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, token, err := ac.authService.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to sign up"},
		)
		ac.logger.Error("SignUp() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, auth.TokenResponse{
		Token: token,
		User:  userDTO.ToResponseUser(*u),
	})
}

func (ac *AuthController) SigninHandler(c *gin.Context) {
	var req auth.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateCredentials(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, token, err := ac.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// one generic message for unknown account and wrong password
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to sign in"},
		)
		ac.logger.Error("SignIn() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{
		Token: token,
		User:  userDTO.ToResponseUser(*u),
	})
}

// SignoutHandler always reports success: a revoke that found nothing to
// revoke still leaves the caller signed out.
func (ac *AuthController) SignoutHandler(c *gin.Context) {
	token := c.GetString(middleware.CtxToken)

	if err := ac.authService.SignOut(c.Request.Context(), token); err != nil {
		ac.logger.Error("SignOut() error", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (ac *AuthController) MeHandler(c *gin.Context) {
	u := middleware.Principal(c)

	c.JSON(http.StatusOK, userDTO.ResponseData{
		User: userDTO.ToResponseUser(*u),
	})
}
