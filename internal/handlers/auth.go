package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yoones-dev/portfolio-api/internal/auth"
	"github.com/yoones-dev/portfolio-api/internal/services"
	"github.com/yoones-dev/portfolio-api/internal/types"
	"github.com/yoones-dev/portfolio-api/internal/utils"
)

var (
	mobileRegex = regexp.MustCompile(`^(0?9\d{9}|98\d{9}|\d{6,15})$`)

	// Go's regexp has no lookahead, so the password policy is checked
	// one character class at a time.
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordDigit   = regexp.MustCompile(`[0-9]`)
	passwordSpecial = regexp.MustCompile(`[#?!@$ %^&*-]`)
)

type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Mobile          string `json:"mobile" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type LoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func validPassword(password string) bool {
	return passwordUpper.MatchString(password) &&
		passwordLower.MatchString(password) &&
		passwordDigit.MatchString(password) &&
		passwordSpecial.MatchString(password)
}

func (h *Handler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, types.Response{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid request body",
		})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Mobile = strings.TrimSpace(req.Mobile)

	if !mobileRegex.MatchString(req.Mobile) {
		ctx.JSON(http.StatusBadRequest, types.Response{
			StatusCode: http.StatusBadRequest,
			Message:    "mobile number is not valid",
		})
		return
	}

	if !validPassword(req.Password) {
		ctx.JSON(http.StatusBadRequest, types.Response{
			StatusCode: http.StatusBadRequest,
			Message:    "password must contain at least one uppercase letter, one lowercase letter, one number, and one special character",
		})
		return
	}

	if req.ConfirmPassword != req.Password {
		ctx.JSON(http.StatusBadRequest, types.Response{
			StatusCode: http.StatusBadRequest,
			Message:    "confirmPassword must match password",
		})
		return
	}

	user, err := h.Users.Register(ctx.Request.Context(), services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.Response{
		StatusCode: http.StatusCreated,
		Message:    "user registered successfully",
		Data: types.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Mobile:    user.Mobile,
			CreatedAt: user.CreatedAt,
		},
	})
}

func (h *Handler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, types.Response{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid request body",
		})
		return
	}

	user, err := h.Users.Authenticate(ctx.Request.Context(), strings.TrimSpace(req.Mobile), req.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := auth.GenerateJWT(auth.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Mobile:   user.Mobile,
	})

	if err != nil {
		log.Error().Err(err).Msg("failed to generate JWT")
		respondError(ctx, err)
		return
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     types.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL.Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	ctx.JSON(http.StatusOK, types.Response{
		StatusCode: http.StatusOK,
		Message:    "user logged in successfully",
	})
}

func (h *Handler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.Response{
			StatusCode: http.StatusUnauthorized,
			Message:    "user not authenticated",
		})
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		StatusCode: http.StatusOK,
		Message:    "user fetched successfully",
		Data:       currentUser,
	})
}
