package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yoones-dev/portfolio-api/internal/services"
	"github.com/yoones-dev/portfolio-api/internal/types"
)

type CreateMessageRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

func (h *Handler) CreateMessage(ctx *gin.Context) {
	var req CreateMessageRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, types.Response{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid request body",
		})
		return
	}

	req.Mobile = strings.TrimSpace(req.Mobile)

	if !mobileRegex.MatchString(req.Mobile) {
		ctx.JSON(http.StatusBadRequest, types.Response{
			StatusCode: http.StatusBadRequest,
			Message:    "mobile number is not valid",
		})
		return
	}

	message, err := h.Messages.Create(ctx.Request.Context(), services.CreateMessageInput{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Mobile:   req.Mobile,
		Message:  strings.TrimSpace(req.Message),
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.Response{
		StatusCode: http.StatusCreated,
		Message:    "message created successfully",
		Data: types.MessageResponse{
			ID:        message.ID,
			Username:  message.Username,
			Email:     message.Email,
			Mobile:    message.Mobile,
			Message:   message.Message,
			CreatedAt: message.CreatedAt,
		},
	})
}
