package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yoones-dev/portfolio-api/internal/apperr"
	"github.com/yoones-dev/portfolio-api/internal/types"
)

func (h *Handler) CreateFramework(ctx *gin.Context) {
	name := strings.TrimSpace(ctx.PostForm("name"))

	if name == "" {
		respondError(ctx, apperr.New(apperr.InvalidInput, "name is required"))
		return
	}

	asset, err := formAsset(ctx, true)
	if err != nil {
		respondError(ctx, err)
		return
	}
	defer asset.Close()

	framework, err := h.Frameworks.Create(ctx.Request.Context(), name, asset)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.Response{
		StatusCode: http.StatusCreated,
		Message:    "framework created successfully",
		Data:       h.frameworkResponse(*framework),
	})
}

func (h *Handler) ListFrameworks(ctx *gin.Context) {
	frameworks, err := h.Frameworks.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.FrameworkResponse, 0, len(frameworks))
	for _, framework := range frameworks {
		response = append(response, h.frameworkResponse(framework))
	}

	ctx.JSON(http.StatusOK, types.Response{
		StatusCode: http.StatusOK,
		Message:    "frameworks fetched successfully",
		Data:       response,
	})
}

func (h *Handler) UpdateFramework(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	asset, err := formAsset(ctx, false)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if asset != nil {
		defer asset.Close()
	}

	framework, err := h.Frameworks.Update(ctx.Request.Context(), id, strings.TrimSpace(ctx.PostForm("name")), asset)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		StatusCode: http.StatusOK,
		Message:    "framework updated successfully",
		Data:       h.frameworkResponse(*framework),
	})
}

func (h *Handler) DeleteFramework(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := h.Frameworks.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		StatusCode: http.StatusOK,
		Message:    "framework deleted successfully",
	})
}
