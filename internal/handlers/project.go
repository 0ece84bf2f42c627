package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yoones-dev/portfolio-api/internal/apperr"
	"github.com/yoones-dev/portfolio-api/internal/services"
	"github.com/yoones-dev/portfolio-api/internal/types"
)

func (h *Handler) CreateProject(ctx *gin.Context) {
	title := strings.TrimSpace(ctx.PostForm("title"))
	description := strings.TrimSpace(ctx.PostForm("description"))
	link := strings.TrimSpace(ctx.PostForm("link"))

	if title == "" || description == "" || link == "" {
		respondError(ctx, apperr.New(apperr.InvalidInput, "title, description and link are required"))
		return
	}

	frameworkIDs, err := parseFrameworkIDs(ctx.PostFormArray("frameworkIds"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if len(frameworkIDs) == 0 {
		respondError(ctx, apperr.New(apperr.InvalidInput, "frameworkIds is required"))
		return
	}

	asset, err := formAsset(ctx, true)
	if err != nil {
		respondError(ctx, err)
		return
	}
	defer asset.Close()

	project, err := h.Projects.Create(ctx.Request.Context(), services.CreateProjectInput{
		Title:        title,
		Description:  description,
		Link:         link,
		FrameworkIDs: frameworkIDs,
		Asset:        asset,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.Response{
		StatusCode: http.StatusCreated,
		Message:    "project created successfully",
		Data:       h.projectResponse(*project),
	})
}

func (h *Handler) ListProjects(ctx *gin.Context) {
	page, err := parsePositiveInt(ctx.Query("page"), services.DefaultPage, "page")
	if err != nil {
		respondError(ctx, err)
		return
	}

	limit, err := parsePositiveInt(ctx.Query("limit"), services.DefaultLimit, "limit")
	if err != nil {
		respondError(ctx, err)
		return
	}

	projects, err := h.Projects.List(ctx.Request.Context(), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		response = append(response, h.projectResponse(project))
	}

	ctx.JSON(http.StatusOK, types.Response{
		StatusCode: http.StatusOK,
		Message:    "projects fetched successfully",
		Data:       response,
	})
}

func (h *Handler) UpdateProject(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	frameworkIDs, err := parseFrameworkIDs(ctx.PostFormArray("frameworkIds"))
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

	err = h.Projects.Update(ctx.Request.Context(), id, services.UpdateProjectInput{
		Title:        strings.TrimSpace(ctx.PostForm("title")),
		Description:  strings.TrimSpace(ctx.PostForm("description")),
		Link:         strings.TrimSpace(ctx.PostForm("link")),
		FrameworkIDs: frameworkIDs,
		Asset:        asset,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		StatusCode: http.StatusOK,
		Message:    "project updated successfully",
	})
}

func (h *Handler) DeleteProject(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := h.Projects.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		StatusCode: http.StatusOK,
		Message:    "project deleted successfully",
	})
}

type DisassociateRequest struct {
	ProjectID   uint `json:"projectId" binding:"required"`
	FrameworkID uint `json:"frameworkId" binding:"required"`
}

func (h *Handler) DisassociateFramework(ctx *gin.Context) {
	var req DisassociateRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, types.Response{
			StatusCode: http.StatusBadRequest,
			Message:    "projectId and frameworkId are required",
		})
		return
	}

	if err := h.Projects.Disassociate(ctx.Request.Context(), req.ProjectID, req.FrameworkID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		StatusCode: http.StatusOK,
		Message:    "framework disassociated successfully",
	})
}
