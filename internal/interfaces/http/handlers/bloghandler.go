package handlers

import (
	"github.com/gin-gonic/gin"

	blogUsecases "marketplace/internal/application/blog/usecases"
	"marketplace/internal/infrastructure/storage"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

type BlogHandler struct {
	createUC createBlogUseCase
	listUC   listBlogsUseCase
	getUC    getBlogUseCase
	updateUC updateBlogUseCase
	deleteUC deleteBlogUseCase
	uploader fileUploader
	logger   logger.Interface
}

func NewBlogHandler(
	createUC createBlogUseCase,
	listUC listBlogsUseCase,
	getUC getBlogUseCase,
	updateUC updateBlogUseCase,
	deleteUC deleteBlogUseCase,
	uploader fileUploader,
	logger logger.Interface,
) *BlogHandler {
	return &BlogHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		uploader: uploader,
		logger:   logger,
	}
}

type CreateBlogRequest struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	Category    string `json:"category" form:"category"`
}

type UpdateBlogRequest struct {
	Title       *string `json:"title" form:"title" binding:"omitempty,min=1"`
	Description *string `json:"description" form:"description"`
	Category    *string `json:"category" form:"category"`
}

// CreateBlog publishes a post. The body is multipart: a "data" JSON part or plain
// fields, plus an optional "file" image.
// @Summary Create a blog post
// @Tags Blogs
// @Security Bearer
// @Accept multipart/form-data
// @Produce json
// @Param data formData string false "JSON encoded CreateBlogRequest"
// @Param file formData file false "Cover image"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /blogs/create-blog [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req CreateBlogRequest
	if err := bindMultipartData(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	image, err := optionalUpload(c, h.uploader, storage.KindImage)
	if err != nil {
		h.logger.Warnw("blog image upload rejected", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), blogUsecases.CreateBlogCommand{
		Title:       req.Title,
		Description: req.Description,
		Image:       image,
		Category:    req.Category,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Blog created successfully!")
}

func (h *BlogHandler) ListBlogs(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), blogUsecases.ListBlogsQuery{
		Page:      pagination.Page,
		PageSize:  pagination.Limit,
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, "Blogs retrieved successfully!", result.Blogs, result.Total, pagination)
}

// GetBlog counts a view on every read.
func (h *BlogHandler) GetBlog(c *gin.Context) {
	blogID, err := utils.ParseUintParam(c, "id", "blog")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), blogID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Blog retrieved successfully!", result)
}

func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	blogID, err := utils.ParseUintParam(c, "id", "blog")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateBlogRequest
	if err := bindMultipartData(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	image, err := optionalUpload(c, h.uploader, storage.KindImage)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), blogUsecases.UpdateBlogCommand{
		BlogID:      blogID,
		Title:       req.Title,
		Description: req.Description,
		Image:       image,
		Category:    req.Category,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Blog updated successfully!", result)
}

func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	blogID, err := utils.ParseUintParam(c, "id", "blog")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), blogID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Blog deleted successfully!", nil)
}
