package handlers

import (
	"github.com/gin-gonic/gin"

	categoryUsecases "marketplace/internal/application/category/usecases"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

type CategoryHandler struct {
	createUC     createCategoryUseCase
	listUC       listCategoriesUseCase
	listByTypeUC listCategoriesByTypeUseCase
	getUC        getCategoryUseCase
	updateUC     updateCategoryUseCase
	deleteUC     deleteCategoryUseCase
	logger       logger.Interface
}

func NewCategoryHandler(
	createUC createCategoryUseCase,
	listUC listCategoriesUseCase,
	listByTypeUC listCategoriesByTypeUseCase,
	getUC getCategoryUseCase,
	updateUC updateCategoryUseCase,
	deleteUC deleteCategoryUseCase,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		createUC:     createUC,
		listUC:       listUC,
		listByTypeUC: listByTypeUC,
		getUC:        getUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		logger:       logger,
	}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	Comment     string `json:"comment"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Comment     *string `json:"comment"`
}

// CreateCategory handles POST /categorys/create-one
// @Summary Create a category
// @Tags Categories
// @Security Bearer
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "Category"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /categorys/create-one [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), categoryUsecases.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Comment:     req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// ListCategories returns categories with their association counts.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), categoryUsecases.ListCategoriesQuery{
		Page:      pagination.Page,
		PageSize:  pagination.Limit,
		Search:    c.Query("search"),
		Type:      c.Query("type"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, "Categories retrieved successfully", result.Categories, result.Total, pagination)
}

func (h *CategoryHandler) ListCategoriesByType(c *gin.Context) {
	result, err := h.listByTypeUC.Execute(c.Request.Context(), c.Param("type"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Categories retrieved successfully", result)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), categoryID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Category retrieved successfully", result)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), categoryUsecases.UpdateCategoryCommand{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Comment:     req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Category updated successfully", result)
}

// DeleteCategory refuses while stores, products, services or consultations still reference the category.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), categoryID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Category deleted successfully", nil)
}
