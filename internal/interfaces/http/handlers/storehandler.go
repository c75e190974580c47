package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	storeUsecases "marketplace/internal/application/store/usecases"
	"marketplace/internal/domain/store"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

// StoreUseCases groups the use cases behind the /stores routes.
type StoreUseCases struct {
	Create           createStoreUseCase
	List             listStoresUseCase
	ListByCategory   listStoresByCategoryUseCase
	Get              getStoreUseCase
	GetMine          getStoreUseCase
	Approve          moderateStoreUseCase
	Reject           moderateStoreUseCase
	SetOnline        setStoreStatusUseCase
	SetOffline       setStoreStatusUseCase
	UpdateCategories updateStoreCategoriesUseCase
}

type StoreHandler struct {
	ucs    StoreUseCases
	logger logger.Interface
}

func NewStoreHandler(ucs StoreUseCases, logger logger.Interface) *StoreHandler {
	return &StoreHandler{ucs: ucs, logger: logger}
}

type CreateStoreRequest struct {
	Name         string   `json:"name" binding:"required"`
	Location     string   `json:"location"`
	Tags         []string `json:"tags"`
	Description  string   `json:"description"`
	Logo         string   `json:"logo"`
	Banner       string   `json:"banner"`
	Phone        string   `json:"phone" binding:"omitempty,bdphone"`
	Email        string   `json:"email" binding:"omitempty,email"`
	FacebookURL  string   `json:"facebookUrl" binding:"omitempty,url"`
	InstagramURL string   `json:"instagramUrl" binding:"omitempty,url"`
	YoutubeURL   string   `json:"youtubeUrl" binding:"omitempty,url"`
	CategoryIDs  []uint   `json:"categoryIds" binding:"required,min=1,dive,gt=0"`
}

type UpdateStoreCategoriesRequest struct {
	CategoryIDs []uint `json:"categoryIds" binding:"required,min=1,dive,gt=0"`
}

// CreateStore opens a store for the current user
// @Summary Create a store
// @Tags Stores
// @Security Bearer
// @Accept json
// @Produce json
// @Param request body CreateStoreRequest true "Store details"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /stores/create-store [post]
func (h *StoreHandler) CreateStore(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.ucs.Create.Execute(c.Request.Context(), storeUsecases.CreateStoreCommand{
		UserID: userID,
		Name:   req.Name,
		Profile: store.Profile{
			Location:     req.Location,
			Tags:         req.Tags,
			Description:  req.Description,
			Logo:         req.Logo,
			Banner:       req.Banner,
			Phone:        req.Phone,
			Email:        req.Email,
			FacebookURL:  req.FacebookURL,
			InstagramURL: req.InstagramURL,
			YoutubeURL:   req.YoutubeURL,
		},
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Store created successfully")
}

// ListStores handles GET /stores
// @Summary List stores
// @Tags Stores
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Name search"
// @Param shopStatus query string false "PENDING, APPROVED or REJECTED"
// @Param status query string false "ONLINE or OFFLINE"
// @Param categoryId query int false "Category filter"
// @Success 200 {object} utils.APIResponse
// @Router /stores [get]
func (h *StoreHandler) ListStores(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := storeListQuery(c, pagination)

	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || categoryID == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid category ID"))
			return
		}
		id := uint(categoryID)
		query.CategoryID = &id
	}

	result, err := h.ucs.List.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, "Stores retrieved successfully", result.Stores, result.Total, pagination)
}

func (h *StoreHandler) ListStoresByCategory(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "categoryId", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	query := storeListQuery(c, pagination)

	result, err := h.ucs.ListByCategory.Execute(c.Request.Context(), categoryID, query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, "Stores by category retrieved successfully", result.Stores, result.Total, pagination)
}

func (h *StoreHandler) GetStore(c *gin.Context) {
	storeID, err := utils.ParseUintParam(c, "id", "store")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ucs.Get.Execute(c.Request.Context(), storeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Store retrieved successfully", result)
}

func (h *StoreHandler) GetMyStore(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ucs.GetMine.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "My store retrieved successfully", result)
}

func (h *StoreHandler) ApproveStore(c *gin.Context) {
	h.moderate(c, h.ucs.Approve, "Store approved successfully")
}

// RejectStore also forces the store offline.
func (h *StoreHandler) RejectStore(c *gin.Context) {
	h.moderate(c, h.ucs.Reject, "Store rejected successfully")
}

func (h *StoreHandler) moderate(c *gin.Context, uc moderateStoreUseCase, message string) {
	storeID, err := utils.ParseUintParam(c, "id", "store")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := uc.Execute(c.Request.Context(), storeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, message, result)
}

func (h *StoreHandler) SetStoreOnline(c *gin.Context) {
	h.setStatus(c, h.ucs.SetOnline, "Store set to online successfully")
}

func (h *StoreHandler) SetStoreOffline(c *gin.Context) {
	h.setStatus(c, h.ucs.SetOffline, "Store set to offline successfully")
}

func (h *StoreHandler) setStatus(c *gin.Context, uc setStoreStatusUseCase, message string) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	storeID, err := utils.ParseUintParam(c, "id", "store")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := uc.Execute(c.Request.Context(), storeUsecases.SetStoreStatusCommand{
		StoreID: storeID,
		UserID:  userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, message, result)
}

func (h *StoreHandler) UpdateStoreCategories(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	storeID, err := utils.ParseUintParam(c, "id", "store")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStoreCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.ucs.UpdateCategories.Execute(c.Request.Context(), storeUsecases.UpdateStoreCategoriesCommand{
		StoreID:     storeID,
		UserID:      userID,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Store categories updated successfully", result)
}

func storeListQuery(c *gin.Context, p utils.Pagination) storeUsecases.ListStoresQuery {
	return storeUsecases.ListStoresQuery{
		Page:       p.Page,
		PageSize:   p.Limit,
		Search:     c.Query("search"),
		ShopStatus: c.Query("shopStatus"),
		Status:     c.Query("status"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	}
}
