package handlers

import (
	"github.com/gin-gonic/gin"

	userUsecases "marketplace/internal/application/user/usecases"
	"marketplace/internal/infrastructure/storage"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	registerUC      registerUserUseCase
	listUsersUC     listUsersUseCase
	getUserUC       getUserUseCase
	updateUserUC    updateUserUseCase
	updateProfileUC updateProfileUseCase
	deleteUserUC    deleteUserUseCase
	uploader        fileUploader
	logger          logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	registerUC registerUserUseCase,
	listUsersUC listUsersUseCase,
	getUserUC getUserUseCase,
	updateUserUC updateUserUseCase,
	updateProfileUC updateProfileUseCase,
	deleteUserUC deleteUserUseCase,
	uploader fileUploader,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		registerUC:      registerUC,
		listUsersUC:     listUsersUC,
		getUserUC:       getUserUC,
		updateUserUC:    updateUserUC,
		updateProfileUC: updateProfileUC,
		deleteUserUC:    deleteUserUC,
		uploader:        uploader,
		logger:          log,
	}
}

type RegisterUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"max=100"`
	LastName  string `json:"lastName" binding:"max=100"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"firstName" form:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" form:"lastName" binding:"omitempty,max=100"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"fullName" form:"fullName" binding:"omitempty,max=200"`
}

// Register handles POST /users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), userUsecases.RegisterUserCommand{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Please check your email for verification link.")
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), userUsecases.ListUsersQuery{
		Page:       pagination.Page,
		PageSize:   pagination.Limit,
		SearchTerm: c.Query("searchTerm"),
		Role:       c.Query("role"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, "Users are retrieved successfully!", result.Users, result.Total, pagination)
}

// GetUser handles GET /users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "userId", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "User retrieved successfully!", result)
}

// UpdateUser handles PATCH /users/update (multipart, optional "file")
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := bindMultipartData(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	picture, err := optionalUpload(c, h.uploader, storage.KindImage)
	if err != nil {
		h.logger.Warnw("profile picture upload rejected", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), userUsecases.UpdateUserCommand{
		UserID:     userID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		ProfilePic: picture,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "User updated successfully!", result)
}

// UpdateProfile handles PATCH /users/update-profile (multipart, optional "file")
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := bindMultipartData(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	picture, err := optionalUpload(c, h.uploader, storage.KindImage)
	if err != nil {
		h.logger.Warnw("profile picture upload rejected", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), userUsecases.UpdateProfileCommand{
		UserID:     userID,
		FullName:   req.FullName,
		ProfilePic: picture,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "User profile updated successfully!", result)
}

// DeleteUser handles DELETE /users/:userId
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "userId", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "User deleted successfully!", nil)
}
