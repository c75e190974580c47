package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	contactUsecases "marketplace/internal/application/contact/usecases"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

type sendContactMessageUseCase interface {
	Execute(ctx context.Context, cmd contactUsecases.SendContactMessageCommand) error
}

type ContactHandler struct {
	sendUC sendContactMessageUseCase
	logger logger.Interface
}

func NewContactHandler(sendUC sendContactMessageUseCase, logger logger.Interface) *ContactHandler {
	return &ContactHandler{sendUC: sendUC, logger: logger}
}

type ContactRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// SendMessage handles POST /contacts
// @Summary Submit the contact form
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Message"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /contacts [post]
func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	err := h.sendUC.Execute(c.Request.Context(), contactUsecases.SendContactMessageCommand{
		FullName:    req.FullName,
		Email:       req.Email,
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Contact form submitted successfully!", nil)
}
