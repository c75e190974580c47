package handlers

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	paymentUsecases "marketplace/internal/application/payment/usecases"
	subUsecases "marketplace/internal/application/subscription/usecases"
	"marketplace/internal/shared/constants"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

// maxWebhookBodyBytes caps the Stripe payload read before signature verification.
const maxWebhookBodyBytes = 64 << 10

type SubscriptionHandler struct {
	createUC        createSubscriptionUseCase
	getMineUC       getMySubscriptionUseCase
	listUC          listSubscriptionsUseCase
	getUC           getSubscriptionUseCase
	updateUC        updateSubscriptionUseCase
	deleteUC        deleteSubscriptionUseCase
	handleWebhookUC handleWebhookUseCase
	logger          logger.Interface
}

func NewSubscriptionHandler(
	createUC createSubscriptionUseCase,
	getMineUC getMySubscriptionUseCase,
	listUC listSubscriptionsUseCase,
	getUC getSubscriptionUseCase,
	updateUC updateSubscriptionUseCase,
	deleteUC deleteSubscriptionUseCase,
	handleWebhookUC handleWebhookUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUC:        createUC,
		getMineUC:       getMineUC,
		listUC:          listUC,
		getUC:           getUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		handleWebhookUC: handleWebhookUC,
		logger:          logger,
	}
}

type CreateSubscriptionRequest struct {
	PlanID uint `json:"planId" binding:"required"`
}

// UpdateSubscriptionRequest is the admin correction payload. Send "endDate": null
// together with clearEndDate to make a subscription open ended.
type UpdateSubscriptionRequest struct {
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	ClearEndDate  bool       `json:"clearEndDate"`
	Amount        *float64   `json:"amount" binding:"omitempty,gte=0"`
	PaymentStatus *string    `json:"paymentStatus" binding:"omitempty,oneof=PENDING COMPLETED FAILED CANCELED pending completed failed canceled"`
}

// CreateSubscription starts a checkout and returns the payment intent client secret
// @Summary Start a subscription checkout
// @Tags Subscriptions
// @Security Bearer
// @Accept json
// @Produce json
// @Param request body CreateSubscriptionRequest true "Plan to buy"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /subscriptions/create-subscription [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), subUsecases.CreateSubscriptionCommand{
		UserID: userID,
		PlanID: req.PlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription created successfully")
}

func (h *SubscriptionHandler) GetMySubscription(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getMineUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Subscription retrieved successfully", result)
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := subUsecases.ListSubscriptionsQuery{
		Page:          pagination.Page,
		PageSize:      pagination.Limit,
		SortBy:        c.Query("sortBy"),
		SortOrder:     c.Query("sortOrder"),
		PaymentStatus: c.Query("paymentStatus"),
	}
	if raw := c.Query("planId"); raw != "" {
		planID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || planID == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid plan ID"))
			return
		}
		id := uint(planID)
		query.PlanID = &id
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, "Subscriptions retrieved successfully", result.Subscriptions, result.Total, pagination)
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "subscriptionId", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), subscriptionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Subscription retrieved successfully", result)
}

func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "subscriptionId", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), subUsecases.UpdateSubscriptionCommand{
		SubscriptionID: subscriptionID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		ClearEndDate:   req.ClearEndDate,
		Amount:         req.Amount,
		PaymentStatus:  req.PaymentStatus,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Subscription updated successfully", result)
}

func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "subscriptionId", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), subscriptionID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Subscription deleted successfully", nil)
}

// StripeWebhook verifies the Stripe-Signature header against the raw body.
// A forged or unreadable payload gets 400; once the event is authentic the
// provider always receives 200 and processing failures are only logged.
func (h *SubscriptionHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		h.logger.Warnw("failed to read webhook body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Unable to read request body")
		return
	}

	result, err := h.handleWebhookUC.Execute(c.Request.Context(), paymentUsecases.HandleWebhookCommand{
		Payload:   payload,
		Signature: c.GetHeader(constants.HeaderStripeSignature),
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == http.StatusBadRequest {
			utils.ErrorResponseWithError(c, err)
			return
		}
		h.logger.Errorw("stripe webhook processing failed", "error", err)
		c.JSON(http.StatusOK, paymentUsecases.HandleWebhookResult{Received: true})
		return
	}

	c.JSON(http.StatusOK, result)
}
