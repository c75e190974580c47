package handlers

import (
	"github.com/gin-gonic/gin"

	subUsecases "marketplace/internal/application/subscription/usecases"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC createPlanUseCase
	updatePlanUC updatePlanUseCase
	getPlanUC    getPlanUseCase
	listPlansUC  listPlansUseCase
	deletePlanUC deletePlanUseCase
	logger       logger.Interface
}

func NewPlanHandler(
	createPlanUC createPlanUseCase,
	updatePlanUC updatePlanUseCase,
	getPlanUC getPlanUseCase,
	listPlansUC listPlansUseCase,
	deletePlanUC deletePlanUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		getPlanUC:    getPlanUC,
		listPlansUC:  listPlansUC,
		deletePlanUC: deletePlanUC,
		logger:       logger,
	}
}

type CreatePlanRequest struct {
	PlanName      string   `json:"planName" binding:"required"`
	Description   string   `json:"description"`
	Amount        float64  `json:"amount" binding:"gte=0"`
	Currency      string   `json:"currency" binding:"omitempty,len=3"`
	Interval      string   `json:"interval" binding:"omitempty,oneof=day week month year lifetime"`
	IntervalCount int      `json:"intervalCount" binding:"gte=0"`
	FreeTrialDays int      `json:"freeTrialDays" binding:"gte=0"`
	Features      []string `json:"features"`
}

type UpdatePlanRequest struct {
	PlanName      *string  `json:"planName"`
	Description   *string  `json:"description"`
	Amount        *float64 `json:"amount" binding:"omitempty,gte=0"`
	Currency      *string  `json:"currency" binding:"omitempty,len=3"`
	Interval      *string  `json:"interval" binding:"omitempty,oneof=day week month year lifetime"`
	IntervalCount *int     `json:"intervalCount" binding:"omitempty,gte=0"`
	FreeTrialDays *int     `json:"freeTrialDays" binding:"omitempty,gte=0"`
	Active        *bool    `json:"active"`
	Features      []string `json:"features"`
}

// CreatePlan creates the billing product and price, then stores the plan
// @Summary Create plan
// @Tags Plans
// @Security Bearer
// @Accept json
// @Produce json
// @Param request body CreatePlanRequest true "Plan"
// @Success 201 {object} utils.APIResponse{data=subdto.PlanDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /plans/create-plan [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), subUsecases.CreatePlanCommand{
		PlanName:      req.PlanName,
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Interval:      req.Interval,
		IntervalCount: req.IntervalCount,
		FreeTrialDays: req.FreeTrialDays,
		Features:      req.Features,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	result, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Plans retrieved successfully", result)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, err := utils.ParseUintParam(c, "planId", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Plan retrieved successfully", result)
}

// UpdatePlan rotates the billing price when amount, currency or interval change
// @Summary Update plan
// @Tags Plans
// @Security Bearer
// @Accept json
// @Produce json
// @Param planId path int true "Plan ID"
// @Param request body UpdatePlanRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=subdto.PlanDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{planId} [patch]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID, err := utils.ParseUintParam(c, "planId", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan",
			"plan_id", planID,
			"error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), subUsecases.UpdatePlanCommand{
		PlanID:        planID,
		PlanName:      req.PlanName,
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Interval:      req.Interval,
		IntervalCount: req.IntervalCount,
		FreeTrialDays: req.FreeTrialDays,
		Active:        req.Active,
		Features:      req.Features,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Plan updated successfully", result)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	planID, err := utils.ParseUintParam(c, "planId", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), planID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, "Plan deleted successfully", nil)
}
