package handler

import (
	"log/slog"
	"net/http"

	"bookify/internal/delivery/http/response"
	"bookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RewardHandler holds dependencies for loyalty reward handlers.
type RewardHandler struct {
	uc     usecase.RewardUsecase
	logger *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler, injected by Fx.
func NewRewardHandler(uc usecase.RewardUsecase, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListRewards handles the request to browse the reward catalog.
func (h *RewardHandler) ListRewards(c echo.Context) error {
	rewards, err := h.uc.ListRewards(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rewards, "Rewards retrieved successfully")
}

// RedeemReward handles the request to exchange points for a reward.
func (h *RewardHandler) RedeemReward(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	rewardID, err := uuid.Parse(c.Param("rewardID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reward ID")
	}

	redemption, err := h.uc.RedeemReward(c.Request().Context(), userID, rewardID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, redemption, "Reward redeemed successfully")
}
