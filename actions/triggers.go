package actions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gitlab.com/vidpay-rewards/rewards_api/conv"
	"gitlab.com/vidpay-rewards/rewards_api/model"
	"gitlab.com/vidpay-rewards/rewards_api/service"
)

type triggerResponse struct {
	RewardsPaid []service.PaidReward `json:"rewards_paid"`
	Record      interface{}          `json:"record"`
}

// PurchasePlan godoc
// swagger:route POST /internal/plans/purchase
// Record plan purchase
//
// Records a paid subscription plan and fires the invite commission fan-out. The
// purchase succeeds even when commission distribution fails; gaps are picked up
// by the reconciliation sweep.
//
//	    Responses:
//	      200: triggerResponse
//	      400: RequestErrorResp
func (actions *Actions) PurchasePlan(c *gin.Context) {
	userID, ok := getPostFormAsUint64(c, "user_id")
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	planID, ok := getPostFormAsUint64(c, "plan_id")
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid plan id")
		return
	}
	tier := model.PlanTier(c.PostForm("tier"))
	amountPaid, ok := conv.NewDecimalWithPrecision().SetString(c.PostForm("amount_paid"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid amount")
		return
	}

	plan, paid, err := actions.service.RecordPlanPurchase(userID, planID, tier, amountPaid)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Unable to record plan purchase")
		return
	}
	c.JSON(http.StatusOK, triggerResponse{RewardsPaid: paid, Record: plan})
}

// VerifyTask godoc
// swagger:route POST /internal/tasks/verified
// Record verified task
//
// Records a verified video task completion and fires the task commission
// fan-out with the same best effort semantics as PurchasePlan.
//
//	    Responses:
//	      200: triggerResponse
//	      400: RequestErrorResp
func (actions *Actions) VerifyTask(c *gin.Context) {
	userID, ok := getPostFormAsUint64(c, "user_id")
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	videoID, ok := getPostFormAsUint64(c, "video_id")
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid video id")
		return
	}
	rewardEarned, ok := conv.NewDecimalWithPrecision().SetString(c.PostForm("reward_earned"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid reward")
		return
	}

	task, paid, err := actions.service.RecordVerifiedTask(userID, videoID, rewardEarned)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Unable to record verified task")
		return
	}
	c.JSON(http.StatusOK, triggerResponse{RewardsPaid: paid, Record: task})
}
