package actions

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetReferralTree godoc
// swagger:route GET /referrals/tree
// Get Referral tree
//
// Returns the current user's resolved ancestor chain by level.
//
//	    Responses:
//	      200: ReferralTree
//	      404: RequestErrorResp
func (actions *Actions) GetReferralTree(c *gin.Context) {
	userID, _ := getUserID(c)
	data, err := actions.service.GetReferralTree(userID)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Unable to get referral tree")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetReferralEarnings godoc
// swagger:route GET /referrals/earnings
// Get Referral earnings
//
// Returns the current user's commission earnings overall and per level.
//
//	    Responses:
//	      200: ReferralEarnings
//	      404: RequestErrorResp
func (actions *Actions) GetReferralEarnings(c *gin.Context) {
	userID, _ := getUserID(c)
	data, err := actions.service.GetReferralEarnings(userID)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Unable to get earnings")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetTopInviters godoc
// swagger:route GET /referrals/topinviters
// Get TopInviters
//
// Returns limited user list having the most referrals
//
//	    Responses:
//	      200: UsersWithReferralCount
//	      404: RequestErrorResp
func (actions *Actions) GetTopInviters(c *gin.Context) {
	data, err := actions.service.GetTopInviters()
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Unable to get top inviters")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetCommissionTransactions godoc
// swagger:route GET /referrals/transactions
// Get Commission transactions
//
// Returns the commission ledger rows credited to the current user.
//
//	    Responses:
//	      200: WalletTransactionList
//	      404: RequestErrorResp
func (actions *Actions) GetCommissionTransactions(c *gin.Context) {
	userID, _ := getUserID(c)
	page := getQueryAsInt(c, "page", 1)
	limit := getQueryAsInt(c, "limit", 50)

	data, err := actions.service.GetCommissionTransactions(userID, limit, page)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Unable to get transactions")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetUserReferralTree godoc
// swagger:route GET /admin/referrals/tree/{user_id}
// Get a user's referral tree
//
//	    Responses:
//	      200: ReferralTree
//	      404: RequestErrorResp
func (actions *Actions) GetUserReferralTree(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	data, err := actions.service.GetReferralTree(userID)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Unable to get referral tree")
		return
	}
	c.JSON(http.StatusOK, data)
}
