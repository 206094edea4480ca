package actions

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RepairAll godoc
// swagger:route POST /admin/repair
// Run reconciliation sweep
//
// Runs a full reconciliation sweep and returns the repair report. Per user
// failures are listed in the report, not surfaced as an error status.
//
//	    Responses:
//	      200: RepairReport
//	      500: RequestErrorResp
func (actions *Actions) RepairAll(c *gin.Context) {
	report, err := actions.service.RepairAll()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Unable to run reconciliation sweep")
		return
	}
	c.JSON(http.StatusOK, report)
}

// RepairUser godoc
// swagger:route POST /admin/repair/{user_id}
// Run reconciliation for one user
//
//	    Responses:
//	      200: RepairReport
//	      404: RequestErrorResp
func (actions *Actions) RepairUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	report, err := actions.service.RepairUser(userID)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Unable to repair user")
		return
	}
	c.JSON(http.StatusOK, report)
}
