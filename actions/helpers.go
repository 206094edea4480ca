package actions

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"gitlab.com/vidpay-rewards/rewards_api/logger"
)

// RequestError structure returned on aborted requests
type RequestError struct {
	Error string `json:"error"`
}

func getlog(c *gin.Context) zerolog.Logger {
	return logger.GetLogger(c)
}

func abortWithError(c *gin.Context, code int, message string) {
	l := getlog(c)
	l.Debug().Stack().Int("resp_code", code).Msg(message)
	c.AbortWithStatusJSON(code, RequestError{Error: message})
}

func getUserID(c *gin.Context) (uint64, bool) {
	iUserID, ok := c.Get("auth_user_id")
	if !ok {
		return 0, false
	}
	return iUserID.(uint64), true
}

func getQueryAsInt(c *gin.Context, name string, def int) int {
	val := c.Query(name)
	if val == "" {
		return def
	}
	param, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return param
}

func getPostFormAsUint64(c *gin.Context, name string) (uint64, bool) {
	val := c.PostForm(name)
	if val == "" {
		return 0, false
	}
	param, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return param, true
}
