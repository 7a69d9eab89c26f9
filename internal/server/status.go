package server

import (
	"github.com/gin-gonic/gin"
	"meshconv/api"
	"net/http"
)

const statusOnline = "online"

// StatusHandler godoc
//
// @Summary Liveness check
// @Tags status
// @Produce json
// @Success 200 {object} api.StatusResponse
// @Router /status [get]
func StatusHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, api.StatusResponse{Status: statusOnline})
}
