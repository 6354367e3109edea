package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BillCounter is the slice of the bill repository the dashboard needs.
type BillCounter interface {
	Count() (int64, error)
}

type DashboardHandler struct {
	billRepo BillCounter
}

func NewDashboardHandler(billRepo BillCounter) *DashboardHandler {
	return &DashboardHandler{billRepo: billRepo}
}

// GetDetails returns the dashboard summary counts.
func (h *DashboardHandler) GetDetails(c *gin.Context) {
	count, err := h.billRepo.Count()
	if err != nil {
		logrus.WithError(err).Error("dashboard count failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternalError})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bill": count})
}
