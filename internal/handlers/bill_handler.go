package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cafe-management-backend/internal/auth"
	"cafe-management-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	msgInvalidData   = "Required data not found."
	msgInternalError = "Something went wrong."
)

type BillHandler struct {
	service *billing.BillService
}

func NewBillHandler(s *billing.BillService) *BillHandler {
	return &BillHandler{service: s}
}

// GenerateReport creates a bill and its PDF receipt, returning the
// artifact uuid.
func (h *BillHandler) GenerateReport(c *gin.Context) {
	var req billing.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidData})
		return
	}

	id, err := h.service.GenerateReport(auth.CallerFrom(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"uuid": id})
}

// GetPdf streams the receipt bytes for a bill, regenerating the file
// when it is missing.
func (h *BillHandler) GetPdf(c *gin.Context) {
	var req billing.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidData})
		return
	}

	pdfBytes, err := h.service.GetPDF(auth.CallerFrom(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *BillHandler) GetBills(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetBills(auth.CallerFrom(c)))
}

func (h *BillHandler) DeleteBill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid bill id."})
		return
	}

	msg, err := h.service.DeleteBill(uint(id))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Reconcile is admin-only: it lists bill uuids whose PDF artifact is
// missing on disk.
func (h *BillHandler) Reconcile(c *gin.Context) {
	if !auth.CallerFrom(c).Admin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required."})
		return
	}

	missing, err := h.service.ReconcileArtifacts()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"missing": missing})
}

// writeError maps service errors onto the wire contract: validation
// failures are 400, everything else is a generic 500 with the cause
// logged but never exposed.
func (h *BillHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, billing.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidData})
		return
	}
	logrus.WithError(err).Error("bill request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternalError})
}
