package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/drivedesk-api/internal/application/service"
	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	"github.com/sangkips/drivedesk-api/internal/domain/enum"
	"github.com/sangkips/drivedesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/drivedesk-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice rendering and delivery HTTP requests
type InvoiceHandler struct {
	receiptService  *service.ReceiptService
	deliveryService *service.DeliveryService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(receiptService *service.ReceiptService, deliveryService *service.DeliveryService) *InvoiceHandler {
	return &InvoiceHandler{
		receiptService:  receiptService,
		deliveryService: deliveryService,
	}
}

// GetReceipt builds and returns the receipt document for an invoice
// @Summary Get Receipt
// @Description Build the rendered receipt document for an invoice
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param admission_no query string true "Admission number"
// @Param work_no query string true "Work number"
// @Param receipt_type query string false "Receipt type (defaults to ORIGINAL)"
// @Success 200 {object} response.APIResponse
// @Router /invoices/receipt [get]
func (h *InvoiceHandler) GetReceipt(c *gin.Context) {
	identity := entity.ReceiptIdentity{
		AdmissionNo: c.Query("admission_no"),
		WorkNo:      c.Query("work_no"),
		ReceiptType: c.Query("receipt_type"),
	}
	if identity.AdmissionNo == "" || identity.WorkNo == "" {
		response.BadRequest(c, "admission_no and work_no are required")
		return
	}

	doc, err := h.receiptService.BuildReceipt(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt built successfully", gin.H{"receipt": doc})
}

// Deliver dispatches an invoice through a delivery mode
// @Summary Deliver Invoice
// @Description Deliver an invoice by native print, browser, or file export
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.DeliverInvoiceRequest true "Delivery request"
// @Success 200 {object} response.APIResponse
// @Router /invoices/deliver [post]
func (h *InvoiceHandler) Deliver(c *gin.Context) {
	var req request.DeliverInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	mode, err := enum.ParseDeliveryMode(req.Mode)
	if err != nil {
		response.BadRequest(c, "Invalid delivery mode")
		return
	}

	result := h.deliveryService.Dispatch(c.Request.Context(), entity.DeliveryRequest{
		AdmissionNo: req.AdmissionNo,
		WorkNo:      req.WorkNo,
		ReceiptType: req.ReceiptType,
		Mode:        mode,
	})

	if !result.Success {
		response.BadRequest(c, result.Error)
		return
	}

	response.OK(c, "Invoice delivered successfully", gin.H{"result": result})
}

// Email mails an invoice to a recipient
// @Summary Email Invoice
// @Description Generate an invoice file and email it
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.EmailInvoiceRequest true "Email request"
// @Success 200 {object} response.APIResponse
// @Router /invoices/email [post]
func (h *InvoiceHandler) Email(c *gin.Context) {
	var req request.EmailInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result := h.deliveryService.EmailInvoice(c.Request.Context(), entity.ReceiptIdentity{
		AdmissionNo: req.AdmissionNo,
		WorkNo:      req.WorkNo,
		ReceiptType: req.ReceiptType,
	}, req.Email)

	if !result.Success {
		response.BadRequest(c, result.Error)
		return
	}

	response.OK(c, "Invoice emailed successfully", gin.H{"result": result})
}

// PrinterStatus returns the native printer's status
// @Summary Printer Status
// @Description Report the configured printer's connection state
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *InvoiceHandler) PrinterStatus(c *gin.Context) {
	status := h.deliveryService.GetPrinterStatus()
	response.OK(c, "Printer status retrieved", status)
}
