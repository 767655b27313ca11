package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/drivedesk-api/internal/application/service"
	"github.com/sangkips/drivedesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/drivedesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/drivedesk-api/pkg/pagination"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Record handles recording a payment
// @Summary Record Payment
// @Description Record a fee payment against a student
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.RecordPaymentRequest true "Payment data"
// @Success 201 {object} response.APIResponse
// @Router /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.RecordPaymentInput{
		AdmissionNo: req.AdmissionNo,
		UserID:      *userID,
		WorkNo:      req.WorkNo,
		Description: req.Description,
		Mode:        req.Mode,
		Paid:        req.Paid,
		Remaining:   req.Remaining,
	}
	if req.PayDate != "" {
		payDate, err := time.Parse("2006-01-02", req.PayDate)
		if err != nil {
			response.BadRequest(c, "Invalid pay_date, expected YYYY-MM-DD")
			return
		}
		input.PayDate = payDate
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", gin.H{"payment": payment})
}

// Get handles fetching a payment by ID
// @Summary Get Payment
// @Description Get a payment by ID
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.APIResponse
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", gin.H{"payment": payment})
}

// Update handles correcting a payment
// @Summary Update Payment
// @Description Correct a recorded payment
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body request.UpdatePaymentRequest true "Payment data"
// @Success 200 {object} response.APIResponse
// @Router /payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	var req request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), &service.UpdatePaymentInput{
		ID:          id,
		Description: req.Description,
		Mode:        req.Mode,
		Paid:        req.Paid,
		Remaining:   req.Remaining,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated successfully", gin.H{"payment": payment})
}

// Delete handles deleting a payment
// @Summary Delete Payment
// @Description Soft delete a payment
// @Tags payments
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 204
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing payments
// @Summary List Payments
// @Description List payments with pagination and search
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Success 200 {object} response.APIResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	output, err := h.paymentService.ListPayments(c.Request.Context(), &service.ListPaymentsInput{
		Page:    params.Page,
		PerPage: params.PerPage,
		Search:  c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(output.Payments,
		pagination.NewPagination(output.Page, output.PerPage, output.Total))
	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", result)
}

// ListByStudent handles listing a student's payments
// @Summary List Student Payments
// @Description List every payment recorded against a student
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param admission_no path string true "Admission number"
// @Success 200 {object} response.APIResponse
// @Router /students/admission/{admission_no}/payments [get]
func (h *PaymentHandler) ListByStudent(c *gin.Context) {
	payments, err := h.paymentService.ListStudentPayments(c.Request.Context(), c.Param("admission_no"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", gin.H{"payments": payments})
}
