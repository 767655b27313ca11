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

// StudentHandler handles student-related HTTP requests
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Create handles student enrollment
// @Summary Create Student
// @Description Enroll a new student
// @Tags students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateStudentRequest true "Student data"
// @Success 201 {object} response.APIResponse
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req request.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateStudentInput{
		AdmissionNo:  req.AdmissionNo,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		IDNumber:     req.IDNumber,
		Address:      req.Address,
		LicenseClass: req.LicenseClass,
	}
	if req.JoinedAt != "" {
		joinedAt, err := time.Parse("2006-01-02", req.JoinedAt)
		if err != nil {
			response.BadRequest(c, "Invalid joined_at date, expected YYYY-MM-DD")
			return
		}
		input.JoinedAt = joinedAt
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Student enrolled successfully", gin.H{"student": student})
}

// Get handles fetching a student by ID
// @Summary Get Student
// @Description Get a student by ID
// @Tags students
// @Security BearerAuth
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.APIResponse
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	student, err := h.studentService.GetStudent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Student retrieved successfully", gin.H{"student": student})
}

// GetByAdmissionNo handles fetching a student by admission number
// @Summary Get Student by Admission No
// @Description Get a student by admission number
// @Tags students
// @Security BearerAuth
// @Produce json
// @Param admission_no path string true "Admission number"
// @Success 200 {object} response.APIResponse
// @Router /students/admission/{admission_no} [get]
func (h *StudentHandler) GetByAdmissionNo(c *gin.Context) {
	student, err := h.studentService.GetStudentByAdmissionNo(c.Request.Context(), c.Param("admission_no"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Student retrieved successfully", gin.H{"student": student})
}

// Update handles updating a student
// @Summary Update Student
// @Description Update a student's master data
// @Tags students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body request.UpdateStudentRequest true "Student data"
// @Success 200 {object} response.APIResponse
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	var req request.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	student, err := h.studentService.UpdateStudent(c.Request.Context(), &service.UpdateStudentInput{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		IDNumber:     req.IDNumber,
		Address:      req.Address,
		LicenseClass: req.LicenseClass,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Student updated successfully", gin.H{"student": student})
}

// Delete handles deleting a student
// @Summary Delete Student
// @Description Soft delete a student
// @Tags students
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 204
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	if err := h.studentService.DeleteStudent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing students
// @Summary List Students
// @Description List students with pagination and search
// @Tags students
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Success 200 {object} response.APIResponse
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	var params pagination.UnifiedPaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	search := c.Query("search")

	if params.IsCursorBased() {
		cursorParams := params.ToCursorParams()
		output, err := h.studentService.ListStudentsWithCursor(c.Request.Context(), &service.ListStudentsCursorInput{
			Cursor:    cursorParams.Cursor,
			Limit:     cursorParams.Limit,
			Direction: string(cursorParams.Direction),
			Search:    search,
		})
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Students retrieved successfully", gin.H{
			"students":    output.Students,
			"next_cursor": output.NextCursor,
			"has_more":    output.HasMore,
		})
		return
	}

	pageParams := params.ToPaginationParams()
	output, err := h.studentService.ListStudents(c.Request.Context(), &service.ListStudentsInput{
		Page:    pageParams.Page,
		PerPage: pageParams.PerPage,
		Search:  search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(output.Students,
		pagination.NewPagination(output.Page, output.PerPage, output.Total))
	response.SuccessWithPagination(c, 200, "Students retrieved successfully", result)
}
