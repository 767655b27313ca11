package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	"github.com/sangkips/drivedesk-api/internal/domain/repository"
	"github.com/sangkips/drivedesk-api/pkg/apperror"
	"github.com/sangkips/drivedesk-api/pkg/pagination"
)

// StudentService handles student master data operations
type StudentService struct {
	studentRepo repository.StudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// CreateStudentInput represents the input for creating a student
type CreateStudentInput struct {
	AdmissionNo  string
	Name         string
	Email        *string
	Phone        *string
	IDNumber     *string
	Address      *string
	LicenseClass *string
	JoinedAt     time.Time
}

// CreateStudent enrolls a new student
func (s *StudentService) CreateStudent(ctx context.Context, input *CreateStudentInput) (*entity.Student, error) {
	existing, err := s.studentRepo.GetByAdmissionNo(ctx, input.AdmissionNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Admission number already in use")
	}

	joinedAt := input.JoinedAt
	if joinedAt.IsZero() {
		joinedAt = time.Now()
	}

	student := &entity.Student{
		AdmissionNo:  input.AdmissionNo,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		IDNumber:     input.IDNumber,
		Address:      input.Address,
		LicenseClass: input.LicenseClass,
		JoinedAt:     joinedAt,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudent returns a student by ID
func (s *StudentService) GetStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}
	return student, nil
}

// GetStudentByAdmissionNo returns a student by admission number
func (s *StudentService) GetStudentByAdmissionNo(ctx context.Context, admissionNo string) (*entity.Student, error) {
	student, err := s.studentRepo.GetByAdmissionNo(ctx, admissionNo)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}
	return student, nil
}

// UpdateStudentInput represents the input for updating a student
type UpdateStudentInput struct {
	ID           uuid.UUID
	Name         string
	Email        *string
	Phone        *string
	IDNumber     *string
	Address      *string
	LicenseClass *string
}

// UpdateStudent updates a student's master data. The admission number is
// immutable once assigned.
func (s *StudentService) UpdateStudent(ctx context.Context, input *UpdateStudentInput) (*entity.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	if input.Name != "" {
		student.Name = input.Name
	}
	if input.Email != nil {
		student.Email = input.Email
	}
	if input.Phone != nil {
		student.Phone = input.Phone
	}
	if input.IDNumber != nil {
		student.IDNumber = input.IDNumber
	}
	if input.Address != nil {
		student.Address = input.Address
	}
	if input.LicenseClass != nil {
		student.LicenseClass = input.LicenseClass
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent soft deletes a student
func (s *StudentService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return apperror.NewNotFoundError("Student")
	}
	return s.studentRepo.Delete(ctx, id)
}

// ListStudentsInput represents the input for listing students
type ListStudentsInput struct {
	Page    int
	PerPage int
	Search  string
}

// ListStudentsOutput represents the output for listing students
type ListStudentsOutput struct {
	Students   []entity.Student
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// ListStudents returns a paginated list of students
func (s *StudentService) ListStudents(ctx context.Context, input *ListStudentsInput) (*ListStudentsOutput, error) {
	params := &pagination.PaginationParams{
		Page:    input.Page,
		PerPage: input.PerPage,
	}
	params.Validate()

	students, total, err := s.studentRepo.List(ctx, params, input.Search)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / params.PerPage
	if int(total)%params.PerPage > 0 {
		totalPages++
	}

	return &ListStudentsOutput{
		Students:   students,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	}, nil
}

// ListStudentsCursorInput represents the input for cursor-based listing
type ListStudentsCursorInput struct {
	Cursor    string
	Limit     int
	Direction string
	Search    string
}

// ListStudentsCursorOutput represents the output for cursor-based listing
type ListStudentsCursorOutput struct {
	Students   []entity.Student
	NextCursor string
	HasMore    bool
}

// ListStudentsWithCursor returns students using cursor-based pagination
func (s *StudentService) ListStudentsWithCursor(ctx context.Context, input *ListStudentsCursorInput) (*ListStudentsCursorOutput, error) {
	params := &pagination.CursorParams{
		Cursor:    input.Cursor,
		Limit:     input.Limit,
		Direction: pagination.CursorDirection(input.Direction),
	}
	params.Validate()

	students, err := s.studentRepo.ListWithCursor(ctx, params, input.Search)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid cursor")
	}

	hasMore := len(students) > params.Limit
	if hasMore {
		students = students[:params.Limit]
	}

	output := &ListStudentsCursorOutput{
		Students: students,
		HasMore:  hasMore,
	}
	if hasMore && len(students) > 0 {
		last := students[len(students)-1]
		output.NextCursor = pagination.EncodeCursor(last.ID.String(), last.CreatedAt)
	}
	return output, nil
}
