package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/drivedesk-api/internal/domain/entity"
	domainRepo "github.com/sangkips/drivedesk-api/internal/domain/repository"
	"github.com/sangkips/drivedesk-api/pkg/pagination"
	"gorm.io/gorm"
)

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) domainRepo.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var student entity.Student
	err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &student, err
}

func (r *studentRepository) GetByAdmissionNo(ctx context.Context, admissionNo string) (*entity.Student, error) {
	var student entity.Student
	err := r.db.WithContext(ctx).First(&student, "admission_no = ?", admissionNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &student, err
}

func (r *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Student{}, "id = ?", id).Error
}

func (r *studentRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Student, int64, error) {
	var students []entity.Student
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Student{})

	if search != "" {
		query = query.Where("admission_no ILIKE ? OR name ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("admission_no ASC").
		Find(&students).Error

	return students, total, err
}

// ListWithCursor returns students using cursor-based pagination
// Fetches limit+1 items to detect if there are more results
func (r *studentRepository) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Student, error) {
	var students []entity.Student

	params.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Student{})

	if search != "" {
		query = query.Where("admission_no ILIKE ? OR name ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, err
	}

	// Cursor filtering keys on (created_at, id) so ordering stays stable
	// across rows created in the same second.
	if cursor != nil {
		if params.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	// Fetch limit+1 to detect hasMore
	err = query.Limit(params.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&students).Error

	return students, err
}
