package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sangkips/drivedesk-api/internal/domain/repository"
	"github.com/sangkips/drivedesk-api/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

// ReportService builds spreadsheet exports of payment activity
type ReportService struct {
	paymentRepo repository.PaymentRepository
	studentRepo repository.StudentRepository
}

// NewReportService creates a new report service
func NewReportService(
	paymentRepo repository.PaymentRepository,
	studentRepo repository.StudentRepository,
) *ReportService {
	return &ReportService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
	}
}

// PaymentsReport builds an XLSX workbook of all payments recorded in
// [from, to]. The caller owns closing the returned file.
func (s *ReportService) PaymentsReport(ctx context.Context, from, to time.Time) (*excelize.File, error) {
	if to.Before(from) {
		return nil, apperror.NewBadRequestError("Report range end precedes start")
	}

	payments, err := s.paymentRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Payments"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Admission No", "Student", "Work No", "Description", "Mode", "Paid", "Balance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	var totalPaid float64
	for row, p := range payments {
		values := []interface{}{
			p.PayDate.Format("02-01-2006"),
			p.Student.AdmissionNo,
			p.Student.Name,
			p.WorkNo,
			p.Description,
			p.Mode,
			p.GetPaidDecimal(),
			p.GetRemainingDecimal(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		totalPaid += p.GetPaidDecimal()
	}

	totalRow := len(payments) + 2
	labelCell, _ := excelize.CoordinatesToCellName(6, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(7, totalRow)
	if err := f.SetCellValue(sheet, labelCell, "TOTAL"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, valueCell, totalPaid); err != nil {
		return nil, err
	}

	return f, nil
}

// ReportFileName returns the download name for a payments report
func ReportFileName(from, to time.Time) string {
	return fmt.Sprintf("payments-%s-to-%s.xlsx", from.Format("2006-01-02"), to.Format("2006-01-02"))
}
