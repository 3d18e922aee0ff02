package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/stashlop/sillora/internal/utils"
)

type exportService struct {
	teachers TeacherService
	logger   utils.Logger
}

func NewExportService(teachers TeacherService, logger utils.Logger) ExportService {
	return &exportService{teachers: teachers, logger: logger}
}

// TeacherRoster renders the teacher's student roster as an xlsx workbook and
// returns the file contents with a dated filename.
func (s *exportService) TeacherRoster(ctx context.Context, accountID uint) ([]byte, string, error) {
	entries, err := s.teachers.Roster(ctx, accountID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Roster"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Student ID", "Name", "Email", "Enrolled Since", "Courses", "Avg Progress (%)"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", err
		}
	}

	for row, entry := range entries {
		values := []interface{}{
			entry.StudentID,
			entry.Name,
			entry.Email,
			entry.EnrollmentDate.Format("2006-01-02"),
			entry.CourseCount,
			entry.AvgProgress,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("roster-%s.xlsx", time.Now().Format("2006-01-02"))
	utils.FromContext(ctx, s.logger).Info("roster exported",
		"account_id", accountID, "students", len(entries))
	return buf.Bytes(), filename, nil
}
