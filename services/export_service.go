package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bookings"

var exportColumns = []string{
	"Booking ID", "Guest", "Email", "Room", "Room Type",
	"Check-in", "Check-out", "Status", "Total Amount", "Special Requests", "Created At",
}

// ExportService renders the booking list as a spreadsheet.
type ExportService struct {
	Bookings *BookingService
}

func NewExportService(bookings *BookingService) *ExportService {
	return &ExportService{Bookings: bookings}
}

// WriteBookings writes an XLSX workbook with one row per booking, in the
// same order as BookingService.List.
func (s *ExportService) WriteBookings(ctx context.Context, w io.Writer) error {
	items, err := s.Bookings.List(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(exportColumns))
	for i, c := range exportColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(exportSheet, "A1", end, style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, b := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			b.ID,
			b.FirstName + " " + b.LastName,
			b.Email,
			b.RoomNumber,
			b.RoomType,
			time.Time(b.CheckInDate).Format(dateLayout),
			time.Time(b.CheckOutDate).Format(dateLayout),
			b.BookingStatus,
			b.TotalAmount,
			b.SpecialRequests,
			b.CreatedAt.Format(time.RFC3339),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
