// internal/adapters/storage/workbook.go
package storage

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/buyback-be/internal/core/domain"
)

const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var offerItemHeaders = []string{
	"Audit Item", "Device", "Product", "Audit Condition",
	"State Price", "Condition Price", "Repair Price", "Repair Included",
}

// OfferWorkbook renders an offer snapshot as a spreadsheet with a summary
// sheet and one row per member audit item.
func OfferWorkbook(snapshot *domain.OfferSnapshot) ([]byte, error) {
	file := xlsx.NewFile()

	summary, err := file.AddSheet("Offer")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}
	offer := snapshot.Offer
	method := ""
	if offer.CalculationMethod != nil {
		method = string(*offer.CalculationMethod)
	}
	for _, kv := range [][2]string{
		{"Reference", deref(offer.Reference)},
		{"Status", deref(offer.Status)},
		{"Calculation Method", method},
		{"Items", fmt.Sprintf("%d", len(snapshot.Items))},
		{"Total State Price", offer.TotalStatePrice.StringFixed(2)},
		{"Total Condition Price", offer.TotalConditionPrice.StringFixed(2)},
		{"Total Repair Price", offer.TotalRepairPrice.StringFixed(2)},
		{"Total Price", offer.TotalPrice.StringFixed(2)},
		{"Archived At", snapshot.ArchivedAt.UTC().Format("2006-01-02 15:04:05")},
	} {
		row := summary.AddRow()
		label := row.AddCell()
		label.Value = kv[0]
		label.GetStyle().Font.Bold = true
		row.AddCell().Value = kv[1]
	}
	summary.SetColWidth(1, 2, 24)

	sheet, err := file.AddSheet("Items")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}
	header := sheet.AddRow()
	for _, h := range offerItemHeaders {
		cell := header.AddCell()
		cell.Value = h
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}
	for _, item := range snapshot.Items {
		row := sheet.AddRow()
		for _, v := range []string{
			item.AuditItemID.String(),
			idString(item.DeviceID),
			idString(item.ProductID),
			idString(item.AuditConditionID),
			item.StatePrice.StringFixed(2),
			item.ConditionPrice.StringFixed(2),
			item.RepairPrice.StringFixed(2),
			fmt.Sprintf("%t", item.IncludedRepairPrice),
		} {
			row.AddCell().Value = v
		}
	}
	sheet.SetColWidth(1, len(offerItemHeaders), 20)

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buffer.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func idString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
