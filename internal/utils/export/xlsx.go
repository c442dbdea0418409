// Package export renders operational reports as spreadsheets.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

const loadsSheet = "Loads"

var loadsHeader = []string{
	"Ref #", "Status", "Customer", "Carrier",
	"Origin", "Destination", "Pickup", "Delivery",
	"Rate", "Carrier Rate", "Margin", "Equipment", "Weight (lbs)",
}

// LoadsReport renders loads as an xlsx workbook. Customer and carrier names
// come from the resolved relation maps; unresolved references fall back to
// the bare ID.
func LoadsReport(loads []domain.Load, customers map[string]domain.Customer, carriers map[string]domain.Carrier) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", loadsSheet)
	for i, h := range loadsHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(loadsSheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for row, l := range loads {
		values := []any{
			l.RefNumber,
			string(l.Status),
			relatedName(customers, l.CustomerID),
			relatedName(carriers, l.CarrierID),
			cityState(l.Origin),
			cityState(l.Destination),
			dateOrEmpty(l.PickupDate),
			dateOrEmpty(l.DeliveryDate),
			l.Rate.InexactFloat64(),
			l.CarrierRate.InexactFloat64(),
			l.Margin().InexactFloat64(),
			l.EquipmentType,
			l.WeightLbs,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(loadsSheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type named interface {
	domain.Customer | domain.Carrier
}

func relatedName[T named](m map[string]T, id string) string {
	if id == "" {
		return ""
	}
	if v, ok := m[id]; ok {
		switch t := any(v).(type) {
		case domain.Customer:
			return t.CompanyName
		case domain.Carrier:
			return t.CompanyName
		}
	}
	return id
}

func cityState(a domain.Address) string {
	switch {
	case a.City != "" && a.State != "":
		return a.City + ", " + a.State
	case a.City != "":
		return a.City
	default:
		return a.State
	}
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
