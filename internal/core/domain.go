package core

import (
	"errors"
	"time"
)

type (
	// SaleRecord is one row of the showroom dataset. Year, Month and
	// MonthName are derived from SaleDate at construction time and must
	// never disagree with it.
	SaleRecord struct {
		SaleDate      time.Time
		Year          string
		Month         int // 1-12
		MonthName     string
		City          string
		FuelType      string
		CarModel      string
		SalesPersonID string
		Price         float64
	}

	// Field selects a categorical dimension of a SaleRecord. Grouping and
	// cross-tabulation operations are parameterized by Field instead of
	// free-form column names.
	Field string
)

const (
	FieldCity        Field = "city"
	FieldFuelType    Field = "fuelType"
	FieldCarModel    Field = "carModel"
	FieldSalesPerson Field = "salesPersonId"
	FieldYear        Field = "year"
)

// MonthNames is the fixed calendar-order label set used wherever month
// labels are sorted or displayed. Natural string order does not match
// calendar order, so this table is the display contract.
var MonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthIndex maps a month label back to its 1-based calendar position.
var MonthIndex = func() map[string]int {
	m := make(map[string]int, 12)
	for i, name := range MonthNames {
		m[name] = i + 1
	}
	return m
}()

var ErrUnknownField = errors.New("unknown field")

// NewSaleRecord builds a record and derives Year, Month and MonthName from
// the sale date so the derived fields cannot drift.
func NewSaleRecord(date time.Time, city, fuelType, carModel, salesPersonID string, price float64) SaleRecord {
	return SaleRecord{
		SaleDate:      date,
		Year:          date.Format("2006"),
		Month:         int(date.Month()),
		MonthName:     MonthNames[date.Month()-1],
		City:          city,
		FuelType:      fuelType,
		CarModel:      carModel,
		SalesPersonID: salesPersonID,
		Price:         price,
	}
}

// Of returns the record's value for the dimension. Unknown fields return
// the empty string; callers that need to reject them use ParseField first.
func (f Field) Of(r SaleRecord) string {
	switch f {
	case FieldCity:
		return r.City
	case FieldFuelType:
		return r.FuelType
	case FieldCarModel:
		return r.CarModel
	case FieldSalesPerson:
		return r.SalesPersonID
	case FieldYear:
		return r.Year
	}
	return ""
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return string(f)
}

// IsValid reports whether the field names a known dimension.
func (f Field) IsValid() bool {
	switch f {
	case FieldCity, FieldFuelType, FieldCarModel, FieldSalesPerson, FieldYear:
		return true
	}
	return false
}

// ParseField converts an external field name into a Field.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.IsValid() {
		return "", ErrUnknownField
	}
	return f, nil
}
