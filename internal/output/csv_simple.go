package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/sparplan/savings-calculator/internal/domain"
)

// CSVFormatter writes a header row and one row of raw (unlocalized) values.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

// CSVHeader lists the CSV column names in order.
var CSVHeader = []string{
	"AnnualReturnRate", "TaxRate", "TotalMonths", "IsMonthly", "StartingCapital",
	"NominalDeposit", "NetPeriodicDeposit", "BreakEvenContribution",
}

// CSVRow returns the CSV fields for a single result.
func CSVRow(r domain.SavingsResult) []string {
	return []string{
		r.AnnualReturnRate.String(),
		r.TaxRate.String(),
		r.TotalMonths.String(),
		strconv.FormatBool(r.IsMonthly),
		r.StartingCapital.String(),
		r.NominalDeposit.String(),
		r.NetPeriodicDeposit.String(),
		r.BreakEvenContribution.String(),
	}
}

func (c CSVFormatter) Format(report *domain.SavingsReport, _ Locale) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("no report to format")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, err
	}
	if err := w.Write(CSVRow(report.Result)); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
