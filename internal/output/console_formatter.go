package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sparplan/savings-calculator/internal/domain"
)

// consoleLabels holds the row captions per language.
type consoleLabels struct {
	title, returnRate, tax, months, frequency string
	capital, nominal, net, breakEven         string
	monthly, annual                          string
}

var (
	labelsDE = consoleLabels{
		title:      "SPARPLAN",
		returnRate: "Jahreszins",
		tax:        "Steuer",
		months:     "Laufzeit (Monate)",
		frequency:  "Einzahlung",
		capital:    "Startkapital",
		nominal:    "Sparrate (brutto)",
		net:        "Sparrate (netto)",
		breakEven:  "Ausgleichsbetrag",
		monthly:    "monatlich",
		annual:     "jährlich",
	}
	labelsEN = consoleLabels{
		title:      "SAVINGS PLAN",
		returnRate: "Annual return",
		tax:        "Tax",
		months:     "Duration (months)",
		frequency:  "Deposit",
		capital:    "Starting capital",
		nominal:    "Deposit (gross)",
		net:        "Deposit (net)",
		breakEven:  "Break-even contribution",
		monthly:    "monthly",
		annual:     "annual",
	}
)

// ConsoleFormatter renders a localized human readable summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.SavingsReport, loc Locale) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("no report to format")
	}
	l := labelsEN
	if strings.HasPrefix(loc.Tag, "de") {
		l = labelsDE
	}
	r := report.Result
	frequency := l.annual
	if r.IsMonthly {
		frequency = l.monthly
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, l.title)
	fmt.Fprintln(&buf, "================================")
	rows := [][2]string{
		{l.returnRate, FormatPercent(r.AnnualReturnRate, loc, 2)},
		{l.tax, FormatPercent(r.TaxRate, loc, 2)},
		{l.months, FormatNumber(r.TotalMonths, loc)},
		{l.frequency, frequency},
		{l.capital, FormatEuro(r.StartingCapital, loc)},
		{l.nominal, FormatEuro(r.NominalDeposit, loc)},
		{l.net, FormatEuro(r.NetPeriodicDeposit, loc)},
		{l.breakEven, FormatEuro(r.BreakEvenContribution, loc)},
	}
	for _, row := range rows {
		fmt.Fprintf(&buf, "%-24s %s\n", row[0]+":", row[1])
	}
	return buf.Bytes(), nil
}
