package main

import (
	"fmt"
	"strings"

	"github.com/sparplan/savings-calculator/internal/calculation"
	"github.com/sparplan/savings-calculator/internal/config"
	"github.com/sparplan/savings-calculator/internal/domain"
	"github.com/sparplan/savings-calculator/internal/output"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	defaultFormat = "console"
	defaultLocale = "de-DE"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "savingsplan",
		Short:        "Savings plan calculator",
		Long:         "Derives return rate, tax rate, duration, net deposit and break-even contribution from a savings plan form.",
		SilenceUsage: true,
	}
	root.AddCommand(newCalcCmd(), newFormatsCmd(), newVersionCmd())
	return root
}

type calcOptions struct {
	configFile  string
	returnRate  string
	tax         string
	duration    string
	depositType string
	capital     string
	deposit     string
	assignments []string
	format      string
	locale      string
	outputFile  string
	verbose     bool
}

func newCalcCmd() *cobra.Command {
	opts := &calcOptions{}
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a savings plan",
		Example: "  savingsplan calc --return-rate 7 --tax 25 --duration 15 --deposit-type monatlich --capital 10000 --deposit 200\n" +
			"  savingsplan calc --config plan.yaml --format json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configFile, "config", "c", "", "plan file (YAML or JSON)")
	f.StringVar(&opts.returnRate, "return-rate", "", "annual return in percent, e.g. 7")
	f.StringVar(&opts.tax, "tax", "", "tax in percent, e.g. 25")
	f.StringVar(&opts.duration, "duration", "", "duration in years, e.g. 15")
	f.StringVar(&opts.depositType, "deposit-type", "", "deposit type, e.g. monatlich or jährlich")
	f.StringVar(&opts.capital, "capital", "", "starting capital")
	f.StringVar(&opts.deposit, "deposit", "", "nominal (pre-tax) periodic deposit")
	f.StringArrayVar(&opts.assignments, "set", nil, "form field assignment key=value (repeatable)")
	f.StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("output format (%s)", strings.Join(output.AvailableFormatterNames(), ", ")))
	f.StringVar(&opts.locale, "locale", "", "locale for console output, e.g. de-DE or en-US (default "+defaultLocale+")")
	f.StringVarP(&opts.outputFile, "output", "o", "", "write the report to this file instead of stdout")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log calculation details to stderr")
	return cmd
}

func runCalc(cmd *cobra.Command, opts *calcOptions) error {
	logger := calculation.NewWriterLogger(cmd.ErrOrStderr(), opts.verbose)

	cfg := &config.Configuration{}
	if opts.configFile != "" {
		loaded, err := config.NewInputParser().LoadFromFile(opts.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debugf("loaded plan from %s", opts.configFile)
	}

	overrides, err := config.ParseFormAssignments(opts.assignments)
	if err != nil {
		return err
	}
	form := cfg.Form.Merge(overrides)

	flagFields := []struct {
		flag, field string
		value       string
	}{
		{"return-rate", domain.FieldReturnRate, opts.returnRate},
		{"tax", domain.FieldTax, opts.tax},
		{"duration", domain.FieldDuration, opts.duration},
		{"deposit-type", domain.FieldDepositType, opts.depositType},
		{"capital", domain.FieldCapital, opts.capital},
	}
	for _, ff := range flagFields {
		if cmd.Flags().Changed(ff.flag) {
			if err := form.Set(ff.field, ff.value); err != nil {
				return err
			}
		}
	}

	nominal := cfg.NominalDeposit
	if cmd.Flags().Changed("deposit") {
		nominal = opts.deposit
	}

	format := firstNonEmpty(opts.format, cfg.Output.Format, defaultFormat)
	loc := output.ParseLocale(firstNonEmpty(opts.locale, cfg.Output.Locale, defaultLocale))

	calc := calculation.NewSavingsCalculator()
	calc.SetLogger(logger)
	plan := calculation.NewSavingsPlanFromInput(calc, domain.PlanInput{Form: form, NominalDeposit: nominal})
	report := plan.Report()

	if opts.outputFile != "" {
		written, err := output.WriteReportFile(opts.outputFile, report, format, loc)
		if err != nil {
			return err
		}
		logger.Infof("report written to %s", written)
		return nil
	}
	return output.WriteReport(cmd.OutOrStdout(), report, format, loc)
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(out, "aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "savingsplan %s\n", version)
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
