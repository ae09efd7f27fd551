package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/locvowork/companyset/internal/bootstrap"
	"github.com/locvowork/companyset/internal/logger"
	"github.com/locvowork/companyset/internal/repository"
	"github.com/locvowork/companyset/internal/seed"
	"github.com/locvowork/companyset/internal/service"
	"github.com/spf13/cobra"
)

var (
	seedFile     string
	capacity     int
	outFile      string
	templateFile string
	minHours     int
)

var rootCmd = &cobra.Command{
	Use:   "company",
	Short: "In-memory employee repository",
	Long: `company manages a bounded, in-memory set of employees.

Examples:
  company print --seed employees.yaml --capacity 10
  company export --seed employees.yaml --out roster.xlsx
  company serve`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// serve configures logging from its .env file
		if cmd.Name() != "serve" {
			logger.InitLogging(os.Getenv("LOG_FILE_PATH"), os.Getenv("LOG_LEVEL"))
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app := bootstrap.NewApp()
		if err := app.Initialize(ctx); err != nil {
			return err
		}

		logger.InfoLog(ctx, "Company API listening with capacity %d", app.Company.Stats(ctx).Capacity)
		return app.Serve(ctx)
	},
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Seed a company and print every employee with the totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		svc, err := loadCompany(ctx, out)
		if err != nil {
			return err
		}

		svc.Print(ctx)
		fmt.Fprintln(out, strings.Repeat("=", 50))

		stats := svc.Stats(ctx)
		fmt.Fprintf(out, "Employees:    %d/%d\n", stats.Quantity, stats.Capacity)
		fmt.Fprintf(out, "Total salary: %.2f\n", stats.TotalSalary)
		fmt.Fprintf(out, "Total sales:  %.2f\n", stats.TotalSales)

		if cmd.Flags().Changed("min-hours") {
			fmt.Fprintf(out, "Working at least %d hours:\n", minHours)
			for _, e := range svc.HoursAtLeast(ctx, minHours) {
				fmt.Fprintln(out, "  ", e)
			}
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Seed a company and export the roster to xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadCompany(cmd.Context(), cmd.OutOrStdout())
		if err != nil {
			return err
		}

		if err := svc.ExportRosterFile(cmd.Context(), outFile, templateFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Roster written to %s\n", outFile)
		return nil
	},
}

// loadCompany builds a company of the requested capacity and seeds it.
func loadCompany(ctx context.Context, out io.Writer) (*service.CompanyService, error) {
	company, err := repository.NewCompanySet(capacity, repository.WithOutput(out))
	if err != nil {
		return nil, err
	}

	if seedFile != "" {
		res, err := seed.LoadFile(seedFile, company)
		if err != nil {
			return nil, err
		}
		logger.InfoLog(ctx, "Seeded %d employees (%d rejected)", res.Added, res.Rejected)
	}
	return service.NewCompanyService(company), nil
}

func init() {
	for _, c := range []*cobra.Command{printCmd, exportCmd} {
		c.Flags().StringVar(&seedFile, "seed", "", "YAML file with employees to load")
		c.Flags().IntVar(&capacity, "capacity", 100, "Maximum number of employees")
	}
	printCmd.Flags().IntVar(&minHours, "min-hours", 0, "Also list employees with at least this many hours")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "roster.xlsx", "Output xlsx file")
	exportCmd.Flags().StringVar(&templateFile, "template", "", "YAML roster template")

	rootCmd.AddCommand(serveCmd, printCmd, exportCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.ErrorLog(context.Background(), "Command failed", err)
		os.Exit(1)
	}
}
