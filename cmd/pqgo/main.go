package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/hmtran/pqgo/internal/calculation"
	"github.com/hmtran/pqgo/internal/config"
	"github.com/hmtran/pqgo/internal/output"
	"github.com/hmtran/pqgo/internal/ratetable"
	"github.com/hmtran/pqgo/internal/server"
	"github.com/hmtran/pqgo/pkg/dateutil"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "pqgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// loadEngine builds the premium engine from a rates file. The table is
// built once here; everything after treats it as read-only.
func loadEngine(ratesFile string, debugMode bool) (*calculation.Engine, error) {
	parser := config.NewInputParser()
	records, err := parser.LoadRatesFromFile(ratesFile)
	if err != nil {
		return nil, err
	}

	engine := calculation.NewEngine(ratetable.Build(records))
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine, nil
}

var rootCmd = &cobra.Command{
	Use:   "pqgo",
	Short: "Health Insurance Premium Quoting CLI",
	Long:  "Premium quote calculator for health insurance packages with critical-illness and maternity riders",
}

var quoteCmd = &cobra.Command{
	Use:   "quote [request-file]",
	Short: "Compute a premium quote for a household",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requestFile := args[0]

		ratesFile, _ := cmd.Flags().GetString("rates")
		debugMode, _ := cmd.Flags().GetBool("debug")
		engine, err := loadEngine(ratesFile, debugMode)
		if err != nil {
			log.Fatal(err)
		}

		parser := config.NewInputParser()
		request, err := parser.LoadQuoteFromFile(requestFile)
		if err != nil {
			log.Fatal(err)
		}

		// Reference date: flag wins, then the request file, then today.
		refDate := dateutil.FromTime(time.Now())
		refFlag, _ := cmd.Flags().GetString("reference-date")
		if refFlag == "" {
			refFlag = request.ReferenceDate
		}
		if refFlag != "" {
			parsed := dateutil.Parse(refFlag)
			if parsed == nil {
				log.Fatalf("reference date %q is not a valid DD/MM/YYYY date", refFlag)
			}
			refDate = *parsed
		}

		quote, err := engine.ComputeHousehold(request.Household, refDate)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unsupported format: %s", outputFormat)
		}
		data, err := f.Format(quote)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve premium quotes over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		ratesFile, _ := cmd.Flags().GetString("rates")
		debugMode, _ := cmd.Flags().GetBool("debug")
		engine, err := loadEngine(ratesFile, debugMode)
		if err != nil {
			log.Fatal(err)
		}

		addr, _ := cmd.Flags().GetString("addr")
		log.Printf("premium quote server listening on %s (rates: %s, %d rows)",
			addr, ratesFile, engine.Table.Len())
		if err := server.New(engine).ListenAndServe(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	},
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Rate dataset utilities",
}

var ratesValidateCmd = &cobra.Command{
	Use:   "validate [rates-file]",
	Short: "Validate a rate dataset file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ratesFile := args[0]

		parser := config.NewInputParser()
		records, err := parser.LoadRatesFromFile(ratesFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Rate dataset %s is valid: %d records\n", ratesFile, len(records))

		// Duplicate keys load last-write-wins, but they are almost
		// always a data-entry mistake worth flagging.
		for _, k := range ratetable.DuplicateKeys(records) {
			fmt.Printf("Warning: duplicate key (age %d, %s, %s, %s), later record wins\n",
				k.Age, k.Benefit, k.ContractType, k.Gender)
		}
	},
}

func init() {
	quoteCmd.Flags().String("rates", "rates.yaml", "Path to the rate dataset file")
	quoteCmd.Flags().String("format", "console", "Output format (console, json, csv)")
	quoteCmd.Flags().String("reference-date", "", "Reference date DD/MM/YYYY (default: request file, then today)")
	quoteCmd.Flags().Bool("debug", false, "Enable debug logging")

	serveCmd.Flags().String("rates", "rates.yaml", "Path to the rate dataset file")
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().Bool("debug", false, "Enable debug logging")

	ratesCmd.AddCommand(ratesValidateCmd)

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
