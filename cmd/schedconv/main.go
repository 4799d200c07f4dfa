package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"schedconv/internal"
	"schedconv/internal/config"
	"schedconv/internal/schedule"
	"schedconv/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "convert":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "schedule workbook (.xlsx)")
		template := fs.String("template", "", "template csv (header row = output columns)")
		year := fs.Int("year", cfg.DefaultYear, "year for header dates")
		mode := fs.String("mode", cfg.DefaultMode, "ACP|PCP")
		out := fs.String("out", "", "primary output path (default: OUTPUT_DIR/populated-template[_LABEL])")
		debugOut := fs.String("debug-out", "", "debug output path (default: OUTPUT_DIR/debug[_LABEL].csv)")
		withDebug := fs.Bool("debug", true, "also write the debug export")
		format := fs.String("format", "csv", "primary output format: csv|xlsx")
		label := fs.String("label", "", "optional label suffix for default output names")
		_ = fs.Parse(os.Args[2:])
		if *input == "" || *template == "" {
			must(fmt.Errorf("--input and --template are required"))
		}

		runConvert(cfg, convertArgs{
			input:     *input,
			template:  *template,
			year:      *year,
			mode:      *mode,
			out:       *out,
			debugOut:  *debugOut,
			withDebug: *withDebug,
			format:    *format,
			label:     *label,
		})
	case "inspect":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "schedule workbook (.xlsx)")
		year := fs.Int("year", cfg.DefaultYear, "year for header dates")
		mode := fs.String("mode", cfg.DefaultMode, "ACP|PCP")
		rows := fs.Int("rows", cfg.PreviewRows, "preview rows")
		_ = fs.Parse(os.Args[2:])
		if *input == "" {
			must(fmt.Errorf("--input is required"))
		}

		runInspect(cfg, *input, *year, *mode, *rows)
	case "runs:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max runs to show")
		_ = fs.Parse(os.Args[2:])

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		runs, err := db.ListRuns(*limit)
		must(err)
		for _, run := range runs {
			fmt.Printf("%d  %s  %s  mode=%s year=%d extracted=%d exported=%d out=%s\n",
				run.ID, run.CreatedAt, run.SourceFile, run.Mode, run.Year,
				run.RowsExtracted, run.RowsExported, run.OutputPath)
		}
	default:
		usage()
		os.Exit(1)
	}
}

type convertArgs struct {
	input     string
	template  string
	year      int
	mode      string
	out       string
	debugOut  string
	withDebug bool
	format    string
	label     string
}

func runConvert(cfg config.Config, args convertArgs) {
	mode, err := schedule.ParseMode(args.mode)
	must(err)

	rules, err := schedule.LoadRules(cfg.StudentSuffix, cfg.AliasFile, cfg.ExcludeFile)
	must(err)

	blob, err := os.ReadFile(args.input)
	must(err)
	templateBlob, err := os.ReadFile(args.template)
	must(err)

	records, err := schedule.Extract(blob, args.year, mode, rules)
	must(err)

	columns, err := schedule.ReadTemplateColumns(templateBlob)
	must(err)

	suffix := ""
	if args.label != "" {
		suffix = "_" + args.label
	}
	debugPath := args.debugOut
	if debugPath == "" {
		debugPath = filepath.Join(cfg.OutputDir, "debug"+suffix+".csv")
	}

	primary, projectErr := schedule.Project(records, columns)
	if projectErr != nil && args.withDebug {
		// the debug export still helps diagnose a bad template
		if err := schedule.WriteTableCSV(schedule.DebugTable(records), debugPath); err == nil {
			fmt.Printf("debug written to %s\n", debugPath)
		}
	}
	must(projectErr)

	outPath := args.out
	ext := "csv"
	if strings.EqualFold(args.format, "xlsx") {
		ext = "xlsx"
	}
	if outPath == "" {
		outPath = filepath.Join(cfg.OutputDir, "populated-template"+suffix+"."+ext)
	}

	if ext == "xlsx" {
		must(schedule.WriteTableXLSX(primary, outPath))
	} else {
		must(schedule.WriteTableCSV(primary, outPath))
	}
	if args.withDebug {
		must(schedule.WriteTableCSV(schedule.DebugTable(records), debugPath))
	}

	recordRun(cfg, internal.ConversionRun{
		TraceID:       traceID(),
		SourceFile:    filepath.Base(args.input),
		Mode:          string(mode),
		Year:          args.year,
		RowsExtracted: len(records),
		RowsExported:  len(primary.Rows),
		OutputPath:    outPath,
	})

	fmt.Printf("convert done rows=%d output=%s\n", len(primary.Rows), outPath)
	if args.withDebug {
		fmt.Printf("debug rows=%d output=%s\n", len(records), debugPath)
	}
}

func runInspect(cfg config.Config, input string, year int, modeStr string, previewRows int) {
	mode, err := schedule.ParseMode(modeStr)
	must(err)

	rules, err := schedule.LoadRules(cfg.StudentSuffix, cfg.AliasFile, cfg.ExcludeFile)
	must(err)

	blob, err := os.ReadFile(input)
	must(err)

	records, err := schedule.Extract(blob, year, mode, rules)
	must(err)

	perSheet := map[string]int{}
	for _, rec := range records {
		perSheet[rec.SourceSheet]++
	}
	fmt.Printf("extracted %d records from %d sheet(s)\n", len(records), len(perSheet))
	for sheet, n := range perSheet {
		fmt.Printf("  %s: %d\n", sheet, n)
	}

	debug := schedule.DebugTable(records)
	if previewRows > 0 && len(debug.Rows) > 0 {
		if len(debug.Rows) > previewRows {
			debug.Rows = debug.Rows[:previewRows]
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader(debug.Columns)
		for _, row := range debug.Rows {
			table.Append(row)
		}
		table.Render()
	}
}

func recordRun(cfg config.Config, run internal.ConversionRun) {
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warn: run history unavailable: %v\n", err)
		return
	}
	defer db.Close()
	if err := db.InsertRun(run); err != nil {
		fmt.Fprintf(os.Stderr, "warn: run history insert failed: %v\n", err)
	}
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

func usage() {
	fmt.Println("usage: schedconv <command>")
	fmt.Println("commands:")
	fmt.Println("  convert --input=schedule.xlsx --template=template.csv [--year=2026] [--mode=ACP|PCP] [--out=...] [--format=csv|xlsx] [--label=ACP] [--debug=false]")
	fmt.Println("  inspect --input=schedule.xlsx [--year=2026] [--mode=ACP|PCP] [--rows=20]")
	fmt.Println("  runs:list [--limit=20]")
}

func must(err error) {
	if err == nil {
		return
	}
	var schemaErr *schedule.SchemaError
	if errors.As(err, &schemaErr) {
		fmt.Fprintf(os.Stderr, "error: %v (check the template header against the exportable columns)\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
