package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-sheet/grid"
	"github.com/andareed/siftly-sheet/logging"
	"github.com/andareed/siftly-sheet/workbook"
	"github.com/andareed/siftly-sheet/xlsx"
)

var Version = "dev"

var logFile = flag.String("debug", "", "Write Debug Logs to file")

// config holds the command line settings the editor starts with.
type config struct {
	rows, cols int
	palette    []string
	// prompt defaults
	textColor string
	bgColor   string
	fontSize  int
}

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	exportPath := flag.String("export", "", "convert the input to FILE (.xlsx, .csv or .json) and exit")
	rows := flag.Int("rows", 30, "rows of a new blank sheet")
	cols := flag.Int("cols", 10, "columns of a new blank sheet")
	paletteFlag := flag.String("palette", "", "comma separated colours to seed the palette with")
	textColor := flag.String("text-color", "#c00000", "default for the text colour prompt")
	bgColor := flag.String("bg-color", "#ffff00", "default for the background prompt")
	fontSize := flag.Int("font-size", 11, "default for the font size prompt")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("siftly-sheet: Started")

	cfg := config{
		rows:      *rows,
		cols:      *cols,
		palette:   splitPalette(*paletteFlag),
		textColor: *textColor,
		bgColor:   *bgColor,
		fontSize:  *fontSize,
	}

	inputPath := ""
	if args := flag.Args(); len(args) > 0 {
		inputPath = args[0]
	}

	book, err := loadWorkbook(inputPath, cfg)
	if err != nil {
		log.Printf("failed to load %q: %v", inputPath, err)
		fmt.Fprintf(os.Stderr, "failed to load %q: %v\n", inputPath, err)
		os.Exit(1)
	}

	if *exportPath != "" {
		if err := writeWorkbook(book, *exportPath); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", *exportPath)
		return
	}

	m := newModel(book, inputPath, cfg)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

// loadWorkbook opens path, or creates a blank sheet when path is empty, and
// seeds the palette.
func loadWorkbook(path string, cfg config) (*workbook.Workbook, error) {
	var book *workbook.Workbook
	if path == "" {
		if err := grid.CheckSize(cfg.rows, cfg.cols); err != nil {
			return nil, fmt.Errorf("--rows/--cols: %w", err)
		}
		book = workbook.New(cfg.rows, cfg.cols)
	} else {
		var err error
		if book, err = workbook.Open(path); err != nil {
			return nil, err
		}
	}
	for _, c := range cfg.palette {
		if _, err := book.Palette.Add(c); err != nil {
			return nil, fmt.Errorf("--palette: %w", err)
		}
	}
	// an imported empty file still needs a cell for the cursor
	book.Sheet.Grow(1, 1)
	return book, nil
}

// writeWorkbook saves or exports by the extension of path.
func writeWorkbook(book *workbook.Workbook, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return xlsx.ExportFile(path, book)
	case ".csv":
		return workbook.ExportCSV(book, path)
	case ".json":
		return workbook.Save(book, path)
	default:
		return fmt.Errorf("unsupported file extension %q (want .xlsx, .csv or .json)", ext)
	}
}

func splitPalette(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
