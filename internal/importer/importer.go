// Package importer reads component part lists from CSV and Excel files.
// It supports automatic delimiter detection, flexible column mapping,
// case-insensitive header recognition and quantity expansion into one
// design instance per physical part.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Components []model.Instance
	MCUID      string
	Errors     []string
	Warnings   []string
}

// Design assembles the imported list into a pipeline design. The board
// is left unspecified and falls back to the default at placement time.
func (r ImportResult) Design() model.Design {
	return model.Design{Components: r.Components, MCUID: r.MCUID}
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Component int
	Quantity  int
	Category  int
	Role      int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"component": {"component", "component_id", "component id", "id", "part", "part_id", "part number", "part_number", "manufacturer part number", "mpn", "name", "value", "item"},
	"quantity":  {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
	"category":  {"category", "cat", "type", "kind"},
	"role":      {"role", "function", "designation", "usage"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Component: -1,
		Quantity:  -1,
		Category:  -1,
		Role:      -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "component":
						if mapping.Component == -1 {
							mapping.Component = i
						}
					case "quantity":
						if mapping.Quantity == -1 {
							mapping.Quantity = i
						}
					case "category":
						if mapping.Category == -1 {
							mapping.Category = i
						}
					case "role":
						if mapping.Role == -1 {
							mapping.Role = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Component, Quantity, Category, Role
		return ColumnMapping{
			Component: 0,
			Quantity:  1,
			Category:  2,
			Role:      3,
		}, false
	}

	return mapping, true
}

// parseRole interprets a role cell. Returns whether the row designates
// the MCU and whether the string was recognized.
func parseRole(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mcu", "controller", "main":
		return true, true
	case "", "none", "-", "part", "component", "peripheral":
		return false, true
	default:
		return false, false
	}
}

// matchComponent resolves a raw cell value to a catalog ID: exact ID
// first, then case-insensitive ID, display name or MPN. Unmatched values
// pass through unchanged so downstream resolution can apply its fallback.
func matchComponent(cat *catalog.Catalog, raw string) (string, bool) {
	if _, ok := cat.Get(raw); ok {
		return raw, true
	}
	needle := strings.ToLower(raw)
	for _, def := range cat.All() {
		if strings.ToLower(def.ID) == needle ||
			strings.ToLower(def.DisplayName) == needle ||
			(def.MPN != "" && strings.ToLower(def.MPN) == needle) {
			return def.ID, true
		}
	}
	return raw, false
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parsedRow is one part-list line before quantity expansion.
type parsedRow struct {
	inst  model.Instance
	qty   int
	isMCU bool
}

// parseInstanceRow extracts one part-list entry from a row using the given
// column mapping. Returns the entry, any error message, and any warnings.
func parseInstanceRow(row []string, mapping ColumnMapping, rowLabel string, cat *catalog.Catalog) (parsedRow, string, []string) {
	raw := getCell(row, mapping.Component)
	if raw == "" {
		return parsedRow{}, fmt.Sprintf("%s: Missing component value", rowLabel), nil
	}

	var warnings []string
	id, known := matchComponent(cat, raw)
	if !known {
		warnings = append(warnings, fmt.Sprintf("%s: Unknown component '%s', not in catalog", rowLabel, raw))
	}

	qty := 1
	qtyStr := getCell(row, mapping.Quantity)
	if qtyStr != "" {
		n, err := strconv.Atoi(qtyStr)
		if err != nil {
			return parsedRow{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), nil
		}
		if n <= 0 {
			return parsedRow{}, fmt.Sprintf("%s: Quantity must be positive", rowLabel), nil
		}
		qty = n
	}

	inst := model.Instance{ComponentID: id}
	if cell := getCell(row, mapping.Category); cell != "" {
		inst.Category = strings.ToLower(cell)
	}
	if known {
		def, _ := cat.Get(id)
		inst.PowerDrawMA = def.PowerDrawMA
	}

	isMCU := false
	if roleStr := getCell(row, mapping.Role); roleStr != "" {
		mcu, ok := parseRole(roleStr)
		if ok {
			isMCU = mcu
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown role '%s', treating as plain part", rowLabel, roleStr))
		}
	}

	return parsedRow{inst: inst, qty: qty, isMCU: isMCU}, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportFile imports a part list, dispatching on the file extension.
func ImportFile(path string, cat *catalog.Catalog) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", ".tsv":
		return ImportCSV(path, cat)
	case ".xlsx", ".xlsm", ".xls":
		return ImportExcel(path, cat)
	default:
		return ImportResult{Errors: []string{fmt.Sprintf("Unsupported file type '%s' (expected .csv or .xlsx)", filepath.Ext(path))}}
	}
}

// ImportCSV imports a part list from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string, cat *catalog.Catalog) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings, cat)
}

// ImportCSVFromReader imports a part list from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune, cat *catalog.Catalog) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil, cat)
}

// ImportExcel imports a part list from an Excel (.xlsx, .xls) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string, cat *catalog.Catalog) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil, cat)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, parses each row and expands quantities
// into repeated instances.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string, cat *catalog.Catalog) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		if mapping.Component == -1 {
			result.Errors = append(result.Errors, "Required column not found in header: Component")
			return result
		}
	} else {
		// No header: check if the quantity column of the first row is numeric
		// (positional mapping)
		if len(rows[0]) >= 2 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				// Second column is not numeric - might be an unrecognized header.
				// Skip it as a header but use positional mapping
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		parsed, errMsg, warnings := parseInstanceRow(row, mapping, rowLabel, cat)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)

		if parsed.isMCU {
			if result.MCUID == "" {
				result.MCUID = parsed.inst.ComponentID
			} else if result.MCUID != parsed.inst.ComponentID {
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Multiple MCU designations, keeping %s", rowLabel, result.MCUID))
			}
		}

		// One instance per physical part
		for j := 0; j < parsed.qty; j++ {
			result.Components = append(result.Components, parsed.inst)
		}
	}

	return result
}
