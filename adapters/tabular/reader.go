package tabular

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gridiron/domain/table"
	"gridiron/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading CSV and Excel dataset files
type DataReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewDataReader creates a reader that handles both CSV and Excel files,
// keyed off the file extension
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadData reads the dataset file into a Table. A missing file is reported
// as a NOT_FOUND application error so callers can tell it apart from a
// malformed file.
func (r *DataReader) ReadData() (*table.Table, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(fmt.Sprintf("%s file %s", strings.ToUpper(r.fileType), r.filePath))
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, errors.InternalError(fmt.Sprintf("unsupported file type: %s", r.fileType))
	}
}

// readCSVData reads CSV data into a Table
func (r *DataReader) readCSVData() (*table.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV file")
	}
	readTime := time.Since(readStart)
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)", float64(readTime.Nanoseconds())/1e6, len(rows))

	if len(rows) < 1 {
		return nil, errors.ValidationError("CSV file must have at least a header row")
	}

	return r.processRows(rows), nil
}

// readExcelData reads Excel data from Sheet1 into a Table
func (r *DataReader) readExcelData() (*table.Table, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()
	fileOpenTime := time.Since(startTime)
	log.Printf("[DataReader] Excel file opened in %.2fms", float64(fileOpenTime.Nanoseconds())/1e6)

	// Always use Sheet1
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Sheet1")
	}

	if len(rows) < 1 {
		return nil, errors.ValidationError("Excel file must have at least a header row")
	}

	return r.processRows(rows), nil
}

// processRows converts raw string rows into a Table. Headers and cells are
// whitespace-trimmed; a header-only file yields a table with zero rows.
func (r *DataReader) processRows(rows [][]string) *table.Table {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []table.Row
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(table.Row)

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &table.Table{
		Headers: headers,
		Rows:    dataRows,
	}
}
