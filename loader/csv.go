package loader

import (
	"bankapi/models"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names every source file must carry. Order in the file is irrelevant.
const (
	colBankID   = "bank_id"
	colBankName = "bank_name"
	colIFSC     = "ifsc"
	colBranch   = "branch"
	colAddress  = "address"
	colCity     = "city"
	colDistrict = "district"
	colState    = "state"
)

var requiredColumns = []string{
	colBankID, colBankName, colIFSC, colBranch, colAddress, colCity, colDistrict, colState,
}

// ErrSourceNotFound is returned when the source file does not exist.
var ErrSourceNotFound = errors.New("source file not found")

// Dataset is the normalized content of one source file.
type Dataset struct {
	Banks    []models.Bank
	Branches []models.Branch

	Rows              int // data rows read, header excluded
	DuplicateBranches int // rows whose ifsc was already seen
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	return Read(file)
}

// Read parses a bank branch CSV. Banks are deduplicated on bank_id keeping the
// first name seen; branches are deduplicated on ifsc keeping the first row.
func Read(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	// short rows are allowed, missing trailing cells become null
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("source file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	headerIndex, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	seenBanks := make(map[int64]struct{})
	seenBranches := make(map[string]struct{})

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		ds.Rows++

		bank, branch, err := parseRow(row, headerIndex)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		if _, ok := seenBanks[bank.ID]; !ok {
			seenBanks[bank.ID] = struct{}{}
			ds.Banks = append(ds.Banks, bank)
		}
		if _, ok := seenBranches[branch.IFSC]; ok {
			ds.DuplicateBranches++
			continue
		}
		seenBranches[branch.IFSC] = struct{}{}
		ds.Branches = append(ds.Branches, branch)
	}

	return ds, nil
}

func indexHeader(header []string) (map[string]int, error) {
	headerIndex := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		headerIndex[strings.ToLower(h)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := headerIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return headerIndex, nil
}

func parseRow(row []string, headerIndex map[string]int) (models.Bank, models.Branch, error) {
	rawID := getField(row, headerIndex, colBankID)
	if rawID == "" {
		return models.Bank{}, models.Branch{}, errors.New("bank_id is empty")
	}
	bankID, err := parseBankID(rawID)
	if err != nil {
		return models.Bank{}, models.Branch{}, fmt.Errorf("bank_id %q: %w", rawID, err)
	}

	bankName := getField(row, headerIndex, colBankName)
	if bankName == "" {
		return models.Bank{}, models.Branch{}, fmt.Errorf("bank_name is empty for bank_id %d", bankID)
	}

	ifsc := strings.ToUpper(getField(row, headerIndex, colIFSC))
	if ifsc == "" {
		return models.Bank{}, models.Branch{}, errors.New("ifsc is empty")
	}

	bank := models.Bank{ID: bankID, Name: bankName}
	branch := models.Branch{
		IFSC:       ifsc,
		BankID:     bankID,
		BranchName: nullable(getField(row, headerIndex, colBranch)),
		Address:    nullable(getField(row, headerIndex, colAddress)),
		City:       nullable(getField(row, headerIndex, colCity)),
		District:   nullable(getField(row, headerIndex, colDistrict)),
		State:      nullable(getField(row, headerIndex, colState)),
	}
	return bank, branch, nil
}

// parseBankID accepts "60" and the float form "60.0" that spreadsheet exports produce.
func parseBankID(s string) (int64, error) {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, errors.New("not an integer")
	}
	return int64(f), nil
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
