package roster

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"
)

// PlannedShift is one row of the externally maintained schedule
// spreadsheet: who is planned on which seat for a date. Planned shifts
// are advisory; recorded shifts are the source of truth for pay.
type PlannedShift struct {
	Date        time.Time
	AdminName   string
	CashierName string
}

// Source yields the planned schedule for one month. The spreadsheet
// integration itself lives outside this service; implementations are
// thin fetch-and-parse adapters.
type Source interface {
	Fetch(ctx context.Context, month, year int) ([]PlannedShift, error)
}

// CSVSource reads the published spreadsheet as CSV over HTTP. Expected
// columns: date (YYYY-MM-DD), hall admin name, cashier name.
type CSVSource struct {
	URL    string
	Client *http.Client
}

func NewCSVSource(url string) *CSVSource {
	return &CSVSource{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *CSVSource) Fetch(ctx context.Context, month, year int) ([]PlannedShift, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schedule source returned status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule csv: %w", err)
	}

	var planned []PlannedShift
	for _, rec := range records {
		if len(rec) < 3 {
			continue
		}
		date, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			// Header row or free-form notes; skip quietly.
			continue
		}
		if int(date.Month()) != month || date.Year() != year {
			continue
		}
		planned = append(planned, PlannedShift{
			Date:        date,
			AdminName:   rec[1],
			CashierName: rec[2],
		})
	}
	return planned, nil
}
