// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheets

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/danielhkuo/raffle-bot/models"
)

// header is the first row of the mirror worksheet.
var header = []interface{}{"№", "Telegram user", "Ім'я", "Номер телефону", "Магазин №", "Дата"}

// Client mirrors registrations into one worksheet of a Google spreadsheet.
type Client struct {
	svc       *sheets.Service
	sheetID   string
	worksheet string
	credsFile string
}

// New authenticates with a service-account credentials file and returns a
// client bound to one spreadsheet and worksheet.
func New(ctx context.Context, credsFile, sheetID, worksheet string) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credsFile))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{
		svc:       svc,
		sheetID:   sheetID,
		worksheet: worksheet,
		credsFile: credsFile,
	}, nil
}

func (c *Client) rng(a1 string) string {
	return fmt.Sprintf("'%s'!%s", c.worksheet, a1)
}

// EnsureHeader writes the header row if the worksheet is empty and rewrites
// it when it differs from the current layout, so a sheet created before a
// column was added gets corrected.
func (c *Client) EnsureHeader(ctx context.Context) error {
	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, c.rng("A1:F1")).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if len(resp.Values) > 0 && !headerStale(resp.Values[0]) {
		return nil
	}
	_, err = c.svc.Spreadsheets.Values.Update(c.sheetID, c.rng("A1"), &sheets.ValueRange{
		Values: [][]interface{}{header},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// AppendParticipant appends one registration row and returns the sequence
// number it was assigned in the sheet. The header is checked on every append
// so a manually edited sheet heals itself.
func (c *Client) AppendParticipant(ctx context.Context, p models.Participant) (int, error) {
	if err := c.EnsureHeader(ctx); err != nil {
		return 0, err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, c.rng("A:A")).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("read sequence column: %w", err)
	}
	seq := nextSeq(resp.Values)

	_, err = c.svc.Spreadsheets.Values.Append(c.sheetID, c.rng("A:F"), &sheets.ValueRange{
		Values: [][]interface{}{participantRow(seq, p)},
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("append row: %w", err)
	}
	return seq, nil
}

// headerStale reports whether the first row differs, cell by cell, from the
// expected header. A short row (fewer columns than expected) is stale.
func headerStale(row []interface{}) bool {
	if len(row) != len(header) {
		return true
	}
	for i, want := range header {
		got, ok := row[i].(string)
		if !ok || got != want.(string) {
			return true
		}
	}
	return false
}

// RowCount returns the number of data rows, excluding the header.
func (c *Client) RowCount(ctx context.Context) (int, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, c.rng("A:A")).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("read rows: %w", err)
	}
	n := len(resp.Values) - 1
	if n < 0 {
		n = 0
	}
	return n, nil
}

// ClearKeepHeader removes every data row but leaves the header in place.
func (c *Client) ClearKeepHeader(ctx context.Context) error {
	_, err := c.svc.Spreadsheets.Values.Clear(c.sheetID, c.rng("A2:F"), &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear rows: %w", err)
	}
	return nil
}

// Diagnostics probes the mirror in stages and reports how far it got:
// credentials file, spreadsheet access, worksheet presence, row count.
// It never returns an error; failures land in the report.
func (c *Client) Diagnostics(ctx context.Context) models.SheetDiagnostics {
	d := models.SheetDiagnostics{
		SheetID:        c.sheetID,
		WorksheetTitle: c.worksheet,
	}

	if _, err := os.Stat(c.credsFile); err != nil {
		d.Err = fmt.Sprintf("credentials file: %v", err)
		return d
	}
	d.CredsFileExists = true

	meta, err := c.svc.Spreadsheets.Get(c.sheetID).Context(ctx).Do()
	if err != nil {
		d.Err = fmt.Sprintf("open spreadsheet: %v", err)
		return d
	}
	d.CanOpen = true

	for _, s := range meta.Sheets {
		if s.Properties != nil && s.Properties.Title == c.worksheet {
			d.WorksheetOK = true
			break
		}
	}
	if !d.WorksheetOK {
		d.Err = fmt.Sprintf("worksheet %q not found", c.worksheet)
		return d
	}

	n, err := c.RowCount(ctx)
	if err != nil {
		d.Err = err.Error()
		return d
	}
	d.RowCount = n
	return d
}

// nextSeq computes the next sequence number from column A: one past the
// largest integer seen, skipping the header and any non-numeric cells.
func nextSeq(colA [][]interface{}) int {
	max := 0
	for _, row := range colA {
		if len(row) == 0 {
			continue
		}
		s, ok := row[0].(string)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}

// participantRow renders one registration as a sheet row.
func participantRow(seq int, p models.Participant) []interface{} {
	username := ""
	if p.Username != "" {
		username = "@" + p.Username
	}
	store := ""
	if p.StoreNo != nil {
		store = strconv.Itoa(*p.StoreNo)
	}
	return []interface{}{
		strconv.Itoa(seq),
		username,
		p.FullName,
		p.Phone,
		store,
		p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
