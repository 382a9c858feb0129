package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"hri-companion-be/internal/pkg/apperror"
)

// API is the minimal spreadsheet surface the table layer needs. Tests swap
// in an in-memory fake.
type API interface {
	ColValues(ctx context.Context, worksheet string, col int) ([]string, error)
	RowValues(ctx context.Context, worksheet string, row int) ([]string, error)
	AllValues(ctx context.Context, worksheet string) ([][]string, error)
	AppendRow(ctx context.Context, worksheet string, values []interface{}) error
	UpdateRow(ctx context.Context, worksheet string, row int, values []interface{}) error
}

// Client talks to the Google Sheets API for a single spreadsheet. Build
// once at startup and share; every call is a network round trip.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
}

var _ API = &Client{}

func NewClient(ctx context.Context, credentialsPath, spreadsheetID string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, apperror.Internal("spreadsheet id must be provided")
	}

	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, apperror.ExternalService("failed to create sheets client").WithCause(err)
	}

	return &Client{service: service, spreadsheetID: spreadsheetID}, nil
}

// VerifyWorksheets checks that every expected worksheet exists. A missing
// worksheet is unrecoverable and surfaces at startup.
func (c *Client) VerifyWorksheets(ctx context.Context, names ...string) error {
	spreadsheet, err := c.service.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return apperror.ExternalService(
			fmt.Sprintf("failed to open spreadsheet %q", c.spreadsheetID)).WithCause(err)
	}

	existing := make(map[string]bool, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			existing[sheet.Properties.Title] = true
		}
	}
	for _, name := range names {
		if !existing[name] {
			return apperror.ExternalService(
				fmt.Sprintf("worksheet %q not found in spreadsheet", name))
		}
	}
	return nil
}

func (c *Client) ColValues(ctx context.Context, worksheet string, col int) ([]string, error) {
	letter := ColumnLetter(col)
	readRange := fmt.Sprintf("%s!%s:%s", worksheet, letter, letter)
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).
		Context(ctx).Do()
	if err != nil {
		return nil, apperror.ExternalService("failed to read worksheet column").WithCause(err)
	}

	values := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) > 0 {
			values = append(values, cellString(row[0]))
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}

func (c *Client) RowValues(ctx context.Context, worksheet string, row int) ([]string, error) {
	readRange := fmt.Sprintf("%s!%d:%d", worksheet, row, row)
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).
		Context(ctx).Do()
	if err != nil {
		return nil, apperror.ExternalService("failed to read worksheet row").WithCause(err)
	}

	if len(resp.Values) == 0 {
		return nil, nil
	}
	return cellStrings(resp.Values[0]), nil
}

func (c *Client) AllValues(ctx context.Context, worksheet string) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, worksheet).
		Context(ctx).Do()
	if err != nil {
		return nil, apperror.ExternalService("failed to read worksheet").WithCause(err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		rows = append(rows, cellStrings(row))
	}
	return rows, nil
}

func (c *Client) AppendRow(ctx context.Context, worksheet string, values []interface{}) error {
	valueRange := &sheetsapi.ValueRange{Values: [][]interface{}{values}}
	_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, worksheet, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return apperror.ExternalService("failed to append worksheet row").WithCause(err)
	}
	return nil
}

func (c *Client) UpdateRow(ctx context.Context, worksheet string, row int, values []interface{}) error {
	updateRange := fmt.Sprintf("%s!A%d:%s%d", worksheet, row, ColumnLetter(len(values)), row)
	valueRange := &sheetsapi.ValueRange{Values: [][]interface{}{values}}
	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, updateRange, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return apperror.ExternalService("failed to update worksheet row").WithCause(err)
	}
	return nil
}

func cellString(cell interface{}) string {
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}

func cellStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = cellString(cell)
	}
	return out
}
