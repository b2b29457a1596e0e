package sheets

import (
	"context"
	"fmt"
	"strings"

	"tutor_dashboard_backend/internal/config"
	"tutor_dashboard_backend/internal/util"
	"tutor_dashboard_backend/pkg/monitoring"
	"tutor_dashboard_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client wraps the Sheets API behind the minimal surface the repositories
// need: list worksheet titles, read a whole worksheet, write one cell.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func clientOptions(cfg *config.SheetsConfig) []option.ClientOption {
	creds := strings.TrimSpace(cfg.CredentialsJSON)
	if creds != "" {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	if file := strings.TrimSpace(cfg.CredentialsFile); file != "" {
		return []option.ClientOption{option.WithCredentialsFile(file)}
	}
	// Fall through to application default credentials.
	return nil
}

func New(ctx context.Context, cfg *config.SheetsConfig) (*Client, error) {
	opts := append(clientOptions(cfg), option.WithScopes(sheetsapi.SpreadsheetsScope))

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, &util.ConnectionError{Op: "connect", Err: err}
	}

	return &Client{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

// WorksheetTitles returns the physical titles of every worksheet in the
// spreadsheet, untrimmed, in sheet order.
func (c *Client) WorksheetTitles(ctx context.Context) ([]string, error) {
	ctx, span := tracing.Tracer.Start(ctx, "sheets.WorksheetTitles")
	defer span.End()

	monitoring.SheetReads.WithLabelValues("titles").Inc()

	resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, &util.ConnectionError{Op: "list worksheets", Err: err}
	}

	titles := make([]string, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties != nil {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

// ReadAll fetches the full grid of a worksheet, header row included. An empty
// worksheet comes back as an empty grid, not an error.
func (c *Client) ReadAll(ctx context.Context, title string) ([][]string, error) {
	ctx, span := tracing.Tracer.Start(ctx, "sheets.ReadAll")
	span.SetAttributes(attribute.String("worksheet", title))
	defer span.End()

	monitoring.SheetReads.WithLabelValues("values").Inc()

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, quoteTitle(title)).
		Context(ctx).Do()
	if err != nil {
		return nil, &util.ConnectionError{Op: "read " + title, Err: err}
	}

	grid := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, fmt.Sprint(v))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// UpdateCell writes a single cell addressed by zero-based grid coordinates.
// RAW input mode keeps the backend from reinterpreting the text we write.
func (c *Client) UpdateCell(ctx context.Context, title string, row, col int, value string) error {
	ctx, span := tracing.Tracer.Start(ctx, "sheets.UpdateCell")
	span.SetAttributes(attribute.String("worksheet", title))
	defer span.End()

	monitoring.SheetWrites.Inc()

	rng := fmt.Sprintf("%s!%s%d", quoteTitle(title), columnLetter(col), row+1)
	body := &sheetsapi.ValueRange{Values: [][]interface{}{{value}}}

	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, body).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return &util.ConnectionError{Op: "write " + title, Err: err}
	}
	return nil
}

func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// columnLetter converts a zero-based column index to A1 letters (0 -> A,
// 25 -> Z, 26 -> AA).
func columnLetter(col int) string {
	s := ""
	for col >= 0 {
		s = string(rune('A'+col%26)) + s
		col = col/26 - 1
	}
	return s
}
