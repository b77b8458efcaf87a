package airtable

import (
	"context"
	"errors"
	"fmt"

	"github.com/mehanizm/airtable"
)

// ErrNotConfigured is returned when AIRTABLE_API_KEY or AIRTABLE_BASE_ID is missing.
var ErrNotConfigured = errors.New("airtable is not configured")

// Record is a table row with its raw field values as decoded from the Airtable JSON API.
type Record struct {
	ID          string
	Fields      map[string]any
	CreatedTime string
}

type Sort struct {
	Field     string
	Direction string
}

// Query selects records. MaxRecords <= 0 means all records.
type Query struct {
	Formula    string
	MaxRecords int
	Sort       []Sort
}

// Client wraps the Airtable REST client for one base and follows pagination offsets.
type Client struct {
	api    *airtable.Client
	baseID string
}

func NewClient(apiKey, baseID string) (*Client, error) {
	if apiKey == "" || baseID == "" {
		return nil, ErrNotConfigured
	}
	return &Client{api: airtable.NewClient(apiKey), baseID: baseID}, nil
}

func (c *Client) List(ctx context.Context, table string, q Query) ([]Record, error) {
	t := c.api.GetTable(c.baseID, table)

	var out []Record
	offset := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req := t.GetRecords()
		if q.Formula != "" {
			req = req.WithFilterFormula(q.Formula)
		}
		if q.MaxRecords > 0 {
			req = req.MaxRecords(q.MaxRecords)
		}
		for _, s := range q.Sort {
			req = req.WithSort(struct {
				FieldName string
				Direction string
			}{s.Field, s.Direction})
		}
		if offset != "" {
			req = req.WithOffset(offset)
		}

		page, err := req.Do()
		if err != nil {
			return nil, fmt.Errorf("airtable list %s: %w", table, err)
		}
		for _, r := range page.Records {
			out = append(out, Record{ID: r.ID, Fields: r.Fields, CreatedTime: r.CreatedTime})
		}

		offset = page.Offset
		if offset == "" || (q.MaxRecords > 0 && len(out) >= q.MaxRecords) {
			return out, nil
		}
	}
}

func (c *Client) Create(ctx context.Context, table string, fields map[string]any) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	res, err := c.api.GetTable(c.baseID, table).AddRecords(&airtable.Records{
		Records: []*airtable.Record{{Fields: fields}},
	})
	if err != nil {
		return Record{}, fmt.Errorf("airtable create %s: %w", table, err)
	}
	if res == nil || len(res.Records) == 0 {
		return Record{}, fmt.Errorf("airtable create %s: empty response", table)
	}
	r := res.Records[0]
	return Record{ID: r.ID, Fields: r.Fields, CreatedTime: r.CreatedTime}, nil
}

func (c *Client) Update(ctx context.Context, table, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.api.GetTable(c.baseID, table).UpdateRecordsPartial(&airtable.Records{
		Records: []*airtable.Record{{ID: id, Fields: fields}},
	})
	if err != nil {
		return fmt.Errorf("airtable update %s/%s: %w", table, id, err)
	}
	return nil
}
