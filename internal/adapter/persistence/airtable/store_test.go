package airtable

import (
	"context"
	"errors"
	"fmt"

	at "bemu_storefront/internal/infrastructure/airtable"
)

type created struct {
	table  string
	fields map[string]any
}

type fakeStore struct {
	records  map[string][]at.Record
	queries  []at.Query
	created  []created
	updated  map[string]map[string]any
	failOn   string
	nextID   int
	listFunc func(table string, q at.Query) []at.Record
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string][]at.Record{}, updated: map[string]map[string]any{}}
}

func (f *fakeStore) List(_ context.Context, table string, q at.Query) ([]at.Record, error) {
	f.queries = append(f.queries, q)
	if f.failOn == "list" {
		return nil, errors.New("airtable down")
	}
	if f.listFunc != nil {
		return f.listFunc(table, q), nil
	}
	return f.records[table], nil
}

func (f *fakeStore) Create(_ context.Context, table string, fields map[string]any) (at.Record, error) {
	if f.failOn == table {
		return at.Record{}, errors.New("write rejected")
	}
	f.nextID++
	f.created = append(f.created, created{table: table, fields: fields})
	return at.Record{ID: fmt.Sprintf("rec%d", f.nextID), Fields: fields}, nil
}

func (f *fakeStore) Update(_ context.Context, table, id string, fields map[string]any) error {
	if f.failOn == "update" {
		return errors.New("write rejected")
	}
	f.updated[table+"/"+id] = fields
	return nil
}
