package engine

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/pkg/utils"
)

// keySeparator joins the fields of a composite natural key.
const keySeparator = "\x1f"

// Ingestor reads a CSV snapshot into a collection, deduplicating rows
// against the documents already stored there by a domain natural key.
// It is the sole writer of its collection and never updates or removes
// existing documents: a changed value for an existing key is not reconciled.
type Ingestor struct {
	coll      store.Collection
	keyFields []string
}

// NewIngestor builds an ingestor keyed on the given natural-key fields
// (dev_eui for uplinks; Order ID + Product ID for sales).
func NewIngestor(coll store.Collection, keyFields ...string) *Ingestor {
	return &Ingestor{coll: coll, keyFields: keyFields}
}

// Ingest parses the whole CSV, snapshots the existing natural keys from the
// collection, and bulk-inserts only the rows whose key is not present yet,
// in file order. Calling it twice on an unmodified file inserts zero rows
// the second time. Any parse or store failure aborts the whole call.
func (ing *Ingestor) Ingest(ctx context.Context, csvPath string) (model.IngestResult, error) {
	rows, err := ing.readCSV(csvPath)
	if err != nil {
		return model.IngestResult{}, fmt.Errorf("%w: read %s: %v", ErrIngestion, csvPath, err)
	}

	existing, err := ing.coll.Find(ctx, store.Query{Fields: ing.keyFields})
	if err != nil {
		return model.IngestResult{}, fmt.Errorf("%w: fetch existing keys: %v", ErrIngestion, err)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, doc := range existing {
		seen[ing.naturalKey(doc)] = struct{}{}
	}

	var fresh []model.Document
	for _, row := range rows {
		if _, dup := seen[ing.naturalKey(row)]; !dup {
			fresh = append(fresh, row)
		}
	}

	if len(fresh) == 0 {
		return model.IngestResult{Inserted: 0}, nil
	}

	inserted, err := ing.coll.InsertMany(ctx, fresh)
	if err != nil {
		return model.IngestResult{}, fmt.Errorf("%w: insert: %v", ErrIngestion, err)
	}
	return model.IngestResult{Inserted: inserted}, nil
}

// readCSV parses the full file into documents, header-driven, with every
// cell typed through ParseValue. The header must carry all key columns.
func (ing *Ingestor) readCSV(csvPath string) ([]model.Document, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	csvReader := csv.NewReader(file)
	csvReader.LazyQuotes = true

	rawHeaders, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %v", err)
	}

	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		// Clean header names: trim whitespace and remove stray quotes
		headers[i] = strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
	}

	headerSet := make(map[string]bool, len(headers))
	for _, h := range headers {
		headerSet[h] = true
	}
	for _, key := range ing.keyFields {
		if !headerSet[key] {
			return nil, fmt.Errorf("missing key column %q", key)
		}
	}

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %v", err)
	}

	rows := make([]model.Document, 0, len(records))
	for _, record := range records {
		doc := make(model.Document, len(headers))
		for i, h := range headers {
			doc[h] = utils.ParseValue(record[i])
		}
		rows = append(rows, doc)
	}
	return rows, nil
}

func (ing *Ingestor) naturalKey(doc model.Document) string {
	parts := make([]string, len(ing.keyFields))
	for i, field := range ing.keyFields {
		parts[i] = utils.String(doc[field])
	}
	return strings.Join(parts, keySeparator)
}
