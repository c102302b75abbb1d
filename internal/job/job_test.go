package job

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/pkg/utils"
)

// fakeCollection mirrors the typed Query contract of the mongo adapter over
// an in-memory slice.
type fakeCollection struct {
	docs    []model.Document
	findErr error
}

var errStoreDown = errors.New("store down")

func (c *fakeCollection) Find(_ context.Context, q store.Query) ([]model.Document, error) {
	if c.findErr != nil {
		return nil, c.findErr
	}

	var out []model.Document
	for _, doc := range c.docs {
		keep := true
		for field, min := range q.Gt {
			if !(utils.Numeric(doc[field]) > min) {
				keep = false
				break
			}
		}
		if !keep {
			continue
		}

		if len(q.Fields) == 0 {
			out = append(out, doc)
			continue
		}
		projected := make(model.Document, len(q.Fields))
		for _, field := range q.Fields {
			if v, ok := doc[field]; ok {
				projected[field] = v
			}
		}
		out = append(out, projected)
	}
	return out, nil
}

func (c *fakeCollection) InsertMany(_ context.Context, docs []model.Document) (int, error) {
	c.docs = append(c.docs, docs...)
	return len(docs), nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
