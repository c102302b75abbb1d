package engine

import (
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/pkg/utils"
)

// group accumulates one grouping key: a document count plus running sums for
// the requested numeric fields.
type group struct {
	Key  string
	N    int
	sums map[string]float64
}

func (g *group) Sum(field string) float64 {
	return g.sums[field]
}

func (g *group) Avg(field string) float64 {
	if g.N == 0 {
		return 0
	}
	return g.sums[field] / float64(g.N)
}

// groupByKey buckets documents by a derived key, summing the given numeric
// fields per bucket. Key derivation errors abort the whole computation.
func groupByKey(docs []model.Document, keyOf func(model.Document) (string, error), sumFields ...string) ([]*group, error) {
	buckets := make(map[string]*group)
	for _, doc := range docs {
		key, err := keyOf(doc)
		if err != nil {
			return nil, err
		}

		g, ok := buckets[key]
		if !ok {
			g = &group{Key: key, sums: make(map[string]float64, len(sumFields))}
			buckets[key] = g
		}
		g.N++
		for _, field := range sumFields {
			g.sums[field] += utils.Numeric(doc[field])
		}
	}

	groups := make([]*group, 0, len(buckets))
	for _, g := range buckets {
		groups = append(groups, g)
	}
	return groups, nil
}

// groupByField buckets documents on a plain field value.
func groupByField(docs []model.Document, field string, sumFields ...string) []*group {
	groups, _ := groupByKey(docs, func(doc model.Document) (string, error) {
		return utils.String(doc[field]), nil
	}, sumFields...)
	return groups
}
