package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/pkg/utils"
)

// orderDateLayout is the source format of the Order Date column.
const orderDateLayout = "02/01/2006"

// SalesReports is the fixed, read-only report catalog over the sales
// collection.
type SalesReports struct {
	coll store.Collection
}

func NewSalesReports(coll store.Collection) *SalesReports {
	return &SalesReports{coll: coll}
}

// TopFive returns the five products with the highest summed Sales.
func (r *SalesReports) TopFive(ctx context.Context) ([]model.ProductSales, error) {
	docs, err := r.coll.Find(ctx, store.Query{Fields: []string{"Product ID", "Sales"}})
	if err != nil {
		return nil, fmt.Errorf("%w: top_five: %v", ErrAggregation, err)
	}

	groups := groupByField(docs, "Product ID", "Sales")
	sort.Slice(groups, func(i, j int) bool {
		gi, gj := groups[i].Sum("Sales"), groups[j].Sum("Sales")
		if gi != gj {
			return gi > gj
		}
		return groups[i].Key < groups[j].Key
	})
	if len(groups) > 5 {
		groups = groups[:5]
	}

	out := make([]model.ProductSales, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.ProductSales{ProductID: g.Key, GrossSale: g.Sum("Sales")})
	}
	return out, nil
}

// MonthlyRevenue sums Sales per "YYYY-MM" derived from Order Date, in
// chronological order.
func (r *SalesReports) MonthlyRevenue(ctx context.Context) ([]model.MonthRevenue, error) {
	docs, err := r.coll.Find(ctx, store.Query{Fields: []string{"Order Date", "Sales"}})
	if err != nil {
		return nil, fmt.Errorf("%w: monthly_revenue: %v", ErrAggregation, err)
	}

	groups, err := groupByKey(docs, orderDateKey("2006-01"), "Sales")
	if err != nil {
		return nil, fmt.Errorf("%w: monthly_revenue: %v", ErrAggregation, err)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })

	out := make([]model.MonthRevenue, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.MonthRevenue{Month: g.Key, Revenue: g.Sum("Sales")})
	}
	return out, nil
}

// AvgSales computes the mean Sales per (Category, Sub-Category) pair, then
// regroups the sub-category averages under their category. Both levels are
// sorted ascending.
func (r *SalesReports) AvgSales(ctx context.Context) ([]model.CategoryAvg, error) {
	docs, err := r.coll.Find(ctx, store.Query{Fields: []string{"Category", "Sub-Category", "Sales"}})
	if err != nil {
		return nil, fmt.Errorf("%w: avg_sales: %v", ErrAggregation, err)
	}

	groups, _ := groupByKey(docs, func(doc model.Document) (string, error) {
		return utils.String(doc["Category"]) + keySeparator + utils.String(doc["Sub-Category"]), nil
	}, "Sales")

	byCategory := make(map[string][]model.SubCategoryAvg)
	for _, g := range groups {
		category, subCategory, _ := strings.Cut(g.Key, keySeparator)
		byCategory[category] = append(byCategory[category], model.SubCategoryAvg{
			SubCategory: subCategory,
			AvgSales:    g.Avg("Sales"),
		})
	}

	out := make([]model.CategoryAvg, 0, len(byCategory))
	for category, subs := range byCategory {
		sort.Slice(subs, func(i, j int) bool { return subs[i].SubCategory < subs[j].SubCategory })
		out = append(out, model.CategoryAvg{Category: category, SubCategories: subs})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// AnnualGrowth sums Sales per year and derives each year's growth against
// the previous year's unrounded total. The first year carries no growth
// figure; a zero previous total yields 0 instead of a division error.
// Totals and growth are rounded to two decimals at output only.
func (r *SalesReports) AnnualGrowth(ctx context.Context) ([]model.YearGrowth, error) {
	docs, err := r.coll.Find(ctx, store.Query{Fields: []string{"Order Date", "Sales"}})
	if err != nil {
		return nil, fmt.Errorf("%w: annual_growth: %v", ErrAggregation, err)
	}

	groups, err := groupByKey(docs, orderDateKey("2006"), "Sales")
	if err != nil {
		return nil, fmt.Errorf("%w: annual_growth: %v", ErrAggregation, err)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })

	out := make([]model.YearGrowth, 0, len(groups))
	prev := 0.0
	for i, g := range groups {
		total := g.Sum("Sales")
		entry := model.YearGrowth{Year: g.Key, TotalSales: utils.Round2(total)}
		if i > 0 {
			growth := 0.0
			if prev != 0 {
				growth = utils.Round2(((total - prev) / prev) * 100)
			}
			entry.GrowthPct = &growth
		}
		out = append(out, entry)
		prev = total
	}
	return out, nil
}

// orderDateKey derives a grouping key from the Order Date column in the
// given time layout.
func orderDateKey(layout string) func(model.Document) (string, error) {
	return func(doc model.Document) (string, error) {
		raw := utils.String(doc["Order Date"])
		t, err := time.Parse(orderDateLayout, raw)
		if err != nil {
			return "", fmt.Errorf("parse Order Date %q: %v", raw, err)
		}
		return t.Format(layout), nil
	}
}
