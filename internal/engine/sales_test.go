package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
)

func TestTopFive(t *testing.T) {
	coll := &memCollection{docs: []model.Document{
		saleDoc("o1", "P-1", "01/01/2022", 100, "Furniture", "Chairs"),
		saleDoc("o2", "P-2", "01/01/2022", 90, "Furniture", "Chairs"),
		saleDoc("o3", "P-3", "01/01/2022", 80, "Furniture", "Chairs"),
		saleDoc("o4", "P-4", "01/01/2022", 70, "Furniture", "Chairs"),
		saleDoc("o5", "P-5", "01/01/2022", 60, "Furniture", "Chairs"),
		saleDoc("o6", "P-6", "01/01/2022", 50, "Furniture", "Chairs"),
		saleDoc("o7", "P-1", "02/01/2022", 5, "Furniture", "Chairs"),
	}}
	reports := NewSalesReports(coll)

	top, err := reports.TopFive(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 5)

	assert.Equal(t, model.ProductSales{ProductID: "P-1", GrossSale: 105}, top[0])
	assert.Equal(t, "P-5", top[4].ProductID)
}

func TestMonthlyRevenue(t *testing.T) {
	coll := &memCollection{docs: []model.Document{
		saleDoc("o1", "P-1", "15/03/2022", 100, "Furniture", "Chairs"),
		saleDoc("o2", "P-2", "20/03/2022", 50, "Furniture", "Chairs"),
		saleDoc("o3", "P-3", "01/01/2022", 25, "Furniture", "Chairs"),
		saleDoc("o4", "P-4", "31/12/2021", 10, "Furniture", "Chairs"),
	}}
	reports := NewSalesReports(coll)

	out, err := reports.MonthlyRevenue(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.MonthRevenue{
		{Month: "2021-12", Revenue: 10},
		{Month: "2022-01", Revenue: 25},
		{Month: "2022-03", Revenue: 150},
	}, out)
}

func TestMonthlyRevenueBadDate(t *testing.T) {
	coll := &memCollection{docs: []model.Document{
		saleDoc("o1", "P-1", "2022-03-15", 100, "Furniture", "Chairs"),
	}}
	reports := NewSalesReports(coll)

	_, err := reports.MonthlyRevenue(context.Background())
	assert.ErrorIs(t, err, ErrAggregation)
}

func TestAvgSales(t *testing.T) {
	coll := &memCollection{docs: []model.Document{
		saleDoc("o1", "P-1", "01/01/2022", 100, "Furniture", "Chairs"),
		saleDoc("o2", "P-2", "01/01/2022", 200, "Furniture", "Chairs"),
		saleDoc("o3", "P-3", "01/01/2022", 40, "Furniture", "Bookcases"),
		saleDoc("o4", "P-4", "01/01/2022", 10, "Technology", "Phones"),
	}}
	reports := NewSalesReports(coll)

	out, err := reports.AvgSales(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.CategoryAvg{
		{
			Category: "Furniture",
			SubCategories: []model.SubCategoryAvg{
				{SubCategory: "Bookcases", AvgSales: 40},
				{SubCategory: "Chairs", AvgSales: 150},
			},
		},
		{
			Category: "Technology",
			SubCategories: []model.SubCategoryAvg{
				{SubCategory: "Phones", AvgSales: 10},
			},
		},
	}, out)
}

func TestAnnualGrowth(t *testing.T) {
	coll := &memCollection{docs: []model.Document{
		saleDoc("o1", "P-1", "01/06/2021", 100, "Furniture", "Chairs"),
		saleDoc("o2", "P-2", "01/06/2022", 150, "Furniture", "Chairs"),
		saleDoc("o3", "P-3", "01/06/2023", 0, "Furniture", "Chairs"),
	}}
	reports := NewSalesReports(coll)

	out, err := reports.AnnualGrowth(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "2021", out[0].Year)
	assert.Equal(t, 100.0, out[0].TotalSales)
	assert.Nil(t, out[0].GrowthPct)

	require.NotNil(t, out[1].GrowthPct)
	assert.Equal(t, 150.0, out[1].TotalSales)
	assert.Equal(t, 50.0, *out[1].GrowthPct)

	require.NotNil(t, out[2].GrowthPct)
	assert.Equal(t, 0.0, out[2].TotalSales)
	assert.Equal(t, -100.0, *out[2].GrowthPct)
}

func TestAnnualGrowthZeroPreviousTotal(t *testing.T) {
	coll := &memCollection{docs: []model.Document{
		saleDoc("o1", "P-1", "01/06/2021", 0, "Furniture", "Chairs"),
		saleDoc("o2", "P-2", "01/06/2022", 50, "Furniture", "Chairs"),
	}}
	reports := NewSalesReports(coll)

	out, err := reports.AnnualGrowth(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.NotNil(t, out[1].GrowthPct)
	assert.Equal(t, 0.0, *out[1].GrowthPct)
}

func TestAnnualGrowthUsesUnroundedPrevious(t *testing.T) {
	// 2021 displays as 100.0 but the 2022 growth is computed against the
	// unrounded 100.004: exactly +100%. Feeding the rounded total back in
	// would report 100.01 instead.
	coll := &memCollection{docs: []model.Document{
		saleDoc("o1", "P-1", "01/06/2021", 100.004, "Furniture", "Chairs"),
		saleDoc("o2", "P-2", "01/06/2022", 200.008, "Furniture", "Chairs"),
	}}
	reports := NewSalesReports(coll)

	out, err := reports.AnnualGrowth(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 100.0, out[0].TotalSales)
	require.NotNil(t, out[1].GrowthPct)
	assert.Equal(t, 100.0, *out[1].GrowthPct)
}

func TestAnnualGrowthBadDate(t *testing.T) {
	coll := &memCollection{docs: []model.Document{
		saleDoc("o1", "P-1", "June 1 2021", 100, "Furniture", "Chairs"),
	}}
	reports := NewSalesReports(coll)

	_, err := reports.AnnualGrowth(context.Background())
	assert.ErrorIs(t, err, ErrAggregation)
}
