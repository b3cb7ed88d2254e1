package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
)

// fakeData implements ports.DatasetProvider over a fixture snapshot.
type fakeData struct {
	ds *entities.Dataset
}

func (f *fakeData) Dataset() *entities.Dataset { return f.ds }

// fakeEmbedder returns a fixed vector.
type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{1, 0}, nil
}

// fakeStore returns preset search results and counts searches.
type fakeStore struct {
	results  []entities.SearchResult
	searches int
	added    []entities.VectorDocument
}

func (f *fakeStore) Search(ctx context.Context, embedding []float32, collection string, limit int) ([]entities.SearchResult, error) {
	f.searches++
	return f.results, nil
}

func (f *fakeStore) Add(ctx context.Context, doc entities.VectorDocument, collection string) (string, error) {
	f.added = append(f.added, doc)
	return "doc-1", nil
}

func (f *fakeStore) Stats() map[string]int { return map[string]int{} }

func fixtureDataset() *entities.Dataset {
	submitted := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	resolvedShort := submitted.AddDate(0, 0, 10)
	resolvedLong := submitted.AddDate(0, 0, 20)

	return &entities.Dataset{
		Dealers: []entities.Dealer{
			{ID: "DEALER001", Name: "Mumbai Dealer A", Region: "West Zone", Zone: "West Zone", City: "Mumbai"},
			{ID: "DEALER002", Name: "Delhi Dealer B", Region: "North Zone", Zone: "North Zone", City: "Delhi"},
		},
		Inventory: []entities.InventoryItem{
			{
				ID: "INV00001", SKU: "SKU12345", ProductName: "Electronics Product A1",
				Warehouse: "Mumbai Central", Zone: "West Zone", Quantity: 62,
				UnitPrice: 12500, LastUpdated: submitted, Category: "Electronics",
			},
			{
				ID: "INV00002", SKU: "SKU20001", ProductName: "Tools Product B2",
				Warehouse: "Delhi NCR", Zone: "North Zone", Quantity: 35,
				UnitPrice: 8000, LastUpdated: submitted, Category: "Tools",
			},
			{
				ID: "INV00003", SKU: "SKU30001", ProductName: "Components Product C3",
				Warehouse: "Delhi NCR", Zone: "North Zone", Quantity: 12,
				UnitPrice: 3000, LastUpdated: submitted, Category: "Components",
			},
			{
				ID: "INV00004", SKU: "SKU40001", ProductName: "Spare Parts Product D4",
				Warehouse: "Pune Industrial", Zone: "West Zone", Quantity: 25,
				UnitPrice: 100, LastUpdated: submitted, Category: "Spare Parts",
			},
		},
		Claims: []entities.Claim{
			{
				ID: "CLAIM00001", ClaimNumber: "CLM000123", DealerID: "DEALER001",
				DealerName: "Mumbai Dealer A", Amount: 30000, Status: entities.ClaimPending,
				SubmittedDate: submitted, Reason: "Shipping Damage",
				Description: "Detailed description for claim CLM000123 regarding shipping damage.",
			},
			{
				ID: "CLAIM00002", ClaimNumber: "CLM000456", DealerID: "DEALER002",
				DealerName: "Delhi Dealer B", Amount: 80000, Status: entities.ClaimApproved,
				SubmittedDate: submitted, ResolvedDate: &resolvedShort, Reason: "Shipping Damage",
				Description: "Detailed description for claim CLM000456 regarding shipping damage.",
			},
			{
				ID: "CLAIM00003", ClaimNumber: "CLM000789", DealerID: "DEALER001",
				DealerName: "Mumbai Dealer A", Amount: 120000, Status: entities.ClaimRejected,
				SubmittedDate: submitted, ResolvedDate: &resolvedLong, Reason: "Quality Issue",
				Description: "Detailed description for claim CLM000789 regarding quality issue.",
			},
			{
				ID: "CLAIM00004", ClaimNumber: "CLM000900", DealerID: "DEALER002",
				DealerName: "Delhi Dealer B", Amount: 45000, Status: entities.ClaimProcessing,
				SubmittedDate: submitted, Reason: "Wrong Item",
				Description: "Detailed description for claim CLM000900 regarding wrong item.",
			},
		},
		Sales: []entities.SalesTransaction{
			{
				ID: "SALE000001", TransactionID: "TXN00000001", DealerID: "DEALER001",
				DealerName: "Mumbai Dealer A", SKU: "SKU12345", ProductName: "Electronics Product A1",
				Quantity: 2, UnitPrice: 10000, TotalAmount: 20000,
				SaleDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
				Region:   "West Zone", Zone: "West Zone",
			},
			{
				ID: "SALE000002", TransactionID: "TXN00000002", DealerID: "DEALER001",
				DealerName: "Mumbai Dealer A", SKU: "SKU12345", ProductName: "Electronics Product A1",
				Quantity: 1, UnitPrice: 12000, TotalAmount: 12000,
				SaleDate: time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC),
				Region:   "West Zone", Zone: "West Zone",
			},
			{
				ID: "SALE000003", TransactionID: "TXN00000003", DealerID: "DEALER002",
				DealerName: "Delhi Dealer B", SKU: "SKU20001", ProductName: "Tools Product B2",
				Quantity: 3, UnitPrice: 5000, TotalAmount: 15000,
				SaleDate: time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
				Region:   "North Zone", Zone: "North Zone",
			},
		},
	}
}

func newTestAssistant(store *fakeStore) *Assistant {
	return NewAssistant(
		&fakeData{ds: fixtureDataset()},
		&fakeEmbedder{},
		store,
		nil,
		Options{
			DelayMin:            0,
			DelayMax:            0,
			SearchLimit:         3,
			SimilarityThreshold: 0.3,
			VectorSearch:        true,
			Seed:                1,
		},
	)
}

func TestAnswerSKUDetail(t *testing.T) {
	a := newTestAssistant(&fakeStore{})

	result, err := a.Answer(context.Background(), "Is SKU 12345 available?", entities.RoleDealer)
	require.NoError(t, err)

	assert.Equal(t, entities.CategoryInventory, result.Metadata.Category)
	assert.Contains(t, result.Response, "Mumbai Central")
	assert.Contains(t, result.Response, "West Zone")
	assert.Contains(t, result.Response, "62 units")
	assert.Contains(t, result.Response, "Well stocked")

	detail, ok := result.Data.(entities.InventoryDetail)
	require.True(t, ok, "payload must be an inventory detail")
	assert.Equal(t, fixtureDataset().Inventory[0], detail.Item)
	assert.Equal(t, entities.StockWell, detail.Status)
	assert.Equal(t, "Stable", detail.DemandForecast)
}

func TestAnswerStockBands(t *testing.T) {
	tests := []struct {
		query   string
		status  string
		reorder string
	}{
		{"sku 12345", "Well stocked", "Stock levels adequate"},
		{"sku 20001", "Low stock", "Stock levels adequate"},
		{"sku 30001", "Critical stock level", "Consider reordering within 7 days"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			a := newTestAssistant(&fakeStore{})
			result, err := a.Answer(context.Background(), tt.query, entities.RoleAdmin)
			require.NoError(t, err)
			assert.Contains(t, result.Response, tt.status)
			assert.Contains(t, result.Response, tt.reorder)
		})
	}
}

func TestAnswerSKUNotFound(t *testing.T) {
	a := newTestAssistant(&fakeStore{})

	result, err := a.Answer(context.Background(), "Is SKU 99999 available?", entities.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, entities.CategoryInventory, result.Metadata.Category)
	assert.Nil(t, result.Data)
	assert.Contains(t, result.Response, "SKU 99999 not found")
}

func TestAnswerInventoryOverview(t *testing.T) {
	a := newTestAssistant(&fakeStore{})

	result, err := a.Answer(context.Background(), "show inventory status", entities.RoleAdmin)
	require.NoError(t, err)

	overview, ok := result.Data.(entities.InventoryOverview)
	require.True(t, ok, "payload must be an inventory overview")

	// 62*12500 + 35*8000 + 12*3000 + 25*100.
	assert.Equal(t, int64(1093500), overview.TotalValue)
	assert.Len(t, overview.LowStock, 2)
	assert.InDelta(t, 50.0, overview.StockEfficiency, 1e-9)
	assert.Contains(t, result.Response, "Stock efficiency: 50.0%")

	require.Len(t, overview.Warehouses, 3)
	assert.Equal(t, "Mumbai Central", overview.Warehouses[0].Warehouse)
	assert.Equal(t, 2, overview.Warehouses[1].SKUCount) // Delhi NCR holds two SKUs
}

func TestAnswerClaimDetail(t *testing.T) {
	a := newTestAssistant(&fakeStore{})

	result, err := a.Answer(context.Background(), "status of claim 123", entities.RoleDealer)
	require.NoError(t, err)

	assert.Equal(t, entities.CategoryClaims, result.Metadata.Category)

	detail, ok := result.Data.(entities.ClaimDetail)
	require.True(t, ok, "payload must be a claim detail")
	assert.Equal(t, "CLM000123", detail.Claim.ClaimNumber)
	assert.Equal(t, 85, detail.SuccessProbability)
	assert.Equal(t, 1, detail.SimilarClaims)
	// Resolved fixtures took 10 and 20 days.
	assert.InDelta(t, 15.0, detail.AvgResolutionDays, 1e-9)

	assert.Contains(t, result.Response, "Mumbai Dealer A")
	assert.Contains(t, result.Response, "Pending")
}

func TestAnswerClaimNotFound(t *testing.T) {
	a := newTestAssistant(&fakeStore{})

	result, err := a.Answer(context.Background(), "claim 999999", entities.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, entities.CategoryClaims, result.Metadata.Category)
	assert.Nil(t, result.Data)
	assert.Contains(t, result.Response, "Claim 999999 not found")
}

func TestAnswerClaimsOverviewRoleScoping(t *testing.T) {
	a := newTestAssistant(&fakeStore{})

	dealerResult, err := a.Answer(context.Background(), "my claims summary", entities.RoleDealer)
	require.NoError(t, err)
	dealerOverview, ok := dealerResult.Data.(entities.ClaimsOverview)
	require.True(t, ok)
	assert.LessOrEqual(t, len(dealerOverview.Recent), 5)
	for _, c := range dealerOverview.Recent {
		assert.Equal(t, "DEALER001", c.DealerID)
	}

	adminResult, err := a.Answer(context.Background(), "claims summary", entities.RoleAdmin)
	require.NoError(t, err)
	adminOverview, ok := adminResult.Data.(entities.ClaimsOverview)
	require.True(t, ok)
	assert.LessOrEqual(t, len(adminOverview.Recent), 10)
	assert.Len(t, adminOverview.Recent, 4)

	assert.Equal(t, int64(275000), adminOverview.TotalValue)
	assert.Equal(t, 1, adminOverview.StatusCounts[entities.ClaimApproved])
	assert.InDelta(t, 25.0, adminOverview.ApprovalRate, 1e-9)
}

func TestAnswerSalesOverview(t *testing.T) {
	a := newTestAssistant(&fakeStore{})

	result, err := a.Answer(context.Background(), "monthly sales performance", entities.RoleSalesRep)
	require.NoError(t, err)

	assert.Equal(t, entities.CategorySales, result.Metadata.Category)

	overview, ok := result.Data.(entities.SalesOverview)
	require.True(t, ok, "payload must be a sales overview")

	assert.Equal(t, int64(47000), overview.TotalRevenue)
	require.Len(t, overview.Monthly, 2)
	assert.Equal(t, entities.MonthRevenue{Month: "January", Revenue: 20000}, overview.Monthly[0])
	assert.Equal(t, entities.MonthRevenue{Month: "February", Revenue: 27000}, overview.Monthly[1])

	require.NotEmpty(t, overview.TopProducts)
	assert.Equal(t, "Electronics Product A1 (SKU12345)", overview.TopProducts[0].Product)
	assert.Equal(t, int64(32000), overview.TopProducts[0].Revenue)

	assert.GreaterOrEqual(t, overview.GrowthRate, 5.0)
	assert.LessOrEqual(t, overview.GrowthRate, 25.0)

	assert.Contains(t, result.Response, "Total revenue: ₹47,000")
}

func TestAnswerEmptyQueryIsGeneral(t *testing.T) {
	store := &fakeStore{}
	a := newTestAssistant(store)

	result, err := a.Answer(context.Background(), "   ", entities.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, entities.CategoryGeneral, result.Metadata.Category)
	assert.Zero(t, store.searches, "whitespace query must not hit the vector store")
	assert.Zero(t, result.Metadata.VectorResults)

	_, ok := result.Data.(entities.GeneralHelp)
	assert.True(t, ok)
	assert.Contains(t, result.Response, "I can help you with")
}

func TestAnswerGeneralFallback(t *testing.T) {
	a := newTestAssistant(&fakeStore{})

	result, err := a.Answer(context.Background(), "hello there", entities.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, entities.CategoryGeneral, result.Metadata.Category)
	assert.Contains(t, result.Response, "Is SKU 12345 available?")
}

func TestVectorResultDrivesClassification(t *testing.T) {
	store := &fakeStore{
		results: []entities.SearchResult{
			{
				Document: entities.VectorDocument{
					ID:       "claim_1",
					Metadata: map[string]string{"type": "claims"},
				},
				Similarity: 0.9,
			},
		},
	}
	a := newTestAssistant(store)

	// No category keywords at all; the vector hit decides.
	result, err := a.Answer(context.Background(), "tell me about recent activity", entities.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, entities.CategoryClaims, result.Metadata.Category)
	assert.Equal(t, 1, result.Metadata.VectorResults)
	assert.InDelta(t, 0.9, result.Metadata.TopSimilarity, 1e-9)
}

func TestLowSimilarityFallsBackToKeywords(t *testing.T) {
	store := &fakeStore{
		results: []entities.SearchResult{
			{
				Document: entities.VectorDocument{
					ID:       "sales_1",
					Metadata: map[string]string{"type": "sales"},
				},
				Similarity: 0.1,
			},
		},
	}
	a := newTestAssistant(store)

	result, err := a.Answer(context.Background(), "check my inventory", entities.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, entities.CategoryInventory, result.Metadata.Category)
}

func TestKeywordPrecedence(t *testing.T) {
	a := newTestAssistant(&fakeStore{})

	tests := []struct {
		query string
		want  entities.Category
	}{
		{"stock impact of claim payouts", entities.CategoryInventory},
		{"claim about lost revenue", entities.CategoryClaims},
		{"revenue report", entities.CategorySales},
	}
	for _, tt := range tests {
		result, err := a.Answer(context.Background(), tt.query, entities.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, tt.want, result.Metadata.Category, "query: %s", tt.query)
	}
}

func TestVectorSearchDisabled(t *testing.T) {
	store := &fakeStore{}
	a := NewAssistant(&fakeData{ds: fixtureDataset()}, &fakeEmbedder{}, store, nil, Options{
		SearchLimit:         3,
		SimilarityThreshold: 0.3,
		VectorSearch:        false,
		Seed:                1,
	})

	result, err := a.Answer(context.Background(), "monthly sales", entities.RoleAdmin)
	require.NoError(t, err)

	assert.Zero(t, store.searches)
	assert.Equal(t, entities.CategorySales, result.Metadata.Category)
}

func TestConfidenceBand(t *testing.T) {
	a := newTestAssistant(&fakeStore{})

	for i := 0; i < 20; i++ {
		result, err := a.Answer(context.Background(), "inventory overview", entities.RoleAdmin)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Metadata.Confidence, 0.85)
		assert.LessOrEqual(t, result.Metadata.Confidence, 0.95)
		assert.GreaterOrEqual(t, result.Metadata.ProcessingTimeMs, int64(0))
	}
}

func TestAnswerCancelledDuringDelay(t *testing.T) {
	a := NewAssistant(&fakeData{ds: fixtureDataset()}, &fakeEmbedder{}, &fakeStore{}, nil, Options{
		DelayMin:     50 * time.Millisecond,
		DelayMax:     100 * time.Millisecond,
		VectorSearch: true,
		Seed:         1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Answer(ctx, "inventory", entities.RoleAdmin)
	assert.ErrorIs(t, err, context.Canceled)
}
