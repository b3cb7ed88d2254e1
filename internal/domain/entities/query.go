package entities

import "time"

// StockStatus is the banding applied to an inventory quantity.
type StockStatus string

const (
	StockWell     StockStatus = "Well stocked"
	StockLow      StockStatus = "Low stock"
	StockCritical StockStatus = "Critical stock level"
)

// StockStatusFor bands a quantity: above 50 well stocked, above 20 low,
// otherwise critical.
func StockStatusFor(quantity int) StockStatus {
	switch {
	case quantity > 50:
		return StockWell
	case quantity > 20:
		return StockLow
	default:
		return StockCritical
	}
}

// ResultData is the structured payload attached to a QueryResult. Exactly
// one variant per category, replacing the untyped blob the chat UI used to
// receive.
type ResultData interface {
	// Kind names the variant for wire consumers.
	Kind() string
}

// InventoryDetail answers a SKU lookup.
type InventoryDetail struct {
	Item           InventoryItem `json:"item"`
	Status         StockStatus   `json:"status"`
	DemandForecast string        `json:"demandForecast"`
	ReorderAdvice  string        `json:"reorderAdvice"`
}

func (InventoryDetail) Kind() string { return "inventory-detail" }

// WarehouseStat summarizes one warehouse's inventory positions.
type WarehouseStat struct {
	Warehouse string  `json:"warehouse"`
	SKUCount  int     `json:"skuCount"`
	AvgStock  float64 `json:"avgStock"`
}

// InventoryOverview answers an aggregate inventory query.
type InventoryOverview struct {
	TotalValue      int64           `json:"totalValue"`
	StockEfficiency float64         `json:"stockEfficiency"`
	LowStock        []InventoryItem `json:"lowStock"`
	Warehouses      []WarehouseStat `json:"warehouses"`
}

func (InventoryOverview) Kind() string { return "inventory-overview" }

// ClaimDetail answers a claim-number lookup.
type ClaimDetail struct {
	Claim              Claim   `json:"claim"`
	AvgResolutionDays  float64 `json:"avgResolutionDays"`
	SuccessProbability int     `json:"successProbability"`
	SimilarClaims      int     `json:"similarClaims"`
}

func (ClaimDetail) Kind() string { return "claim-detail" }

// ClaimsOverview answers an aggregate claims query. Recent is role-filtered
// by the assistant before the payload is built.
type ClaimsOverview struct {
	StatusCounts map[ClaimStatus]int   `json:"statusCounts"`
	StatusValue  map[ClaimStatus]int64 `json:"statusValue"`
	TotalValue   int64                 `json:"totalValue"`
	AvgValue     int64                 `json:"avgValue"`
	ApprovalRate float64               `json:"approvalRate"`
	Recent       []Claim               `json:"recent"`
}

func (ClaimsOverview) Kind() string { return "claims-overview" }

// MonthRevenue is revenue grouped by calendar month name. The grouping key
// carries no year, matching the dataset's single-year span.
type MonthRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// ProductRevenue is aggregate quantity and revenue for one product.
type ProductRevenue struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

// SalesOverview answers a sales/revenue query. GrowthRate is cosmetic and
// randomly drawn, not derived from the data.
type SalesOverview struct {
	Monthly      []MonthRevenue   `json:"monthly"`
	TopProducts  []ProductRevenue `json:"topProducts"`
	TotalRevenue int64            `json:"totalRevenue"`
	GrowthRate   float64          `json:"growthRate"`
	BestRegion   string           `json:"bestRegion"`
}

func (SalesOverview) Kind() string { return "sales-overview" }

// GeneralHelp is the fallback payload. ContextCategory names the top vector
// hit's category when one exists, otherwise it is empty.
type GeneralHelp struct {
	ContextCategory Category `json:"contextCategory,omitempty"`
}

func (GeneralHelp) Kind() string { return "general-help" }

// QueryMetadata is the timing and confidence side channel of an answer.
// Confidence is synthetic, not a calibrated probability; ProcessingTimeMs
// excludes the simulated network delay.
type QueryMetadata struct {
	Category         Category `json:"queryType"`
	ProcessingTimeMs int64    `json:"processingTime"`
	Confidence       float64  `json:"confidence"`
	VectorResults    int      `json:"vectorResults"`
	TopSimilarity    float64  `json:"topSimilarity"`
}

// QueryResult is the assistant's full answer: rendered markdown, the typed
// payload that produced it (nil for lookup misses), and metadata.
type QueryResult struct {
	Response string        `json:"response"`
	Data     ResultData    `json:"data,omitempty"`
	Metadata QueryMetadata `json:"metadata"`
}

// QueryLogEntry is one recorded query event.
type QueryLogEntry struct {
	ID               string    `json:"id"`
	Query            string    `json:"query"`
	Role             Role      `json:"userRole"`
	Category         Category  `json:"queryType"`
	ProcessingTimeMs int64     `json:"processingTime"`
	Confidence       float64   `json:"confidence"`
	VectorResults    int       `json:"vectorResults"`
	TopSimilarity    float64   `json:"topSimilarity"`
	Timestamp        time.Time `json:"timestamp"`
}

// QueryStats is the read-side aggregation over the query log.
type QueryStats struct {
	TotalQueries    int              `json:"totalQueries"`
	AvgProcessingMs float64          `json:"avgProcessingTime"`
	AvgConfidence   float64          `json:"avgConfidence"`
	Categories      map[Category]int `json:"queryTypes"`
	RecentEntries   []QueryLogEntry  `json:"recentEntries"`
}

// RoleStats is the per-role slice of the query log.
type RoleStats struct {
	Role          Role     `json:"role"`
	Count         int      `json:"count"`
	TopCategory   Category `json:"topCategory"`
	AvgConfidence float64  `json:"avgConfidence"`
}
