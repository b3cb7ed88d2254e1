// Package mockdata synthesizes the in-memory demo dataset. Everything is
// drawn from static lookup tables and numeric ranges; generation happens at
// most once per Generator and the snapshot is read-only afterwards.
package mockdata

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
)

var (
	cities = []string{
		"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata",
		"Pune", "Hyderabad", "Ahmedabad", "Jaipur", "Surat",
	}
	zones = []string{
		"North Zone", "South Zone", "East Zone",
		"West Zone", "Central Zone", "Northeast Zone",
	}
	warehouses = []string{
		"Mumbai Central", "Delhi NCR", "Bangalore Tech Park",
		"Chennai Port", "Kolkata Hub", "Pune Industrial",
	}
	productCategories = []string{
		"Electronics", "Machinery", "Tools",
		"Components", "Spare Parts", "Equipment",
	}
	claimReasons = []string{
		"Defective Product", "Shipping Damage", "Wrong Item",
		"Quality Issue", "Late Delivery", "Pricing Error",
	}
	claimStatuses = []entities.ClaimStatus{
		entities.ClaimPending, entities.ClaimApproved,
		entities.ClaimRejected, entities.ClaimProcessing,
	}
)

// Counts fixes the number of records per entity in a snapshot.
type Counts struct {
	Dealers   int
	Inventory int
	Claims    int
	Sales     int
}

// DefaultCounts matches the dataset the dashboard was sized for.
var DefaultCounts = Counts{Dealers: 50, Inventory: 300, Claims: 100, Sales: 1000}

// normalize substitutes the default for any non-positive count. Claims and
// sales draw from the dealer and inventory slices, so every count must stay
// positive for generation to hold its referential guarantees.
func (c Counts) normalize() Counts {
	if c.Dealers <= 0 {
		c.Dealers = DefaultCounts.Dealers
	}
	if c.Inventory <= 0 {
		c.Inventory = DefaultCounts.Inventory
	}
	if c.Claims <= 0 {
		c.Claims = DefaultCounts.Claims
	}
	if c.Sales <= 0 {
		c.Sales = DefaultCounts.Sales
	}
	return c
}

// Generator implements ports.DatasetProvider. The zero seed selects a
// time-based source; tests inject a fixed seed and clock for reproducible
// snapshots.
type Generator struct {
	counts Counts
	rng    *rand.Rand
	logger *zap.Logger
	now    func() time.Time

	once sync.Once
	data *entities.Dataset
}

// NewGenerator creates a generator with the given counts and seed.
func NewGenerator(counts Counts, seed int64, logger *zap.Logger) *Generator {
	counts = counts.normalize()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		counts: counts,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		now:    time.Now,
	}
}

// Dataset returns the memoized snapshot, generating it on first call.
func (g *Generator) Dataset() *entities.Dataset {
	g.once.Do(func() {
		g.logger.Info("generating mock manufacturing data")
		dealers := g.dealers()
		inventory := g.inventory()
		g.data = &entities.Dataset{
			Dealers:   dealers,
			Inventory: inventory,
			Claims:    g.claims(dealers),
			Sales:     g.sales(dealers, inventory),
		}
		g.logger.Info("mock data ready",
			zap.Int("dealers", len(g.data.Dealers)),
			zap.Int("inventory", len(g.data.Inventory)),
			zap.Int("claims", len(g.data.Claims)),
			zap.Int("sales", len(g.data.Sales)),
		)
	})
	return g.data
}

func (g *Generator) dealers() []entities.Dealer {
	dealers := make([]entities.Dealer, 0, g.counts.Dealers)
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= g.counts.Dealers; i++ {
		city := pick(g.rng, cities)
		zone := pick(g.rng, zones)
		dealers = append(dealers, entities.Dealer{
			ID:               fmt.Sprintf("DEALER%03d", i),
			Name:             fmt.Sprintf("%s Dealer %c", city, 'A'+i%26),
			Region:           zone,
			Zone:             zone,
			City:             city,
			ContactPerson:    fmt.Sprintf("Contact Person %d", i),
			Phone:            fmt.Sprintf("+91 %d", 9000000000+int64(i)),
			Email:            fmt.Sprintf("dealer%d@example.com", i),
			RegistrationDate: g.dateBetween(start, end),
		})
	}
	return dealers
}

func (g *Generator) inventory() []entities.InventoryItem {
	items := make([]entities.InventoryItem, 0, g.counts.Inventory)
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	now := g.now().UTC()

	for i := 1; i <= g.counts.Inventory; i++ {
		category := pick(g.rng, productCategories)
		items = append(items, entities.InventoryItem{
			ID:          fmt.Sprintf("INV%05d", i),
			SKU:         fmt.Sprintf("SKU%05d", i),
			ProductName: fmt.Sprintf("%s Product %c%d", category, 'A'+i%26, i/26+1),
			Warehouse:   pick(g.rng, warehouses),
			Zone:        pick(g.rng, zones),
			Quantity:    g.rng.Intn(200) + 5,
			UnitPrice:   g.rng.Int63n(50000) + 1000,
			LastUpdated: g.dateBetween(start, now),
			Category:    category,
		})
	}
	return items
}

func (g *Generator) claims(dealers []entities.Dealer) []entities.Claim {
	claims := make([]entities.Claim, 0, g.counts.Claims)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := g.now().UTC()

	for i := 1; i <= g.counts.Claims; i++ {
		dealer := pick(g.rng, dealers)
		submitted := g.dateBetween(start, now)
		status := pick(g.rng, claimStatuses)
		claimNumber := fmt.Sprintf("CLM%06d", i)

		var resolved *time.Time
		if status.Terminal() {
			t := g.dateBetween(submitted, now)
			resolved = &t
		}

		reason := pick(g.rng, claimReasons)
		claims = append(claims, entities.Claim{
			ID:            fmt.Sprintf("CLAIM%05d", i),
			ClaimNumber:   claimNumber,
			DealerID:      dealer.ID,
			DealerName:    dealer.Name,
			Amount:        g.rng.Int63n(100000) + 5000,
			Status:        status,
			SubmittedDate: submitted,
			ResolvedDate:  resolved,
			Reason:        reason,
			Description: fmt.Sprintf("Detailed description for claim %s regarding %s.",
				claimNumber, strings.ToLower(pick(g.rng, claimReasons))),
		})
	}
	return claims
}

func (g *Generator) sales(dealers []entities.Dealer, inventory []entities.InventoryItem) []entities.SalesTransaction {
	sales := make([]entities.SalesTransaction, 0, g.counts.Sales)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := g.now().UTC()

	for i := 1; i <= g.counts.Sales; i++ {
		dealer := pick(g.rng, dealers)
		product := pick(g.rng, inventory)
		quantity := g.rng.Intn(20) + 1
		// ±20% jitter off the catalog price, truncated to whole rupees.
		unitPrice := int64(float64(product.UnitPrice) * (0.8 + g.rng.Float64()*0.4))

		sales = append(sales, entities.SalesTransaction{
			ID:            fmt.Sprintf("SALE%06d", i),
			TransactionID: fmt.Sprintf("TXN%08d", i),
			DealerID:      dealer.ID,
			DealerName:    dealer.Name,
			SKU:           product.SKU,
			ProductName:   product.ProductName,
			Quantity:      quantity,
			UnitPrice:     unitPrice,
			TotalAmount:   int64(quantity) * unitPrice,
			SaleDate:      g.dateBetween(start, now),
			Region:        dealer.Region,
			Zone:          dealer.Zone,
		})
	}
	return sales
}

func (g *Generator) dateBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	delta := end.Sub(start)
	return start.Add(time.Duration(g.rng.Int63n(int64(delta))))
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
