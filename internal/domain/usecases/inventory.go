package usecases

import (
	"regexp"
	"strings"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
)

var skuPattern = regexp.MustCompile(`(?i)sku\s*(\d+)`)

// reorderThreshold is the quantity below which a reorder is recommended and
// an item counts as low stock in the overview.
const reorderThreshold = 30

// answerInventory handles inventory queries: an exact SKU lookup when the
// query carries a SKU number, otherwise the aggregate overview.
func (a *Assistant) answerInventory(query string) (entities.ResultData, string) {
	dataset := a.data.Dataset()

	if m := skuPattern.FindStringSubmatch(query); m != nil {
		digits := m[1]
		for _, item := range dataset.Inventory {
			if strings.Contains(item.SKU, digits) {
				detail := buildInventoryDetail(item)
				return detail, renderInventoryDetail(detail)
			}
		}
		return nil, renderSKUNotFound(digits)
	}

	overview := buildInventoryOverview(dataset)
	return overview, renderInventoryOverview(overview)
}

func buildInventoryDetail(item entities.InventoryItem) entities.InventoryDetail {
	detail := entities.InventoryDetail{
		Item:   item,
		Status: entities.StockStatusFor(item.Quantity),
	}
	if item.Quantity > reorderThreshold {
		detail.DemandForecast = "Stable"
		detail.ReorderAdvice = "Stock levels adequate"
	} else {
		detail.DemandForecast = "High demand expected"
		detail.ReorderAdvice = "Consider reordering within 7 days"
	}
	return detail
}

func buildInventoryOverview(dataset *entities.Dataset) entities.InventoryOverview {
	overview := entities.InventoryOverview{}

	warehouseOrder := make([]string, 0, 8)
	type acc struct {
		count int
		total int
	}
	byWarehouse := make(map[string]*acc)

	for _, item := range dataset.Inventory {
		overview.TotalValue += int64(item.Quantity) * item.UnitPrice
		if item.Quantity < reorderThreshold {
			overview.LowStock = append(overview.LowStock, item)
		}
		if _, ok := byWarehouse[item.Warehouse]; !ok {
			byWarehouse[item.Warehouse] = &acc{}
			warehouseOrder = append(warehouseOrder, item.Warehouse)
		}
		byWarehouse[item.Warehouse].count++
		byWarehouse[item.Warehouse].total += item.Quantity
	}

	if n := len(dataset.Inventory); n > 0 {
		overview.StockEfficiency = float64(n-len(overview.LowStock)) / float64(n) * 100
	}

	for _, name := range warehouseOrder {
		wh := byWarehouse[name]
		overview.Warehouses = append(overview.Warehouses, entities.WarehouseStat{
			Warehouse: name,
			SKUCount:  wh.count,
			AvgStock:  float64(wh.total) / float64(wh.count),
		})
	}
	return overview
}
