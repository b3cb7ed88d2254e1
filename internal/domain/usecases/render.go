package usecases

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
)

// Rendering is a pure function over the typed payloads: the payload stays
// the source of truth and the markdown is derived, never the other way
// around.

const dateLayout = "02 Jan 2006"

func renderInventoryDetail(d entities.InventoryDetail) string {
	var sb strings.Builder
	item := d.Item

	fmt.Fprintf(&sb, "**SKU %s - %s**\n\n", item.SKU, item.ProductName)
	fmt.Fprintf(&sb, "**Warehouse:** %s\n", item.Warehouse)
	fmt.Fprintf(&sb, "**Zone:** %s\n", item.Zone)
	fmt.Fprintf(&sb, "**Available Quantity:** %d units\n", item.Quantity)
	fmt.Fprintf(&sb, "**Unit Price:** %s\n", formatINR(item.UnitPrice))
	fmt.Fprintf(&sb, "**Last Updated:** %s\n\n", item.LastUpdated.Format(dateLayout))
	fmt.Fprintf(&sb, "**Status:** %s\n\n", d.Status)
	sb.WriteString("**Insights:**\n")
	fmt.Fprintf(&sb, "- Demand forecast: %s\n", d.DemandForecast)
	fmt.Fprintf(&sb, "- Reorder recommendation: %s", d.ReorderAdvice)
	return sb.String()
}

func renderSKUNotFound(digits string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SKU %s not found in our inventory system. Please verify the SKU number.\n\n", digits)
	sb.WriteString("**Suggestions:**\n")
	sb.WriteString("- Check for similar SKUs in the same category\n")
	sb.WriteString("- Contact inventory management for discontinued items\n")
	fmt.Fprintf(&sb, "- Try a wildcard search like \"Show products like %s\"", digits)
	return sb.String()
}

func renderInventoryOverview(o entities.InventoryOverview) string {
	var sb strings.Builder

	sb.WriteString("**Inventory Overview**\n\n")
	fmt.Fprintf(&sb, "- Total inventory value: %s\n", formatINR(o.TotalValue))
	fmt.Fprintf(&sb, "- Stock efficiency: %.1f%%\n\n", o.StockEfficiency)

	fmt.Fprintf(&sb, "**Low Stock Items (< %d units):**\n", reorderThreshold)
	shown := o.LowStock
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, item := range shown {
		urgency := "MEDIUM"
		if item.Quantity < 10 {
			urgency = "HIGH"
		}
		fmt.Fprintf(&sb, "- %s (%s): %d units in %s - urgency %s\n",
			item.ProductName, item.SKU, item.Quantity, item.Warehouse, urgency)
	}

	sb.WriteString("\n**Warehouse Performance:**\n")
	for _, wh := range o.Warehouses {
		fmt.Fprintf(&sb, "- %s: %d SKUs, avg stock %.0f units\n",
			wh.Warehouse, wh.SKUCount, wh.AvgStock)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderClaimDetail(d entities.ClaimDetail) string {
	var sb strings.Builder
	claim := d.Claim

	fmt.Fprintf(&sb, "**Claim %s**\n\n", claim.ClaimNumber)
	fmt.Fprintf(&sb, "**Dealer:** %s\n", claim.DealerName)
	fmt.Fprintf(&sb, "**Amount:** %s\n", formatINR(claim.Amount))
	fmt.Fprintf(&sb, "**Submitted:** %s\n", claim.SubmittedDate.Format(dateLayout))
	if claim.ResolvedDate != nil {
		fmt.Fprintf(&sb, "**Resolved:** %s\n", claim.ResolvedDate.Format(dateLayout))
	}
	fmt.Fprintf(&sb, "**Status:** %s\n", claim.Status)
	fmt.Fprintf(&sb, "**Reason:** %s\n", claim.Reason)
	fmt.Fprintf(&sb, "**Description:** %s\n\n", claim.Description)

	sb.WriteString("**Predictions:**\n")
	if claim.Status == entities.ClaimPending {
		fmt.Fprintf(&sb, "- Expected resolution: %.0f days (based on historical data)\n", d.AvgResolutionDays)
	} else {
		sb.WriteString("- Expected resolution: Resolved\n")
	}
	fmt.Fprintf(&sb, "- Success probability: %d%%\n", d.SuccessProbability)
	fmt.Fprintf(&sb, "- Similar claims: %d found\n\n", d.SimilarClaims)

	switch claim.Status {
	case entities.ClaimPending:
		sb.WriteString("Your claim is being processed; typical turnaround is 2-3 business days.")
	case entities.ClaimApproved:
		sb.WriteString("Approved. Payment processing has been initiated.")
	case entities.ClaimRejected:
		sb.WriteString("Rejected. Contact support to start the appeal process.")
	default:
		sb.WriteString("Advanced processing is in progress.")
	}
	return sb.String()
}

func renderClaimNotFound(digits string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Claim %s not found.\n\n", digits)
	sb.WriteString("**Suggestions:**\n")
	sb.WriteString("- Try searching with a partial claim number\n")
	sb.WriteString("- Check for typos in the claim number\n")
	sb.WriteString("- Contact support with your dealer ID for a manual lookup")
	return sb.String()
}

var claimStatusOrder = []entities.ClaimStatus{
	entities.ClaimPending,
	entities.ClaimApproved,
	entities.ClaimRejected,
	entities.ClaimProcessing,
}

func renderClaimsOverview(o entities.ClaimsOverview) string {
	var sb strings.Builder

	sb.WriteString("**Claims Overview**\n\n")
	fmt.Fprintf(&sb, "- Total claim value: %s\n", formatINR(o.TotalValue))
	fmt.Fprintf(&sb, "- Average claim: %s\n", formatINR(o.AvgValue))
	fmt.Fprintf(&sb, "- Approval rate: %.1f%%\n\n", o.ApprovalRate)

	sb.WriteString("**Status Distribution:**\n")
	for _, status := range claimStatusOrder {
		if count, ok := o.StatusCounts[status]; ok {
			fmt.Fprintf(&sb, "- %s: %d claims (%s)\n", status, count, formatINR(o.StatusValue[status]))
		}
	}

	sb.WriteString("\n**Recent Activity:**\n")
	for _, claim := range o.Recent {
		fmt.Fprintf(&sb, "- %s - %s (%s) - %s\n",
			claim.ClaimNumber, formatINR(claim.Amount), claim.Status, claim.Reason)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderSalesOverview(o entities.SalesOverview) string {
	var sb strings.Builder

	sb.WriteString("**Sales Overview**\n\n")
	fmt.Fprintf(&sb, "- Total revenue: %s\n", formatINR(o.TotalRevenue))
	fmt.Fprintf(&sb, "- Growth rate: +%.1f%% (projected)\n\n", o.GrowthRate)

	sb.WriteString("**Monthly Performance:**\n")
	months := o.Monthly
	if len(months) > 3 {
		months = months[len(months)-3:]
	}
	for _, m := range months {
		fmt.Fprintf(&sb, "- %s: %s\n", m.Month, formatINR(m.Revenue))
	}

	sb.WriteString("\n**Top Revenue Generators:**\n")
	for _, p := range o.TopProducts {
		fmt.Fprintf(&sb, "- %s: %d units, %s\n", p.Product, p.Quantity, formatINR(p.Revenue))
	}

	if o.BestRegion != "" {
		fmt.Fprintf(&sb, "\n**Best performing region:** %s\n", o.BestRegion)
	}

	sb.WriteString("\n**Recommendations:**\n")
	if len(o.TopProducts) > 0 {
		fmt.Fprintf(&sb, "- Focus on %s - highest revenue contribution\n", o.TopProducts[0].Product)
	}
	sb.WriteString("- Review pricing on slow-moving SKUs\n")
	sb.WriteString("- Rebalance stock toward the strongest region")
	return sb.String()
}

func renderGeneralHelp(h entities.GeneralHelp) string {
	var sb strings.Builder

	sb.WriteString("**Hello! I'm your manufacturing assistant.**")
	if h.ContextCategory != "" && h.ContextCategory != entities.CategoryGeneral {
		fmt.Fprintf(&sb, " I found related information about %s in my knowledge base.", h.ContextCategory)
	}
	sb.WriteString("\n\n**I can help you with:**\n\n")

	sb.WriteString("**Inventory:**\n")
	sb.WriteString("- \"Is SKU 12345 available?\"\n")
	sb.WriteString("- \"Show critical stock levels\"\n\n")

	sb.WriteString("**Claims:**\n")
	sb.WriteString("- \"Status of claim 90876\"\n")
	sb.WriteString("- \"My pending claims summary\"\n\n")

	sb.WriteString("**Sales:**\n")
	sb.WriteString("- \"Monthly sales performance\"\n")
	sb.WriteString("- \"Top selling products\"")
	return sb.String()
}

// formatINR renders whole rupees with Indian digit grouping: the last three
// digits, then groups of two (₹12,34,567).
func formatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return "₹" + sign + digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return "₹" + sign + strings.Join(groups, ",") + "," + tail
}
