package usecases

import (
	"regexp"
	"strings"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
)

var claimPattern = regexp.MustCompile(`(?i)claim\s*(\d+)`)

// placeholderDealerID stands in for a real per-session dealer identity; the
// demo has no authenticated session to scope by.
const placeholderDealerID = "DEALER001"

// answerClaims handles claims queries: a claim-number lookup when the query
// carries one, otherwise the role-filtered aggregate view.
func (a *Assistant) answerClaims(query string, role entities.Role) (entities.ResultData, string) {
	dataset := a.data.Dataset()

	if m := claimPattern.FindStringSubmatch(query); m != nil {
		digits := m[1]
		for _, claim := range dataset.Claims {
			if strings.Contains(claim.ClaimNumber, digits) {
				detail := buildClaimDetail(claim, dataset.Claims)
				return detail, renderClaimDetail(detail)
			}
		}
		return nil, renderClaimNotFound(digits)
	}

	overview := buildClaimsOverview(dataset.Claims, role)
	return overview, renderClaimsOverview(overview)
}

func buildClaimDetail(claim entities.Claim, all []entities.Claim) entities.ClaimDetail {
	detail := entities.ClaimDetail{
		Claim:              claim,
		AvgResolutionDays:  avgResolutionDays(all),
		SuccessProbability: successProbability(claim.Amount),
	}
	for _, other := range all {
		if other.ID != claim.ID && other.Reason == claim.Reason {
			detail.SimilarClaims++
		}
	}
	return detail
}

// avgResolutionDays is the mean resolved−submitted duration in days over all
// resolved claims.
func avgResolutionDays(claims []entities.Claim) float64 {
	var totalHours float64
	var resolved int
	for _, c := range claims {
		if c.ResolvedDate == nil {
			continue
		}
		totalHours += c.ResolvedDate.Sub(c.SubmittedDate).Hours()
		resolved++
	}
	if resolved == 0 {
		return 0
	}
	return totalHours / 24 / float64(resolved)
}

// successProbability bands by amount. Synthetic, like the rest of the
// "AI predictions".
func successProbability(amount int64) int {
	switch {
	case amount < 50000:
		return 85
	case amount < 100000:
		return 70
	default:
		return 55
	}
}

func buildClaimsOverview(claims []entities.Claim, role entities.Role) entities.ClaimsOverview {
	overview := entities.ClaimsOverview{
		StatusCounts: make(map[entities.ClaimStatus]int),
		StatusValue:  make(map[entities.ClaimStatus]int64),
	}

	for _, c := range claims {
		overview.StatusCounts[c.Status]++
		overview.StatusValue[c.Status] += c.Amount
		overview.TotalValue += c.Amount
	}
	if len(claims) > 0 {
		overview.AvgValue = overview.TotalValue / int64(len(claims))
		overview.ApprovalRate = float64(overview.StatusCounts[entities.ClaimApproved]) / float64(len(claims)) * 100
	}

	overview.Recent = recentClaims(claims, role)
	return overview
}

// recentClaims scopes the list by role: dealers see the placeholder dealer's
// claims capped at 5, everyone else the first 10 unfiltered.
func recentClaims(claims []entities.Claim, role entities.Role) []entities.Claim {
	limit := 10
	if role == entities.RoleDealer {
		limit = 5
	}

	recent := make([]entities.Claim, 0, limit)
	for _, c := range claims {
		if role == entities.RoleDealer && c.DealerID != placeholderDealerID {
			continue
		}
		recent = append(recent, c)
		if len(recent) == limit {
			break
		}
	}
	return recent
}
