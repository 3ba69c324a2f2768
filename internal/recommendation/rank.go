package recommendation

import (
	"fmt"
	"sort"

	"github.com/yungbote/edubridge-backend/internal/domain"
)

// Rank scores every catalog method and orders them by descending score.
// Equal scores keep catalog order.
func Rank(sig Signals) []domain.RecommendationMethod {
	ranked := make([]domain.RecommendationMethod, 0, len(catalog))
	for _, m := range catalog {
		score, reasons := Score(m, sig)
		ranked = append(ranked, domain.RecommendationMethod{
			Name:                string(m.Name),
			Score:               score,
			Summary:             m.Summary,
			ImplementationSteps: append([]string(nil), m.ImplementationSteps...),
			Reason:              pickReason(m, reasons),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func pickReason(m MethodProfile, reasons []string) string {
	if len(reasons) > 0 {
		return reasons[0]
	}
	fit := ""
	if len(m.BestFor) > 0 {
		fit = m.BestFor[0]
	}
	return fmt.Sprintf("Strong fit for %s.", fit)
}
