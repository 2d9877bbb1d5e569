package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"agrilink/entities"
)

// renderAgreement synthesizes the plain-text agreement document. No PDF
// is produced; the stored .pdf path is a placeholder.
func renderAgreement(li *entities.LandIntegration, requestingName, targetName string) string {
	fa := li.FinancialAgreement
	ld := li.LandDetails
	return strings.TrimSpace(fmt.Sprintf(`
LAND INTEGRATION AGREEMENT

This agreement is made on %s between:

PARTY A: %s
- Land Size: %.2f acres
- Contribution Ratio: %.1f%%

PARTY B: %s
- Land Size: %.2f acres
- Contribution Ratio: %.1f%%

INTEGRATION DETAILS:
- Total Integrated Land: %.2f acres
- Integration Period: %s to %s
- Financial Contribution Ratio: %.1f%% / %.1f%%
- Profit Sharing Ratio: Same as contribution ratio

TERMS AND CONDITIONS:
1. Both parties agree to integrate their agricultural lands for the specified period.
2. All investments and profits will be shared according to the agreed ratios.
3. Either party may terminate this agreement with 30 days notice.
4. Disputes will be resolved through mutual discussion or legal mediation.

SIGNATURES:
Party A: ________________________ Date: ___________
Party B: ________________________ Date: ___________
`,
		time.Now().Format("02/01/2006"),
		requestingName,
		ld.RequestingUser.SizeInAcres,
		ld.RequestingUser.ContributionRatio,
		targetName,
		ld.TargetUser.SizeInAcres,
		ld.TargetUser.ContributionRatio,
		ld.TotalIntegratedSize,
		li.Period.StartDate.Format("02/01/2006"),
		li.Period.EndDate.Format("02/01/2006"),
		fa.ProfitSharingRatio.RequestingUser,
		fa.ProfitSharingRatio.TargetUser,
	))
}
