package services

// Badge tiers awarded for login-day streaks. Thresholds are checked in
// ascending order and each met threshold overrides the previous one, so only
// the highest applies.
const (
	BadgeNone      = ""
	BadgeBronze    = "bronze"
	BadgeSilver    = "silver"
	BadgeGold      = "gold"
	BadgeLegendary = "legendary"
)

var badgeThresholds = []struct {
	MinStreak int
	Badge     string
}{
	{3, BadgeBronze},
	{7, BadgeSilver},
	{14, BadgeGold},
	{30, BadgeLegendary},
}

func BadgeForStreak(streak int) string {
	badge := BadgeNone
	for _, tier := range badgeThresholds {
		if streak >= tier.MinStreak {
			badge = tier.Badge
		}
	}
	return badge
}
