package models

// Tier is the subscription level controlling feature gating.
type Tier string

const (
	// TierFree grants access to the free subset of the catalog only.
	TierFree Tier = "free"
	// TierPro grants access to every gated feature.
	TierPro Tier = "pro"
	// TierUnknown marks an absent override; the user record decides.
	TierUnknown Tier = ""
)

// TierFromStatus maps a user subscription status onto a tier.
// Any status other than "active" is treated as free.
func TierFromStatus(status string) Tier {
	if status == SubscriptionStatusActive {
		return TierPro
	}
	return TierFree
}
