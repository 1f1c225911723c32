package content

import "folio.dev/internal/models"

// ReferralURL is the destination of the referral card link.
const ReferralURL = "https://dub.sh/deel-cn"

// Referral returns the referral card copy
func Referral() models.ReferralCard {
	return models.ReferralCard{
		Intro: models.ReferralSection{
			Heading: "Building a global team?",
			Body:    "Join Deel to hire in 150 countries in minutes without worrying about local laws, opening a new entity, or managing international payroll.",
		},
		Link: models.ReferralLink{
			URL:       ReferralURL,
			AriaLabel: "Deel referral link to hire globally",
			Text:      "Try Deel →",
		},
		Followup: models.ReferralSection{
			Heading: "Want to hire Chinese Developers via Deel?",
			Body:    "If you're open to hiring Chinese developers (1,000k+ in my network; Some of them are former Microsoft/Citibank engineers), you can get a few discounts by contacting me.",
		},
	}
}
