package models

// ReferralLink is the single outbound link of the referral card
type ReferralLink struct {
	URL       string `json:"url"`
	AriaLabel string `json:"aria_label"`
	Text      string `json:"text"`
}

// ReferralSection is one heading plus its paragraph
type ReferralSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// ReferralCard holds the copy of the referral promotion block.
// Intro is rendered before the link, Followup after it.
type ReferralCard struct {
	Intro    ReferralSection `json:"intro"`
	Link     ReferralLink    `json:"link"`
	Followup ReferralSection `json:"followup"`
}
