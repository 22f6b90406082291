package classification

import "riskprofile/internal/questionbank"

// DescriptionSet supplies the per-band wording for one questionnaire.
type DescriptionSet struct {
	Name  string
	texts map[Band]string
}

// NewDescriptionSet builds a set from band texts. Missing bands describe as
// the empty string.
func NewDescriptionSet(name string, texts map[Band]string) DescriptionSet {
	cp := make(map[Band]string, len(texts))
	for b, t := range texts {
		cp[b] = t
	}
	return DescriptionSet{Name: name, texts: cp}
}

// Describe returns the text for band b.
func (d DescriptionSet) Describe(b Band) string {
	return d.texts[b]
}

var (
	ToleranceDescriptions = NewDescriptionSet("tolerance", map[Band]string{
		Conservative:           "Prefers safety and capital preservation above all.",
		ModeratelyConservative: "Comfortable with some volatility but prioritizes capital protection.",
		Moderate:               "Seeks a balance between growth and stability.",
		ModeratelyAggressive:   "Willing to accept meaningful risk for higher potential growth.",
		Aggressive:             "Comfortable with high volatility for maximum long-term returns.",
	})

	CapacityDescriptions = NewDescriptionSet("capacity", map[Band]string{
		Conservative:           "Low flexibility or shorter-term horizon — prefers minimal risk.",
		ModeratelyConservative: "Stable finances but cautious toward uncertainty.",
		Moderate:               "Average stability and flexibility — can accept some drawdowns.",
		ModeratelyAggressive:   "Strong financial stability and capacity for risk.",
		Aggressive:             "High surplus, strong resources, and long horizon — well suited for higher risk.",
	})
)

// DescriptionsFor returns the description set used for a section.
func DescriptionsFor(id questionbank.SectionID) (DescriptionSet, bool) {
	switch id {
	case questionbank.Tolerance:
		return ToleranceDescriptions, true
	case questionbank.Capacity:
		return CapacityDescriptions, true
	}
	return DescriptionSet{}, false
}
