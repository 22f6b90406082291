// Package classification maps section totals to qualitative risk bands.
package classification

import (
	"errors"
	"fmt"
)

var ErrScoreOutOfRange = errors.New("score out of range")

// Band is one of the five ordered risk levels. Lower is more conservative.
type Band int

const (
	Conservative Band = iota
	ModeratelyConservative
	Moderate
	ModeratelyAggressive
	Aggressive
)

// Bands lists every band from most to least conservative.
var Bands = []Band{Conservative, ModeratelyConservative, Moderate, ModeratelyAggressive, Aggressive}

var labels = [...]string{
	Conservative:           "Conservative",
	ModeratelyConservative: "Moderately Conservative",
	Moderate:               "Moderate",
	ModeratelyAggressive:   "Moderately Aggressive",
	Aggressive:             "Aggressive",
}

// shortLabels are used where column space is tight.
var shortLabels = [...]string{
	Conservative:           "Conservative",
	ModeratelyConservative: "Mod. Conservative",
	Moderate:               "Moderate",
	ModeratelyAggressive:   "Mod. Aggressive",
	Aggressive:             "Aggressive",
}

// Label returns the display name of the band.
func (b Band) Label() string {
	if !b.Valid() {
		return fmt.Sprintf("Band(%d)", int(b))
	}
	return labels[b]
}

// ShortLabel returns the abbreviated display name.
func (b Band) ShortLabel() string {
	if !b.Valid() {
		return b.Label()
	}
	return shortLabels[b]
}

func (b Band) String() string { return b.Label() }

// Valid reports whether b is one of the five bands.
func (b Band) Valid() bool { return b >= Conservative && b <= Aggressive }

// BandFromLabel resolves a full or short label back to its band.
func BandFromLabel(label string) (Band, bool) {
	for _, b := range Bands {
		if labels[b] == label || shortLabels[b] == label {
			return b, true
		}
	}
	return 0, false
}

// MoreConservative returns whichever of a and b sits lower in the band order.
func MoreConservative(a, b Band) Band {
	if b < a {
		return b
	}
	return a
}

// bandRange is an inclusive total-score range.
type bandRange struct {
	min, max int
	band     Band
}

// boundaries is shared by every section.
var boundaries = []bandRange{
	{8, 13, Conservative},
	{14, 20, ModeratelyConservative},
	{21, 27, Moderate},
	{28, 34, ModeratelyAggressive},
	{35, 40, Aggressive},
}

// Level is a classified score.
type Level struct {
	Band        Band   `json:"-" yaml:"-"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

// BandFor returns the band whose range contains total.
func BandFor(total int) (Band, error) {
	for _, r := range boundaries {
		if total >= r.min && total <= r.max {
			return r.band, nil
		}
	}
	return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrScoreOutOfRange, total,
		boundaries[0].min, boundaries[len(boundaries)-1].max)
}

// Classify maps a section total to its band and the description set's text
// for that band.
func Classify(total int, set DescriptionSet) (Level, error) {
	band, err := BandFor(total)
	if err != nil {
		return Level{}, err
	}
	return Level{
		Band:        band,
		Label:       band.Label(),
		Description: set.Describe(band),
	}, nil
}
