package messaging

import "math/rand"

// HoleResult is the name of a hole score relative to par
type HoleResult string

const (
	HoleResultHoleInOne   HoleResult = "hole_in_one"
	HoleResultAlbatross   HoleResult = "albatross"
	HoleResultEagle       HoleResult = "eagle"
	HoleResultBirdie      HoleResult = "birdie"
	HoleResultPar         HoleResult = "par"
	HoleResultBogey       HoleResult = "bogey"
	HoleResultDoubleBogey HoleResult = "double_bogey"
	HoleResultTripleBogey HoleResult = "triple_bogey"

	// HoleResultUnder and HoleResultOver cover everything without a name
	HoleResultUnder HoleResult = "under"
	HoleResultOver  HoleResult = "over"
)

// Relation is the direction of a score relative to par
type Relation string

const (
	RelationUnder Relation = "under"
	RelationEven  Relation = "even"
	RelationOver  Relation = "over"
)

// Badge is the podium badge of a ranked player
type Badge string

const (
	BadgeNone   Badge = ""
	BadgeGold   Badge = "gold"
	BadgeSilver Badge = "silver"
	BadgeBronze Badge = "bronze"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// GetHoleResultInput contains the hole score to name
type GetHoleResultInput struct {
	Strokes int
	Par     int
}

// GetHoleResultOutput contains the named hole score
type GetHoleResultOutput struct {
	// Result is the machine readable term
	Result HoleResult

	// Label is the display term, "+4" or "-4" for unnamed results
	Label string

	// Diff is strokes minus par
	Diff int

	Relation Relation
}

// GetScoreEntryMessageInput contains parameters for a score entry message
type GetScoreEntryMessageInput struct {
	PlayerName string
	HoleNumber int
	Strokes    int
	Par        int
}

// GetScoreEntryMessageOutput contains the generated score entry message
type GetScoreEntryMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
	Result  HoleResult
	Label   string
}

// GetRankBadgeInput contains the rank to badge
type GetRankBadgeInput struct {
	Rank int
}

// GetRankBadgeOutput contains the podium badge
type GetRankBadgeOutput struct {
	Badge Badge
}

// GetProgressMessageInput contains the round progress
type GetProgressMessageInput struct {
	CurrentHole int
	Completed   int
	Total       int
}

// GetProgressMessageOutput contains the generated progress message
type GetProgressMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand selects between message variants, seeded from the clock when nil
	Rand *rand.Rand
}
