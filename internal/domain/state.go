package domain

// StateCount is the size of the state lookup table.
const StateCount = 50

// Immutable pairing of a US state name and its USPS abbreviation.
type StateEntry struct {
	Name         string
	Abbreviation string
}

var usStates = [StateCount]StateEntry{
	{"Alabama", "AL"},
	{"Alaska", "AK"},
	{"Arizona", "AZ"},
	{"Arkansas", "AR"},
	{"California", "CA"},
	{"Colorado", "CO"},
	{"Connecticut", "CT"},
	{"Delaware", "DE"},
	{"Florida", "FL"},
	{"Georgia", "GA"},
	{"Hawaii", "HI"},
	{"Idaho", "ID"},
	{"Illinois", "IL"},
	{"Indiana", "IN"},
	{"Iowa", "IA"},
	{"Kansas", "KS"},
	{"Kentucky", "KY"},
	{"Louisiana", "LA"},
	{"Maine", "ME"},
	{"Maryland", "MD"},
	{"Massachusetts", "MA"},
	{"Michigan", "MI"},
	{"Minnesota", "MN"},
	{"Mississippi", "MS"},
	{"Missouri", "MO"},
	{"Montana", "MT"},
	{"Nebraska", "NE"},
	{"Nevada", "NV"},
	{"New Hampshire", "NH"},
	{"New Jersey", "NJ"},
	{"New Mexico", "NM"},
	{"New York", "NY"},
	{"North Carolina", "NC"},
	{"North Dakota", "ND"},
	{"Ohio", "OH"},
	{"Oklahoma", "OK"},
	{"Oregon", "OR"},
	{"Pennsylvania", "PA"},
	{"Rhode Island", "RI"},
	{"South Carolina", "SC"},
	{"South Dakota", "SD"},
	{"Tennessee", "TN"},
	{"Texas", "TX"},
	{"Utah", "UT"},
	{"Vermont", "VT"},
	{"Virginia", "VA"},
	{"Washington", "WA"},
	{"West Virginia", "WV"},
	{"Wisconsin", "WI"},
	{"Wyoming", "WY"},
}

// States returns a copy of the built-in table in alphabetical order.
func States() []StateEntry {
	out := make([]StateEntry, StateCount)
	copy(out, usStates[:])
	return out
}

// Represents one quiz prompt plus the running tallies.
// Round starts at 1 and only grows; Score counts correct answers.
type QuizRound struct {
	State StateEntry
	Score int
	Round int
}

// Outcome of judging one answer. Next is always a freshly drawn round.
type AnswerResult struct {
	Correct      bool
	Expected     StateEntry
	Score        int
	Next         QuizRound
	Notification Notification
}
