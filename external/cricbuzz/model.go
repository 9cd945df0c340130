package cricbuzz

type seriesEnvelope struct {
	MatchDetails []matchDetailGroup `json:"matchDetails"`
}

// matchDetailGroup is either a dated block of matches or an ad slot; ad
// slots carry no matchDetailsMap.
type matchDetailGroup struct {
	MatchDetailsMap *matchDetailsMap `json:"matchDetailsMap"`
}

type matchDetailsMap struct {
	Key   string        `json:"key"`
	Match []seriesMatch `json:"match"`
}

type seriesMatch struct {
	MatchInfo matchInfo `json:"matchInfo"`
}

type matchInfo struct {
	MatchID     int64     `json:"matchId"`
	SeriesID    int64     `json:"seriesId"`
	MatchDesc   string    `json:"matchDesc"`
	MatchFormat string    `json:"matchFormat"`
	State       string    `json:"state"`
	Status      string    `json:"status"`
	Team1       teamBrief `json:"team1"`
	Team2       teamBrief `json:"team2"`
}

type teamBrief struct {
	TeamID    int64  `json:"teamId"`
	TeamName  string `json:"teamName"`
	TeamSName string `json:"teamSName"`
}
