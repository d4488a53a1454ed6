package external

type MLB_Boxscore struct {
	Teams MLB_BoxscoreTeams `json:"teams"`
}

type MLB_BoxscoreTeams struct {
	Away MLB_BoxscoreTeam `json:"away"`
	Home MLB_BoxscoreTeam `json:"home"`
}

type MLB_BoxscoreTeam struct {
	Team    MLB_Team                      `json:"team"`
	Players map[string]MLB_BoxscorePlayer `json:"players"`
}

type MLB_BoxscorePlayer struct {
	Person MLB_Person      `json:"person"`
	Stats  MLB_PlayerStats `json:"stats"`
}

type MLB_PlayerStats struct {
	Batting  MLB_BattingStats  `json:"batting"`
	Pitching MLB_PitchingStats `json:"pitching"`
}

type MLB_BattingStats struct {
	TotalBases  int `json:"totalBases"`
	Hits        int `json:"hits"`
	HomeRuns    int `json:"homeRuns"`
	RBI         int `json:"rbi"`
	Runs        int `json:"runs"`
	StolenBases int `json:"stolenBases"`
	BaseOnBalls int `json:"baseOnBalls"`
	StrikeOuts  int `json:"strikeOuts"`
}

type MLB_PitchingStats struct {
	StrikeOuts  int `json:"strikeOuts"`
	BaseOnBalls int `json:"baseOnBalls"`
	EarnedRuns  int `json:"earnedRuns"`
	Hits        int `json:"hits"`
	Outs        int `json:"outs"`
}
