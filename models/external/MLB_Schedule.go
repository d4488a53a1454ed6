package external

type MLB_Schedule struct {
	TotalGames int                `json:"totalGames"`
	Dates      []MLB_ScheduleDate `json:"dates"`
}

type MLB_ScheduleDate struct {
	Date  string     `json:"date"`
	Games []MLB_Game `json:"games"`
}

type MLB_Game struct {
	GamePk    int            `json:"gamePk"`
	GameDate  string         `json:"gameDate"`
	Status    MLB_GameStatus `json:"status"`
	Teams     MLB_GameTeams  `json:"teams"`
	Linescore MLB_Linescore  `json:"linescore"`
}

type MLB_GameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type MLB_GameTeams struct {
	Away MLB_GameTeam `json:"away"`
	Home MLB_GameTeam `json:"home"`
}

type MLB_GameTeam struct {
	Score    *int     `json:"score"`
	IsWinner *bool    `json:"isWinner"`
	Team     MLB_Team `json:"team"`
}

type MLB_Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MLB_Linescore struct {
	CurrentInning int          `json:"currentInning"`
	Innings       []MLB_Inning `json:"innings"`
}

type MLB_Inning struct {
	Num  int            `json:"num"`
	Home MLB_InningHalf `json:"home"`
	Away MLB_InningHalf `json:"away"`
}

type MLB_InningHalf struct {
	Runs *int `json:"runs"`
}
