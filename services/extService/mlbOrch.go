package extService

import (
	"encoding/json"
	"fmt"
	"net/url"

	"capperRanksBot/models/external"
	"capperRanksBot/services/common"
)

const statsAPIBase = "https://statsapi.mlb.com/api/v1"

// GetSchedule returns every game in the date window (YYYY-MM-DD inclusive),
// hydrated with linescores so first-five markets can be graded in one call.
func GetSchedule(startDate string, endDate string) ([]external.MLB_Game, error) {
	requestUrl := fmt.Sprintf("%s/schedule?sportId=1&startDate=%s&endDate=%s&hydrate=linescore",
		statsAPIBase, startDate, endDate)

	resp, err := common.StatsAPIWrapper(requestUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var schedule external.MLB_Schedule
	if err := json.NewDecoder(resp.Body).Decode(&schedule); err != nil {
		return nil, err
	}

	var games []external.MLB_Game
	for _, date := range schedule.Dates {
		games = append(games, date.Games...)
	}
	return games, nil
}

// peopleSearchURL hydrates currentTeam, which the search endpoint omits by
// default and prop grading needs to locate the player's game.
func peopleSearchURL(name string) string {
	return fmt.Sprintf("%s/people/search?names=%s&hydrate=currentTeam", statsAPIBase, url.QueryEscape(name))
}

// LookupPlayer searches the league roster for a player by name. Returns
// (nil, nil) when the name matches nobody, which callers treat as "not a
// player" rather than an error.
func LookupPlayer(name string) (*external.MLB_Person, error) {
	resp, err := common.StatsAPIWrapper(peopleSearchURL(name))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var search external.MLB_PeopleSearch
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, err
	}

	if len(search.People) == 0 {
		return nil, nil
	}
	return &search.People[0], nil
}

// GetBoxscore fetches the final boxscore for a game.
func GetBoxscore(gamePk int) (*external.MLB_Boxscore, error) {
	requestUrl := fmt.Sprintf("%s/game/%d/boxscore", statsAPIBase, gamePk)

	resp, err := common.StatsAPIWrapper(requestUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var box external.MLB_Boxscore
	if err := json.NewDecoder(resp.Body).Decode(&box); err != nil {
		return nil, err
	}
	return &box, nil
}
