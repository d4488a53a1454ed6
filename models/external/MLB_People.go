package external

type MLB_PeopleSearch struct {
	People []MLB_Person `json:"people"`
}

type MLB_Person struct {
	ID          int      `json:"id"`
	FullName    string   `json:"fullName"`
	Active      bool     `json:"active"`
	CurrentTeam MLB_Team `json:"currentTeam"`
}
