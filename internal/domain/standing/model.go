package standing

// TeamStanding is one row of the points table.
type TeamStanding struct {
	Position   int
	Team       string
	Matches    int
	Won        int
	Lost       int
	Tied       int
	NoResult   int
	Points     int
	NetRunRate float64
}
