package identity

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/cricket-stats/internal/domain/team"
)

// Player is a match-scoped identity. IDs are only unique within one match.
type Player struct {
	ID   int64
	Name string
	Team string
}

// PlaceholderName is the synthesized display name for an id with no usable name.
func PlaceholderName(id int64) string {
	return "Player ID " + strconv.FormatInt(id, 10)
}

// FielderPlaceholderName names a fielder credited by id only.
func FielderPlaceholderName(id int64) string {
	return "Fielder ID " + strconv.FormatInt(id, 10)
}

// IsGenericName reports whether name carries no real identity.
func IsGenericName(name string) bool {
	clean := strings.TrimSpace(name)
	return clean == "" ||
		clean == team.Unknown ||
		strings.HasPrefix(clean, "Player ID") ||
		strings.HasPrefix(clean, "Fielder ID") ||
		strings.HasPrefix(clean, "Bowler ID")
}

// Map is the per-match player registry plus a lowercase name index.
type Map struct {
	Team1 string
	Team2 string

	players map[int64]*Player
	order   []int64
	names   map[string]int64
	keys    []string
}

func newMap(team1, team2 string) *Map {
	return &Map{
		Team1:   team1,
		Team2:   team2,
		players: make(map[int64]*Player),
		names:   make(map[string]int64),
	}
}

// Len returns the number of registered players.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.players)
}

// Get returns the player registered under id.
func (m *Map) Get(id int64) (Player, bool) {
	if m == nil {
		return Player{}, false
	}
	p, ok := m.players[id]
	if !ok {
		return Player{}, false
	}
	return *p, true
}

// Players returns players in first-seen order.
func (m *Map) Players() []Player {
	if m == nil {
		return nil
	}
	out := make([]Player, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.players[id])
	}
	return out
}

// IDForName does an exact lookup on the lowercase name index.
func (m *Map) IDForName(name string) (int64, bool) {
	if m == nil {
		return 0, false
	}
	id, ok := m.names[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// IndexedNames returns lowercase index keys in insertion order.
func (m *Map) IndexedNames() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// HasKnownTeams reports whether both playing teams resolved and differ.
func (m *Map) HasKnownTeams() bool {
	return m != nil && team.IsKnown(m.Team1) && team.IsKnown(m.Team2) && m.Team1 != m.Team2
}

// merge applies the fullest-name-wins rule for one observed record.
func (m *Map) merge(id int64, name, teamName string) {
	newGeneric := IsGenericName(name)

	current, ok := m.players[id]
	if !ok {
		stored := name
		if newGeneric {
			stored = PlaceholderName(id)
		}
		m.players[id] = &Player{ID: id, Name: stored, Team: teamName}
		m.order = append(m.order, id)
		return
	}

	if !team.IsKnown(current.Team) && team.IsKnown(teamName) {
		current.Team = teamName
	}
	if newGeneric {
		return
	}
	if preferName(name, current.Name) {
		current.Name = name
	}
}

func (m *Map) index(name string, id int64) {
	if IsGenericName(name) {
		return
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if _, exists := m.names[key]; exists {
		return
	}
	m.names[key] = id
	m.keys = append(m.keys, key)
}

// preferName reports whether candidate should replace current.
func preferName(candidate, current string) bool {
	if IsGenericName(current) {
		return true
	}
	if len(candidate) != len(current) {
		return len(candidate) > len(current)
	}
	return strings.Count(candidate, " ") > strings.Count(current, " ")
}
