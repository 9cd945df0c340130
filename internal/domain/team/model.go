package team

import (
	"fmt"
	"strings"
)

// Unknown is the sentinel returned whenever a team name cannot be resolved.
const Unknown = "Unknown"

// Canonical is a franchise with its authoritative spelling and known aliases.
type Canonical struct {
	Name    string
	Aliases []string
}

func (c Canonical) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("canonical team name is required")
	}
	if strings.EqualFold(strings.TrimSpace(c.Name), Unknown) {
		return fmt.Errorf("canonical team name cannot be %q", Unknown)
	}
	for _, alias := range c.Aliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("team %s has an empty alias", c.Name)
		}
	}

	return nil
}

// Roster is the ordered set of canonical teams. Order decides fuzzy ties.
type Roster []Canonical

func (r Roster) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("roster cannot be empty")
	}
	seen := make(map[string]string, len(r)*3)
	for _, item := range r {
		if err := item.Validate(); err != nil {
			return err
		}
		names := append([]string{item.Name}, item.Aliases...)
		for _, name := range names {
			key := strings.ToLower(strings.TrimSpace(name))
			if owner, ok := seen[key]; ok && owner != item.Name {
				return fmt.Errorf("name %q registered for both %s and %s", name, owner, item.Name)
			}
			seen[key] = item.Name
		}
	}

	return nil
}

// Names returns canonical names in roster order.
func (r Roster) Names() []string {
	out := make([]string, 0, len(r))
	for _, item := range r {
		out = append(out, item.Name)
	}
	return out
}

// DefaultRoster returns the IPL franchises and the spellings seen in scorecards.
func DefaultRoster() Roster {
	return Roster{
		{Name: "Mumbai Indians", Aliases: []string{"MI", "Mumbai"}},
		{Name: "Chennai Super Kings", Aliases: []string{"CSK", "Chennai"}},
		{Name: "Royal Challengers Bengaluru", Aliases: []string{"RCB", "Bangalore", "Royal Challengers Bangalore"}},
		{Name: "Delhi Capitals", Aliases: []string{"DC", "Delhi"}},
		{Name: "Gujarat Titans", Aliases: []string{"GT"}},
		{Name: "Lucknow Super Giants", Aliases: []string{"LSG", "Lucknow"}},
		{Name: "Kolkata Knight Riders", Aliases: []string{"KKR", "Kolkata"}},
		{Name: "Punjab Kings", Aliases: []string{"PBKS", "Kings XI Punjab", "Punjab"}},
		{Name: "Rajasthan Royals", Aliases: []string{"RR", "Rajasthan"}},
		{Name: "Sunrisers Hyderabad", Aliases: []string{"SRH", "Hyderabad", "Sunrisers H"}},
	}
}
