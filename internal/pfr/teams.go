package pfr

import "sort"

// Team ties a franchise name (as PFR prints it in the opp column) to its URL
// path and home city. Historical names share the current franchise's path.
type Team struct {
	Name string
	Path string // https://www.pro-football-reference.com/teams/{Path}/{season}.htm
	City string
}

var teams = []Team{
	{Name: "Arizona Cardinals", Path: "crd", City: "Phoenix"},
	{Name: "Phoenix Cardinals", Path: "crd", City: "Phoenix"},
	{Name: "St. Louis Cardinals", Path: "crd", City: "St. Louis"},
	{Name: "Atlanta Falcons", Path: "atl", City: "Atlanta"},
	{Name: "Baltimore Ravens", Path: "rav", City: "Baltimore"},
	{Name: "Buffalo Bills", Path: "buf", City: "Buffalo"},
	{Name: "Carolina Panthers", Path: "car", City: "Charlotte"},
	{Name: "Chicago Bears", Path: "chi", City: "Chicago"},
	{Name: "Cincinnati Bengals", Path: "cin", City: "Cincinnati"},
	{Name: "Cleveland Browns", Path: "cle", City: "Cleveland"},
	{Name: "Dallas Cowboys", Path: "dal", City: "Dallas"},
	{Name: "Denver Broncos", Path: "den", City: "Denver"},
	{Name: "Detroit Lions", Path: "det", City: "Detroit"},
	{Name: "Green Bay Packers", Path: "gnb", City: "Green Bay"},
	{Name: "Houston Texans", Path: "htx", City: "Houston"},
	{Name: "Indianapolis Colts", Path: "clt", City: "Indianapolis"},
	{Name: "Baltimore Colts", Path: "clt", City: "Baltimore"},
	{Name: "Jacksonville Jaguars", Path: "jax", City: "Jacksonville"},
	{Name: "Kansas City Chiefs", Path: "kan", City: "Kansas City"},
	{Name: "Las Vegas Raiders", Path: "rai", City: "Las Vegas"},
	{Name: "Oakland Raiders", Path: "rai", City: "Oakland"},
	{Name: "Los Angeles Chargers", Path: "sdg", City: "Los Angeles"},
	{Name: "San Diego Chargers", Path: "sdg", City: "San Diego"},
	{Name: "Los Angeles Rams", Path: "ram", City: "Los Angeles"},
	{Name: "St. Louis Rams", Path: "ram", City: "St. Louis"},
	{Name: "Miami Dolphins", Path: "mia", City: "Miami"},
	{Name: "Minnesota Vikings", Path: "min", City: "Minneapolis"},
	{Name: "New England Patriots", Path: "nwe", City: "Boston"},
	{Name: "Boston Patriots", Path: "nwe"}, // no city entry: distance degrades to missing
	{Name: "New Orleans Saints", Path: "nor", City: "New Orleans"},
	{Name: "New York Giants", Path: "nyg", City: "New York"},
	{Name: "New York Jets", Path: "nyj", City: "New York"},
	{Name: "Philadelphia Eagles", Path: "phi", City: "Philadelphia"},
	{Name: "Pittsburgh Steelers", Path: "pit", City: "Pittsburgh"},
	{Name: "San Francisco 49ers", Path: "sfo", City: "San Francisco"},
	{Name: "Seattle Seahawks", Path: "sea", City: "Seattle"},
	{Name: "Tampa Bay Buccaneers", Path: "tam", City: "Tampa Bay"},
	{Name: "Tennessee Titans", Path: "oti", City: "Nashville"},
	{Name: "Tennessee Oilers", Path: "oti", City: "Nashville"},
	{Name: "Houston Oilers", Path: "oti", City: "Houston"},
	{Name: "Washington Commanders", Path: "was", City: "Washington DC"},
	{Name: "Washington Football Team", Path: "was", City: "Washington DC"},
	{Name: "Washington Redskins", Path: "was", City: "Washington DC"},
}

// Reference holds the read-only lookup tables. Build it once and share it.
type Reference struct {
	paths     map[string]string
	cities    map[string]string
	locations map[string]CityLocation
}

// NewReference copies the given tables. A team with an empty City has a
// path but no home city.
func NewReference(ts []Team, locs []CityLocation) *Reference {
	r := &Reference{
		paths:     make(map[string]string, len(ts)),
		cities:    make(map[string]string, len(ts)),
		locations: make(map[string]CityLocation, len(locs)),
	}
	for _, t := range ts {
		r.paths[t.Name] = t.Path
		if t.City != "" {
			r.cities[t.Name] = t.City
		}
	}
	for _, l := range locs {
		r.locations[l.Name] = l
	}
	return r
}

// DefaultReference builds the tables from the built-in team and city data.
func DefaultReference() *Reference {
	return NewReference(teams, locations)
}

// TeamPath returns the PFR URL path for a full team name ("Kansas City Chiefs" -> "kan").
func (r *Reference) TeamPath(name string) (string, bool) {
	p, ok := r.paths[name]
	return p, ok
}

func (r *Reference) TeamCity(name string) (string, bool) {
	c, ok := r.cities[name]
	return c, ok
}

func (r *Reference) Location(city string) (CityLocation, bool) {
	l, ok := r.locations[city]
	return l, ok
}

// TeamNames lists every known team name, sorted.
func (r *Reference) TeamNames() []string {
	out := make([]string, 0, len(r.paths))
	for n := range r.paths {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
