package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/teamsplit/partition"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyRoster is returned when a roster has no teams.
	ErrEmptyRoster = errors.New("cli: roster has no teams")

	// ErrEmptyValue is returned by ParseValues for a blank entry such as "1,,2".
	ErrEmptyValue = errors.New("cli: empty value")
)

// Roster is the YAML document read by `solve --roster` and written by `gen`.
//
//	groups: 2
//	size: 2
//	teams:
//	  - name: Ajax
//	    strength: 3
type Roster struct {
	Groups int          `yaml:"groups,omitempty"`
	Size   int          `yaml:"size,omitempty"`
	Teams  []RosterTeam `yaml:"teams"`
}

// RosterTeam is one roster entry.
type RosterTeam struct {
	Name     string `yaml:"name"`
	Strength int    `yaml:"strength"`
}

// LoadRoster decodes a YAML roster. Strength ranges are left to the solver.
func LoadRoster(r io.Reader) (*Roster, error) {
	var ro Roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ro); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRoster
		}
		return nil, fmt.Errorf("cli: decode roster: %w", err)
	}
	if len(ro.Teams) == 0 {
		return nil, ErrEmptyRoster
	}

	return &ro, nil
}

// WriteRoster encodes ro as YAML.
func WriteRoster(w io.Writer, ro *Roster) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ro); err != nil {
		return fmt.Errorf("cli: encode roster: %w", err)
	}

	return enc.Close()
}

// PartitionTeams converts the roster into solver teams, indexed by position.
func (ro *Roster) PartitionTeams() []partition.Team {
	teams := make([]partition.Team, len(ro.Teams))
	for i, t := range ro.Teams {
		teams[i] = partition.Team{Index: i, Name: t.Name, Strength: t.Strength}
	}

	return teams
}

// RosterFromTeams is the inverse of PartitionTeams.
func RosterFromTeams(teams []partition.Team, m, k int) *Roster {
	ro := &Roster{Groups: m, Size: k, Teams: make([]RosterTeam, len(teams))}
	for i, t := range teams {
		ro.Teams[i] = RosterTeam{Name: t.Name, Strength: t.Strength}
	}

	return ro
}

// ParseValues reads a comma-separated strength list such as "3,4,5,2".
// Teams are unnamed and print as #ID. A blank list is ErrEmptyRoster; a
// blank entry inside a list is ErrEmptyValue with its position.
func ParseValues(s string) ([]partition.Team, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyRoster
	}
	fields := strings.Split(s, ",")
	teams := make([]partition.Team, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyValue, i+1)
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("cli: value %d: %w", i+1, err)
		}
		teams = append(teams, partition.Team{Index: i, Strength: v})
	}

	return teams, nil
}
