package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/udisondev/acego/internal/game/combat"
)

// SideStats aggregates the outcomes of one duelist's attacks.
type SideStats struct {
	Name     string
	Wins     int
	Attacks  int
	Hits     int
	Evaded   int
	Crits    int
	Damage   uint64
	Refusals int
}

func (s *SideStats) record(out combat.Outcome) {
	s.Attacks++
	switch out.Result {
	case combat.ResultHit:
		s.Hits++
		s.Damage += uint64(out.Amount)
		if out.Damage != nil && out.Damage.Critical {
			s.Crits++
		}
	case combat.ResultEvaded:
		s.Evaded++
	case combat.ResultRefused, combat.ResultProtected:
		s.Refusals++
	}
}

// HitRate returns hits per attack.
func (s SideStats) HitRate() float64 {
	if s.Attacks == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Attacks)
}

// AvgDamage returns damage per hit.
func (s SideStats) AvgDamage() float64 {
	if s.Hits == 0 {
		return 0
	}
	return float64(s.Damage) / float64(s.Hits)
}

// Report is the aggregate result of a scenario.
type Report struct {
	Seed   uint64
	Duels  int
	Draws  int
	Rounds int
	Sides  [2]SideStats
}

// AvgRounds returns rounds per duel.
func (r Report) AvgRounds() float64 {
	if r.Duels == 0 {
		return 0
	}
	return float64(r.Rounds) / float64(r.Duels)
}

// Print writes the report as a table.
func (r Report) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "seed %d, %d duels, %d draws, %.1f rounds per duel\n\n",
		r.Seed, r.Duels, r.Draws, r.AvgRounds()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "side\twins\tattacks\thit rate\tevaded\tcrits\tavg damage")
	for _, s := range r.Sides {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f%%\t%d\t%d\t%.1f\n",
			s.Name, s.Wins, s.Attacks, 100*s.HitRate(), s.Evaded, s.Crits, s.AvgDamage())
	}
	return tw.Flush()
}
