package metrics

import "slices"

// Summary aggregates the games of one player config.
type Summary struct {
	Config        int
	Name          string
	Games         int
	Wins          int
	MeanTurns     float64
	MedianTurns   float64
	MeanBusts     float64
	MeanRolls     float64
	PointsPerTurn float64 // Banked points over all turns, busts included
}

// Summarize groups records by config, in order of first appearance.
func Summarize(records []GameRecord) []Summary {
	order := []int{}
	groups := map[int][]GameRecord{}
	for _, r := range records {
		if _, ok := groups[r.Config]; !ok {
			order = append(order, r.Config)
		}
		groups[r.Config] = append(groups[r.Config], r)
	}

	summaries := make([]Summary, 0, len(order))
	for _, config := range order {
		summaries = append(summaries, summarize(config, groups[config]))
	}
	return summaries
}

func summarize(config int, records []GameRecord) Summary {
	s := Summary{Config: config, Name: records[0].Player, Games: len(records)}

	turns := make([]int, len(records))
	totalTurns, busts, rolls, points := 0, 0, 0, 0
	for i, r := range records {
		if r.Won {
			s.Wins++
		}
		turns[i] = r.Turns
		totalTurns += r.Turns
		busts += r.Busts
		rolls += r.Rolls
		points += r.TotalScore
	}

	n := float64(len(records))
	s.MeanTurns = float64(totalTurns) / n
	s.MedianTurns = median(turns)
	s.MeanBusts = float64(busts) / n
	s.MeanRolls = float64(rolls) / n
	if totalTurns > 0 {
		s.PointsPerTurn = float64(points) / float64(totalTurns)
	}
	return s
}

func median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
