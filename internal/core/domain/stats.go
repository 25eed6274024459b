package domain

type CategoryStat struct {
	Category  Category
	Total     int
	Completed int
}

// CategoryStats holds one entry per known category, in Categories order.
type CategoryStats []CategoryStat

// Get returns the entry for c, or a zero entry when c is not a known category.
func (s CategoryStats) Get(c Category) CategoryStat {
	for _, stat := range s {
		if stat.Category == c {
			return stat
		}
	}
	return CategoryStat{Category: c}
}

// NonEmpty returns the entries with at least one task, keeping order.
func (s CategoryStats) NonEmpty() CategoryStats {
	out := make(CategoryStats, 0, len(s))
	for _, stat := range s {
		if stat.Total > 0 {
			out = append(out, stat)
		}
	}
	return out
}

type TaskStats struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}
