package progress

// MilestoneDef is one row of the static threshold tables. The tables are
// ordered ascending by Seconds; CrossedMilestones relies on that.
type MilestoneDef struct {
	Name    string
	Label   string
	Emoji   string
	Seconds int64
}

var Milestones = []MilestoneDef{
	{Name: "Beginner", Seconds: 600, Label: "10 minutes"},
	{Name: "Intermediate", Seconds: 1800, Label: "30 minutes"},
	{Name: "Advanced", Seconds: 3600, Label: "60 minutes"},
	{Name: "Expert", Seconds: 7200, Label: "2 hours"},
	{Name: "Master", Seconds: 14400, Label: "4 hours"},
}

var CompanyMilestones = []MilestoneDef{
	{Name: "Bronze", Emoji: "🥉", Seconds: 30000, Label: "500 minutes"},
	{Name: "Silver", Emoji: "🥈", Seconds: 60000, Label: "1,000 minutes"},
	{Name: "Gold", Emoji: "🥇", Seconds: 150000, Label: "2,500 minutes"},
	{Name: "Platinum", Emoji: "🏆", Seconds: 300000, Label: "5,000 minutes"},
}

// CrossedMilestones returns the defs whose threshold was crossed when a total
// moved from oldTotal to newTotal, i.e. oldTotal < threshold <= newTotal.
// A threshold already at or below oldTotal never fires again.
func CrossedMilestones(defs []MilestoneDef, oldTotal, newTotal int64) []MilestoneDef {
	var crossed []MilestoneDef
	for _, def := range defs {
		if oldTotal < def.Seconds && newTotal >= def.Seconds {
			crossed = append(crossed, def)
		}
	}
	return crossed
}

// CurrentMilestone returns the highest def at or below total, or nil.
func CurrentMilestone(defs []MilestoneDef, total int64) *MilestoneDef {
	for i := len(defs) - 1; i >= 0; i-- {
		if total >= defs[i].Seconds {
			return &defs[i]
		}
	}
	return nil
}

// NextMilestone returns the first def above total, or nil when all are passed.
func NextMilestone(defs []MilestoneDef, total int64) *MilestoneDef {
	for i := range defs {
		if total < defs[i].Seconds {
			return &defs[i]
		}
	}
	return nil
}
