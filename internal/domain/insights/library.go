package insights

// Insight categories. The selector filters the library by these when picking
// a line that fits the user's current state.
const (
	CategoryStart       = "start"
	CategoryIdentity    = "identity"
	CategoryConsistency = "consistency"
	CategorySystem      = "system"
	CategoryRecovery    = "recovery"
	CategoryFriction    = "friction"
	CategoryCue         = "cue"
)

// insightLibrary is the static pool of motivational lines. Order matters: the
// selector indexes into category-filtered slices of this list, so reordering
// changes which line a given (day, streak) pair lands on.
var insightLibrary = []Insight{
	{Text: "You don't need motivation. You need to start in 30 seconds.", Category: CategoryStart},
	{Text: "Every action is a vote for the person you want to become.", Category: CategoryIdentity},
	{Text: "The task is not to finish. The task is to start.", Category: CategoryStart},
	{Text: "You don't rise to the level of your goals. You fall to the level of your systems.", Category: CategorySystem},
	{Text: "Success is the product of daily habits, not once-in-a-lifetime transformations.", Category: CategoryConsistency},
	{Text: "Small habits don't add up. They compound.", Category: CategoryConsistency},
	{Text: "Missing once is an accident. Missing twice is the start of a new habit.", Category: CategoryRecovery},
	{Text: "The best time to start was yesterday. The next best time is now.", Category: CategoryRecovery},
	{Text: "Every day is a new page. Not a new chapter, just a page.", Category: CategoryRecovery},
	{Text: "The goal is not to read a book. The goal is to become a reader.", Category: CategoryIdentity},
	{Text: "Each habit is a suggestion: 'Hey, maybe this is who I am.'", Category: CategoryIdentity},
	{Text: "True behavior change is identity change.", Category: CategoryIdentity},
	{Text: "Make it easy. Reduce friction. The best habit is the one you actually do.", Category: CategoryFriction},
	{Text: "Environment is the invisible hand that shapes human behavior.", Category: CategoryFriction},
	{Text: "When you make it easy, you make it happen.", Category: CategoryFriction},
	{Text: "Pair your new habit with something you already do. Stack them.", Category: CategoryCue},
	{Text: "The cue triggers the craving. The craving motivates the response.", Category: CategoryCue},
}

// Library returns a copy of the full insight library.
func Library() []Insight {
	out := make([]Insight, len(insightLibrary))
	copy(out, insightLibrary)
	return out
}

func filterByCategory(categories ...string) []Insight {
	var out []Insight
	for _, ins := range insightLibrary {
		for _, c := range categories {
			if ins.Category == c {
				out = append(out, ins)
				break
			}
		}
	}
	return out
}
