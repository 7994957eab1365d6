package domain

// SampleTimeDrafts returns the demo time logs shown on a fresh dashboard,
// oldest first so that prepending them leaves the newest on top.
func SampleTimeDrafts() []TimeDraft {
	return []TimeDraft{
		{Category: TimeStudy, Hours: 6, Date: "2023-10-02", Description: "Assignment"},
		{Category: TimeFood, Hours: 1.5, Date: "2023-10-02", Description: "Meal prep"},
		{Category: TimeSleep, Hours: 8, Date: "2023-10-01", Description: "Good sleep"},
		{Category: TimeReels, Hours: 3.5, Date: "2023-10-01", Description: "Mindless scrolling"},
		{Category: TimeStudy, Hours: 4, Date: "2023-10-01", Description: "React basics"},
	}
}

// SampleMoneyDrafts returns the demo money logs, oldest first.
func SampleMoneyDrafts() []MoneyDraft {
	return []MoneyDraft{
		{Category: MoneyEntertainment, Amount: 800, Date: "2023-10-02", Description: "Movie"},
		{Category: MoneyTransport, Amount: 120, Date: "2023-10-02", Description: "Uber"},
		{Category: MoneySnacks, Amount: 250, Date: "2023-10-01", Description: "Vending machine"},
		{Category: MoneyFood, Amount: 500, Date: "2023-10-01", Description: "Grocery"},
	}
}
