package domain

// AIInsight is the structured report returned by the insight service.
// At most one is held at a time; a newer report replaces it wholesale.
type AIInsight struct {
	Roast             string    `json:"roast"`
	Summary           string    `json:"summary"`
	ProductivityScore int       `json:"productivityScore"`
	FinancialScore    int       `json:"financialScore"`
	NextWeekPlan      []DayPlan `json:"nextWeekPlan"`
	Tips              []string  `json:"tips"`
}

// DayPlan is one row of the suggested plan for next week.
type DayPlan struct {
	Day   string `json:"day"`
	Focus string `json:"focus"`
	Limit string `json:"limit"`
}

// Clone returns a deep copy. A nil receiver yields nil.
func (in *AIInsight) Clone() *AIInsight {
	if in == nil {
		return nil
	}
	out := *in
	if in.NextWeekPlan != nil {
		out.NextWeekPlan = append([]DayPlan(nil), in.NextWeekPlan...)
	}
	if in.Tips != nil {
		out.Tips = append([]string(nil), in.Tips...)
	}
	return &out
}
