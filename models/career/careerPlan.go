package career

import "strconv"

// PhaseTemplate describes one learning phase of a career path.
type PhaseTemplate struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// CareerPath is a catalog entry: a titled, ordered list of phases.
type CareerPath struct {
	Key    string          `json:"key" yaml:"key"`
	Title  string          `json:"title" yaml:"title"`
	Phases []PhaseTemplate `json:"phases" yaml:"phases"`
}

// ScheduledPhase is a phase placed on the month axis of a roadmap.
type ScheduledPhase struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartMonth  int    `json:"start_month"`
	EndMonth    int    `json:"end_month"`
	Duration    int    `json:"duration"`
}

// MonthRange formats the phase span for display, e.g. "Months 1-3" or "Month 4".
func (p ScheduledPhase) MonthRange() string {
	if p.StartMonth == p.EndMonth {
		return "Month " + strconv.Itoa(p.StartMonth)
	}
	return "Months " + strconv.Itoa(p.StartMonth) + "-" + strconv.Itoa(p.EndMonth)
}

// Roadmap is a career path spread over a requested number of months.
type Roadmap struct {
	Key         string           `json:"key"`
	Title       string           `json:"title"`
	TotalMonths int              `json:"total_months"`
	Phases      []ScheduledPhase `json:"phases"`
}
