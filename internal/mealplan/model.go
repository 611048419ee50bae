package mealplan

// Document is the parsed form of one weekly meal-plan workbook.
// Storage identity is (Site, WeekStart). WeekStart is nil when the
// sheet contained no recognizable date cells; such documents are
// never stored.
type Document struct {
	Site      string             `json:"site"`
	Source    Source             `json:"source"`
	WeekStart *string            `json:"weekStart"`
	Days      map[string]DayMenu `json:"days"`
}

// Source records which file and worksheet a document came from.
type Source struct {
	Filename string `json:"filename"`
	Sheet    string `json:"sheet"`
}

// DayMenu holds one day's menu items per meal. Extras carries the
// site-specific side buckets (night meal, salad corner) and is
// dropped from the JSON when empty.
type DayMenu struct {
	Breakfast []string            `json:"breakfast"`
	Lunch     []string            `json:"lunch"`
	Dinner    []string            `json:"dinner"`
	Extras    map[string][]string `json:"extras,omitempty"`
}

func newDayMenu() DayMenu {
	return DayMenu{
		Breakfast: []string{},
		Lunch:     []string{},
		Dinner:    []string{},
	}
}
