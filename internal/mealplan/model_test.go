package mealplan

import (
	"encoding/json"
	"testing"
)

// TestDocumentJSONEmpty tests the wire shape of a document with no
// recognizable dates: weekStart stays an explicit null, days an
// explicit empty object
func TestDocumentJSONEmpty(t *testing.T) {
	doc := &Document{
		Site:   "main",
		Source: Source{Filename: "260112_식단표.xlsx", Sheet: "식단표"},
		Days:   map[string]DayMenu{},
	}

	got, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"site":"main","source":{"filename":"260112_식단표.xlsx","sheet":"식단표"},"weekStart":null,"days":{}}`
	if string(got) != want {
		t.Errorf("json = %s, want %s", got, want)
	}
}

// TestDocumentJSONWeek tests a populated document: sorted day keys,
// empty buckets as [], extras present only where filled
func TestDocumentJSONWeek(t *testing.T) {
	ws := "2026-01-12"
	tue := newDayMenu()
	tue.Breakfast = append(tue.Breakfast, "북어국")
	mon := newDayMenu()
	mon.Lunch = append(mon.Lunch, "김치찌개", "밥")
	mon.Extras = map[string][]string{"night": {"닭죽"}}

	doc := &Document{
		Site:      "cancer",
		Source:    Source{Filename: "260112_식단표.xlsx", Sheet: "Sheet1"},
		WeekStart: &ws,
		Days: map[string]DayMenu{
			"2026-01-13": tue,
			"2026-01-12": mon,
		},
	}

	got, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"site":"cancer","source":{"filename":"260112_식단표.xlsx","sheet":"Sheet1"},"weekStart":"2026-01-12",` +
		`"days":{"2026-01-12":{"breakfast":[],"lunch":["김치찌개","밥"],"dinner":[],"extras":{"night":["닭죽"]}},` +
		`"2026-01-13":{"breakfast":["북어국"],"lunch":[],"dinner":[]}}}`
	if string(got) != want {
		t.Errorf("json = %s, want %s", got, want)
	}
}

// TestNewDayMenuBuckets tests that fresh day buckets marshal as []
// rather than null
func TestNewDayMenuBuckets(t *testing.T) {
	got, err := json.Marshal(newDayMenu())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"breakfast":[],"lunch":[],"dinner":[]}`
	if string(got) != want {
		t.Errorf("json = %s, want %s", got, want)
	}
}
