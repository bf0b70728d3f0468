package catalog

import "testing"

func TestLookupRoundTripsEveryKey(t *testing.T) {
	c := New()
	for _, subject := range c.Subjects() {
		for _, id := range c.LessonIDs(subject) {
			got := c.Lookup(subject, id)
			want := lessonTable[subject][id]
			if got != want {
				t.Fatalf("Lookup(%q, %q) = %+v, want stored record %+v", subject, id, got, want)
			}
			if got.Title == NotFound.Title {
				t.Fatalf("Lookup(%q, %q) resolved to the placeholder", subject, id)
			}
		}
	}
}

func TestLookupUnknownKeys(t *testing.T) {
	c := New()
	tests := []struct {
		name     string
		subject  string
		lessonID string
	}{
		{"unknown subject", "biology", "1.1"},
		{"unknown lesson", "math", "9.9"},
		{"empty key", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Lookup(tc.subject, tc.lessonID); got != NotFound {
				t.Fatalf("Lookup(%q, %q) = %+v, want NotFound sentinel", tc.subject, tc.lessonID, got)
			}
		})
	}
}

func TestSubjects(t *testing.T) {
	c := New()
	want := []string{"chemistry", "math", "physics"}
	got := c.Subjects()
	if len(got) != len(want) {
		t.Fatalf("Subjects() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Subjects() = %v, want %v", got, want)
		}
	}
}
