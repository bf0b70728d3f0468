package view

import "testing"

func TestInitialPanel(t *testing.T) {
	c := NewController()
	if got := c.Active(); got != MainSite {
		t.Fatalf("Active() = %q, want %q", got, MainSite)
	}
	if got := c.visibleCount(); got != 1 {
		t.Fatalf("visibleCount() = %d, want 1", got)
	}
}

func TestDashboardGated(t *testing.T) {
	c := NewController()
	if c.ShowDashboard(false) {
		t.Fatal("ShowDashboard(false) = true, want aborted transition")
	}
	if got := c.Active(); got != MainSite {
		t.Fatalf("panel after aborted transition = %q, want %q", got, MainSite)
	}

	if !c.ShowDashboard(true) {
		t.Fatal("ShowDashboard(true) = false, want transition applied")
	}
	if got := c.Active(); got != Dashboard {
		t.Fatalf("Active() = %q, want %q", got, Dashboard)
	}
}

func TestOpenLessonRetainsContext(t *testing.T) {
	c := NewController()
	c.OpenLesson("math", "1.2")

	if got := c.Active(); got != LessonViewer {
		t.Fatalf("Active() = %q, want %q", got, LessonViewer)
	}
	if c.Subject() != "math" || c.Lesson() != "1.2" {
		t.Fatalf("context = (%q, %q), want (math, 1.2)", c.Subject(), c.Lesson())
	}
}

func TestBackToSubject(t *testing.T) {
	c := NewController()
	c.OpenLesson("physics", "1.1")
	c.BackToSubject()

	if got := c.Active(); got != SubjectContent {
		t.Fatalf("Active() = %q, want %q", got, SubjectContent)
	}
	if got := c.Subject(); got != "physics" {
		t.Fatalf("Subject() = %q, want physics", got)
	}
}

func TestBackToSubjectWithoutSubject(t *testing.T) {
	c := NewController()
	c.BackToSubject()

	if got := c.Active(); got != MainSite {
		t.Fatalf("Active() = %q, want %q", got, MainSite)
	}
}

func TestMutualExclusionUnderArbitrarySequences(t *testing.T) {
	c := NewController()

	steps := []func(){
		func() { c.ShowDashboard(true) },
		func() { c.OpenSubject("chemistry") },
		func() { c.OpenLesson("math", "1.4") },
		func() { c.BackToSubject() },
		func() { c.BackToDashboard(true) },
		func() { c.OpenLesson("physics", "1.2") },
		func() { c.ShowMainSite() },
		func() { c.BackToSubject() },
		func() { c.Reset() },
	}

	for i, step := range steps {
		step()
		if got := c.visibleCount(); got != 1 {
			t.Fatalf("after step %d: %d panels visible, want exactly 1", i, got)
		}
	}
}

func TestResetClearsNavigationContext(t *testing.T) {
	c := NewController()
	c.OpenLesson("math", "1.1")
	c.Reset()

	if got := c.Active(); got != MainSite {
		t.Fatalf("Active() = %q, want %q", got, MainSite)
	}
	if c.Subject() != "" || c.Lesson() != "" {
		t.Fatalf("context = (%q, %q), want cleared", c.Subject(), c.Lesson())
	}
}
