// Package view tracks which top-level panel of the site a client is
// looking at. It is deliberately free of any rendering dependency: the
// transitions mutate a small panel set and the HTTP layer reflects the
// result to the client.
package view

// Panel names one of the mutually-exclusive top-level UI regions.
type Panel string

const (
	MainSite       Panel = "main-site"
	Dashboard      Panel = "dashboard"
	SubjectContent Panel = "subject-content"
	LessonViewer   Panel = "lesson-viewer"
)

// Controller is the per-session panel state machine. Exactly one panel is
// visible at any time; every transition hides all panels before showing
// the target, so the invariant holds even when transitions are called out
// of order.
type Controller struct {
	visible map[Panel]bool
	subject string
	lesson  string
}

func NewController() *Controller {
	c := &Controller{visible: make(map[Panel]bool)}
	c.show(MainSite)
	return c
}

func (c *Controller) hideAll() {
	for p := range c.visible {
		delete(c.visible, p)
	}
}

func (c *Controller) show(p Panel) {
	c.hideAll()
	c.visible[p] = true
}

// Active returns the currently visible panel.
func (c *Controller) Active() Panel {
	for p := range c.visible {
		return p
	}
	// Unreachable while the mutual-exclusion invariant holds.
	return MainSite
}

func (c *Controller) visibleCount() int {
	return len(c.visible)
}

func (c *Controller) Subject() string { return c.subject }

func (c *Controller) Lesson() string { return c.lesson }

func (c *Controller) ShowMainSite() {
	c.show(MainSite)
}

// ShowDashboard transitions to the dashboard. The dashboard is gated:
// when the caller is not authenticated the transition is aborted and no
// state changes.
func (c *Controller) ShowDashboard(authenticated bool) bool {
	if !authenticated {
		return false
	}
	c.show(Dashboard)
	return true
}

// OpenSubject enters the subject's content panel and remembers the subject
// for back navigation.
func (c *Controller) OpenSubject(subject string) {
	c.subject = subject
	c.show(SubjectContent)
}

// OpenLesson enters the lesson viewer, remembering both subject and lesson.
func (c *Controller) OpenLesson(subject, lesson string) {
	c.subject = subject
	c.lesson = lesson
	c.show(LessonViewer)
}

// BackToSubject leaves the lesson viewer for the remembered subject panel,
// falling back to the main site when no subject was recorded.
func (c *Controller) BackToSubject() {
	if c.subject != "" {
		c.show(SubjectContent)
		return
	}
	c.show(MainSite)
}

func (c *Controller) BackToDashboard(authenticated bool) bool {
	return c.ShowDashboard(authenticated)
}

// Reset returns to the signed-out main site and drops navigation context.
func (c *Controller) Reset() {
	c.subject = ""
	c.lesson = ""
	c.show(MainSite)
}
