// Package catalog is the static lesson content table. Lookups are pure
// reads over a table fixed at build time; unknown keys resolve to a
// placeholder record rather than an error.
package catalog

import "sort"

type Lesson struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NotFound is returned for any (subject, lesson) pair absent from the table.
var NotFound = Lesson{
	Title: "Lesson Not Found",
	Body:  "Content coming soon...",
}

type Catalog struct {
	lessons map[string]map[string]Lesson
}

func New() *Catalog {
	return &Catalog{lessons: lessonTable}
}

// Lookup resolves a lesson by subject and lesson id. It never fails:
// unknown keys yield the NotFound placeholder.
func (c *Catalog) Lookup(subject, lessonID string) Lesson {
	if byID, ok := c.lessons[subject]; ok {
		if lesson, ok := byID[lessonID]; ok {
			return lesson
		}
	}
	return NotFound
}

// Subjects lists the catalog's subjects in stable order.
func (c *Catalog) Subjects() []string {
	subjects := make([]string, 0, len(c.lessons))
	for s := range c.lessons {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects
}

// LessonIDs lists the lesson ids of a subject in stable order.
func (c *Catalog) LessonIDs(subject string) []string {
	byID, ok := c.lessons[subject]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
