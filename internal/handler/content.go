package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"edumath-pro/internal/catalog"
	"edumath-pro/internal/dto"
	"edumath-pro/internal/middleware"
)

type ContentHandler struct {
	catalog *catalog.Catalog
}

func NewContentHandler(cat *catalog.Catalog) *ContentHandler {
	return &ContentHandler{
		catalog: cat,
	}
}

func (h *ContentHandler) ShowDashboard(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	if !sess.View.ShowDashboard(sess.Authenticated) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Please sign in first")
	}

	return c.JSON(http.StatusOK, stateOf(sess))
}

func (h *ContentHandler) OpenSubject(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req dto.OpenSubjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	sess.View.OpenSubject(req.Subject)

	return c.JSON(http.StatusOK, stateOf(sess))
}

// OpenLesson enters the lesson viewer and returns the lesson content.
// Unknown lessons resolve to the placeholder record, never an error.
func (h *ContentHandler) OpenLesson(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var req dto.OpenLessonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	sess.View.OpenLesson(req.Subject, req.LessonID)
	lesson := h.catalog.Lookup(req.Subject, req.LessonID)

	return c.JSON(http.StatusOK, &dto.LessonResponse{
		Subject:  req.Subject,
		LessonID: req.LessonID,
		Title:    lesson.Title,
		Body:     lesson.Body,
	})
}

func (h *ContentHandler) BackToSubject(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	sess.View.BackToSubject()
	return c.JSON(http.StatusOK, stateOf(sess))
}

func (h *ContentHandler) BackToDashboard(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	if !sess.View.BackToDashboard(sess.Authenticated) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Please sign in first")
	}

	return c.JSON(http.StatusOK, stateOf(sess))
}

// Subjects lists the catalog for the client's navigation.
func (h *ContentHandler) Subjects(c echo.Context) error {
	subjects := make(map[string][]string)
	for _, s := range h.catalog.Subjects() {
		subjects[s] = h.catalog.LessonIDs(s)
	}
	return c.JSON(http.StatusOK, subjects)
}
