package main

import (
	"fmt"
	"strconv"
	"strings"

	app "github.com/campus-hub/placement-hub/internal/domain/application"
	"github.com/campus-hub/placement-hub/internal/domain/internship"
	"github.com/campus-hub/placement-hub/internal/lifecycle"
	"github.com/campus-hub/placement-hub/internal/query"
)

// promptInt reads an integer, returning fallback on bad input.
func (a *appContext) promptInt(label string, fallback int) int {
	n, err := strconv.Atoi(a.prompt(label))
	if err != nil {
		return fallback
	}
	return n
}

// promptLevel reads an internship level; blank or unknown input maps
// to BASIC.
func (a *appContext) promptLevel(label string) internship.Level {
	return internship.ParseLevel(a.prompt(label))
}

// promptDraft collects the mutable posting fields from the console.
func (a *appContext) promptDraft() lifecycle.PostingDraft {
	return lifecycle.PostingDraft{
		Title:       a.prompt("Title: "),
		Description: a.prompt("Description: "),
		Level:       a.promptLevel("Level (BASIC/INTERMEDIATE/ADVANCED): "),
		Major:       a.prompt("Preferred major: "),
		OpeningDate: a.prompt("Opening date (YYYY-MM-DD): "),
		ClosingDate: a.prompt("Closing date (YYYY-MM-DD): "),
		Slots:       a.promptInt("Slots: ", 0),
	}
}

// editFilters walks the user through the filter settings. Blank input
// leaves a field unfiltered.
func (a *appContext) editFilters(settings *query.FilterSettings) {
	settings.Clear()

	if s := strings.ToUpper(a.prompt("Status filter (PENDING/APPROVED/REJECTED, blank=any): ")); s != "" {
		if status, err := internship.ParseStatus(s); err == nil {
			settings.Status = &status
		}
	}
	settings.Major = a.prompt("Major filter (blank=any): ")
	if l := a.prompt("Level filter (BASIC/INTERMEDIATE/ADVANCED, blank=any): "); l != "" {
		level := internship.ParseLevel(l)
		settings.Level = &level
	}
	switch strings.ToLower(a.prompt("Visibility (on/off, blank=any): ")) {
	case "on":
		v := true
		settings.Visible = &v
	case "off":
		v := false
		settings.Visible = &v
	}
	switch a.prompt("Sort by (title/openingDate/closingDate): ") {
	case string(query.SortByOpeningDate):
		settings.SortBy = query.SortByOpeningDate
	case string(query.SortByClosingDate):
		settings.SortBy = query.SortByClosingDate
	default:
		settings.SortBy = query.SortByTitle
	}
}

// printInternship renders one posting line for lists.
func printInternship(i *internship.Internship) {
	visible := "OFF"
	if i.Visible {
		visible = "ON"
	}
	fmt.Printf("[%s] %s (%s, %s) - %s | Status: %s | Visible: %s | Slots: %d/%d\n",
		i.ID, i.Title, i.CompanyName, i.Level, i.PreferredMajor, i.Status, visible, i.SlotsLeft, i.TotalSlots)
}

// printInternshipDetail renders the student-facing view of a posting.
func printInternshipDetail(i *internship.Internship) {
	fmt.Printf("[%s] %s\nDescription: %s\nPreferred Major: %s\nOpening: %s  |  Closing: %s  |  Slots Left: %d/%d\n\n",
		i.ID, i.Title, i.Description, i.PreferredMajor, i.OpeningDate, i.ClosingDate, i.SlotsLeft, i.TotalSlots)
}

// printApplication renders one application line for lists.
func printApplication(a *app.Application) {
	fmt.Printf("[%s] %s (%s, Y%d) -> %s | Status: %s | Date: %s\n",
		a.ID, a.StudentName, a.StudentMajor, a.StudentYear, a.InternshipID, a.Status, a.AppliedDate)
}
