package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-volunteer-hub/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// renderEvents draws events as a bordered table, one row per event.
func renderEvents(events []models.Event) string {
	if len(events) == 0 {
		return faintStyle.Render("no events")
	}

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.EventID,
			e.Title,
			e.Date.Format("2006-01-02"),
			string(e.Status),
			strconv.Itoa(len(e.RegisteredVolunteers)) + "/" + strconv.Itoa(e.RequiredVolunteers),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "TITLE", "DATE", "STATUS", "VOLUNTEERS").
		Rows(rows...).
		Render()
}

// renderUser formats the session user on one line.
func renderUser(user models.UserView) string {
	return nameStyle.Render(user.Username) + " " + faintStyle.Render(fmt.Sprintf(
		"<%s> %s, joined %d, organized %d",
		user.Email, user.Role, len(user.RegisteredEvents), len(user.CreatedEvents),
	))
}
