// Package view turns enrollment store snapshots into display-ready records.
// Projection is pure: it never mutates the store and introduces no ordering
// of its own.
package view

import (
	"strings"
	"unicode"

	"example.com/enrollment/internal/domain"
)

// ActivityView is the presentation shape for one activity.
type ActivityView struct {
	Name         string
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []ParticipantView
}

// ParticipantView pairs a participant identifier with its display label.
type ParticipantView struct {
	ID    string
	Label string
}

// Project maps activities to view records, preserving the activity order and
// each activity's participant insertion order. An activity with no
// participants yields an empty, non-nil participant sequence.
func Project(activities []domain.Activity) []ActivityView {
	out := make([]ActivityView, 0, len(activities))
	for _, a := range activities {
		participants := make([]ParticipantView, 0, len(a.Participants))
		for _, id := range a.Participants {
			participants = append(participants, ParticipantView{ID: id, Label: Label(id)})
		}
		out = append(out, ActivityView{
			Name:         a.Name,
			Description:  a.Description,
			Schedule:     a.Schedule,
			SpotsLeft:    a.SpotsLeft(),
			Participants: participants,
		})
	}
	return out
}

func isSeparator(r rune) bool {
	return r == '.' || r == '_' || r == '-'
}

// Label derives a short display label from a participant identifier: the
// upper-cased first characters of up to the first two pieces of the handle
// (the part before the first '@'), where pieces are split on runs of '.',
// '_', and '-'. A handle that yields nothing labels as "?".
func Label(id string) string {
	handle := id
	if at := strings.IndexByte(id, '@'); at >= 0 {
		handle = id[:at]
	}

	pieces := strings.FieldsFunc(handle, isSeparator)
	if len(pieces) == 0 {
		pieces = []string{handle}
	}
	if len(pieces) > 2 {
		pieces = pieces[:2]
	}

	var b strings.Builder
	for _, piece := range pieces {
		trimmed := strings.TrimFunc(piece, func(r rune) bool {
			return unicode.IsSpace(r) || isSeparator(r)
		})
		if trimmed == "" {
			continue
		}
		b.WriteRune([]rune(trimmed)[0])
	}

	label := strings.ToUpper(b.String())
	if label == "" {
		return "?"
	}
	return label
}
