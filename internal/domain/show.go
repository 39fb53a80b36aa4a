package domain

import "strings"

// Show is a tracked title with its watch status and platform availability.
// Platforms is stored exactly as the server holds it: comma-delimited text.
type Show struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Platforms  string `json:"platforms"`
	IsCurrent  bool   `json:"isCurrent"`
	IsArchived bool   `json:"isArchived"`
}

// PlatformList returns the display list of platforms for the show
func (s Show) PlatformList() []string {
	return ParsePlatforms(s.Platforms)
}

// ShowDraft holds the pending fields of a show that has not been created yet.
// No validation is applied; empty strings are sent as-is.
type ShowDraft struct {
	Title     string
	Platforms string
}

// ParsePlatforms splits comma-delimited platform text, trims each entry and
// drops empty ones. "A, B ,,C" becomes ["A", "B", "C"].
func ParsePlatforms(text string) []string {
	parts := strings.Split(text, ",")
	platforms := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		platforms = append(platforms, p)
	}
	return platforms
}

// VisibleShows drops archived shows. The server already filters them out of
// the list query; this keeps the rendered list honest if one slips through.
func VisibleShows(shows []Show) []Show {
	visible := make([]Show, 0, len(shows))
	for _, s := range shows {
		if s.IsArchived {
			continue
		}
		visible = append(visible, s)
	}
	return visible
}

// PartitionShows splits shows into current and other groups, preserving the
// incoming (server-provided) order within each group.
func PartitionShows(shows []Show) (current, other []Show) {
	for _, s := range shows {
		if s.IsCurrent {
			current = append(current, s)
		} else {
			other = append(other, s)
		}
	}
	return current, other
}
