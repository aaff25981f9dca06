package domain

// Entry is one normalised timetable slot for one week variant.
// The source cell is a short stack of text lines; line order is
// preserved. Secondary and Tertiary are interpreted contextually by
// the presentation layer: teacher/room on a class view, class/room on
// a teacher view. The domain does not disambiguate this.
type Entry struct {
	// Subject is the first text line of the cell.
	Subject string `json:"subject"`

	// Secondary is the second text line (teacher or class).
	Secondary string `json:"secondary,omitempty"`

	// Tertiary is the third text line (usually the room).
	Tertiary string `json:"tertiary,omitempty"`

	// Extra holds any further lines, in source order.
	Extra []string `json:"extra,omitempty"`
}

// EntryFromLines builds an Entry from an ordered sequence of cell
// lines. Fewer than three lines leaves the missing fields empty; this
// is never an error.
func EntryFromLines(lines []string) Entry {
	var e Entry
	if len(lines) > 0 {
		e.Subject = lines[0]
	}
	if len(lines) > 1 {
		e.Secondary = lines[1]
	}
	if len(lines) > 2 {
		e.Tertiary = lines[2]
	}
	if len(lines) > 3 {
		e.Extra = lines[3:]
	}
	return e
}

// IsEmpty reports whether the entry carries no content at all.
func (e Entry) IsEmpty() bool {
	return e.Subject == "" && e.Secondary == "" && e.Tertiary == "" && len(e.Extra) == 0
}
