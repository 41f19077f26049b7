package scheduler

import "strings"

// CompatibleRoom decides whether a course of the given type may be held in a
// room of the given type. Checks are ordered and the first match wins; the
// final classroom/hall check is a catch-all, so most course types can fall
// back to a general purpose room. Downstream domain sizes depend on this
// permissiveness.
func CompatibleRoom(courseType string, roomType string) bool {
	c := strings.ToLower(courseType)
	r := strings.ToLower(roomType)

	// Lab courses go in lab rooms
	if strings.Contains(c, "lab") && strings.Contains(r, "lab") {
		return true
	}

	// Lectures go in general purpose rooms
	if strings.Contains(c, "lec") && (strings.Contains(r, "classroom") || strings.Contains(r, "hall") || strings.Contains(r, "theater")) {
		return true
	}

	// Lab courses may also take a large general purpose room
	if strings.Contains(c, "lab") && (strings.Contains(r, "classroom") || strings.Contains(r, "hall") || strings.Contains(r, "theater")) {
		return true
	}

	// Anything else fits in a classroom or hall
	if strings.Contains(r, "classroom") || strings.Contains(r, "hall") {
		return true
	}

	return false
}
