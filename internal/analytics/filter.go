package analytics

import "time"

// The helpers below are for callers preparing input. The engine itself never
// filters by vision, habit or status.

// FilterByVision keeps sessions belonging to visionID.
func FilterByVision(sessions []Session, visionID string) []Session {
	return filter(sessions, func(s Session) bool { return s.VisionID == visionID })
}

// FilterByHabit keeps sessions belonging to habitID.
func FilterByHabit(sessions []Session, habitID string) []Session {
	return filter(sessions, func(s Session) bool { return s.HabitID == habitID })
}

// CompletedBefore keeps sessions completed at or before cutoff. Used to freeze
// a graduated entity's statistics at its graduation time.
func CompletedBefore(sessions []Session, cutoff time.Time) []Session {
	return filter(sessions, func(s Session) bool { return !s.CompletedAt.After(cutoff) })
}

// ForVision returns the sessions of v, cut off at its graduation time when it
// has graduated.
func ForVision(sessions []Session, v Vision) []Session {
	out := FilterByVision(sessions, v.ID)
	if v.GraduatedAt != nil {
		out = CompletedBefore(out, *v.GraduatedAt)
	}
	return out
}

// Counted returns the sessions that count toward all-vision totals: sessions
// of a graduated vision are cut off at its graduation time, and sessions whose
// vision is not in visions are kept only under OrphansCountInTotals.
func Counted(sessions []Session, visions []Vision, policy OrphanPolicy) []Session {
	index := indexVisions(visions)
	return filter(sessions, func(s Session) bool {
		v, known := index[s.VisionID]
		if !known {
			return policy == OrphansCountInTotals
		}
		return v.GraduatedAt == nil || !s.CompletedAt.After(*v.GraduatedAt)
	})
}

// VisionsWithStatus keeps visions whose status is one of statuses.
func VisionsWithStatus(visions []Vision, statuses ...Status) []Vision {
	var out []Vision
	for _, v := range visions {
		for _, st := range statuses {
			if v.Status == st {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

func filter(sessions []Session, keep func(Session) bool) []Session {
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
