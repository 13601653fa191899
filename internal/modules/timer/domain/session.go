package domain

// PersistedSession is the paused-countdown slot written on quit and consumed
// on the next start. The JSON field names are the storage format.
type PersistedSession struct {
	RemainingTime int   `json:"remainingTime"`
	Phase         Phase `json:"phase"`
	StudyDuration int   `json:"studyDuration"`
	BreakDuration int   `json:"breakDuration"`
}

func SessionFromState(s State) PersistedSession {
	return PersistedSession{
		RemainingTime: s.RemainingSeconds,
		Phase:         s.Phase,
		StudyDuration: s.StudyMinutes,
		BreakDuration: s.BreakMinutes,
	}
}

func (p PersistedSession) State() State {
	return State{
		Phase:            p.Phase,
		RemainingSeconds: p.RemainingTime,
		StudyMinutes:     p.StudyDuration,
		BreakMinutes:     p.BreakDuration,
	}
}
