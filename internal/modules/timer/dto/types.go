package dto

type StartInput struct {
	StudyMinutes int
	BreakMinutes int
}

type ResumeInput struct {
	Phase            string
	RemainingSeconds int
	StudyMinutes     int
	BreakMinutes     int
}

type StatusOutput struct {
	Phase            string
	Label            string
	Display          string
	RemainingSeconds int
	StudyMinutes     int
	BreakMinutes     int
	Active           bool
	// Resumed is set when the countdown came from a restored session.
	Resumed bool
}

type TickOutput struct {
	Status          StatusOutput
	Completed       bool
	FinishedPhase   string
	RecordedMinutes int
}

type RestoreOutput struct {
	Restored bool
	Status   StatusOutput
}

type SnapshotOutput struct {
	Saved  bool
	Reason string
}

type SessionOutput struct {
	Phase            string
	RemainingSeconds int
	Display          string
	StudyMinutes     int
	BreakMinutes     int
}
