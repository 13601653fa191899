package dto

type SaveInput struct {
	Name         string
	StudyMinutes int
	BreakMinutes int
	// OverwriteIndex is zero-based; nil or out of range appends.
	OverwriteIndex *int
}

type PresetOutput struct {
	Index        int
	Name         string
	Slug         string
	StudyMinutes int
	BreakMinutes int
}

type ExportOutput struct {
	Path  string
	Count int
}

type ImportOutput struct {
	Path     string
	Imported int
	Skipped  int
}
