package dto

import "time"

type AddInput struct {
	Value float64
}

type EntryOutput struct {
	Index int
	Value float64
	Date  time.Time
}

type ChartInput struct {
	Width  int
	Height int
}

type ChartOutput struct {
	Lines []string
	Count int
}
