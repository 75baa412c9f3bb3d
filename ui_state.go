package main

type uiState struct {
	mode mode

	noticeMsg  string
	noticeType noticeKind
	noticeSeq  int

	// last value searched for, repeated by "n"
	searchQuery string

	// first row and column drawn in the viewport
	rowOffset int
	colOffset int
}
