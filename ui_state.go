package main

type uiState struct {
	noticeMsg  string
	noticeKind noticeKind
	noticeSeq  int
	lastMisses int
}
