package model

import "time"

// Thread is one daily SOTD thread
type Thread struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Permalink string    `json:"permalink,omitempty" yaml:"permalink,omitempty"`
	Created   time.Time `json:"created" yaml:"created"`
}

// Comment is one top-level or reply comment in a thread
type Comment struct {
	ID       string    `json:"id,omitempty" yaml:"id,omitempty"`
	ThreadID string    `json:"thread_id,omitempty" yaml:"thread_id,omitempty"`
	Author   string    `json:"author,omitempty" yaml:"author,omitempty"`
	Body     string    `json:"body" yaml:"body"`
	Created  time.Time `json:"created,omitempty" yaml:"created,omitempty"`
}

// Shave is what was recognized in one comment.
// Raw fields hold the name as typed; empty canonical fields mean unrecognized.
type Shave struct {
	CommentID string `json:"comment_id,omitempty"`
	Author    string `json:"author,omitempty"`
	RawRazor  string `json:"raw_razor,omitempty"`
	Razor     string `json:"razor,omitempty"`
	Plate     string `json:"plate,omitempty"`
	RawBrush  string `json:"raw_brush,omitempty"`
	Brush     string `json:"brush,omitempty"`
}
