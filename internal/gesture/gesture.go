// Package gesture describes how pointer and drag events on the gallery page
// turn into uploads, URL copies and previews. Table is served to the browser,
// which interprets it on the page. Machine is the Go interpreter of the same
// table; the server never drives it, the tests do, so the rows the page gets
// are checked against the expected gesture sequences.
package gesture

import "time"

// ClickWindow is how long a single click waits for a second one.
const ClickWindow = 250 * time.Millisecond

type State string

const (
	Idle         State = "idle"
	DragActive   State = "drag_active"
	ClickPending State = "click_pending"
)

type Event string

const (
	DragEnter    Event = "drag_enter"
	DragLeave    Event = "drag_leave"
	Drop         Event = "drop"
	Click        Event = "click"
	DoubleClick  Event = "double_click"
	ClickTimeout Event = "click_timeout"
)

type Guard string

const (
	Always              Guard = ""
	Authenticated       Guard = "authenticated"
	LastLeave           Guard = "last_leave"
	HasImages           Guard = "has_images"
	AuthenticatedImages Guard = "authenticated_images"
)

type Action string

const (
	ShowDropOverlay Action = "show_drop_overlay"
	HideDropOverlay Action = "hide_drop_overlay"
	UploadFiles     Action = "upload_files"
	CopyURL         Action = "copy_url"
	OpenPreview     Action = "open_preview"
)

// Depth tells how a transition changes the drag nesting counter.
type Depth string

const (
	DepthKeep  Depth = ""
	DepthReset Depth = "reset"
	DepthOne   Depth = "one"
	DepthInc   Depth = "inc"
	DepthDec   Depth = "dec"
)

// Transition fires when the machine is in From, receives Event and Guard
// holds. Rows for the same (From, Event) are tried in table order.
type Transition struct {
	From    State    `json:"from"`
	Event   Event    `json:"event"`
	Guard   Guard    `json:"guard,omitempty"`
	To      State    `json:"to"`
	Depth   Depth    `json:"depth,omitempty"`
	Actions []Action `json:"actions,omitempty"`
}

func Table() []Transition {
	return []Transition{
		{From: Idle, Event: DragEnter, Guard: Authenticated, To: DragActive, Depth: DepthOne, Actions: []Action{ShowDropOverlay}},
		{From: DragActive, Event: DragEnter, To: DragActive, Depth: DepthInc},
		{From: DragActive, Event: DragLeave, Guard: LastLeave, To: Idle, Depth: DepthReset, Actions: []Action{HideDropOverlay}},
		{From: DragActive, Event: DragLeave, To: DragActive, Depth: DepthDec},
		{From: DragActive, Event: Drop, Guard: HasImages, To: Idle, Depth: DepthReset, Actions: []Action{HideDropOverlay, UploadFiles}},
		{From: DragActive, Event: Drop, To: Idle, Depth: DepthReset, Actions: []Action{HideDropOverlay}},
		{From: Idle, Event: Drop, Guard: AuthenticatedImages, To: Idle, Actions: []Action{UploadFiles}},
		{From: Idle, Event: Click, To: ClickPending},
		{From: ClickPending, Event: Click, To: ClickPending},
		{From: ClickPending, Event: DoubleClick, To: Idle, Actions: []Action{OpenPreview}},
		{From: ClickPending, Event: ClickTimeout, To: Idle, Actions: []Action{CopyURL}},
		{From: Idle, Event: DoubleClick, To: Idle, Actions: []Action{OpenPreview}},
	}
}
