package messages

import "github.com/VivekYadav7272/leetcode-runner-cli/client"

// Msg is a marker interface for all message types
type Msg any

// StartJobMsg is sent when code is handed to the judge
type StartJobMsg struct {
	Kind  client.JobKind
	Title string
}

// StatusMsg is sent on every poll state transition
type StatusMsg struct {
	Text    string
	Unknown bool
}

// NoteMsg carries a one-off informational line, e.g. where testcases went
type NoteMsg struct {
	Text string
}

// FromEvent converts a poll transition into a StatusMsg.
func FromEvent(e client.StatusEvent) StatusMsg {
	return StatusMsg{Text: e.Message(), Unknown: e.State == client.StateUnknown}
}

// Listener forwards poll transitions into ch.
func Listener(ch chan<- Msg) client.StatusListener {
	return func(e client.StatusEvent) {
		ch <- FromEvent(e)
	}
}
