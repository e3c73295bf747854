package bot

import "github.com/findmyprof/findmyprof-chatbot-go/internal/directory"

// Reply is the structured result of answering one message.
// Text is always set; the other fields carry data for richer clients.
type Reply struct {
	Text        string
	Professor   *directory.Professor
	Schedules   []directory.Schedule
	Attachments []directory.Attachment
	ImageRef    string
	Suggestions []string
}

// setProfessor records p as the matched professor. The snapshot's record is
// copied so the reply never aliases shared data.
func (r *Reply) setProfessor(p *directory.Professor) {
	if p == nil {
		return
	}
	cp := *p
	r.Professor = &cp
	r.ImageRef = p.Image
}
