package interview

import "time"

// timerTickMsg is sent every second to drive the countdown and the
// question deadline.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the candidate dismisses the feedback overlay.
type feedbackDoneMsg struct{}

// interviewEndMsg is sent to trigger the session end flow.
type interviewEndMsg struct{}
