package basic

import "github.com/datera/ddct/pkg/util/poll"

// SetARPPoll overrides the ARP polling bounds and returns a restore func.
func SetARPPoll(s poll.Settings) func() {
	prev := arpPoll
	arpPoll = s

	return func() { arpPoll = prev }
}
