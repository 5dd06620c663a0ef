package tui

import "testing"

func TestTickCmdClampsRate(t *testing.T) {
	for _, rate := range []int{60, 1, 0, -5} {
		if cmd := tickCmd(rate); cmd == nil {
			t.Errorf("tickCmd(%d) = nil, expected a command", rate)
		}
	}
}
