package services

import (
	"strings"
	"testing"
)

func TestTemplateResponderAddressesUser(t *testing.T) {
	r := NewTemplateResponder()

	for i := 0; i < 10; i++ {
		reply := r.Reply("Great article!", "samrat")
		if reply == "" {
			t.Fatal("expected a non-empty reply")
		}
		if !strings.Contains(reply, "samrat") {
			t.Errorf("reply does not address the user: %q", reply)
		}
	}
}
