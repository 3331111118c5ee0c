package chat

import (
	"testing"

	"github.com/diogo/askweb/internal/models"
)

func TestMessageLog_AddMessage(t *testing.T) {
	log := NewMessageLog()
	scrolls := 0
	log.OnScroll(func() { scrolls++ })

	first := log.AddMessage(models.RoleUser, "<b>hello</b>")
	log.AddMessage(models.RoleBot, "hi")

	if log.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", log.Len())
	}
	if scrolls != 2 {
		t.Errorf("scrolls = %d, want one per append", scrolls)
	}

	msgs := log.Messages()
	if msgs[0].Text != "<b>hello</b>" {
		t.Errorf("text should be kept literally, got %q", msgs[0].Text)
	}
	if msgs[0].Role != models.RoleUser || msgs[1].Role != models.RoleBot {
		t.Errorf("unexpected roles: %v", texts(log))
	}
	if first.ID() != msgs[0].ID || first.ID() == "" {
		t.Error("bubble handle should expose the message ID")
	}
}

func TestMessageLog_NoDeduplication(t *testing.T) {
	log := NewMessageLog()
	log.AddMessage(models.RoleUser, "same")
	log.AddMessage(models.RoleUser, "same")

	if log.Len() != 2 {
		t.Errorf("Len() = %d, duplicates must be kept", log.Len())
	}
}

func TestBubble_SetText(t *testing.T) {
	log := NewMessageLog()
	scrolls := 0
	log.OnScroll(func() { scrolls++ })

	b := log.AddMessage(models.RoleUser, "[Listening...]")
	before := log.Version()

	b.SetText("what time is it")

	if log.Messages()[0].Text != "what time is it" {
		t.Errorf("text = %q", log.Messages()[0].Text)
	}
	if log.Version() == before {
		t.Error("version should change on text replacement")
	}
	if scrolls != 1 {
		t.Errorf("text replacement should not scroll, scrolls = %d", scrolls)
	}
}

func TestBubble_Remove(t *testing.T) {
	log := NewMessageLog()
	a := log.AddMessage(models.RoleUser, "a")
	b := log.AddMessage(models.RoleBot, "b")
	log.AddMessage(models.RoleUser, "c")

	b.Remove()
	b.Remove()
	log.Remove(nil)

	if got := texts(log); len(got) != 2 || got[0] != "user:a" || got[1] != "user:c" {
		t.Errorf("messages = %v", got)
	}
	if !b.Removed() || a.Removed() {
		t.Error("Removed() flags are wrong")
	}

	// Mutating a removed bubble does not touch the log
	v := log.Version()
	b.SetText("ghost")
	if log.Version() != v {
		t.Error("removed bubble should not bump the version")
	}
}
