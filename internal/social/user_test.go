package social

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProfileAttributes(t *testing.T) {
	u := NewUser("maria", "123", "Maria Silva")

	if err := u.SetAttribute("", "x"); !errors.Is(err, ErrInvalidAttribute) {
		t.Errorf("expected ErrInvalidAttribute, got %v", err)
	}

	if _, err := u.Attribute("city"); !errors.Is(err, ErrAttributeNotSet) {
		t.Errorf("expected ErrAttributeNotSet, got %v", err)
	}

	if err := u.SetAttribute("city", "Maceió"); err != nil {
		t.Fatal(err)
	}
	v, err := u.Attribute("city")
	if err != nil {
		t.Fatal(err)
	}
	if v != "Maceió" {
		t.Errorf("got %q, want %q", v, "Maceió")
	}

	// Empty values are valid and distinct from unset keys.
	if err := u.SetAttribute("city", ""); err != nil {
		t.Fatal(err)
	}
	v, err = u.Attribute("city")
	if err != nil {
		t.Errorf("overwritten key should still resolve: %v", err)
	}
	if v != "" {
		t.Errorf("got %q, want empty", v)
	}
}

func TestFriendRequestLifecycle(t *testing.T) {
	a := NewUser("a", "pw", "A")
	b := NewUser("b", "pw", "B")

	a.SendFriendRequest(b)
	if !b.HasPendingRequestFrom(a) {
		t.Fatal("request was not mirrored to the target")
	}
	if !a.HasRequestedFriendship(b) {
		t.Fatal("request was not recorded at the sender")
	}

	// Re-sending must not duplicate the mirrored edge.
	a.SendFriendRequest(b)
	if got := len(b.requestsIn); got != 1 {
		t.Fatalf("incoming requests duplicated: %d", got)
	}

	if ok := b.AcceptFriendRequest(a); !ok {
		t.Fatal("acceptance of a pending request reported false")
	}
	if !a.IsFriendOf(b) || !b.IsFriendOf(a) {
		t.Error("friendship is not symmetric after acceptance")
	}
	if a.HasRequestedFriendship(b) || b.HasPendingRequestFrom(a) {
		t.Error("stale request entries survived acceptance")
	}

	if ok := b.AcceptFriendRequest(a); ok {
		t.Error("accepting with no pending request reported true")
	}
}

func TestMutualCrushNotice(t *testing.T) {
	a := NewUser("a", "pw", "Alice")
	b := NewUser("b", "pw", "Bob")

	if err := a.AddCrush(b); err != nil {
		t.Fatal(err)
	}
	if a.HasMessages() || b.HasMessages() {
		t.Fatal("one-sided crush must not generate notices")
	}

	if err := b.AddCrush(a); err != nil {
		t.Fatal(err)
	}
	for _, u := range []*User{a, b} {
		if got := len(u.messages); got != 1 {
			t.Fatalf("%s: got %d notices, want exactly 1", u.Login, got)
		}
		if u.messages[0].Sender != PlatformSender {
			t.Errorf("%s: notice attributed to %q, want platform", u.Login, u.messages[0].Sender)
		}
	}

	if err := a.AddCrush(b); !errors.Is(err, ErrAlreadyCrush) {
		t.Fatalf("expected ErrAlreadyCrush, got %v", err)
	}
	if len(a.messages) != 1 || len(b.messages) != 1 {
		t.Error("failed duplicate crush must not re-fire the notice")
	}
}

func TestAddIdolWritesBothSides(t *testing.T) {
	fan := NewUser("fan", "pw", "Fan")
	idol := NewUser("idol", "pw", "Idol")

	if err := fan.AddIdol(idol); err != nil {
		t.Fatal(err)
	}
	if !fan.IsFanOf(idol) {
		t.Error("fan edge missing on the idol's reverse index")
	}

	err := fan.AddIdol(idol)
	if !errors.Is(err, ErrAlreadyIdol) {
		t.Fatalf("expected ErrAlreadyIdol, got %v", err)
	}
	if got := len(idol.fans); got != 1 {
		t.Errorf("failed duplicate mutated state: %d fans", got)
	}
}

func TestMessageQueueOrder(t *testing.T) {
	u := NewUser("u", "pw", "U")

	if _, err := u.ReadMessage(); !errors.Is(err, ErrNoMessages) {
		t.Fatalf("expected ErrNoMessages on empty queue, got %v", err)
	}

	u.ReceiveMessage("x", "first")
	u.ReceiveMessage("y", "second")
	u.ReceiveMessage("x", "third")

	var got []Message
	for u.HasMessages() {
		m, err := u.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, m)
	}
	want := []Message{{"x", "first"}, {"y", "second"}, {"x", "third"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("message order mismatch (-want +got):\n%s", diff)
	}
}

func TestPurgeSenderKeepsOrder(t *testing.T) {
	u := NewUser("u", "pw", "U")
	u.ReceiveMessage("gone", "a")
	u.ReceiveMessage("kept", "b")
	u.ReceiveMessage("gone", "c")
	u.ReceiveMessage("kept", "d")

	u.PurgeSender("gone")

	want := []Message{{"kept", "b"}, {"kept", "d"}}
	if diff := cmp.Diff(want, u.messages); diff != "" {
		t.Errorf("purge result mismatch (-want +got):\n%s", diff)
	}
}

func TestBroadcastQueue(t *testing.T) {
	u := NewUser("u", "pw", "U")

	if _, err := u.ReadBroadcast(); !errors.Is(err, ErrNoMessages) {
		t.Fatalf("expected ErrNoMessages, got %v", err)
	}

	u.ReceiveBroadcast("one")
	u.ReceiveBroadcast("two")

	if b, _ := u.ReadBroadcast(); b != "one" {
		t.Errorf("got %q, want %q", b, "one")
	}
	if b, _ := u.ReadBroadcast(); b != "two" {
		t.Errorf("got %q, want %q", b, "two")
	}
	if u.HasBroadcasts() {
		t.Error("queue should be drained")
	}
}

func TestStateRoundTrip(t *testing.T) {
	u := NewUser("maria", "123", "Maria Silva")
	_ = u.SetAttribute("city", "Maceió")
	u.friends = []string{"joao", "ana"}
	u.requestsOut = []string{"pedro"}
	u.requestsIn = []string{"ze"}
	u.idols = []string{"ana"}
	u.fans = []string{"pedro", "joao"}
	u.crushes = []string{"joao"}
	u.enemies = []string{"rival"}
	u.ReceiveMessage("joao", "oi")
	u.ReceiveBroadcast("hello all")

	restored := RestoreUser(u.State())
	if diff := cmp.Diff(u.State(), restored.State()); diff != "" {
		t.Errorf("state round trip mismatch (-want +got):\n%s", diff)
	}
}
