package social

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func communityFixture(t *testing.T) (*Directory, *Communities) {
	t.Helper()
	dir := NewDirectory()
	for _, l := range []string{"owner", "x", "y", "z"} {
		if _, err := dir.Create(l, "pw", "Name of "+l); err != nil {
			t.Fatal(err)
		}
	}
	return dir, NewCommunities()
}

func TestCreateCommunity(t *testing.T) {
	dir, cs := communityFixture(t)
	owner := dir.Get("owner")

	c, err := cs.Create(owner, "gophers", "people who like Go")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"owner"}, c.Members()); diff != "" {
		t.Errorf("owner must be the sole initial member (-want +got):\n%s", diff)
	}

	if _, err = cs.Create(dir.Get("x"), "gophers", "imposters"); !errors.Is(err, ErrDuplicateCommunity) {
		t.Errorf("expected ErrDuplicateCommunity, got %v", err)
	}

	if _, err = cs.Get("nope"); !errors.Is(err, ErrCommunityNotFound) {
		t.Errorf("expected ErrCommunityNotFound, got %v", err)
	}
}

func TestMembershipOrderAndDuplicates(t *testing.T) {
	dir, cs := communityFixture(t)
	if _, err := cs.Create(dir.Get("owner"), "c", "d"); err != nil {
		t.Fatal(err)
	}

	if err := cs.AddMember(dir.Get("y"), "c"); err != nil {
		t.Fatal(err)
	}
	if err := cs.AddMember(dir.Get("x"), "c"); err != nil {
		t.Fatal(err)
	}
	if err := cs.AddMember(dir.Get("y"), "c"); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("expected ErrAlreadyMember, got %v", err)
	}
	if err := cs.AddMember(dir.Get("x"), "ghost"); !errors.Is(err, ErrCommunityNotFound) {
		t.Errorf("expected ErrCommunityNotFound, got %v", err)
	}

	c, _ := cs.Get("c")
	if diff := cmp.Diff([]string{"owner", "y", "x"}, c.Members()); diff != "" {
		t.Errorf("membership must keep insertion order (-want +got):\n%s", diff)
	}
}

func TestBroadcastSnapshotSemantics(t *testing.T) {
	dir, cs := communityFixture(t)
	if _, err := cs.Create(dir.Get("owner"), "c", "d"); err != nil {
		t.Fatal(err)
	}
	if err := cs.AddMember(dir.Get("x"), "c"); err != nil {
		t.Fatal(err)
	}

	if err := cs.Broadcast(dir, "c", "welcome"); err != nil {
		t.Fatal(err)
	}

	// Members at send time receive the broadcast.
	for _, l := range []string{"owner", "x"} {
		got, err := dir.Get(l).ReadBroadcast()
		if err != nil {
			t.Fatalf("%s: %v", l, err)
		}
		if got != "welcome" {
			t.Errorf("%s: got %q", l, got)
		}
	}

	// A later joiner receives nothing from before it joined.
	if err := cs.AddMember(dir.Get("z"), "c"); err != nil {
		t.Fatal(err)
	}
	if dir.Get("z").HasBroadcasts() {
		t.Error("late joiner must not receive past broadcasts")
	}

	if err := cs.Broadcast(dir, "ghost", "x"); !errors.Is(err, ErrCommunityNotFound) {
		t.Errorf("expected ErrCommunityNotFound, got %v", err)
	}
}

func TestRemoveUserCascade(t *testing.T) {
	dir, cs := communityFixture(t)
	owner, x := dir.Get("owner"), dir.Get("x")

	if _, err := cs.Create(owner, "owned", "dies with its owner"); err != nil {
		t.Fatal(err)
	}
	if _, err := cs.Create(x, "joined", "survives"); err != nil {
		t.Fatal(err)
	}
	if err := cs.AddMember(owner, "joined"); err != nil {
		t.Fatal(err)
	}

	cs.RemoveUser(owner)

	if _, err := cs.Get("owned"); !errors.Is(err, ErrCommunityNotFound) {
		t.Error("owned community must be deleted outright")
	}
	c, err := cs.Get("joined")
	if err != nil {
		t.Fatal("joined community must survive:", err)
	}
	if diff := cmp.Diff([]string{"x"}, c.Members()); diff != "" {
		t.Errorf("membership after cascade (-want +got):\n%s", diff)
	}
}

func TestCommunitiesOfUserSorted(t *testing.T) {
	dir, cs := communityFixture(t)
	x := dir.Get("x")

	for _, name := range []string{"zoo", "alpha", "mid"} {
		if _, err := cs.Create(x, name, "d"); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff([]string{"alpha", "mid", "zoo"}, cs.Of("x")); diff != "" {
		t.Errorf("communities list not sorted (-want +got):\n%s", diff)
	}
	if got := cs.Of("y"); len(got) != 0 {
		t.Errorf("non-member should have no communities, got %v", got)
	}
}

func TestCommunityStateRoundTrip(t *testing.T) {
	dir, cs := communityFixture(t)
	if _, err := cs.Create(dir.Get("owner"), "c", "desc"); err != nil {
		t.Fatal(err)
	}
	if err := cs.AddMember(dir.Get("x"), "c"); err != nil {
		t.Fatal(err)
	}

	c, _ := cs.Get("c")
	restored := RestoreCommunity(c.State())
	if diff := cmp.Diff(c.State(), restored.State()); diff != "" {
		t.Errorf("community state round trip (-want +got):\n%s", diff)
	}
}
