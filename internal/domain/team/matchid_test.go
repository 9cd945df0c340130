package team

import "testing"

func TestFromMatchID(t *testing.T) {
	t.Parallel()

	t1, t2, ok := FromMatchID("101_ChennaiSuperKings_vs_MumbaiIndians")
	if !ok {
		t.Fatalf("expected match id to parse")
	}
	if t1 != "Chennai Super Kings" || t2 != "Mumbai Indians" {
		t.Fatalf("unexpected teams %q / %q", t1, t2)
	}

	if _, _, ok := FromMatchID("no-teams-here"); ok {
		t.Fatalf("expected malformed id to be rejected")
	}
}

func TestFolderNameRoundTrip(t *testing.T) {
	t.Parallel()

	folder := FolderName("55", "Royal Challengers Bengaluru", "Delhi Capitals")
	if folder != "55_RoyalChallengersBengaluru_vs_DelhiCapitals" {
		t.Fatalf("unexpected folder %q", folder)
	}
	t1, t2, ok := FromMatchID(folder)
	if !ok || t1 != "Royal Challengers Bengaluru" || t2 != "Delhi Capitals" {
		t.Fatalf("round trip failed: %q %q %v", t1, t2, ok)
	}
}
