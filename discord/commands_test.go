package discord

import (
	"context"
	"errors"
	"strings"
	"testing"

	"playlistbot/session"
	"playlistbot/spotify"
)

// fakeService scripts the Spotify API for handler tests
type fakeService struct {
	playlists []spotify.Playlist
	listErr   error
	listCalls int

	created   []string
	createErr error

	tracks      map[string]string // query -> track ID
	searchCalls []string

	addErr      error
	addCalls    int
	addedToID   string
	addedTracks []string
}

func (f *fakeService) ListPlaylists(context.Context) ([]spotify.Playlist, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.playlists, nil
}

func (f *fakeService) CreatePlaylist(_ context.Context, name string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, name)
	return nil
}

func (f *fakeService) SearchTrack(_ context.Context, query string) (string, error) {
	f.searchCalls = append(f.searchCalls, query)
	return f.tracks[query], nil
}

func (f *fakeService) AddTracks(_ context.Context, playlistID string, trackIDs []string) error {
	f.addCalls++
	f.addedToID = playlistID
	f.addedTracks = trackIDs
	return f.addErr
}

func newTestHandler(t *testing.T, service *fakeService) (*MessageHandler, *session.Store) {
	t.Helper()
	store := session.NewStore()
	h, err := NewMessageHandler(service, store)
	if err != nil {
		t.Fatalf("NewMessageHandler: %v", err)
	}
	return h, store
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		content  string
		wantName string
		wantArgs string
	}{
		{"/start", "/start", ""},
		{"/add river;stairway to heaven", "/add", "river;stairway to heaven"},
		{"/create My Mix ", "/create", "My Mix"},
		{"  /playlists  ", "/playlists", ""},
		{"yes", "", "yes"},
		{"3", "", "3"},
	}
	for _, tc := range cases {
		name, args := parseCommand(tc.content)
		if name != tc.wantName || args != tc.wantArgs {
			t.Errorf("parseCommand(%q) = (%q, %q), want (%q, %q)",
				tc.content, name, args, tc.wantName, tc.wantArgs)
		}
	}
}

func TestStartCommand(t *testing.T) {
	h, _ := newTestHandler(t, &fakeService{})

	reply := h.dispatch(context.Background(), "u1", "/start")
	for _, cmd := range []string{"/add", "/playlists", "/create"} {
		if !strings.Contains(reply, cmd) {
			t.Errorf("greeting missing %q: %q", cmd, reply)
		}
	}
}

func TestPlaylistsCommand(t *testing.T) {
	t.Run("Numbered In API Order", func(t *testing.T) {
		service := &fakeService{playlists: []spotify.Playlist{
			{Name: "Road Trip", ID: "P1"},
			{Name: "Focus", ID: "P2"},
		}}
		h, _ := newTestHandler(t, service)

		reply := h.dispatch(context.Background(), "u1", "/playlists")
		if !strings.Contains(reply, "1. Road Trip") || !strings.Contains(reply, "2. Focus") {
			t.Errorf("unexpected listing: %q", reply)
		}
	})

	t.Run("Never Mutates Session State", func(t *testing.T) {
		service := &fakeService{
			playlists: []spotify.Playlist{{Name: "Road Trip", ID: "P1"}},
			tracks:    map[string]string{"river": "T1"},
		}
		h, store := newTestHandler(t, service)

		h.dispatch(context.Background(), "u1", "/add river")
		before := store.Get("u1")
		h.dispatch(context.Background(), "u1", "/playlists")
		after := store.Get("u1")

		if before.Stage != after.Stage || len(before.TrackIDs) != len(after.TrackIDs) {
			t.Errorf("session changed by /playlists: %+v -> %+v", before, after)
		}
	})

	t.Run("Fetch Failure", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeService{listErr: errors.New("boom")})
		reply := h.dispatch(context.Background(), "u1", "/playlists")
		if !strings.Contains(reply, "Error fetching playlists") {
			t.Errorf("unexpected reply %q", reply)
		}
	})

	t.Run("No Playlists Is Not An Error", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeService{})
		reply := h.dispatch(context.Background(), "u1", "/playlists")
		if !strings.Contains(reply, "No playlists found") {
			t.Errorf("unexpected reply %q", reply)
		}
	})
}

func TestCreateCommand(t *testing.T) {
	t.Run("Requires A Name", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeService{})
		reply := h.dispatch(context.Background(), "u1", "/create")
		if !strings.Contains(reply, "Usage: /create") {
			t.Errorf("unexpected reply %q", reply)
		}
	})

	t.Run("Multi Word Name", func(t *testing.T) {
		service := &fakeService{}
		h, _ := newTestHandler(t, service)

		reply := h.dispatch(context.Background(), "u1", "/create Late Night Drives")
		if len(service.created) != 1 || service.created[0] != "Late Night Drives" {
			t.Errorf("unexpected created playlists %v", service.created)
		}
		if !strings.Contains(reply, "'Late Night Drives' created successfully") {
			t.Errorf("unexpected reply %q", reply)
		}
	})

	t.Run("Create Failure", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeService{createErr: errors.New("boom")})
		reply := h.dispatch(context.Background(), "u1", "/create Mix")
		if !strings.Contains(reply, "Error creating playlist") {
			t.Errorf("unexpected reply %q", reply)
		}
	})
}

func TestAddCommand(t *testing.T) {
	t.Run("Requires A Query", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeService{})
		reply := h.dispatch(context.Background(), "u1", "/add")
		if !strings.Contains(reply, "Usage: /add") {
			t.Errorf("unexpected reply %q", reply)
		}
	})

	t.Run("No Matches Stays Idle", func(t *testing.T) {
		h, store := newTestHandler(t, &fakeService{})
		reply := h.dispatch(context.Background(), "u1", "/add unknown_xyz_no_match")
		if !strings.Contains(reply, "No songs found") {
			t.Errorf("unexpected reply %q", reply)
		}
		if store.Get("u1").Stage != session.StageIdle {
			t.Errorf("expected idle session, got %v", store.Get("u1").Stage)
		}
	})

	t.Run("Unmatched Queries Are Dropped Silently", func(t *testing.T) {
		service := &fakeService{tracks: map[string]string{"river": "T1"}}
		h, store := newTestHandler(t, service)

		reply := h.dispatch(context.Background(), "u1", "/add river;unknown_xyz_no_match")
		if !strings.Contains(reply, "- river") {
			t.Errorf("expected river listed, got %q", reply)
		}
		if strings.Contains(reply, "unknown_xyz_no_match") {
			t.Errorf("unmatched query leaked into reply %q", reply)
		}

		state := store.Get("u1")
		if state.Stage != session.StageAwaitingConfirmation {
			t.Fatalf("expected awaiting confirmation, got %v", state.Stage)
		}
		if len(state.TrackIDs) != 1 || state.TrackIDs[0] != "T1" {
			t.Errorf("expected pending [T1], got %v", state.TrackIDs)
		}
	})

	t.Run("Pasted Track URL Skips Search", func(t *testing.T) {
		service := &fakeService{}
		h, store := newTestHandler(t, service)

		h.dispatch(context.Background(), "u1", "/add https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC?si=x")
		if len(service.searchCalls) != 0 {
			t.Errorf("expected no search calls, got %v", service.searchCalls)
		}
		state := store.Get("u1")
		if len(state.TrackIDs) != 1 || state.TrackIDs[0] != "4uLU6hMCjMI75M1A2tKUQC" {
			t.Errorf("expected embedded track ID pending, got %v", state.TrackIDs)
		}
	})
}

func TestAddDialog(t *testing.T) {
	twoPlaylists := []spotify.Playlist{
		{Name: "Road Trip", ID: "P1"},
		{Name: "Focus", ID: "P2"},
	}

	start := func(t *testing.T, service *fakeService) (*MessageHandler, *session.Store) {
		t.Helper()
		h, store := newTestHandler(t, service)
		if service.tracks == nil {
			service.tracks = map[string]string{"river": "T1"}
		}
		h.dispatch(context.Background(), "u1", "/add river")
		return h, store
	}

	t.Run("Yes Offers Playlists Fetched Fresh", func(t *testing.T) {
		service := &fakeService{playlists: twoPlaylists}
		h, store := start(t, service)

		reply := h.dispatch(context.Background(), "u1", "yes")
		if !strings.Contains(reply, "Choose a playlist by index") {
			t.Fatalf("unexpected reply %q", reply)
		}
		if !strings.Contains(reply, "1. Road Trip") || !strings.Contains(reply, "2. Focus") {
			t.Errorf("unexpected list %q", reply)
		}
		if service.listCalls != 1 {
			t.Errorf("expected a fresh listing call, got %d", service.listCalls)
		}
		if store.Get("u1").Stage != session.StageAwaitingPlaylistChoice {
			t.Errorf("expected awaiting choice, got %v", store.Get("u1").Stage)
		}
	})

	t.Run("No Cancels", func(t *testing.T) {
		service := &fakeService{playlists: twoPlaylists}
		h, store := start(t, service)

		reply := h.dispatch(context.Background(), "u1", "no")
		if !strings.Contains(reply, "cancelled") {
			t.Errorf("unexpected reply %q", reply)
		}
		if store.Get("u1").Stage != session.StageIdle {
			t.Errorf("expected idle, got %v", store.Get("u1").Stage)
		}
	})

	t.Run("Unrecognized Confirmation Gets Its Own Prompt", func(t *testing.T) {
		service := &fakeService{playlists: twoPlaylists}
		h, store := start(t, service)

		reply := h.dispatch(context.Background(), "u1", "maybe")
		if !strings.Contains(reply, "'yes' or 'no'") {
			t.Errorf("unexpected reply %q", reply)
		}
		if store.Get("u1").Stage != session.StageAwaitingConfirmation {
			t.Errorf("expected still awaiting confirmation, got %v", store.Get("u1").Stage)
		}
	})

	t.Run("Out Of Range Selection Never Adds", func(t *testing.T) {
		service := &fakeService{playlists: twoPlaylists}
		h, store := start(t, service)
		h.dispatch(context.Background(), "u1", "yes")

		reply := h.dispatch(context.Background(), "u1", "3")
		if !strings.Contains(reply, "Invalid playlist selection") {
			t.Errorf("unexpected reply %q", reply)
		}
		if service.addCalls != 0 {
			t.Errorf("expected no add call, got %d", service.addCalls)
		}
		if store.Get("u1").Stage != session.StageAwaitingPlaylistChoice {
			t.Errorf("expected still awaiting choice, got %v", store.Get("u1").Stage)
		}
	})

	t.Run("Non Integer Selection Prompts Again", func(t *testing.T) {
		service := &fakeService{playlists: twoPlaylists}
		h, store := start(t, service)
		h.dispatch(context.Background(), "u1", "yes")

		reply := h.dispatch(context.Background(), "u1", "the second one")
		if !strings.Contains(reply, "valid number") {
			t.Errorf("unexpected reply %q", reply)
		}
		if store.Get("u1").Stage != session.StageAwaitingPlaylistChoice {
			t.Errorf("expected still awaiting choice, got %v", store.Get("u1").Stage)
		}
	})

	t.Run("Valid Selection Adds And Clears", func(t *testing.T) {
		service := &fakeService{playlists: twoPlaylists}
		h, store := start(t, service)
		h.dispatch(context.Background(), "u1", "yes")

		reply := h.dispatch(context.Background(), "u1", "2")
		if !strings.Contains(reply, "Songs added successfully") {
			t.Errorf("unexpected reply %q", reply)
		}
		if service.addedToID != "P2" {
			t.Errorf("expected add to P2, got %q", service.addedToID)
		}
		if len(service.addedTracks) != 1 || service.addedTracks[0] != "T1" {
			t.Errorf("unexpected tracks %v", service.addedTracks)
		}
		if store.Get("u1").Stage != session.StageIdle {
			t.Errorf("expected idle after add, got %v", store.Get("u1").Stage)
		}
	})

	t.Run("Failed Add Still Clears Pending State", func(t *testing.T) {
		service := &fakeService{playlists: twoPlaylists, addErr: errors.New("boom")}
		h, store := start(t, service)
		h.dispatch(context.Background(), "u1", "yes")

		reply := h.dispatch(context.Background(), "u1", "1")
		if !strings.Contains(reply, "Error adding songs") {
			t.Errorf("unexpected reply %q", reply)
		}
		if store.Get("u1").Stage != session.StageIdle {
			t.Errorf("expected idle after failed add, got %v", store.Get("u1").Stage)
		}
	})

	t.Run("Free Text While Idle Is Ignored", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeService{})
		if reply := h.dispatch(context.Background(), "u1", "hello there"); reply != "" {
			t.Errorf("expected no reply, got %q", reply)
		}
	})

	t.Run("Unknown Command Is Ignored", func(t *testing.T) {
		h, _ := newTestHandler(t, &fakeService{})
		if reply := h.dispatch(context.Background(), "u1", "/weather"); reply != "" {
			t.Errorf("expected no reply, got %q", reply)
		}
	})

	t.Run("Users Do Not Share Dialogs", func(t *testing.T) {
		service := &fakeService{playlists: twoPlaylists}
		h, store := start(t, service)

		// u2 never ran /add; their "yes" means nothing
		if reply := h.dispatch(context.Background(), "u2", "yes"); reply != "" {
			t.Errorf("expected no reply for u2, got %q", reply)
		}
		if store.Get("u1").Stage != session.StageAwaitingConfirmation {
			t.Errorf("u1 dialog disturbed: %v", store.Get("u1").Stage)
		}
	})
}
