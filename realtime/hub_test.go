package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"pushnotify/models"
	"pushnotify/services/dispatch"
	"pushnotify/services/presence"
	"pushnotify/services/store"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeSocket struct {
	in        chan []byte
	closeOnce sync.Once

	mu     sync.Mutex
	writes [][]byte
}

func newFakeSocket() *fakeSocket {
	return &fakeSocket{in: make(chan []byte, 8)}
}

func (f *fakeSocket) ReadMessage() (int, []byte, error) {
	payload, ok := <-f.in
	if !ok {
		return 0, nil, io.EOF
	}
	return websocket.TextMessage, payload, nil
}

func (f *fakeSocket) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, append([]byte(nil), data...))
	return nil
}

func (f *fakeSocket) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeSocket) Close() error {
	f.closeOnce.Do(func() { close(f.in) })
	return nil
}

func (f *fakeSocket) snapshot() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.writes...)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	db, err := gorm.Open(dsn, &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Notification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func startSession(h *Hub, sock *fakeSocket) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		h.run(context.Background(), newSession(sock))
		close(done)
	}()
	return done
}

func waitUntil(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func decode(t *testing.T, payload []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		t.Fatalf("unmarshal %q: %v", payload, err)
	}
	return m
}

func authMsg(userID uint) []byte {
	return []byte(fmt.Sprintf(`{"type":"auth","userId":%d}`, userID))
}

func TestSessionSendsConnectionAck(t *testing.T) {
	h := NewHub(presence.NewRegistry(), store.New(newTestDB(t)), zap.NewNop())
	sock := newFakeSocket()
	done := startSession(h, sock)

	waitUntil(t, "connection ack", func() bool { return len(sock.snapshot()) >= 1 })
	ack := decode(t, sock.snapshot()[0])
	if ack["type"] != "connection" {
		t.Fatalf("expected connection ack first, got %v", ack)
	}

	sock.Close()
	<-done
}

func TestAuthRegistersAndSendsCatchUp(t *testing.T) {
	db := newTestDB(t)
	st := store.New(db)
	registry := presence.NewRegistry()
	h := NewHub(registry, st, zap.NewNop())

	u := models.User{Email: "a@example.com"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"t1", "t2", "t3"} {
		n := models.Notification{UserID: u.ID, Title: title, Body: "b", Category: "info", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := db.Create(&n).Error; err != nil {
			t.Fatalf("seed notification: %v", err)
		}
	}

	sock := newFakeSocket()
	done := startSession(h, sock)
	sock.in <- authMsg(u.ID)

	waitUntil(t, "auth_success and catch-up", func() bool { return len(sock.snapshot()) >= 3 })
	writes := sock.snapshot()

	auth := decode(t, writes[1])
	if auth["type"] != "auth_success" || uint(auth["userId"].(float64)) != u.ID {
		t.Fatalf("unexpected auth ack: %v", auth)
	}

	var batch unreadBatch
	if err := json.Unmarshal(writes[2], &batch); err != nil {
		t.Fatalf("unmarshal batch: %v", err)
	}
	if batch.Type != "unread_notifications" || batch.Count != 3 {
		t.Fatalf("unexpected batch header: %+v", batch)
	}
	for i, want := range []string{"t3", "t2", "t1"} {
		if batch.Notifications[i].Title != want {
			t.Fatalf("catch-up position %d: expected %q, got %q", i, want, batch.Notifications[i].Title)
		}
	}

	if _, ok := registry.Lookup(u.ID); !ok {
		t.Fatalf("expected session to be registered")
	}
	var onlineUser models.User
	if err := db.First(&onlineUser, u.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !onlineUser.IsOnline {
		t.Fatalf("expected is_online = true after auth")
	}

	sock.Close()
	<-done

	if _, ok := registry.Lookup(u.ID); ok {
		t.Fatalf("expected session to be unregistered after close")
	}
	if err := db.First(&onlineUser, u.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if onlineUser.IsOnline {
		t.Fatalf("expected is_online = false after close")
	}
}

func TestAuthWithoutUnreadSendsNoBatch(t *testing.T) {
	db := newTestDB(t)
	registry := presence.NewRegistry()
	h := NewHub(registry, store.New(db), zap.NewNop())

	u := models.User{Email: "a@example.com"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	sock := newFakeSocket()
	done := startSession(h, sock)
	sock.in <- authMsg(u.ID)

	waitUntil(t, "auth ack", func() bool { return len(sock.snapshot()) >= 2 })
	time.Sleep(50 * time.Millisecond)
	if got := len(sock.snapshot()); got != 2 {
		t.Fatalf("expected exactly ack + auth_success, got %d writes", got)
	}

	sock.Close()
	<-done
}

func TestMalformedMessageIsContained(t *testing.T) {
	db := newTestDB(t)
	registry := presence.NewRegistry()
	h := NewHub(registry, store.New(db), zap.NewNop())

	u := models.User{Email: "a@example.com"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	sock := newFakeSocket()
	done := startSession(h, sock)

	sock.in <- []byte("{not json")
	sock.in <- []byte(`{"type":"ping"}`) // pre-auth, ignored
	sock.in <- authMsg(u.ID)

	waitUntil(t, "auth after garbage", func() bool {
		for _, w := range sock.snapshot() {
			if decode(t, w)["type"] == "auth_success" {
				return true
			}
		}
		return false
	})
	if _, ok := registry.Lookup(u.ID); !ok {
		t.Fatalf("session must survive malformed input and authenticate")
	}

	sock.Close()
	<-done
}

func TestReauthSupersedesOldConnection(t *testing.T) {
	db := newTestDB(t)
	registry := presence.NewRegistry()
	h := NewHub(registry, store.New(db), zap.NewNop())

	u := models.User{Email: "a@example.com"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	first := newFakeSocket()
	firstDone := startSession(h, first)
	first.in <- authMsg(u.ID)
	waitUntil(t, "first auth", func() bool { return registry.Online() == 1 })

	second := newFakeSocket()
	secondDone := startSession(h, second)
	second.in <- authMsg(u.ID)

	// Registering the second session force-closes the first; its read loop
	// exits and its stale unregister must not evict the new handle.
	<-firstDone
	waitUntil(t, "second session registered", func() bool {
		_, ok := registry.Lookup(u.ID)
		return ok && registry.Online() == 1
	})

	var got models.User
	if err := db.First(&got, u.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !got.IsOnline {
		t.Fatalf("user must stay online while the superseding session lives")
	}

	second.Close()
	<-secondDone
	if _, ok := registry.Lookup(u.ID); ok {
		t.Fatalf("expected no registration after the live session closed")
	}
}

func TestOfflineDispatchThenCatchUp(t *testing.T) {
	db := newTestDB(t)
	st := store.New(db)
	registry := presence.NewRegistry()
	h := NewHub(registry, st, zap.NewNop())

	u := models.User{Email: "a@example.com"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	dispatcher := dispatch.New(st, registry, &singleUserDirectory{user: u}, zap.NewNop())
	result, err := dispatcher.Dispatch(context.Background(), u.ID, "Title", "Body", "info")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.Delivery != dispatch.DeliverySavedForLater {
		t.Fatalf("expected saved_for_later while offline, got %q", result.Delivery)
	}

	sock := newFakeSocket()
	done := startSession(h, sock)
	sock.in <- authMsg(u.ID)

	waitUntil(t, "catch-up", func() bool { return len(sock.snapshot()) >= 3 })
	var batch unreadBatch
	if err := json.Unmarshal(sock.snapshot()[2], &batch); err != nil {
		t.Fatalf("unmarshal batch: %v", err)
	}
	if batch.Count != 1 || batch.Notifications[0].Title != "Title" ||
		batch.Notifications[0].Body != "Body" || batch.Notifications[0].IsRead {
		t.Fatalf("unexpected catch-up batch: %+v", batch)
	}

	sock.Close()
	<-done
}

func TestRealtimeDeliveryToLiveSession(t *testing.T) {
	db := newTestDB(t)
	st := store.New(db)
	registry := presence.NewRegistry()
	h := NewHub(registry, st, zap.NewNop())

	u := models.User{Email: "a@example.com"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	sock := newFakeSocket()
	done := startSession(h, sock)
	sock.in <- authMsg(u.ID)
	waitUntil(t, "session registered", func() bool { _, ok := registry.Lookup(u.ID); return ok })

	dispatcher := dispatch.New(st, registry, &singleUserDirectory{user: u}, zap.NewNop())
	result, err := dispatcher.Dispatch(context.Background(), u.ID, "Live", "Body", "info")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.Delivery != dispatch.DeliveryRealtime {
		t.Fatalf("expected realtime, got %q", result.Delivery)
	}

	waitUntil(t, "live push", func() bool {
		for _, w := range sock.snapshot() {
			if decode(t, w)["type"] == "notification" {
				return true
			}
		}
		return false
	})

	// The record is also durably queryable.
	list, err := st.ListForUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Live" {
		t.Fatalf("unexpected stored rows: %+v", list)
	}

	sock.Close()
	<-done
}

type singleUserDirectory struct {
	user models.User
}

func (d *singleUserDirectory) GetById(ctx context.Context, id uint) (*models.User, error) {
	if id == d.user.ID {
		u := d.user
		return &u, nil
	}
	return nil, nil
}

func (d *singleUserDirectory) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	if d.user.Role == role {
		return []models.User{d.user}, nil
	}
	return nil, nil
}
