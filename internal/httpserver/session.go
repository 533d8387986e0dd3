package httpserver

import (
	"log"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopfront/internal/cart"
	"shopfront/internal/controller"
	"shopfront/internal/kvstore"
	"shopfront/internal/ui"
)

const sessionCookie = "shopfront_session"

// session is one shopper's page state and controller. Its mutex serializes
// events so each handler sees the single-threaded page the core assumes.
type session struct {
	mu   sync.Mutex
	id   string
	page *ui.State
	ctrl *controller.Controller
}

type sessionManager struct {
	mu       sync.Mutex
	kv       kvstore.Store
	logger   *log.Logger
	sessions map[string]*session
}

func newSessionManager(kv kvstore.Store, logger *log.Logger) *sessionManager {
	return &sessionManager{
		kv:       kv,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// get returns the request's session, creating one (and its cookie) on first
// contact. The shopper's cart is keyed under "cart:<session id>" so the
// controller keeps its fixed-key contract per shopper.
func (m *sessionManager) get(c *gin.Context) *session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, err := c.Cookie(sessionCookie); err == nil {
		if s, ok := m.sessions[id]; ok {
			return s
		}
	}

	id := uuid.NewString()
	page := ui.NewState()
	page.SetVisible(ui.ContainerConfirm, false)

	store := cart.New(m.kv, "cart:"+id, m.logger)
	ctrl := controller.New(store, page, m.logger)
	ctrl.Init(c.Request.Context())

	s := &session{id: id, page: page, ctrl: ctrl}
	m.sessions[id] = s
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return s
}
