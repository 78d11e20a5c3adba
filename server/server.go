package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/hanabi/engine"
	"github.com/minaorangina/hanabi/store"
	"github.com/sirupsen/logrus"
)

// ServerOpts configures a GameServer
type ServerOpts struct {
	Addr           string
	Logger         *logrus.Logger
	AllowedOrigins []string
}

// GameServer is a game server. Each websocket connection plays its own session.
type GameServer struct {
	store     store.SessionStore
	log       *logrus.Logger
	upgrader  websocket.Upgrader
	accessLog io.WriteCloser
	http.Server
}

// NewServer creates a new GameServer
func NewServer(st store.SessionStore, opts ServerOpts) *GameServer {
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetOutput(io.Discard)
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	s := &GameServer{
		store: st,
		log:   opts.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(opts.AllowedOrigins),
		},
		accessLog: opts.Logger.WriterLevel(logrus.InfoLevel),
	}

	router := http.NewServeMux()
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))
	router.Handle("/sessions", http.HandlerFunc(s.HandleListSessions))
	router.Handle("/sessions/", http.HandlerFunc(s.HandleFindSession))

	cors := handlers.CORS(
		handlers.AllowedOrigins(opts.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet}),
	)

	s.Addr = opts.Addr
	s.Handler = handlers.RecoveryHandler(
		handlers.RecoveryLogger(s.log),
	)(handlers.CombinedLoggingHandler(s.accessLog, cors(router)))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// CloseAccessLog releases the access log writer once the server has stopped
func (g *GameServer) CloseAccessLog() error {
	return g.accessLog.Close()
}

// HandleListSessions lists every live session
func (g *GameServer) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	g.writeJSON(w, http.StatusOK, g.store.List())
}

// HandleFindSession reports a single session, along with its latest report
func (g *GameServer) HandleFindSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/sessions/")
	if id == "" {
		writeText(w, http.StatusBadRequest, "missing session ID")
		return
	}

	info, err := g.store.Snapshot(id)
	if errors.Is(err, store.ErrUnknownSessionID) {
		writeText(w, http.StatusNotFound, unknownSessionIDMsg(id))
		return
	}
	if err != nil {
		g.log.WithError(err).Error("snapshot failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	g.writeJSON(w, http.StatusOK, info)
}

// HandleWS upgrades the connection and plays a session over it until the
// session ends or the client goes away
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	session := engine.NewSession(engine.SessionOpts{Logger: g.log})
	log := g.log.WithField("session", session.ID())

	if err := g.store.Add(session); err != nil {
		log.WithError(err).Warn("refusing session")
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrStoreFull) {
			status = http.StatusServiceUnavailable
		}
		writeText(w, status, err.Error())
		return
	}

	rawConn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already written the error response
		log.WithError(err).Warn("could not upgrade to websocket")
		g.store.Remove(session.ID())
		return
	}

	log.Info("session opened")

	conn := newWSConn(rawConn, session.ID(), g.store)
	runErr := engine.Run(session, conn, conn)

	g.store.Remove(session.ID())

	if runErr != nil {
		log.WithError(runErr).Error("session failed")
		conn.close(websocket.CloseInternalServerErr, "session failed")
		return
	}

	log.Info("session closed")
	conn.close(websocket.CloseNormalClosure, "session ended")
}

func checkOrigin(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}
