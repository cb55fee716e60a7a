package controllers

import (
	"context"
	"io"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/flightplanner/pkg/util"
	"go.uber.org/zap"
)

// User. one websocket connection streaming route queries. each text frame is a shortestPathRequest,
// each reply a data or error envelope.
type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

func (u *User) GetId() uint {
	return u.id
}

// readRequest. nil request and nil error for control frames.
func (u *User) readRequest() (*shortestPathRequest, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r)
	}

	req := &shortestPathRequest{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ComputeRoute. read one query from the connection and answer it.
func (u *User) ComputeRoute() error {
	req, err := u.readRequest()
	if err != nil {
		u.conn.Close()
		return err
	}

	if req == nil {
		return nil
	}

	if err := validateRequest(req); err != nil {
		return u.writeError(http.StatusBadRequest, err.Error())
	}
	criterion, algorithm, err := req.parse()
	if err != nil {
		return u.writeError(http.StatusBadRequest, err.Error())
	}

	ctx, cancel := u.hub.queryContext()
	defer cancel()

	it, err := u.hub.routingService.ShortestPath(ctx, req.Origin, req.Destination, criterion, algorithm)
	if err != nil {
		u.hub.log.Debug("websocket route query failed", zap.Uint("user", u.id), zap.Error(err))
		status := statusOf(err)
		if status == http.StatusInternalServerError {
			return u.writeError(status, util.MessageInternalServerError)
		}
		return u.writeError(status, err.Error())
	}

	report, err := reportOf(it)
	if err != nil {
		return err
	}
	return u.write(envelope{"data": NewShortestPathResponse(it, report)})
}

func (u *User) writeError(status int, message string) error {
	var resp errorResponse
	resp.Error.Code = http.StatusText(status)
	resp.Error.Message = message
	return u.write(envelope{"error": resp.Error})
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

type Hub struct {
	mu             sync.RWMutex
	seq            uint
	us             []*User
	ns             map[uint]*User
	routingService RoutingService
	queryTimeout   time.Duration
	log            *zap.Logger
}

// queryContext. bounded by queryTimeout, unbounded when it is not positive.
func (h *Hub) queryContext() (context.Context, context.CancelFunc) {
	if h.queryTimeout > 0 {
		return context.WithTimeout(context.Background(), h.queryTimeout)
	}
	return context.WithCancel(context.Background())
}

func NewHub(routingService RoutingService, queryTimeout time.Duration, log *zap.Logger) *Hub {
	return &Hub{
		ns:             make(map[uint]*User),
		us:             make([]*User, 0),
		routingService: routingService,
		queryTimeout:   queryTimeout,
		log:            log,
	}
}

func (h *Hub) Register(conn net.Conn) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	return user
}

func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.ns[user.id]; !ok {
		return
	}
	delete(h.ns, user.id)

	// us is sorted by id
	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs
}

func (h *Hub) NumUsers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.us)
}

// RemoveAllUser. closes every connection.
func (h *Hub) RemoveAllUser() {
	h.mu.RLock()
	users := make([]*User, len(h.us))
	copy(users, h.us)
	h.mu.RUnlock()

	for _, user := range users {
		user.conn.Close()
		h.Remove(user)
	}
}
