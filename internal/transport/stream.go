package transport

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/scholarpay/scholarpay-backend/internal/model"
	"go.uber.org/zap"
)

const (
	streamWriteTimeout  = 5 * time.Second
	subscriberQueueSize = 16
)

// Stream fans newly appended ledger blocks out to websocket subscribers.
// Wire Publish into the ledger's append hook: it only queues, network writes
// run on each subscriber's own goroutine, so the appending goroutine never
// blocks. A subscriber that cannot keep up is evicted.
type Stream struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]chan blockEvent
}

// NewStream constructs a Stream.
func NewStream(logger *zap.Logger) *Stream {
	return &Stream{
		logger: logger.Named("ledger_stream"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]chan blockEvent),
	}
}

type blockEvent struct {
	Index     uint64    `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	PrevHash  string    `json:"prevHash"`
	Hash      string    `json:"hash"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
}

// Publish queues one block for every subscriber and returns without waiting
// on the network. A subscriber whose queue is full is evicted.
func (s *Stream) Publish(block model.Block) {
	event := blockEvent{
		Index:     block.Index,
		Timestamp: block.Timestamp,
		PrevHash:  block.PrevHash,
		Hash:      block.Hash,
		Amount:    block.Data.Amount,
		Currency:  block.Data.Currency,
		Status:    block.Data.Status,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn, queue := range s.clients {
		select {
		case queue <- event:
		default:
			s.logger.Warn("evicting backlogged subscriber",
				zap.Uint64("blockIndex", block.Index),
			)
			delete(s.clients, conn)
			close(queue)
		}
	}
}

// Subscribers returns the current subscriber count.
func (s *Stream) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// remove is idempotent; the read and write loops may both report the same
// subscriber gone.
func (s *Stream) remove(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if queue, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		close(queue)
	}
}

// writeLoop drains one subscriber's queue onto its connection. It exits when
// the queue is closed by eviction or disconnect, closing the connection so
// the read loop unblocks too.
func (s *Stream) writeLoop(conn *websocket.Conn, queue chan blockEvent) {
	defer func() {
		_ = conn.Close()
	}()
	for event := range queue {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := conn.WriteJSON(event); err != nil {
			s.logger.Warn("dropping slow subscriber", zap.Error(err))
			s.remove(conn)
			return
		}
	}
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the peer goes away.
func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	queue := make(chan blockEvent, subscriberQueueSize)
	s.mu.Lock()
	s.clients[conn] = queue
	s.mu.Unlock()

	go s.writeLoop(conn, queue)

	// Block feed is one way; the read loop only notices disconnects.
	go func() {
		defer s.remove(conn)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()
}
