package net

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// sendBuffer is how many messages may queue for a peer before it is
	// considered too slow and dropped.
	sendBuffer = 8
	writeWait  = 5 * time.Second
	readLimit  = 512
)

// peer is one connected WebSocket client.
type peer struct {
	conn *websocket.Conn
	send chan []byte
	addr string
}

func newPeer(conn *websocket.Conn) *peer {
	p := &peer{send: make(chan []byte, sendBuffer), conn: conn}
	if conn != nil {
		p.addr = conn.RemoteAddr().String()
	}
	return p
}

// peerSet is the feed's set of connected peers and the last message sent
// to them.
type peerSet struct {
	mu     sync.Mutex
	peers  map[*peer]struct{}
	latest []byte
	closed bool
	log    *slog.Logger
}

func newPeerSet(log *slog.Logger) *peerSet {
	return &peerSet{peers: make(map[*peer]struct{}), log: log}
}

// add registers p and queues the latest message for it. It reports false
// once the set is closed.
func (ps *peerSet) add(p *peer) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.closed {
		return false
	}
	ps.peers[p] = struct{}{}
	if ps.latest != nil {
		p.send <- ps.latest
	}
	ps.log.Info("feed peer connected", "addr", p.addr, "peers", len(ps.peers))
	return true
}

func (ps *peerSet) remove(p *peer) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.dropLocked(p, "disconnected")
}

func (ps *peerSet) dropLocked(p *peer, why string) {
	if _, ok := ps.peers[p]; !ok {
		return
	}
	delete(ps.peers, p)
	close(p.send)
	ps.log.Info("feed peer "+why, "addr", p.addr, "peers", len(ps.peers))
}

// broadcast records msg as the latest and queues it for every peer. A peer
// whose queue is full is dropped.
func (ps *peerSet) broadcast(msg []byte) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.latest = msg
	for p := range ps.peers {
		select {
		case p.send <- msg:
		default:
			ps.dropLocked(p, "dropped, too slow")
		}
	}
}

func (ps *peerSet) len() int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return len(ps.peers)
}

func (ps *peerSet) close() {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.closed = true
	for p := range ps.peers {
		ps.dropLocked(p, "closed")
	}
}

// writeLoop sends queued messages until the queue is closed, then closes
// the connection.
func (p *peer) writeLoop(log *slog.Logger) {
	defer p.conn.Close()
	for msg := range p.send {
		p.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Warn("feed write failed", "addr", p.addr, "err", err)
			return
		}
	}
	p.conn.SetWriteDeadline(time.Now().Add(writeWait))
	p.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readLoop discards incoming messages and returns when the peer goes away.
func (p *peer) readLoop() {
	p.conn.SetReadLimit(readLimit)
	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
	}
}
