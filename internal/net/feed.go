// Package net shares a board's content changes with other processes on
// the local network: a WebSocket feed, announced over mDNS.
package net

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"StylusBoard/internal/board"
)

// Feed is an http.Handler that streams content changes to WebSocket
// clients as JSON. A client receives the most recent change as soon as it
// connects.
type Feed struct {
	upgrader websocket.Upgrader
	peers    *peerSet
	log      *slog.Logger
}

func NewFeed(log *slog.Logger) *Feed {
	if log == nil {
		log = slog.Default()
	}
	return &Feed{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		peers: newPeerSet(log),
		log:   log,
	}
}

// Publish sends c to every connected client.
func (f *Feed) Publish(c board.ContentChange) error {
	msg, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode content change: %w", err)
	}
	f.peers.broadcast(msg)
	return nil
}

// Peers returns the number of connected clients.
func (f *Feed) Peers() int { return f.peers.len() }

// Close disconnects every client and refuses new ones.
func (f *Feed) Close() { f.peers.close() }

func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.Warn("feed upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	p := newPeer(conn)
	if !f.peers.add(p) {
		conn.Close()
		return
	}
	go p.writeLoop(f.log)
	p.readLoop()
	f.peers.remove(p)
}
