package server

import (
	"encoding/json"
	"net"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/komorebi-go/komorebi/wm"
)

// StateServer listens on the state socket ($HOME/komorebic.sock); each
// connection receives the current manager snapshot as one JSON document
// and the connection is then closed.
type StateServer struct {
	addr     string
	manager  *wm.WindowManager
	log      *logrus.Logger
	listener net.Listener
	quit     chan struct{}
	wg       sync.WaitGroup
}

// NewStateServer returns a state server bound to addr.
func NewStateServer(addr string, manager *wm.WindowManager, log *logrus.Logger) *StateServer {
	return &StateServer{addr: addr, manager: manager, log: log, quit: make(chan struct{})}
}

// Start removes any stale socket file, listens, and begins serving
// snapshots in a background goroutine.
func (s *StateServer) Start() error {
	if err := os.RemoveAll(s.addr); err != nil {
		return err
	}
	l, err := net.Listen("unix", s.addr)
	if err != nil {
		return err
	}
	s.listener = l
	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

// Stop closes the listener and waits for the accept loop to exit.
func (s *StateServer) Stop() error {
	close(s.quit)
	err := s.listener.Close()
	s.wg.Wait()
	return err
}

func (s *StateServer) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.quit:
				return
			default:
				s.log.WithError(err).Error("state server: accept failed")
				continue
			}
		}
		go s.handleConn(conn)
	}
}

func (s *StateServer) handleConn(conn net.Conn) {
	defer conn.Close()
	snapshot := s.manager.Snapshot()
	enc := json.NewEncoder(conn)
	if err := enc.Encode(snapshot); err != nil {
		s.log.WithError(err).Error("state server: encode failed")
	}
}
