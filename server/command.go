// Package server hosts the two Unix-domain sockets external processes
// speak to: the command socket (one message per connection) and the
// state socket (a JSON dump of the manager on request).
package server

import (
	"bufio"
	"net"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/komorebi-go/komorebi/ipc"
	"github.com/komorebi-go/komorebi/wm"
)

// CommandServer accepts connections on the command socket, decodes one
// ipc.Message per connection, and dispatches it to the manager.
type CommandServer struct {
	addr     string
	manager  *wm.WindowManager
	log      *logrus.Logger
	listener net.Listener
	quit     chan struct{}
	wg       sync.WaitGroup

	onStop func()
}

// NewCommandServer returns a server bound to addr (typically
// $HOME/komorebi.sock) that dispatches decoded messages into manager.
func NewCommandServer(addr string, manager *wm.WindowManager, log *logrus.Logger, onStop func()) *CommandServer {
	return &CommandServer{addr: addr, manager: manager, log: log, quit: make(chan struct{}), onStop: onStop}
}

// Start removes any stale socket file, listens, and begins accepting
// connections in a background goroutine.
func (s *CommandServer) Start() error {
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
func (s *CommandServer) Stop() error {
	close(s.quit)
	err := s.listener.Close()
	s.wg.Wait()
	return err
}

func (s *CommandServer) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.quit:
				return
			default:
				s.log.WithError(err).Error("command server: accept failed")
				continue
			}
		}
		go s.handleConn(conn)
	}
}

func (s *CommandServer) handleConn(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	if !scanner.Scan() {
		return
	}

	msg, err := ipc.Decode(scanner.Bytes())
	if err != nil {
		s.log.WithError(err).Warn("command server: bad message")
		return
	}

	if msg.Op == ipc.OpStop {
		if s.onStop != nil {
			s.onStop()
		}
		return
	}

	if err := Dispatch(s.manager, msg); err != nil {
		s.log.WithError(err).WithField("op", msg.Op).Warn("command server: dispatch failed")
	}
}
