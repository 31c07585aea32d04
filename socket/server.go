package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server that fans chat messages
// out to clients watching a thread. Clients join a room named after the
// thread ID and receive "newMessage" events for it.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, threadID string) {
		if threadID == "" {
			log.Println("Invalid threadId in join request")
			return
		}
		log.Printf("Socket %s joined thread %s", s.ID(), threadID)
		s.Join(threadID)
	})

	server.OnEvent("/", "leave", func(s socketio.Conn, threadID string) {
		s.Leave(threadID)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("Socket disconnected:", s.ID(), reason)
	})

	return server
}
