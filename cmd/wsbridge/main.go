// Command wsbridge lets browser clients play against a warship server.
// Each WebSocket connection maps to one TCP connection to the game
// server; binary WebSocket messages carry raw protocol frames, which the
// bridge relays in both directions until either side closes.
package main

import (
	"bytes"
	"flag"
	"log"
	"net"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/warship-net/warship/internal/protocol"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func main() {
	listen := flag.String("listen", ":8081", "WebSocket listen address")
	server := flag.String("server", "127.0.0.1:8080", "game server address")
	flag.Parse()

	http.HandleFunc("/play", func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("❌ upgrade: %v", err)
			return
		}
		go bridge(ws, *server)
	})

	log.Printf("🌉 wsbridge listening on %s, game server at %s", *listen, *server)
	log.Fatal(http.ListenAndServe(*listen, nil))
}

// bridge relays frames between one WebSocket client and the game server.
func bridge(ws *websocket.Conn, serverAddr string) {
	defer ws.Close()

	tcp, err := net.Dial("tcp", serverAddr)
	if err != nil {
		log.Printf("❌ dial game server: %v", err)
		return
	}
	defer tcp.Close()

	log.Printf("✅ bridged %s", ws.RemoteAddr())

	// Server -> browser: one protocol frame per binary ws message.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			frame, err := protocol.ReadFrame(tcp)
			if err != nil {
				return
			}
			var buf bytes.Buffer
			if err := protocol.WriteFrame(&buf, frame); err != nil {
				return
			}
			if err := ws.WriteMessage(websocket.BinaryMessage, buf.Bytes()); err != nil {
				return
			}
		}
	}()

	// Browser -> server: each binary ws message must hold one frame.
	for {
		kind, data, err := ws.ReadMessage()
		if err != nil {
			break
		}
		if kind != websocket.BinaryMessage {
			continue
		}
		frame, err := protocol.ReadFrame(bytes.NewReader(data))
		if err != nil {
			log.Printf("❌ bad frame from %s: %v", ws.RemoteAddr(), err)
			break
		}
		if err := protocol.WriteFrame(tcp, frame); err != nil {
			break
		}
	}
	tcp.Close()
	<-done
	log.Printf("❎ closed %s", ws.RemoteAddr())
}
