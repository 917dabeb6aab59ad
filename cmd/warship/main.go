// Command warship plays networked battleship. With -server it binds the
// given address and pairs arriving players into matches forever; without
// it, it connects to the address, plays one match in the terminal and
// exits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/warship-net/warship/internal/client"
	"github.com/warship-net/warship/internal/server"
	"github.com/warship-net/warship/internal/tui"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "address to serve on or connect to")
	serverMode := flag.Bool("server", false, "act as server (default: client)")
	flag.Parse()

	if *serverMode {
		log.Printf("🎮 warship server starting...")
		if err := server.New(server.DefaultConfig()).Listen(*addr); err != nil {
			log.Fatalf("server: %v", err)
		}
		return
	}

	if err := runClient(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "warship: %v\n", err)
		os.Exit(1)
	}
}

func runClient(addr string) error {
	ui, err := tui.New()
	if err != nil {
		return err
	}
	defer ui.Close()

	c, err := client.Connect(addr, ui)
	if err != nil {
		return err
	}
	defer c.Close()

	won, err := c.Play(ui)
	if err != nil {
		return err
	}

	ui.Close()
	if won {
		fmt.Println("victory!")
	} else {
		fmt.Println("defeat.")
	}
	return nil
}
