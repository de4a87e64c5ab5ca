//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync/atomic"
)

func main() {
	port := flag.Int("port", 26657, "Port to listen on")
	failEvery := flag.Int("fail-every", 0, "Respond with 503 to every Nth request (0 disables)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: testserver [options] <status.json>")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	statusPath := args[0]
	if _, err := os.Stat(statusPath); os.IsNotExist(err) {
		log.Fatalf("Status file does not exist: %s", statusPath)
	}

	var requests atomic.Int64
	http.HandleFunc("/status", func(w http.ResponseWriter, _ *http.Request) {
		n := requests.Add(1)
		if *failEvery > 0 && n%int64(*failEvery) == 0 {
			http.Error(w, "Simulated node outage", http.StatusServiceUnavailable)
			log.Printf("Simulated failure on request %d", n)
			return
		}
		serveJSONFile(w, statusPath)
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Test server listening on %s", addr)
	log.Printf("Status: %s -> http://localhost%s/status", statusPath, addr)
	log.Println("\nThe file is read on each request, so you can edit it while the server is running.")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func serveJSONFile(w http.ResponseWriter, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read file: %v", err), http.StatusInternalServerError)
		log.Printf("Error reading %s: %v", path, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(content)
	log.Printf("Served %s (%d bytes)", path, len(content))
}
