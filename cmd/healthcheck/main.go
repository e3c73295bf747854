// Command healthcheck checks the local server's liveness endpoint and exits
// 0 when it answers 200, 1 otherwise. It is meant for container HEALTHCHECKs.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/config"
)

func main() {
	port := os.Getenv(config.EnvPort)
	if port == "" {
		port = "3000"
	}

	client := &http.Client{Timeout: 5 * time.Second}
	url := fmt.Sprintf("http://localhost:%s/livez", port)

	resp, err := client.Get(url)
	if err != nil {
		os.Exit(1)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
