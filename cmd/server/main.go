// main.go
// HTTP server exposing the wordscapes module over JSON, in the shape of the
// teacher's go-app/main.go: a couple of handlers, PORT from the
// environment, log output on stderr. Local runs load a .env file via
// godotenv; deployed environments set the variables directly and godotenv's
// missing-file error is ignored.

package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	wordscapes "github.com/SpaceEraser/wordscapes-helper"
)

type lookupRequest struct {
	Tiles  string `json:"tiles"`
	Filter string `json:"filter"`
}

type lookupResponse struct {
	Words []string `json:"words"`
}

type solveRequest struct {
	Tiles string `json:"tiles"`
	Grid  string `json:"grid"`
	N     int    `json:"n"`
}

type solveResponse struct {
	Solutions []string `json:"solutions"`
}

// authHeader is the expected "Authorization" header value, or "" if
// WORDSCAPES_AUTH is unset and every request is accepted, mirroring the
// teacher's ACCESS_KEY/AUTH_HEADER pair in go-app/main.go.
var authHeader string

// checkAuth reports whether r carries the configured bearer token, and
// writes a 401 response and returns false if it doesn't.
func checkAuth(w http.ResponseWriter, r *http.Request) bool {
	if authHeader == "" {
		return true
	}
	if got := r.Header.Get("Authorization"); got != authHeader {
		http.Error(w, "Authorization header mismatch", http.StatusUnauthorized)
		return false
	}
	return true
}

func lookupHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
		return
	}
	if !checkAuth(w, r) {
		return
	}
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	words := wordscapes.DefaultSearcher().LookupFilter(req.Tiles, req.Filter)
	resp := lookupResponse{Words: make([]string, len(words))}
	for i, word := range words {
		resp.Words[i] = word.Text
	}
	json.NewEncoder(w).Encode(resp)
}

func solveHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
		return
	}
	if !checkAuth(w, r) {
		return
	}
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.N <= 0 {
		req.N = 1
	}

	solver := wordscapes.FromBoard(req.Tiles, req.Grid)
	solutions := solver.FirstNSolutions(req.N)
	resp := solveResponse{Solutions: make([]string, len(solutions))}
	for i, sol := range solutions {
		resp.Solutions[i] = sol.String()
	}
	json.NewEncoder(w).Encode(resp)
}

func main() {
	log.SetOutput(os.Stderr)
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	if key := os.Getenv("WORDSCAPES_AUTH"); key != "" {
		authHeader = "Bearer " + key
	}

	http.HandleFunc("/lookup", lookupHandler)
	http.HandleFunc("/solve", solveHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Listening on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}
