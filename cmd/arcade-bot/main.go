// arcade-bot plays the four engines headlessly with random inputs and
// submits each finished session to an arcade server, claiming the
// accumulated rewards every few rounds. Useful for smoke-testing a
// deployment and for populating the leaderboard in development.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"optik-arcade/internal/games"
)

type submitRequest struct {
	WalletAddress   string `json:"wallet_address"`
	GameID          string `json:"game_id"`
	Score           int64  `json:"score"`
	DurationSeconds int    `json:"duration_seconds"`
}

type submitResponse struct {
	SessionID   string  `json:"session_id"`
	OptikEarned float64 `json:"optik_earned"`
}

type claimResponse struct {
	Amount               float64 `json:"amount"`
	RewardsClaimed       int     `json:"rewards_claimed"`
	TransactionSignature string  `json:"transaction_signature"`
}

func main() {
	serverURL := getenv("SERVER_URL", "http://localhost:8080")
	wallet := getenv("WALLET_ADDRESS", "7f9kQmPxVbNcR2tYwLs8dGhJ4uE6aZ3vXnMoB5CiKrT1")
	rounds := 0

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	client := &http.Client{Timeout: 10 * time.Second}
	gameIDs := []string{"snake", "flappy", "2048", "tap"}

	for {
		gameID := gameIDs[rnd.Intn(len(gameIDs))]
		result := play(rnd, gameID)
		log.Printf("%s finished: score=%d duration=%ds", gameID, result.Score, result.DurationSeconds)

		resp, err := submit(client, serverURL, submitRequest{
			WalletAddress:   wallet,
			GameID:          gameID,
			Score:           result.Score,
			DurationSeconds: result.DurationSeconds,
		})
		if err != nil {
			log.Printf("submit failed: %v", err)
		} else {
			log.Printf("credited %.2f OPTIK (session %s)", resp.OptikEarned, resp.SessionID)
		}

		rounds++
		if rounds%5 == 0 {
			if c, err := claim(client, serverURL, wallet); err != nil {
				log.Printf("claim failed: %v", err)
			} else {
				log.Printf("claimed %.2f OPTIK over %d rewards (%s)", c.Amount, c.RewardsClaimed, c.TransactionSignature)
			}
		}
		time.Sleep(2 * time.Second)
	}
}

func play(rnd *rand.Rand, gameID string) games.Result {
	var result games.Result
	opts := games.Options{
		Rand:       rnd,
		OnGameOver: func(r games.Result) { result = r },
	}
	switch gameID {
	case "snake":
		g := games.NewSnake(opts)
		g.Start()
		dirs := []games.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
		for g.State() == games.StatePlaying {
			if rnd.Intn(4) == 0 {
				g.SetDirection(dirs[rnd.Intn(len(dirs))])
			}
			g.Step()
		}
	case "flappy":
		g := games.NewFlappy(opts)
		g.Start()
		for g.State() == games.StatePlaying {
			if rnd.Intn(10) < 2 {
				g.Flap()
			}
			g.Step()
		}
	case "2048":
		g := games.NewGame2048(opts)
		g.Start()
		dirs := []games.Direction{games.DirUp, games.DirDown, games.DirLeft, games.DirRight}
		for g.State() == games.StatePlaying {
			g.Move(dirs[rnd.Intn(len(dirs))])
		}
	case "tap":
		g := games.NewTap(opts)
		g.Start()
		for i := 0; i < 300; i++ {
			g.Tap()
			if i%3 == 0 {
				g.Tick()
			}
		}
		g.EndSession()
	}
	return result
}

func submit(client *http.Client, serverURL string, req submitRequest) (*submitResponse, error) {
	body, _ := json.Marshal(req)
	resp, err := client.Post(serverURL+"/api/arcade/sessions", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}
	var out submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func claim(client *http.Client, serverURL, wallet string) (*claimResponse, error) {
	body, _ := json.Marshal(map[string]string{"wallet_address": wallet})
	resp, err := client.Post(serverURL+"/api/arcade/rewards/claim", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}
	var out claimResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
