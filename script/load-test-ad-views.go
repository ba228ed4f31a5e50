package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"
)

// AdViewRequest is the ad view payload
type AdViewRequest struct {
	AdValue int64 `json:"adValue"`
}

// AdViewResponse is the part of the ad view response the test checks
type AdViewResponse struct {
	ID         string `json:"id"`
	AccountID  string `json:"accountId"`
	UserEarned int64  `json:"userEarned"`
}

// Account is the part of the account response the test checks
type Account struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	PointsBalance int64  `json:"pointsBalance"`
}

type authResponse struct {
	Account Account `json:"account"`
	Token   string  `json:"token"`
}

// Player is one registered test account
type Player struct {
	Account Account
	Token   string
}

// TestResult contains metrics for a single request
type TestResult struct {
	Player       int
	Earned       int64
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	TotalResponseTime  time.Duration
	ErrorCounts        map[string]int
	EarnedByPlayer     map[int]int64
	Lock               sync.Mutex
}

// AdScenario is one ad value the workers pick from
type AdScenario struct {
	Name  string
	Value int64
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of ad views to record")
	players := flag.Int("p", 3, "Number of accounts to register and spread the load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds, to stay under the rate limit")
	flag.Parse()

	scenarios := []AdScenario{
		{"Banner", 1},
		{"Interstitial", 10},
		{"Rewarded", 25},
	}

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Printf("Registering %d accounts...\n", *players)
	accounts := make([]Player, 0, *players)
	suffix := time.Now().UnixNano()
	for i := 0; i < *players; i++ {
		player, err := register(client, *baseURL, fmt.Sprintf("load-%d-%d", suffix, i))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register account %d: %v\n", i, err)
			os.Exit(1)
		}
		accounts = append(accounts, player)
	}

	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:  *totalRequests,
		ResponseTimes:  make([]time.Duration, 0, *totalRequests),
		ErrorCounts:    make(map[string]int),
		EarnedByPlayer: make(map[int]int64),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, accounts, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			if result.Success {
				stats.SuccessfulRequests++
				stats.EarnedByPlayer[result.Player] += result.Earned
			} else {
				stats.FailedRequests++
				stats.ErrorCounts[result.Error.Error()]++
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	if !verifyBalances(client, *baseURL, accounts, stats) {
		os.Exit(1)
	}
}

func worker(client *http.Client, baseURL string, delayMs int, players []Player,
	scenarios []AdScenario, jobs <-chan int, results chan<- TestResult) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		idx := rand.Intn(len(players))
		scenario := scenarios[rand.Intn(len(scenarios))]

		body, _ := json.Marshal(AdViewRequest{AdValue: scenario.Value})
		req, err := http.NewRequest(http.MethodPost, baseURL+"/api/ad-views", bytes.NewReader(body))
		if err != nil {
			results <- TestResult{Player: idx, Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+players[idx].Token)

		started := time.Now()
		resp, err := client.Do(req)
		result := TestResult{Player: idx, ResponseTime: time.Since(started)}
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		if resp.StatusCode == http.StatusCreated {
			var view AdViewResponse
			if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
				result.Error = fmt.Errorf("decode response: %w", err)
			} else {
				result.Success = true
				result.Earned = view.UserEarned
			}
		} else {
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
		resp.Body.Close()
		results <- result
	}
}

func register(client *http.Client, baseURL, username string) (Player, error) {
	credentials := map[string]string{"username": username, "password": "load-test-password"}
	if _, err := postJSON(client, baseURL+"/api/auth/register", credentials, http.StatusCreated); err != nil {
		return Player{}, err
	}
	body, err := postJSON(client, baseURL+"/api/auth/login", credentials, http.StatusOK)
	if err != nil {
		return Player{}, err
	}
	var auth authResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return Player{}, err
	}
	return Player{Account: auth.Account, Token: auth.Token}, nil
}

func postJSON(client *http.Client, url string, payload any, expected int) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	if resp.StatusCode != expected {
		return nil, fmt.Errorf("POST %s: HTTP %d: %s", url, resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

// verifyBalances checks that every account holds exactly what its successful
// ad views paid out, which fails if any concurrent credit was lost
func verifyBalances(client *http.Client, baseURL string, players []Player, stats *TestStats) bool {
	fmt.Println("\n----------------- BALANCE CHECK -----------------")
	ok := true
	for i, player := range players {
		req, _ := http.NewRequest(http.MethodGet, baseURL+"/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+player.Token)
		resp, err := client.Do(req)
		if err != nil {
			fmt.Printf("%s: %v\n", player.Account.Username, err)
			ok = false
			continue
		}
		var account Account
		err = json.NewDecoder(resp.Body).Decode(&account)
		resp.Body.Close()
		if err != nil {
			fmt.Printf("%s: decode: %v\n", player.Account.Username, err)
			ok = false
			continue
		}

		expected := stats.EarnedByPlayer[i]
		status := "OK"
		if account.PointsBalance != expected {
			status = "MISMATCH"
			ok = false
		}
		fmt.Printf("%-30s balance %6d expected %6d  %s\n", account.Username, account.PointsBalance, expected, status)
	}
	return ok
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avg, p50, p90, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		avg = stats.TotalResponseTime / time.Duration(n)
		sorted := make([]time.Duration, n)
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("TPS:                 %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
