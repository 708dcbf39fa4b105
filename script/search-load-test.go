package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// SearchScenario is one list or detail request replayed by the workers
type SearchScenario struct {
	Name string
	Path string
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Records      int64
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	RecordsReturned    int64
	Lock               sync.Mutex
}

var scenarios = []SearchScenario{
	{"attendees page", "/attendees?page=1&per_page=25"},
	{"attendees by name", "/attendees?first_name||last_name=*an*"},
	{"accounts with owners", "/accounts?with=owners&limit=10"},
	{"events upcoming", "/events?start_date=>=2026-06-01&sort=start_date&with=locations,programs"},
	{"payments refunds", "/payments?mode=refund&sort=-created_at"},
	{"employees active", "/employees?active=true"},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080/v1", "Base URL of the API including the base uri")
	token := flag.String("token", "", "Session token; when empty the script logs in with -email and -password")
	email := flag.String("email", os.Getenv("SMORES_BOOTSTRAP_EMAIL"), "Login email")
	password := flag.String("password", os.Getenv("SMORES_BOOTSTRAP_PASSWORD"), "Login password")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	base := strings.TrimRight(*baseURL, "/")

	if *token == "" {
		t, err := login(client, base, *email, *password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
			os.Exit(1)
		}
		*token = t
	}

	fmt.Printf("Load testing %s with %d search scenarios\n", base, len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, base, *token, *delayMs, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	ticker := time.NewTicker(time.Second)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				stats.Lock.Lock()
				completed := stats.SuccessfulRequests + stats.FailedRequests
				stats.Lock.Unlock()
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()
	close(done)

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func login(client *http.Client, base, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("either -token or -email and -password are required")
	}

	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := client.Post(base+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var env struct {
		Profile []struct {
			Token string `json:"token"`
		} `json:"profile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", err
	}
	if len(env.Profile) == 0 || env.Profile[0].Token == "" {
		return "", errors.New("login response carried no token")
	}
	return env.Profile[0].Token, nil
}

func worker(client *http.Client, base, token string, delayMs int, jobs <-chan int, results chan<- TestResult) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[rand.IntN(len(scenarios))]
		result := TestResult{Scenario: scenario.Name}

		req, err := http.NewRequest(http.MethodGet, base+scenario.Path, nil)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}
		req.Header.Set("X_AUTHORIZATION", "Token: "+token)

		startTime := time.Now()
		resp, err := client.Do(req)
		result.ResponseTime = time.Since(startTime)

		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		result.Success = resp.StatusCode == http.StatusOK
		if result.Success {
			var env struct {
				Meta []struct {
					Total int64 `json:"total_record_count"`
				} `json:"meta"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && len(env.Meta) > 0 {
				result.Records = env.Meta[0].Total
			}
		} else {
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
		resp.Body.Close()

		results <- result
	}
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario]++
	if result.Success {
		s.SuccessfulRequests++
		s.RecordsReturned += result.Records
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}
	if result.ResponseTime > 0 {
		s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg, minTime, maxTime time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
		minTime = sorted[0]
		maxTime = sorted[len(sorted)-1]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests per second: %.2f\n", rps)
	fmt.Printf("Records matched:     %d\n", stats.RecordsReturned)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("Minimum Response:    %v\n", minTime)
	fmt.Printf("Maximum Response:    %v\n", maxTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for _, scenario := range scenarios {
		count := stats.ScenarioStats[scenario.Name]
		fmt.Printf("%-22s: %d requests (%.1f%%)\n", scenario.Name, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
