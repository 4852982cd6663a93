package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"group-reviews/api"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var (
	log   = logrus.New()
	httpc = &http.Client{Timeout: 10 * time.Second}
)

var searchTerms = []string{"IT", "кот", "дизайн", "маркетинг", "новости"}

func postJSON(target string, body any) (int, []byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(b))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	return resp.StatusCode, buf.Bytes(), nil
}

// seedData создает группы с несколькими отзывами и возвращает их id.
func seedData(host string, groups, reviewsPerGroup int) ([]int64, error) {
	log.WithFields(logrus.Fields{"groups": groups, "reviews_per_group": reviewsPerGroup}).Info("Seeding")

	ids := make([]int64, 0, groups)
	for g := 1; g <= groups; g++ {
		platform := "vk"
		if g%2 == 0 {
			platform = "telegram"
		}
		status, body, err := postJSON(host+"/groups", api.SaveGroupRequest{
			Name:        fmt.Sprintf("%s load %02d", searchTerms[g%len(searchTerms)], g),
			Platform:    platform,
			Members:     api.Members(fmt.Sprintf("%dK", 10*g)),
			Description: "Группа для нагрузочного теста",
		})
		if err != nil {
			return nil, err
		}
		if status >= 400 {
			log.WithField("status", status).Warn("POST /groups failed")
			continue
		}

		var created api.CreatedResponse
		if err := json.Unmarshal(body, &created); err != nil {
			return nil, fmt.Errorf("decode created group: %w", err)
		}
		ids = append(ids, created.Id)

		for r := 1; r <= reviewsPerGroup; r++ {
			status, _, err := postJSON(host+"/reviews", reviewBody(created.Id, r))
			if err != nil {
				return nil, err
			}
			if status >= 400 {
				log.WithField("status", status).Warn("POST /reviews failed")
			}
		}
		time.Sleep(10 * time.Millisecond)
	}

	if len(ids) == 0 {
		return nil, errors.New("no groups were created")
	}
	log.WithField("groups", len(ids)).Info("Seed completed")
	return ids, nil
}

func reviewBody(groupID int64, n int) api.CreateReviewRequest {
	return api.CreateReviewRequest{
		GroupId:  groupID,
		UserName: fmt.Sprintf("Load User %d", n),
		Rating:   1 + n%5,
		Text:     "Отзыв из нагрузочного теста",
	}
}

// lockedRand - *rand.Rand, безопасный для воркеров vegeta.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

func (r *lockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.IntN(n)
}

// makeTargeter: 45% список групп, 25% отзывы группы, 15% статистика,
// 10% последние отзывы, 5% новые отзывы.
// Таргетер вызывается из всех воркеров атаки одновременно.
func makeTargeter(host string, ids []int64, src *rand.Rand) vegeta.Targeter {
	rnd := &lockedRand{rnd: src}
	jsonHeader := http.Header{"Content-Type": {"application/json"}}
	acceptHeader := http.Header{"Accept": {"application/json"}}

	return func(t *vegeta.Target) error {
		r := rnd.Float64()
		t.Body = nil
		t.Header = acceptHeader.Clone()
		t.Method = http.MethodGet

		switch {
		case r < 0.45:
			q := url.Values{}
			if rnd.IntN(2) == 0 {
				q.Set("search", searchTerms[rnd.IntN(len(searchTerms))])
			}
			if rnd.IntN(3) == 0 {
				q.Set("platform", "telegram")
			}
			if rnd.IntN(2) == 0 {
				q.Set("sort", "rating")
			}
			t.URL = host + "/groups"
			if len(q) > 0 {
				t.URL += "?" + q.Encode()
			}
		case r < 0.70:
			t.URL = fmt.Sprintf("%s/reviews?group_id=%d", host, ids[rnd.IntN(len(ids))])
		case r < 0.85:
			t.URL = host + "/groups?stats=true"
		case r < 0.95:
			t.URL = host + "/reviews"
		default:
			body, err := json.Marshal(reviewBody(ids[rnd.IntN(len(ids))], rnd.IntN(1000)))
			if err != nil {
				return err
			}
			t.Method = http.MethodPost
			t.URL = host + "/reviews"
			t.Body = body
			t.Header = jsonHeader.Clone()
		}
		return nil
	}
}

func runAttack(targeter vegeta.Targeter, rps int, duration time.Duration) vegeta.Metrics {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	log.WithFields(logrus.Fields{"rps": rps, "duration": duration}).Info("Starting attack")
	for res := range attacker.Attack(targeter, rate, duration, "group-reviews") {
		metrics.Add(res)
	}
	metrics.Close()
	return metrics
}

func main() {
	host := pflag.String("target", "http://localhost:8080", "API base URL")
	rps := pflag.Int("rps", 20, "requests per second")
	duration := pflag.Duration("duration", time.Minute, "attack duration")
	groups := pflag.Int("seed-groups", 20, "groups to create before the attack")
	perGroup := pflag.Int("seed-reviews", 5, "reviews per seeded group")
	pflag.Parse()

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ids, err := seedData(*host, *groups, *perGroup)
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	rnd := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	metrics := runAttack(makeTargeter(*host, ids, rnd), *rps, *duration)

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	for code, n := range metrics.StatusCodes {
		fmt.Printf("Status %s: %d\n", code, n)
	}

	if metrics.Success < 0.99 {
		os.Exit(1)
	}
}
