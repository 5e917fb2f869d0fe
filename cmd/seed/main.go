// Command seed generates synthetic check-ins and pushes them through the
// API's bulk sync endpoint. Useful for exercising rankings on a fresh
// database.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type checkInPayload struct {
	ID              string    `json:"id"`
	RegionID        string    `json:"regionId"`
	RegionName      string    `json:"regionName"`
	Mood            int       `json:"mood"`
	Date            time.Time `json:"date"`
	UserID          string    `json:"userId"`
	CityName        string    `json:"cityName,omitempty"`
	FederalDistrict string    `json:"federalDistrict,omitempty"`
}

type place struct {
	regionID   string
	regionName string
	city       string
	district   string
}

var places = []place{
	{"77", "Москва", "Москва", "Центральный"},
	{"50", "Московская область", "Подольск", "Центральный"},
	{"33", "Владимирская область", "Владимир", "Центральный"},
	{"78", "Санкт-Петербург", "Санкт-Петербург", "Северо-Западный"},
	{"78", "Санкт-Петербург", "Пушкин", "Северо-Западный"},
	{"01", "Республика Адыгея", "Майкоп", "Южный"},
	{"02", "Республика Башкортостан", "Уфа", "Приволжский"},
	{"66", "Свердловская область", "Екатеринбург", "Уральский"},
	{"54", "Новосибирская область", "Новосибирск", "Сибирский"},
	{"25", "Приморский край", "Владивосток", "Дальневосточный"},
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8080", "API base URL")
		count   = flag.Int("count", 200, "number of check-ins to generate")
		users   = flag.Int("users", 50, "number of distinct users to simulate")
		days    = flag.Int("days", 30, "spread check-in dates over this many past days")
		batch   = flag.Int("batch", 100, "sync batch size")
	)
	flag.Parse()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	payload := make([]checkInPayload, 0, *count)
	for i := 0; i < *count; i++ {
		p := places[rnd.Intn(len(places))]
		payload = append(payload, checkInPayload{
			ID:              uuid.NewString(),
			RegionID:        p.regionID,
			RegionName:      p.regionName,
			Mood:            1 + rnd.Intn(5),
			Date:            now.Add(-time.Duration(rnd.Intn(*days*24)) * time.Hour),
			UserID:          fmt.Sprintf("+7900%07d", rnd.Intn(*users)),
			CityName:        p.city,
			FederalDistrict: p.district,
		})
	}

	endpoint := *baseURL + "/api/checkins/sync"
	sent := 0
	for start := 0; start < len(payload); start += *batch {
		end := start + *batch
		if end > len(payload) {
			end = len(payload)
		}
		body, err := json.Marshal(payload[start:end])
		if err != nil {
			log.Fatalf("marshal batch: %v", err)
		}
		resp, err := http.Post(endpoint, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("sync batch: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			log.Fatalf("sync batch: unexpected status %d", resp.StatusCode)
		}
		resp.Body.Close()
		sent += end - start
	}

	log.Printf("seeded %d check-ins via %s", sent, endpoint)
}
