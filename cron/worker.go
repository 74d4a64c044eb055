package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"glamora/config"
	"glamora/services/availability"
	"glamora/services/schedule"
	"glamora/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeAvailabilityWarm = "availability:warm"

// WarmPayload asks the worker to precompute one provider's multi-day preview.
type WarmPayload struct {
	JobID      string `json:"jobId"`
	ProviderID string `json:"providerId"`
	Duration   int    `json:"duration"` // service duration in minutes
}

// InitWarmWorker runs the async worker in background. It precomputes multi-day
// availability previews into the Redis preview cache so calendar loads hit
// warm entries instead of recomputing.
func InitWarmWorker(engine availability.Engine) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAvailabilityWarm, handleWarmTask(engine))

	go func() {
		log.Println("[WarmWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[WarmWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[WarmWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleWarmTask(engine availability.Engine) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p WarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[WarmHandler] invalid payload: %v", err)
			return err
		}

		days, err := engine.GetMultiDayAvailability(p.ProviderID, p.Duration, time.Time{}, availability.DefaultDayCount)
		if err != nil {
			log.Printf("[WarmHandler] job %s: failed to compute preview for %s: %v", p.JobID, p.ProviderID, err)
			return err
		}

		payload, err := json.Marshal(map[string]interface{}{
			"providerId": p.ProviderID,
			"days":       days,
		})
		if err != nil {
			return err
		}

		key := warmCacheKey(p.ProviderID, p.Duration)
		if err := utils.GetPreviewCacheClient().Set(ctx, key, payload, utils.PreviewCacheTTL()).Err(); err != nil {
			log.Printf("[WarmHandler] job %s: failed to cache preview for %s: %v", p.JobID, p.ProviderID, err)
			return err
		}
		return nil
	}
}

// StartWarmEnqueuer periodically enqueues one warm task per registered
// provider. Unregistered providers are skipped; their previews always resolve
// from default schedules cheaply.
func StartWarmEnqueuer(svc schedule.Service) {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmQueueDB,
	})

	interval := time.Duration(config.AppConfig.WarmIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	duration := config.AppConfig.WarmServiceDurationMins
	if duration <= 0 {
		duration = 60
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			enqueueWarmTasks(client, svc, duration)
			<-ticker.C
		}
	}()
}

func enqueueWarmTasks(client *asynq.Client, svc schedule.Service, duration int) {
	ids, err := svc.ListProviderIDs()
	if err != nil {
		log.Printf("[WarmEnqueuer] failed to list providers: %v", err)
		return
	}

	for _, id := range ids {
		payload, err := json.Marshal(WarmPayload{
			JobID:      uuid.New().String(),
			ProviderID: id,
			Duration:   duration,
		})
		if err != nil {
			continue
		}
		if _, err := client.Enqueue(asynq.NewTask(TypeAvailabilityWarm, payload)); err != nil {
			log.Printf("[WarmEnqueuer] failed to enqueue warm task for %s: %v", id, err)
		}
	}
}

// warmCacheKey mirrors the handler's cache key for a default-window query, so
// warmed entries are the ones calendar loads actually hit.
func warmCacheKey(providerID string, duration int) string {
	return fmt.Sprintf("availability:preview:%s:%d:%s:%d",
		providerID, duration, time.Now().Format("2006-01-02"), 0)
}
