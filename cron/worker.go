package cron

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"saunascout/catalog"
	"saunascout/config"
	"saunascout/services"
)

const TypeHealthSweep = "health:sweep"

// InitHealthSweepWorker runs the async worker in background and schedules the
// periodic provider health sweep.
func InitHealthSweepWorker(monitor *services.HealthMonitor, cat *catalog.Catalog) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHealthQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			// One sweep at a time; the sweep itself fans out internally.
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeHealthSweep, handleHealthSweepTask(monitor, cat))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Schedule the recurring sweep.
	go scheduleSweeps(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[HealthSweep] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[HealthSweep] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[HealthSweep] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleHealthSweepTask(monitor *services.HealthMonitor, cat *catalog.Catalog) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		venues := cat.WithLiveAvailability()
		status := monitor.RunSweep(ctx, venues)
		log.Printf("[HealthSweep] Swept %d venues: %d healthy, %d unhealthy",
			len(venues), status.Healthy, status.Unhealthy)
		return nil
	}
}

// scheduleSweeps enqueues one sweep immediately and then one per interval.
func scheduleSweeps(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	interval := time.Duration(config.AppConfig.HealthSweepIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 30 * time.Minute
	}

	enqueue := func() {
		task := asynq.NewTask(TypeHealthSweep, nil)
		if _, err := client.Enqueue(task, asynq.MaxRetry(1), asynq.Timeout(5*time.Minute)); err != nil {
			log.Printf("[HealthSweep] Failed to enqueue sweep: %v", err)
		}
	}

	enqueue()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		enqueue()
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHealthQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[HealthSweep] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
