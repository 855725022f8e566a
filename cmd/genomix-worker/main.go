// Genomix Worker — выполняет ML classifier'ы из очереди core-service.
//
// Worker:
//   - Опрашивает core-service с экспоненциальным backoff (full jitter)
//   - Выполняет preparation stage один раз за жизнь процесса
//   - Выполняет computation stage для каждого classifier'а
//   - Загружает результат, отмечает отказы
//   - При SIGINT/SIGTERM возвращает удерживаемый classifier в пул
//
// Обрабатывает строго один classifier за раз; масштабирование —
// запуском дополнительных worker-процессов.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/Genomix/internal/config"
	"github.com/shaiso/Genomix/internal/coreapi"
	"github.com/shaiso/Genomix/internal/mq"
	"github.com/shaiso/Genomix/internal/notebook"
	"github.com/shaiso/Genomix/internal/runner"
	"github.com/shaiso/Genomix/internal/telemetry"
)

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting genomix-worker")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = telemetry.WithWorkerID(logger, cfg.WorkerID)

	client := coreapi.NewClient(cfg.ServiceBaseURL, cfg.AuthToken, cfg.WorkerID)
	executor := notebook.New(notebook.Config{Logger: logger})

	// RabbitMQ — необязательный канал событий
	var events runner.EventPublisher
	mqURL := os.Getenv("RABBITMQ_URL")
	if mqURL == "" {
		mqURL = mq.DefaultURL()
	}

	mqConn, err := mq.NewConnection(mqURL, logger)
	if err != nil {
		logger.Warn("RabbitMQ not available, lifecycle events disabled", "error", err)
	} else {
		defer mqConn.Close()
		logger.Info("RabbitMQ connected")

		if err := mq.SetupTopology(mqConn); err != nil {
			logger.Warn("failed to setup topology", "error", err)
		}

		events = mq.NewPublisher(mqConn, cfg.WorkerID, logger)
	}

	r := runner.New(runner.Config{
		Client:   client,
		Executor: executor,
		Events:   events,
		Logger:   logger,
	})

	// Shutdown-обработчик: release удерживаемого classifier'а и выход 0
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go r.HandleSignals(sigCh)

	// HTTP mux: /healthz + /metrics
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	port := ":8090"
	if v := os.Getenv("WORKER_PORT"); v != "" {
		port = ":" + v
	}

	go func() {
		logger.Info("listening", "addr", port)
		if err := http.ListenAndServe(port, mux); err != nil {
			logger.Error("http server error", "error", err)
		}
	}()

	r.Run(context.Background())

	// Возврат из Run означает, что остановка запрошена; ждём, пока
	// shutdown-обработчик завершит release и выйдет из процесса.
	<-r.Done()
}
