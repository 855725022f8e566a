package runner

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/shaiso/Genomix/internal/domain"
	"github.com/shaiso/Genomix/internal/mq"
	"github.com/shaiso/Genomix/internal/telemetry"
)

// Имена pipeline stages.
const (
	// PreparationStage загружает общие данные (expression matrix и т.п.).
	// Выполняется один раз за жизнь процесса.
	PreparationStage = "1.download"

	// ComputationStage обучает классификатор для конкретного classifier'а.
	ComputationStage = "2.mutation-classifier"
)

// DefaultCapabilities — фильтр возможностей при опросе очереди.
var DefaultCapabilities = []string{"classifier-search"}

// CoreClient — клиент core-service, каким его видит worker.
type CoreClient interface {
	ListClassifiers(ctx context.Context, capabilities []string) ([]domain.Classifier, error)
	UploadNotebook(ctx context.Context, classifier *domain.Classifier, notebookPath string) error
	FailClassifier(ctx context.Context, classifier *domain.Classifier) error
	ReleaseClassifier(ctx context.Context, classifier *domain.Classifier) error
}

// StageExecutor выполняет один именованный stage и возвращает путь
// к артефакту результата.
type StageExecutor interface {
	RunStage(ctx context.Context, name string, params map[string]string) (string, error)
}

// EventPublisher — необязательный канал событий жизненного цикла.
type EventPublisher interface {
	PublishClassifierEvent(ctx context.Context, msgType mq.MessageType, classifier *domain.Classifier, status domain.ClassifierStatus, errMsg string)
}

// Runner — последовательный worker: закрепляет classifier, выполняет
// двухфазный pipeline, сообщает исход, берёт следующий.
type Runner struct {
	client       CoreClient
	executor     StageExecutor
	events       EventPublisher
	capabilities []string
	policy       Policy

	session *Session
	logger  *slog.Logger

	// shutdownStarted защищает от повторного shutdown при втором сигнале.
	shutdownStarted atomic.Bool
	done            chan struct{}

	// exit и terminate подменяются в тестах.
	exit      func(code int)
	terminate func() error
}

// Config — конфигурация Runner.
type Config struct {
	// Client — клиент core-service (обязательно).
	Client CoreClient

	// Executor — исполнитель stages (обязательно).
	Executor StageExecutor

	// Events — publisher событий (опционально; nil — события не публикуются).
	Events EventPublisher

	// Capabilities — фильтр очереди (default: DefaultCapabilities).
	Capabilities []string

	// Policy — политика backoff при опросе (default: DefaultPolicy()).
	Policy *Policy

	// Logger
	Logger *slog.Logger
}

// New создаёт Runner.
func New(cfg Config) *Runner {
	capabilities := cfg.Capabilities
	if len(capabilities) == 0 {
		capabilities = DefaultCapabilities
	}

	policy := DefaultPolicy()
	if cfg.Policy != nil {
		policy = *cfg.Policy
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		client:       cfg.Client,
		executor:     cfg.Executor,
		events:       cfg.Events,
		capabilities: capabilities,
		policy:       policy,
		session:      NewSession(),
		logger:       logger,
		done:         make(chan struct{}),
		exit:         os.Exit,
		terminate: func() error {
			return syscall.Kill(os.Getpid(), syscall.SIGTERM)
		},
	}
}

// Run — основной цикл: acquire → process, пока не запрошен shutdown.
//
// Возврат из Run означает, что остановка уже запрошена; завершение
// процесса выполняет shutdown-обработчик (см. Done).
func (r *Runner) Run(ctx context.Context) {
	r.logger.Info("worker loop started", "capabilities", r.capabilities)

	for !r.session.Stopping() {
		classifier, err := r.acquire(ctx)
		if err != nil {
			break
		}

		r.session.Hold(classifier)
		r.process(ctx, classifier)
	}

	r.logger.Info("worker loop stopped")
}

// Done закрывается после завершения shutdown (до выхода процесса).
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// acquire блокируется до закрепления classifier'а.
//
// Очередь опрашивается с экспоненциальным backoff (full jitter);
// отсчёт backoff начинается заново при каждом вызове acquire.
// Флаг остановки проверяется между попытками: при запрошенном shutdown
// acquire возвращает ErrShuttingDown вместо вечной блокировки.
func (r *Runner) acquire(ctx context.Context) (*domain.Classifier, error) {
	for attempt := 0; ; attempt++ {
		if r.session.Stopping() {
			return nil, ErrShuttingDown
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		classifiers, err := r.client.ListClassifiers(ctx, r.capabilities)
		if err != nil {
			// Недоступность core-service — не фатальна, опрос продолжается
			r.logger.Warn("failed to list classifiers", "error", err)
			telemetry.AcquirePolls.WithLabelValues("error").Inc()
		} else if len(classifiers) > 0 {
			classifier := classifiers[0]
			telemetry.AcquirePolls.WithLabelValues("claimed").Inc()
			telemetry.ClassifiersClaimed.Inc()
			r.logger.Info("classifier claimed",
				"classifier_id", classifier.ID,
				"genes", classifier.GeneParam(),
				"diseases", classifier.DiseaseParam(),
			)
			return &classifier, nil
		} else {
			telemetry.AcquirePolls.WithLabelValues("empty").Inc()
		}

		delay := r.policy.Next(attempt)
		r.logger.Debug("no classifier available, backing off",
			"attempt", attempt,
			"delay", delay,
		)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// process выполняет pipeline для закреплённого classifier'а.
//
// Ошибок наружу не отдаёт: каждый отказ обрабатывается терминально
// внутри. Отказ computation stage фатален только для classifier'а,
// отказ preparation stage — для всего процесса.
func (r *Runner) process(ctx context.Context, classifier *domain.Classifier) {
	logger := telemetry.WithClassifierID(r.logger, classifier.ID)
	logger.Info("starting classifier",
		"genes", classifier.GeneParam(),
		"diseases", classifier.DiseaseParam(),
	)

	r.publishEvent(ctx, mq.MessageTypeStarted, classifier, domain.StatusComputing, "")

	if !r.session.Prepared() {
		if _, err := r.executor.RunStage(ctx, PreparationStage, nil); err != nil {
			logger.Error("preparation stage failed, terminating worker",
				"stage", PreparationStage,
				"error", err,
			)
			// Без подготовленных данных каждый следующий classifier обречён.
			// Останавливаемся через обычный shutdown-путь: закреплённый
			// classifier вернётся в пул, процесс выйдет со статусом 0.
			r.session.RequestStop()
			if err := r.terminate(); err != nil {
				logger.Error("failed to deliver termination signal", "error", err)
				r.Shutdown()
			}
			return
		}
		r.session.MarkPrepared()
	}

	artifact, err := r.executor.RunStage(ctx, ComputationStage, classifier.StageParams())
	if err == nil {
		logger.Info("machine learning completed, uploading notebook")
		err = r.client.UploadNotebook(ctx, classifier, artifact)
	}

	if err != nil {
		logger.Error("failed to complete classifier", "error", err)
		if failErr := r.client.FailClassifier(ctx, classifier); failErr != nil {
			logger.Error("failed to mark classifier failed", "error", failErr)
		}
		telemetry.ClassifiersFailed.Inc()
		r.publishEvent(ctx, mq.MessageTypeFailed, classifier, domain.StatusFailed, err.Error())
		r.session.Clear()
		return
	}

	logger.Info("classifier completed", "artifact", artifact)
	telemetry.ClassifiersCompleted.Inc()
	r.publishEvent(ctx, mq.MessageTypeCompleted, classifier, domain.StatusCompleted, "")
	r.session.Clear()
}

// publishEvent публикует событие жизненного цикла, если publisher настроен.
func (r *Runner) publishEvent(ctx context.Context, msgType mq.MessageType, classifier *domain.Classifier, status domain.ClassifierStatus, errMsg string) {
	if r.events == nil {
		return
	}
	r.events.PublishClassifierEvent(ctx, msgType, classifier, status, errMsg)
}
