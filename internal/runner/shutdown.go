package runner

import (
	"context"
	"os"
	"time"

	"github.com/shaiso/Genomix/internal/domain"
	"github.com/shaiso/Genomix/internal/mq"
	"github.com/shaiso/Genomix/internal/telemetry"
)

// releaseTimeout ограничивает release-вызов при shutdown:
// выход процесса не должен зависнуть на недоступном core-service.
const releaseTimeout = 10 * time.Second

// HandleSignals выполняет Shutdown при каждом сигнале из sigCh.
// Повторные сигналы безопасны: Shutdown одноразовый.
//
// Запускается отдельной горутиной из main.
func (r *Runner) HandleSignals(sigCh <-chan os.Signal) {
	for sig := range sigCh {
		r.logger.Info("received signal", "signal", sig.String())
		r.Shutdown()
	}
}

// Shutdown — одноразовый graceful shutdown.
//
// Взводит флаг остановки, синхронно возвращает удерживаемый classifier
// в пул core-service (если он есть) и завершает процесс со статусом 0.
// Ошибка release логируется с идентификатором classifier'а и не меняет
// путь выхода: процесс обязан завершиться оперативно.
func (r *Runner) Shutdown() {
	if !r.shutdownStarted.CompareAndSwap(false, true) {
		// Второй сигнал: shutdown уже идёт
		return
	}

	r.session.RequestStop()

	if held := r.session.Held(); held != nil {
		r.release(held)
	} else {
		r.logger.Info("no classifier to release")
	}

	r.logger.Info("shutting down")
	close(r.done)
	r.exit(0)
}

// release возвращает classifier в пул. Best-effort.
func (r *Runner) release(classifier *domain.Classifier) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	if err := r.client.ReleaseClassifier(ctx, classifier); err != nil {
		r.logger.Error("failed to release classifier",
			"classifier_id", classifier.ID,
			"error", err,
		)
		return
	}

	telemetry.ClassifiersReleased.Inc()
	r.publishEvent(ctx, mq.MessageTypeReleased, classifier, domain.StatusReleased, "")
	r.logger.Info("classifier released", "classifier_id", classifier.ID)
}
