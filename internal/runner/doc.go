// Package runner реализует control loop worker'а.
//
// # Обзор
//
// Runner — последовательный процесс, обрабатывающий classifier'ы
// по одному:
//
//  1. acquire — опрос очереди core-service с экспоненциальным backoff
//     (фактор 2, потолок 30s, full jitter); отсчёт backoff начинается
//     заново на каждый вызов acquire
//  2. process — двухфазный pipeline: preparation stage (один раз за жизнь
//     процесса), затем computation stage с параметрами classifier'а
//  3. терминальный исход сообщается core-service: upload, fail или release
//  4. переход к следующему acquire — до запроса остановки
//
// # Состояние
//
// Всё изменяемое состояние процесса собрано в Session: удерживаемый
// classifier, одноразовый флаг остановки, флаг выполненной подготовки.
// Session разделяется между основным циклом и shutdown-обработчиком —
// это единственная точка их пересечения.
//
// # Ошибки
//
// Три уровня:
//   - отказ preparation stage фатален для процесса: без общих данных
//     каждый следующий classifier обречён; worker посылает себе SIGTERM
//     и уходит через обычный shutdown-путь
//   - отказ computation stage фатален только для classifier'а: он
//     помечается failed, цикл продолжается
//   - пустая очередь — не ошибка: backoff и повторный опрос
//
// # Shutdown
//
// SIGINT/SIGTERM обрабатываются асинхронно: одноразовый (CAS-guard)
// Shutdown взводит флаг остановки, синхронно возвращает удерживаемый
// classifier в пул и завершает процесс со статусом 0 — даже если release
// не удался. Выполняющийся stage не прерывается: release best-effort,
// узкое окно «classifier возвращён, но ещё вычисляется» принято осознанно.
package runner
