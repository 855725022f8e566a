package runner

import (
	"sync"
	"sync/atomic"

	"github.com/shaiso/Genomix/internal/domain"
)

// Session — состояние worker-процесса, разделяемое между основным циклом
// и shutdown-обработчиком.
//
// Инварианты:
//   - held != nil тогда и только тогда, когда classifier закреплён
//     и ещё не достиг терминального перехода;
//   - stopping, однажды выставленный, не сбрасывается;
//   - prepared выставляется не более одного раза за жизнь процесса.
//
// held мутирует только основной цикл; shutdown-обработчик читает его
// под тем же мьютексом, поэтому release всегда видит согласованное
// значение.
type Session struct {
	mu       sync.Mutex
	held     *domain.Classifier
	prepared bool

	stopping atomic.Bool
}

// NewSession создаёт пустую сессию.
func NewSession() *Session {
	return &Session{}
}

// Hold записывает закреплённый classifier.
func (s *Session) Hold(c *domain.Classifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held = c
}

// Clear сбрасывает удерживаемый classifier после терминального перехода.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held = nil
}

// Held возвращает удерживаемый classifier или nil.
func (s *Session) Held() *domain.Classifier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held
}

// RequestStop взводит флаг остановки. Обратного перехода нет.
func (s *Session) RequestStop() {
	s.stopping.Store(true)
}

// Stopping сообщает, запрошена ли остановка.
func (s *Session) Stopping() bool {
	return s.stopping.Load()
}

// MarkPrepared отмечает, что preparation stage выполнен.
// Действует на весь остаток жизни процесса.
func (s *Session) MarkPrepared() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prepared = true
}

// Prepared сообщает, выполнялся ли уже preparation stage.
func (s *Session) Prepared() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prepared
}
