package runner

import (
	"math/rand"
	"time"
)

// Policy — политика backoff для опроса core-service.
//
// Явная и самостоятельно тестируемая: задержка перед попыткой attempt
// считается как Initial * Factor^attempt с потолком Max, затем к ней
// применяется Jitter.
type Policy struct {
	// Initial — задержка перед первой повторной попыткой.
	Initial time.Duration

	// Factor — множитель роста задержки.
	Factor int

	// Max — потолок задержки (до jitter).
	Max time.Duration

	// Jitter — преобразование вычисленной задержки.
	// nil — задержка используется как есть.
	Jitter func(time.Duration) time.Duration
}

// DefaultPolicy возвращает политику опроса core-service:
// экспонента с фактором 2, потолок 30 секунд, full jitter.
func DefaultPolicy() Policy {
	return Policy{
		Initial: time.Second,
		Factor:  2,
		Max:     30 * time.Second,
		Jitter:  FullJitter,
	}
}

// Next возвращает задержку перед попыткой attempt (нумерация с 0).
func (p Policy) Next(attempt int) time.Duration {
	initial := p.Initial
	if initial <= 0 {
		initial = time.Second
	}

	factor := p.Factor
	if factor < 2 {
		factor = 2
	}

	max := p.Max
	if max <= 0 {
		max = 30 * time.Second
	}

	// delay = initial * factor^attempt, capped at max
	delay := initial
	for i := 0; i < attempt; i++ {
		delay *= time.Duration(factor)
		if delay >= max {
			delay = max
			break
		}
	}
	if delay > max {
		delay = max
	}

	if p.Jitter != nil {
		delay = p.Jitter(delay)
	}

	return delay
}

// FullJitter возвращает равномерно случайную задержку из [0, d].
// Рассинхронизирует опрос core-service несколькими worker'ами.
func FullJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(d) + 1))
}
