package domain

// ClassifierStatus — статус classifier'а с точки зрения worker'а.
//
// Жизненный цикл:
//
//	CLAIMED → COMPUTING → COMPLETED
//	                    ↘ FAILED
//	CLAIMED или COMPUTING → RELEASED (при shutdown)
//
// COMPLETED, FAILED и RELEASED — терминальные и взаимоисключающие:
// для каждого classifier'а ровно один из них сообщается core-service'у.
type ClassifierStatus string

const (
	// StatusClaimed — classifier закреплён за worker'ом, выполнение не начато.
	StatusClaimed ClassifierStatus = "CLAIMED"

	// StatusComputing — computation stage выполняется.
	StatusComputing ClassifierStatus = "COMPUTING"

	// StatusCompleted — результат успешно загружен в core-service.
	StatusCompleted ClassifierStatus = "COMPLETED"

	// StatusFailed — computation stage завершился ошибкой, classifier
	// помечен failed в core-service.
	StatusFailed ClassifierStatus = "FAILED"

	// StatusReleased — classifier возвращён в пул core-service при shutdown.
	StatusReleased ClassifierStatus = "RELEASED"
)

// IsTerminal возвращает true, если статус финальный.
func (s ClassifierStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusReleased:
		return true
	default:
		return false
	}
}
