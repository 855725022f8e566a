// Package cli реализует операторский инструмент genomix.
//
// # Обзор
//
// CLI — утилита для ручных операций над classifier'ами в core-service.
// Работает через HTTP (internal/coreapi), основной сценарий — разбор
// последствий аварийно умершего worker'а: закреплённый за ним classifier
// надо вернуть в пул (release) или списать (fail).
//
// # Команды
//
//   - classifier claim    — закрепить и показать следующий classifier
//     из очереди (отладка; закреплённый classifier нужно вернуть
//     командой release)
//   - classifier release  — вернуть classifier в пул
//   - classifier fail     — пометить classifier как failed
//
// Вывод — таблица (text/tabwriter) или JSON с флагом --json.
// Данные идут в stdout, сообщения — в stderr.
package cli
