// Package coreapi реализует HTTP-клиент core-service.
//
// # Обзор
//
// Core-service владеет очередью classifier'ов и их жизненным циклом.
// Worker общается с ним только через этот клиент:
//
//   - ListClassifiers — опрос очереди; возврат classifier'а в ответе
//     означает его закрепление за worker'ом
//   - UploadNotebook — загрузка результата, терминальный переход COMPLETED
//   - FailClassifier — терминальный переход FAILED
//   - ReleaseClassifier — возврат в пул при shutdown, терминальный
//     переход RELEASED
//
// Для каждого classifier'а вызывается ровно один из трёх терминальных
// методов.
//
// # Авторизация
//
// Каждый запрос несёт токен (Authorization) и идентификатор worker'а
// (X-Worker-Id) — core-service по ним ведёт учёт закреплений.
//
// Ответы core-service обёрнуты в envelope {"data": ...} либо
// {"error": {"code", "message"}}.
package coreapi
