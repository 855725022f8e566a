// Package mq публикует события жизненного цикла classifier'ов в RabbitMQ.
//
// # Обзор
//
// Worker отправляет best-effort события о ходе обработки:
//
//   - classifier.started   — начата обработка classifier'а
//   - classifier.completed — результат загружен в core-service
//   - classifier.failed    — classifier помечен failed
//   - classifier.released  — classifier возвращён в пул при shutdown
//
// События — чисто наблюдательный канал: источником истины о статусах
// остаётся core-service. Worker полностью работоспособен без брокера
// (nil Publisher допустим), ошибка публикации логируется и не влияет
// на обработку.
//
// Worker ничего не потребляет из очередей: получение classifier'ов —
// это опрос core-service, закрепление происходит самим фактом выдачи.
package mq
