// Package notebook выполняет pipeline stages как Jupyter notebooks.
//
// # Обзор
//
// Stage — это notebook notebooks/<name>.ipynb, выполняемый через
// `jupyter nbconvert --execute`. Результат записывается в
// notebooks/output/<name>.output.ipynb; путь к нему возвращается
// вызывающему как артефакт stage'а.
//
// Параметры stage'а передаются через переменные окружения процесса
// nbconvert (например gene_ids, disease_acronyms).
//
// Таймаут на выполнение не накладывается намеренно: ML-вычисления
// могут идти часами, ограничение сверху — обязанность оператора.
package notebook
