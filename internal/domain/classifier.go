package domain

import (
	"strconv"
	"strings"
	"time"
)

// Classifier — единица работы, полученная от core-service.
//
// Classifier создаётся core-service'ом и попадает к worker'у через
// ListClassifiers. Сам факт возврата в ответе означает, что core-service
// закрепил (claimed) classifier за этим worker'ом.
//
// Worker выполняет computation stage, параметризованный Genes и Diseases,
// и сообщает core-service'у ровно один терминальный исход:
// upload, fail или release.
type Classifier struct {
	// ID — идентификатор classifier'а. Присваивается core-service'ом,
	// worker его не интерпретирует.
	ID string `json:"id"`

	// Genes — Entrez gene IDs, входящие в классификатор.
	Genes []int `json:"genes"`

	// Diseases — акронимы заболеваний (например "ACC", "BLCA").
	Diseases []string `json:"diseases"`

	// Title — человекочитаемое название (для логов и CLI).
	Title string `json:"title,omitempty"`

	// CreatedAt — время создания на стороне core-service.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// GeneParam возвращает gene IDs в параметрическом виде для stage.
// Пример: [7157, 7158] → "7157-7158".
func (c *Classifier) GeneParam() string {
	parts := make([]string, len(c.Genes))
	for i, id := range c.Genes {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "-")
}

// DiseaseParam возвращает акронимы заболеваний в параметрическом виде.
// Пример: ["ACC", "BLCA"] → "ACC-BLCA".
func (c *Classifier) DiseaseParam() string {
	return strings.Join(c.Diseases, "-")
}

// StageParams возвращает параметры выполнения computation stage.
// Ключи видны stage'у как переменные окружения.
func (c *Classifier) StageParams() map[string]string {
	return map[string]string{
		"gene_ids":         c.GeneParam(),
		"disease_acronyms": c.DiseaseParam(),
	}
}
