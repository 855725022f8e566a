package notebook

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/shaiso/Genomix/internal/telemetry"
)

// Default configuration values.
const (
	defaultBaseDir = "notebooks"
	defaultBin     = "jupyter"
)

// Executor выполняет именованные stages как Jupyter notebooks.
type Executor struct {
	baseDir string
	bin     string
	logger  *slog.Logger
}

// Config — конфигурация Executor.
type Config struct {
	// BaseDir — каталог с notebooks (default: "notebooks").
	BaseDir string

	// Bin — исполняемый файл jupyter (default: "jupyter").
	Bin string

	// Logger
	Logger *slog.Logger
}

// New создаёт Executor.
func New(cfg Config) *Executor {
	baseDir := cfg.BaseDir
	if baseDir == "" {
		baseDir = defaultBaseDir
	}

	bin := cfg.Bin
	if bin == "" {
		bin = defaultBin
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{
		baseDir: baseDir,
		bin:     bin,
		logger:  logger,
	}
}

// RunStage выполняет stage name и возвращает путь к output notebook.
//
// params передаются процессу nbconvert как переменные окружения.
// Выполнение не ограничено таймаутом; отмена возможна только через ctx
// (при обычной работе ctx не отменяется до конца выполнения).
func (e *Executor) RunStage(ctx context.Context, name string, params map[string]string) (string, error) {
	logger := telemetry.WithStage(e.logger, name)

	notebookPath := filepath.Join(e.baseDir, name+".ipynb")
	if _, err := os.Stat(notebookPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotebookNotFound, notebookPath)
	}

	outputDir := filepath.Join(e.baseDir, "output")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	outputPath := filepath.Join(outputDir, name+".output.ipynb")

	// Пути — относительно baseDir: nbconvert работает из каталога notebooks,
	// чтобы относительные пути внутри ячеек совпадали с ручным запуском.
	// --ExecutePreprocessor.timeout=-1: ячейки выполняются без ограничения
	cmd := exec.CommandContext(ctx, e.bin, "nbconvert",
		"--to", "notebook",
		"--execute",
		"--ExecutePreprocessor.timeout=-1",
		"--output", name+".output",
		"--output-dir", "output",
		name+".ipynb",
	)
	cmd.Dir = e.baseDir

	cmd.Env = os.Environ()
	for key, val := range params {
		cmd.Env = append(cmd.Env, key+"="+val)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	logger.Info("processing notebook", "notebook", notebookPath)

	err := cmd.Run()
	elapsed := time.Since(start)
	telemetry.StageDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		logger.Error("notebook execution failed",
			"elapsed", elapsed,
			"error", err,
			"stderr", tail(stderr.String(), 2000),
		)
		return "", fmt.Errorf("%w: %s: %v", ErrStageFailed, name, err)
	}

	logger.Info("notebook processed",
		"elapsed", elapsed,
		"output", outputPath,
	)

	return outputPath, nil
}

// tail возвращает последние maxLen байт строки.
func tail(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return "..." + s[len(s)-maxLen:]
}
