package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sbx/internal/driver"
	"sbx/internal/source"
	"sbx/internal/ui"
)

type checkOutcome struct {
	fs      *source.FileSet
	results []driver.FileCheck
	err     error
}

type buildOutcome struct {
	result driver.BuildResult
	err    error
}

// runCheckWithUI запускает анализ директории под TUI-прогрессом.
// Диагностики печатаются вызывающим уже после завершения интерфейса.
func runCheckWithUI(ctx context.Context, title string, files []string, dir string, opts driver.CheckDirOptions) (*source.FileSet, []driver.FileCheck, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.CheckDir(ctx, dir, optsCopy)
		outcomeCh <- checkOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}

func runBuildWithUI(ctx context.Context, title, sourcePath string, opts driver.BuildOptions) (driver.BuildResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.BuildFile(ctx, sourcePath, optsCopy)
		outcomeCh <- buildOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, []string{sourcePath}, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
