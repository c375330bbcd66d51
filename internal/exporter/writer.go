package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/robotomize/k6-allure/internal/allure"
)

const (
	EnvironmentFile = "environment.properties"
	CategoriesFile  = "categories.json"
)

// ResultFile is the name a test result is stored under.
func ResultFile(tc allure.Test) string {
	return fmt.Sprintf("%s-result.json", tc.UUID)
}

type Writer interface {
	WriteReport(ctx context.Context, tests []allure.Test) error
	WriteEnvironment(ctx context.Context, env Environment) error
	WriteCategories(ctx context.Context, categories []allure.Category) error
}

type WriterOption func(*writer)

func WriteToFile(pth string) WriterOption {
	return func(w *writer) {
		w.pth = pth
	}
}

func WriteReportTo(writers ...io.Writer) WriterOption {
	return func(w *writer) {
		w.reportWriters = append(w.reportWriters, writers...)
	}
}

func NewWriter(opts ...WriterOption) Writer {
	w := writer{reportWriters: []io.Writer{io.Discard}}
	for _, o := range opts {
		o(&w)
	}

	return &w
}

type writer struct {
	pth           string
	reportWriters []io.Writer
}

// WriteReport writes every test result to its own file. The first failed
// write aborts the rest.
func (o *writer) WriteReport(ctx context.Context, tests []allure.Test) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(o.pth) > 0 {
		if err := mkdir(o.pth); err != nil {
			return err
		}
	}

	for _, tc := range tests {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := o.writeReport(tc); err != nil {
			return fmt.Errorf("writeReport test: %w", err)
		}
	}

	return nil
}

// WriteEnvironment writes the environment descriptor.
func (o *writer) WriteEnvironment(ctx context.Context, env Environment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if o.pth == "" {
		return nil
	}

	if err := mkdir(o.pth); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	return o.writeFile(EnvironmentFile, []byte(env.Properties()))
}

// WriteCategories writes the failure categorization descriptor.
func (o *writer) WriteCategories(ctx context.Context, categories []allure.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if o.pth == "" {
		return nil
	}

	if err := mkdir(o.pth); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	if categories == nil {
		categories = make([]allure.Category, 0)
	}

	b, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	return o.writeFile(CategoriesFile, b)
}

func (o *writer) writeFile(name string, body []byte) error {
	pth := filepath.Join(o.pth, name)

	file, err := os.OpenFile(pth, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("os.OpenFile: %w", err)
	}

	defer file.Close()

	if _, err = file.Write(body); err != nil {
		return fmt.Errorf("os.OpenFile Write: %w", err)
	}

	if err = file.Sync(); err != nil {
		return fmt.Errorf("os.OpenFile Sync: %w", err)
	}

	return nil
}

// writeReport encodes one result to the report writers and, when a path is
// set, to its result file.
func (o *writer) writeReport(tc allure.Test) (err error) {
	writers := make([]io.Writer, len(o.reportWriters))
	copy(writers, o.reportWriters)

	if o.pth != "" {
		pth := filepath.Join(o.pth, ResultFile(tc))
		file, openErr := os.OpenFile(pth, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if openErr != nil {
			return fmt.Errorf("os.OpenFile: %w", openErr)
		}

		defer func() {
			if syncErr := file.Sync(); syncErr != nil && err == nil {
				err = fmt.Errorf("file Sync: %w", syncErr)
			}

			_ = file.Close()
		}()

		writers = append(writers, file)
	}

	enc := json.NewEncoder(io.MultiWriter(writers...))
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if encErr := enc.Encode(tc); encErr != nil {
		return fmt.Errorf("json.NewEncoder.Encode: %w", encErr)
	}

	return nil
}
