package main

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/goliatone/go-formfield/pkg/render/page"
	"github.com/goliatone/go-formfield/pkg/schema"
)

const fetchTimeout = 30 * time.Second

// readSource loads a local path or an http(s) URL.
func readSource(ctx context.Context, location string) ([]byte, error) {
	src, err := schema.ParseSource(location)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	logger.Debug("loading source", "kind", src.Kind(), "location", src.Location())
	data, err := schema.NewLoader(schema.WithRequestTimeout(fetchTimeout)).Load(ctx, src)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// loadFieldsDocument reads a fields file and turns it into a page document,
// folding the file's error payload into the fields.
func loadFieldsDocument(ctx context.Context, location string) (page.Document, error) {
	data, err := readSource(ctx, location)
	if err != nil {
		return page.Document{}, errors.Wrap(err, "could not read fields file")
	}
	file, err := schema.Decode(data)
	if err != nil {
		return page.Document{}, errors.WithStack(err)
	}

	th, err := resolveTheme(file.Theme, file.Variant)
	if err != nil {
		return page.Document{}, err
	}
	doc, err := buildDocument(file.Title, file.Fields, file.Errors)
	if err != nil {
		return page.Document{}, err
	}
	doc.Theme = th
	return doc, nil
}

func loadOpenAPIDocument(ctx context.Context, location, schemaName string) (page.Document, error) {
	data, err := readSource(ctx, location)
	if err != nil {
		return page.Document{}, errors.Wrap(err, "could not read openapi document")
	}
	specs, err := schema.FromOpenAPI(ctx, data, schemaName)
	if err != nil {
		return page.Document{}, errors.WithStack(err)
	}

	th, err := resolveTheme("", "")
	if err != nil {
		return page.Document{}, err
	}
	doc, err := buildDocument(schema.Humanize(schemaName), specs, nil)
	if err != nil {
		return page.Document{}, err
	}
	doc.Theme = th
	return doc, nil
}

func buildDocument(title string, specs []schema.Spec, payload map[string][]string) (page.Document, error) {
	specs, formErrors := schema.ApplyErrors(specs, payload)
	fields, err := schema.PropsList(specs, nil)
	if err != nil {
		return page.Document{}, errors.WithStack(err)
	}
	logger.Debug("built document", "title", title, "fields", len(fields), "formErrors", len(formErrors))
	return page.Document{Title: title, Fields: fields, FormErrors: formErrors}, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return errors.WithStack(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "could not write %q", path)
	}
	logger.Info("written", "path", path, "bytes", len(data))
	return nil
}
