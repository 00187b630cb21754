package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// stdinName is the argument that reads from standard input
const stdinName = "-"

// readInput reads the named file, or stdin for "-", decompressing .zst & .gz
// files. The returned name has any compression suffix removed so it can be
// used to detect the data format
func readInput(name string, stdin io.Reader) ([]byte, string, error) {
	var (
		data []byte
		err  error
	)
	if name == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, "", errors.Wrapf(err, "reading %s", name)
	}

	compression := ""
	switch ext := filepath.Ext(name); ext {
	case ".zst":
		compression = "zstd"
		data, err = decompressZstd(data)
	case ".gz":
		compression = "gzip"
		data, err = decompressGzip(data)
	}
	if err != nil {
		return nil, "", errors.Wrapf(err, "decompressing %s", name)
	}

	log.WithFields(log.Fields{
		"input":       name,
		"bytes":       len(data),
		"compression": compression,
	}).Debug("read input")

	if compression != "" {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return data, name, nil
}

func decompressZstd(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

func decompressGzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// decodeDocument unmarshals data according to the extension of name. Data
// with no recognised extension (including stdin) is read as JSON, falling
// back to YAML
func decodeDocument(name string, data []byte) (interface{}, error) {
	var (
		doc interface{}
		err error
	)
	switch format := strings.ToLower(filepath.Ext(name)); format {
	case ".json":
		doc, err = decodeJSON(data)
	case ".yaml", ".yml":
		doc, err = decodeYAML(data)
	case ".toml":
		doc, err = decodeTOML(data)
	default:
		if doc, err = decodeJSON(data); err != nil {
			log.WithError(err).WithField("input", name).Debug("not json, trying yaml")
			doc, err = decodeYAML(data)
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", name)
	}
	return doc, nil
}

// decodeJSON keeps numbers as json.Number so large integers survive intact
func decodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after top-level value")
	}
	return doc, nil
}

func decodeYAML(data []byte) (interface{}, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return normalizeYAML(doc), nil
}

// normalizeYAML converts mappings with non-string keys, which YAML allows,
// into keyed records
func normalizeYAML(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		for k, el := range x {
			x[k] = normalizeYAML(el)
		}
		return x
	case map[interface{}]interface{}:
		rec := make(map[string]interface{}, len(x))
		for k, el := range x {
			rec[fmt.Sprint(k)] = normalizeYAML(el)
		}
		return rec
	case []interface{}:
		for i, el := range x {
			x[i] = normalizeYAML(el)
		}
		return x
	}
	return v
}

func decodeTOML(data []byte) (interface{}, error) {
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func readDocument(name string, stdin io.Reader) (interface{}, error) {
	data, name, err := readInput(name, stdin)
	if err != nil {
		return nil, err
	}
	return decodeDocument(name, data)
}

func readRecord(name string, stdin io.Reader) (map[string]interface{}, error) {
	doc, err := readDocument(name, stdin)
	if err != nil {
		return nil, err
	}
	switch rec := doc.(type) {
	case map[string]interface{}:
		return rec, nil
	case nil:
		return nil, nil
	}
	return nil, errors.Errorf("%s: expected a keyed record, got %T", name, doc)
}

func readList(name string, stdin io.Reader) ([]interface{}, error) {
	doc, err := readDocument(name, stdin)
	if err != nil {
		return nil, err
	}
	switch list := doc.(type) {
	case []interface{}:
		return list, nil
	case nil:
		return nil, nil
	}
	return nil, errors.Errorf("%s: expected a list, got %T", name, doc)
}

func readText(name string, stdin io.Reader) (string, error) {
	data, _, err := readInput(name, stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
