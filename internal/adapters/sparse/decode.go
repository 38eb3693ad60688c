package sparse

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"

	"go.trai.ch/crateq/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// cacheVersion is the on-disk cache format written by cargo.
	cacheVersion = 3
	// maxIndexVersion is the newest index format understood by the decoder.
	maxIndexVersion = 2
	// headerLen is the cache version byte followed by the little-endian index version.
	headerLen = 5
)

type indexRecord struct {
	Name        string          `json:"name"`
	Vers        string          `json:"vers"`
	Deps        []indexDep      `json:"deps"`
	Features    json.RawMessage `json:"features"`
	Features2   json.RawMessage `json:"features2"`
	Yanked      bool            `json:"yanked"`
	RustVersion *string         `json:"rust_version"`
	V           int             `json:"v"`
}

type indexDep struct {
	Name            string   `json:"name"`
	Req             string   `json:"req"`
	Features        []string `json:"features"`
	Optional        bool     `json:"optional"`
	DefaultFeatures bool     `json:"default_features"`
	Target          *string  `json:"target"`
	Kind            *string  `json:"kind"`
	Registry        *string  `json:"registry"`
	Package         *string  `json:"package"`
}

// decodeEntry parses a cache file into a package.
// Records are kept in file order, which is publish order.
func decodeEntry(name string, data []byte) (*domain.Package, error) {
	if len(data) < headerLen {
		return nil, corrupt(name, "cache entry is truncated")
	}
	if data[0] != cacheVersion {
		return nil, zerr.With(corrupt(name, "unsupported cache version"), "cache_version", int(data[0]))
	}
	indexVersion := binary.LittleEndian.Uint32(data[1:headerLen])
	if indexVersion > maxIndexVersion {
		return nil, zerr.With(corrupt(name, "unsupported index version"), "index_version", indexVersion)
	}

	fields := bytes.Split(data[headerLen:], []byte{0})
	if len(fields) < 2 || len(fields[len(fields)-1]) != 0 {
		return nil, corrupt(name, "cache entry is not NUL terminated")
	}
	// Drop the freshness header and the empty tail after the final NUL.
	fields = fields[1 : len(fields)-1]
	if len(fields)%2 != 0 {
		return nil, corrupt(name, "cache entry has an unpaired version")
	}

	pkg := &domain.Package{Name: domain.NewInternedString(name)}
	for i := 0; i < len(fields); i += 2 {
		record, skip, err := decodeRecord(fields[i+1])
		if err != nil {
			return nil, zerr.With(zerr.With(err, "package", name), "version", string(fields[i]))
		}
		if skip {
			continue
		}
		pkg.Versions = append(pkg.Versions, record)
	}
	if len(pkg.Versions) > 0 {
		pkg.Name = pkg.Versions[0].Name
	}
	return pkg, nil
}

// decodeRecord converts one JSON index line. Records written in an index
// format newer than maxIndexVersion are skipped, as cargo does.
func decodeRecord(line []byte) (domain.VersionRecord, bool, error) {
	var raw indexRecord
	if err := json.Unmarshal(line, &raw); err != nil {
		return domain.VersionRecord{}, false, zerr.With(
			zerr.Wrap(domain.ErrCorruptCache, "failed to decode index record"), "cause", err.Error(),
		)
	}
	if raw.V > maxIndexVersion {
		return domain.VersionRecord{}, true, nil
	}

	features, err := orderedFeatures(raw.Features)
	if err != nil {
		return domain.VersionRecord{}, false, err
	}
	features2, err := orderedFeatures(raw.Features2)
	if err != nil {
		return domain.VersionRecord{}, false, err
	}

	record := domain.VersionRecord{
		Name:     domain.NewInternedString(raw.Name),
		Version:  raw.Vers,
		Features: append(features, features2...),
		Yanked:   raw.Yanked,
	}
	if raw.RustVersion != nil {
		record.RustVersion = *raw.RustVersion
	}
	for _, d := range raw.Deps {
		record.Dependencies = append(record.Dependencies, convertDep(d))
	}
	return record, false, nil
}

func convertDep(d indexDep) domain.Dependency {
	name := d.Name
	if d.Package != nil && *d.Package != "" {
		name = *d.Package
	}
	kind := domain.DependencyNormal
	if d.Kind != nil && *d.Kind != "" {
		kind = domain.DependencyKind(*d.Kind)
	}
	return domain.Dependency{
		Name:        domain.NewInternedString(name),
		Requirement: d.Req,
		Kind:        kind,
		Optional:    d.Optional,
	}
}

// orderedFeatures decodes a feature table keeping the key order of the JSON text.
func orderedFeatures(raw json.RawMessage) ([]domain.Feature, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, featureError(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, featureError(io.ErrUnexpectedEOF)
	}

	var features []domain.Feature
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, featureError(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, featureError(io.ErrUnexpectedEOF)
		}
		var enables []string
		if err := dec.Decode(&enables); err != nil {
			return nil, featureError(err)
		}
		features = append(features, domain.Feature{Name: key, Enables: enables})
	}
	if _, err := dec.Token(); err != nil {
		return nil, featureError(err)
	}
	return features, nil
}

func featureError(err error) error {
	return zerr.With(zerr.Wrap(domain.ErrCorruptCache, "failed to decode feature table"), "cause", err.Error())
}

func corrupt(name, msg string) error {
	return zerr.With(zerr.Wrap(domain.ErrCorruptCache, msg), "package", name)
}
