package hexcrypt

import (
	"github.com/samber/oops"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadBatch reads a YAML batch file from fs.
func LoadBatch(fs afero.Fs, path string) (*Batch, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to read batch file %s", path)
	}
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		log.WithError(err).WithField("path", path).Error("Failed to parse batch file")
		return nil, oops.Wrapf(err, "failed to parse batch file %s", path)
	}
	log.WithField("records", len(b.Records)).Debug("Loaded batch file")
	return &b, nil
}

// SaveBatch writes b to path as YAML, readable only by the owner.
func SaveBatch(fs afero.Fs, path string, b *Batch) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return oops.Wrapf(err, "failed to encode batch")
	}
	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		log.WithError(err).WithField("path", path).Error("Failed to write batch file")
		return oops.Wrapf(err, "failed to write batch file %s", path)
	}
	return nil
}
